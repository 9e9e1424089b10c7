package auth

// User is an entry in the fixed credential table. The service has no user
// database; the bearer token is the username itself.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

var users = map[string]User{
	"admin": {ID: 1, Username: "admin", Email: "admin@example.com", Password: "admin123"},
	"user1": {ID: 2, Username: "user1", Email: "user1@example.com", Password: "user123"},
	"user2": {ID: 3, Username: "user2", Email: "user2@example.com", Password: "user456"},
}

// Authenticate compares the candidate password verbatim against the table.
func Authenticate(username, password string) (User, bool) {
	user, ok := users[username]

	if !ok || user.Password != password {
		return User{}, false
	}

	return user, true
}

// Lookup resolves a bearer token to its user.
func Lookup(token string) (User, bool) {
	user, ok := users[token]
	return user, ok
}
