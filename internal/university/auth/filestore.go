package auth

import (
	"encoding/json"
	"os"
	"sync"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

var defaultUsers = []User{
	{Username: "admin", Password: "admin123", IsActive: true},
	{Username: "user", Password: "user123", IsActive: true},
}

// FileStore keeps the user table in a flat JSON file. The file is created
// with two default users on first access. The bearer token is the username.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]User, error) {
	data, err := os.ReadFile(s.path)

	if os.IsNotExist(err) {
		data, err = json.MarshalIndent(defaultUsers, "", "  ")

		if err != nil {
			return nil, err
		}

		if err := os.WriteFile(s.path, data, 0644); err != nil {
			return nil, err
		}

		users := make(map[string]User, len(defaultUsers))

		for _, user := range defaultUsers {
			users[user.Username] = user
		}

		return users, nil
	}

	if err != nil {
		return nil, err
	}

	var list []User

	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}

	users := make(map[string]User, len(list))

	for _, user := range list {
		users[user.Username] = user
	}

	return users, nil
}

// Authenticate compares the candidate password verbatim against the table.
// Inactive users never authenticate.
func (s *FileStore) Authenticate(username, password string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()

	if err != nil {
		return User{}, false
	}

	user, ok := users[username]

	if !ok || user.Password != password || !user.IsActive {
		return User{}, false
	}

	return user, true
}

// Lookup resolves a bearer token to its user.
func (s *FileStore) Lookup(token string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()

	if err != nil {
		return User{}, false
	}

	user, ok := users[token]

	if !ok || !user.IsActive {
		return User{}, false
	}

	return user, true
}
