package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/apisuite/apisuite/internal/addressbook/auth"
	"github.com/apisuite/apisuite/internal/addressbook/db"
	"github.com/apisuite/apisuite/internal/addressbook/models"
	"github.com/apisuite/apisuite/internal/addressbook/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAddressBook(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, db.Connect(filepath.Join(dir, "addressbook.db")))

	return router.New(filepath.Join(dir, "ip_requests.log"))
}

func createUser(t *testing.T, username string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: string(hash),
	}
	require.NoError(t, db.DB.Create(&user).Error)

	token, err := auth.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createContact(t *testing.T, r *gin.Engine, token, name, email, phone string) models.Contact {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/contacts", token, gin.H{"name": name, "email": email, "phone": phone})
	require.Equal(t, http.StatusCreated, w.Code)

	var contact models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contact))
	return contact
}

func TestContactsRequireAuth(t *testing.T) {
	r := setupAddressBook(t)

	w := doJSON(t, r, http.MethodGet, "/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOwnershipIsEnforced(t *testing.T) {
	r := setupAddressBook(t)
	_, aliceToken := createUser(t, "alice")
	_, bobToken := createUser(t, "bob")

	contact := createContact(t, r, aliceToken, "John Doe", "john@example.com", "555-1234")
	path := fmt.Sprintf("/contacts/%d", contact.ID)

	w := doJSON(t, r, http.MethodGet, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, path, bobToken, gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Bob's listing does not include Alice's contact.
	w = doJSON(t, r, http.MethodGet, "/contacts", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contacts))
	assert.Empty(t, contacts)

	// The owner still has full access.
	w = doJSON(t, r, http.MethodGet, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPartialUpdateContact(t *testing.T) {
	r := setupAddressBook(t)
	_, token := createUser(t, "alice")

	contact := createContact(t, r, token, "John Doe", "john@example.com", "555-1234")

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/contacts/%d", contact.ID), token, gin.H{"phone": "555-9999"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "john@example.com", updated.Email)
}

func TestDeleteContactTwice(t *testing.T) {
	r := setupAddressBook(t)
	_, token := createUser(t, "alice")

	contact := createContact(t, r, token, "John Doe", "john@example.com", "555-1234")
	path := fmt.Sprintf("/contacts/%d", contact.ID)

	w := doJSON(t, r, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchContactsCaseInsensitive(t *testing.T) {
	r := setupAddressBook(t)
	_, aliceToken := createUser(t, "alice")
	_, bobToken := createUser(t, "bob")

	createContact(t, r, aliceToken, "John Doe", "john@example.com", "555-1234")
	createContact(t, r, aliceToken, "Jane Smith", "jane@example.com", "555-5678")
	createContact(t, r, bobToken, "Bobby Doe", "bobby@example.com", "555-0000")

	w := doJSON(t, r, http.MethodGet, "/contacts/search/doe", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1, "search is scoped to the caller")
	assert.Equal(t, "John Doe", contacts[0].Name)
}

func TestCreateContactValidatesEmail(t *testing.T) {
	r := setupAddressBook(t)
	_, token := createUser(t, "alice")

	w := doJSON(t, r, http.MethodPost, "/contacts", token, gin.H{"name": "John", "email": "not-an-email", "phone": "555-1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfile(t *testing.T) {
	r := setupAddressBook(t)
	user, token := createUser(t, "alice")

	w := doJSON(t, r, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(user.ID), resp["id"])
	assert.Equal(t, "alice", resp["username"])
}

func TestClientIPHeader(t *testing.T) {
	r := setupAddressBook(t)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "203.0.113.9", w.Header().Get("X-Client-IP"))

	// X-Real-IP wins over X-Forwarded-For.
	req, err = http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("X-Real-IP", "198.51.100.7")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "198.51.100.7", w.Header().Get("X-Client-IP"))
}
