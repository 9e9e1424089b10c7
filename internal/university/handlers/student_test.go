package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/apisuite/apisuite/internal/university/auth"
	"github.com/apisuite/apisuite/internal/university/db"
	"github.com/apisuite/apisuite/internal/university/handlers"
	"github.com/apisuite/apisuite/internal/university/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type universityEnv struct {
	router    *gin.Engine
	usersPath string
}

func setupUniversity(t *testing.T) universityEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, db.Connect(filepath.Join(dir, "university.db")))

	usersPath := filepath.Join(dir, "users.json")

	return universityEnv{
		router:    router.New(auth.NewFileStore(usersPath), filepath.Join(dir, "requests.log")),
		usersPath: usersPath,
	}
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

func login(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	return resp["access_token"]
}

func createStudent(t *testing.T, r *gin.Engine, token string, body gin.H) handlers.StudentResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/students", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var student handlers.StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	return student
}

func TestLoginCreatesUsersFile(t *testing.T) {
	env := setupUniversity(t)

	token := login(t, env.router, "admin", "admin123")
	assert.Equal(t, "admin", token, "token is the username")

	data, err := os.ReadFile(env.usersPath)
	require.NoError(t, err, "users file auto-created with defaults")

	var users []auth.User
	require.NoError(t, json.Unmarshal(data, &users))
	assert.Len(t, users, 2)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setupUniversity(t)

	w := doJSON(t, env.router, http.MethodPost, "/auth/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInactiveUserCannotAuthenticate(t *testing.T) {
	env := setupUniversity(t)

	users := []auth.User{{Username: "ghost", Password: "boo", IsActive: false}}
	data, err := json.Marshal(users)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(env.usersPath, data, 0644))

	w := doJSON(t, env.router, http.MethodPost, "/auth/login", "", gin.H{"username": "ghost", "password": "boo"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, env.router, http.MethodGet, "/students", "ghost", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentsRequireAuth(t *testing.T) {
	env := setupUniversity(t)

	w := doJSON(t, env.router, http.MethodGet, "/students", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, env.router, http.MethodGet, "/students", "not-a-user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGradesRoundTrip(t *testing.T) {
	env := setupUniversity(t)
	token := login(t, env.router, "admin", "admin123")

	student := createStudent(t, env.router, token, gin.H{
		"name":   "Ada Lovelace",
		"age":    28,
		"email":  "ada@example.com",
		"grades": []float64{3.9, 4.0},
	})
	assert.Equal(t, []float64{3.9, 4.0}, student.Grades)

	w := doJSON(t, env.router, http.MethodGet, fmt.Sprintf("/students/%d", student.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched handlers.StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, []float64{3.9, 4.0}, fetched.Grades)
}

func TestCreateStudentWithoutGrades(t *testing.T) {
	env := setupUniversity(t)
	token := login(t, env.router, "admin", "admin123")

	student := createStudent(t, env.router, token, gin.H{
		"name":  "Alan Turing",
		"age":   30,
		"email": "alan@example.com",
	})
	assert.Equal(t, []float64{}, student.Grades, "grades default to an empty list, not null")
}

func TestPartialUpdateStudent(t *testing.T) {
	env := setupUniversity(t)
	token := login(t, env.router, "admin", "admin123")

	student := createStudent(t, env.router, token, gin.H{
		"name":   "Ada Lovelace",
		"age":    28,
		"email":  "ada@example.com",
		"grades": []float64{3.9},
	})

	w := doJSON(t, env.router, http.MethodPut, fmt.Sprintf("/students/%d", student.ID), token, gin.H{"age": 29})
	require.Equal(t, http.StatusOK, w.Code)

	var updated handlers.StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 29, updated.Age)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, []float64{3.9}, updated.Grades)
}

func TestDeleteStudentTwice(t *testing.T) {
	env := setupUniversity(t)
	token := login(t, env.router, "admin", "admin123")

	student := createStudent(t, env.router, token, gin.H{"name": "Ada", "age": 28, "email": "ada@example.com"})
	path := fmt.Sprintf("/students/%d", student.ID)

	w := doJSON(t, env.router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env.router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchStudentsCaseInsensitive(t *testing.T) {
	env := setupUniversity(t)
	token := login(t, env.router, "admin", "admin123")

	createStudent(t, env.router, token, gin.H{"name": "Ada Lovelace", "age": 28, "email": "ada@example.com"})
	createStudent(t, env.router, token, gin.H{"name": "Alan Turing", "age": 30, "email": "alan@example.com"})

	w := doJSON(t, env.router, http.MethodGet, "/students/search/LOVELACE", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var students []handlers.StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "Ada Lovelace", students[0].Name)
}

func TestCreateStudentValidation(t *testing.T) {
	env := setupUniversity(t)
	token := login(t, env.router, "admin", "admin123")

	w := doJSON(t, env.router, http.MethodPost, "/students", token, gin.H{"name": "Ada", "age": 0, "email": "ada@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env.router, http.MethodPost, "/students", token, gin.H{"name": "Ada", "age": 28, "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
