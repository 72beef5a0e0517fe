package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"connectly/app/config"
	"connectly/app/logging"
	"connectly/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) (*mux.Router, *badger.DB) {
	db := setupTestDB(t)
	router := SetupRoutes(db, logging.NewSink(), config.Load())
	return router, db
}

// doRequest performs a JSON request against the router, optionally with a
// bearer token, and returns the recorder.
func doRequest(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser creates an account through the public endpoint and returns
// its id.
func registerUser(t *testing.T, router *mux.Router, username, email, password string) int {
	w := doRequest(t, router, "POST", "/users/create/", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var res struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.ID
}

// loginUser exchanges credentials for a bearer token.
func loginUser(t *testing.T, router *mux.Router, username, password string) string {
	w := doRequest(t, router, "POST", "/auth/login/", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

// promoteAdmin flips the admin flag directly in storage, the way the
// createadmin CLI command does.
func promoteAdmin(t *testing.T, db *badger.DB, username string) {
	repo := repositories.NewBadgerUserRepository(db)
	user, err := repo.GetByUsername(username)
	require.NoError(t, err)
	user.IsAdmin = true
	require.NoError(t, repo.Update(user))
}
