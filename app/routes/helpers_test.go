package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"microblog/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *mux.Router {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
	return Setup(db, cfg)
}

// doJSON performs a request against the router with an optional bearer token
// and JSON body, returning the recorded response.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates a user through the API and returns a valid token
func registerAndLogin(t *testing.T, router *mux.Router, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}
	w := doJSON(t, router, "POST", "/api/register", "", creds)
	require.Equal(t, 201, w.Code)

	w = doJSON(t, router, "POST", "/api/login", "", creds)
	require.Equal(t, 200, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
