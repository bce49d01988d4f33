package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestLogin_StoresToken(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req["username"])
		assert.Equal(t, "password789", req["password"])

		json.NewEncoder(w).Encode(LoginResult{
			Token: "token-abc",
			User:  &User{ID: "3", Name: "Alice Johnson", Username: "alice", Age: 28},
		})
	})
	defer srv.Close()

	result, err := c.Login(context.Background(), "alice", "password789")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", result.Token)
	assert.Equal(t, "3", result.User.ID)
	assert.Equal(t, "token-abc", c.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid username or password"})
	})
	defer srv.Close()

	_, err := c.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
	assert.Empty(t, c.Token())
}

func TestListUsers_SendsBearerToken(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]User{
			{ID: "1", Name: "John Doe", Username: "john", Age: 30, IsMarried: true},
		})
	})
	defer srv.Close()
	c.token = "token-abc"

	list, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "John Doe", list[0].Name)
}

func TestListUsers_Unauthorized(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	})
	defer srv.Close()

	_, err := c.ListUsers(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestGetUser_NullBodyMeansMissing(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null\n"))
	})
	defer srv.Close()
	c.token = "token-abc"

	u, err := c.GetUser(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestCreateUser_Conflict(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "username already exists"})
	})
	defer srv.Close()
	c.token = "token-abc"

	_, err := c.CreateUser(context.Background(), "Bob2", "bob", "pw", 22, true)
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestUpdateUser_OmitsAbsentFields(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/3", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(29), body["age"])
		assert.NotContains(t, body, "name")
		assert.NotContains(t, body, "isMarried")

		json.NewEncoder(w).Encode(User{ID: "3", Name: "Alice Johnson", Username: "alice", Age: 29})
	})
	defer srv.Close()
	c.token = "token-abc"

	age := 29
	u, err := c.UpdateUser(context.Background(), "3", &UserUpdate{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 29, u.Age)
}

func TestUpdateUser_NotFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "user not found"})
	})
	defer srv.Close()
	c.token = "token-abc"

	age := 29
	_, err := c.UpdateUser(context.Background(), "999", &UserUpdate{Age: &age})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLogout_DiscardsToken(t *testing.T) {
	c := NewClient("http://localhost:4000", time.Second)
	c.token = "token-abc"
	c.Logout()
	assert.Empty(t, c.Token())
}
