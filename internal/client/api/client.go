// Package api implements the HTTP client for the directory server. It is a
// thin transport layer: requests and responses are JSON, and server error
// payloads are mapped back onto the shared sentinel errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// User is the sanitized record as returned by the server. The server never
// sends a password field.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Age       int    `json:"age"`
	IsMarried bool   `json:"isMarried"`
}

// UserUpdate carries a partial update; nil fields are omitted from the
// request body so the server leaves them unchanged.
type UserUpdate struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	IsMarried *bool   `json:"isMarried,omitempty"`
}

// LoginResult is the login response payload.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client talks to one directory server. The session token obtained by Login
// is kept in memory and attached to subsequent requests.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the current session token ("" when not logged in).
func (c *Client) Token() string { return c.token }

// Logout discards the token locally. The server-side session entry stays
// valid until the server process exits.
func (c *Client) Logout() { c.token = "" }

// errorFromStatus maps an HTTP error status onto the sentinel taxonomy.
func errorFromStatus(status int, msg string) error {
	switch status {
	case http.StatusUnauthorized:
		if msg == common.ErrorInvalidCredentials.Error() {
			return common.ErrorInvalidCredentials
		}
		return common.ErrorUnauthorized
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). A JSON null response body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Error == "" {
			er.Error = resp.Status
		}
		return errorFromStatus(resp.StatusCode, er.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates and stores the issued token for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": password}, &result)
	if err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// ListUsers returns all directory records.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetUser returns the record with the given id, or nil when it does not
// exist (the server answers a miss with a null body).
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user *User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser adds a new record.
func (c *Client) CreateUser(ctx context.Context, name, username, password string, age int, isMarried bool) (*User, error) {
	body := map[string]any{
		"name":      name,
		"username":  username,
		"password":  password,
		"age":       age,
		"isMarried": isMarried,
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/users", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update to the record with the given id.
func (c *Client) UpdateUser(ctx context.Context, id string, upd *UserUpdate) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+id, upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
