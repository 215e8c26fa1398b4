// Package apitest fakes the upstream REST API for handler tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/apiclient"
	"storefront/cache"
	"storefront/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

// Server records every request it serves.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// Request is a recorded upstream call.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// NewServer serves routes keyed by "METHOD /path". Unknown routes answer 404.
func NewServer(t *testing.T, routes map[string]http.HandlerFunc) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Header: r.Header.Clone(), Body: body})
		s.mu.Unlock()

		if h, ok := routes[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		Fail(w, http.StatusNotFound, "Route not found")
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns a copy of the recorded calls.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many times METHOD /path was called.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Client returns an API client against s with a fresh memory cache.
func (s *Server) Client() *apiclient.Client {
	return apiclient.New(s.URL, 5*time.Second, cache.NewQueryCache(cache.NewMemoryStore(), time.Minute))
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "ok", "data": data})
}

// Fail writes an error envelope.
func Fail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": message})
}

// Respond returns a handler that always writes data.
func Respond(status int, data interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { OK(w, status, data) }
}

// Reject returns a handler that always fails.
func Reject(status int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { Fail(w, status, message) }
}

// Token signs an access token the session middleware accepts.
func Token(t *testing.T, key, userID string, role models.Role) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   string(role),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}
