/*
Copyright 2026 the ReqRes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package stub serves canned ReqRes responses from an in-process HTTP
// server so the suites can run without network access.
package stub

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-json-experiment/json"
)

const (
	// PerPage is the page size of the user listing.
	PerPage = 6

	// Token is returned for every successful login.
	Token = "QpwL5tke4Pnpja7X4"

	timeFormat = "2006-01-02T15:04:05.000Z"
)

// User mirrors a ReqRes user record.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

var defaultSupport = support{
	URL:  "https://contentcaddy.io?utm_source=reqres&utm_medium=json&utm_campaign=referral",
	Text: "Tired of writing endless social media content? Let Content Caddy generate it for you.",
}

func newUser(id int, first, last string) User {
	return User{
		ID:        id,
		Email:     fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(first), strings.ToLower(last)),
		FirstName: first,
		LastName:  last,
		Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
	}
}

// Users returns the fixed user table.
func Users() []User {
	return []User{
		newUser(1, "George", "Bluth"),
		newUser(2, "Janet", "Weaver"),
		newUser(3, "Emma", "Wong"),
		newUser(4, "Eve", "Holt"),
		newUser(5, "Charles", "Morris"),
		newUser(6, "Tracey", "Ramos"),
		newUser(7, "Michael", "Lawson"),
		newUser(8, "Lindsay", "Ferguson"),
		newUser(9, "Tobias", "Funke"),
		newUser(10, "Byron", "Fields"),
		newUser(11, "George", "Edwards"),
		newUser(12, "Rachel", "Howell"),
	}
}

// Server is a running stub.
type Server struct {
	server *httptest.Server
	users  []User
	apiKey string
	now    func() time.Time

	lock   sync.Mutex
	nextID int
}

// Option customises a Server.
type Option func(*Server)

// WithAPIKey rejects requests that do not carry the given x-api-key header.
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithClock fixes the timestamps returned by create and update.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer starts a stub listening on a loopback port.
func NewServer(opts ...Option) *Server {
	s := &Server{
		users:  Users(),
		now:    time.Now,
		nextID: 100,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.server = httptest.NewServer(s.Handler())

	return s
}

// URL returns the API base URL, including the /api prefix.
func (s *Server) URL() string {
	return s.server.URL + "/api"
}

func (s *Server) Close() {
	s.server.Close()
}

// Handler returns the router, mounted at /api.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Route("/api", func(r chi.Router) {
		r.Use(s.requireAPIKey)
		r.Get("/users", s.listUsers)
		r.Post("/users", s.createUser)
		r.Get("/users/{id}", s.getUser)
		r.Put("/users/{id}", s.updateUser)
		r.Delete("/users/{id}", s.deleteUser)
		r.Post("/login", s.login)
	})

	return router
}

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && r.Header.Get("X-Api-Key") != s.apiKey {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Missing API key"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.MarshalWrite(w, body)
}

func (s *Server) lookup(r *http.Request) (User, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return User{}, false
	}

	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}

	return User{}, false
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	totalPages := (len(s.users) + PerPage - 1) / PerPage
	data := []User{}

	if start := (page - 1) * PerPage; start < len(s.users) {
		data = s.users[start:min(start+PerPage, len(s.users))]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"page":        page,
		"per_page":    PerPage,
		"total":       len(s.users),
		"total_pages": totalPages,
		"data":        data,
		"support":     defaultSupport,
	})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.lookup(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    user,
		"support": defaultSupport,
	})
}

func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body := map[string]any{}

	if err := json.UnmarshalRead(r.Body, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Bad Request"})
		return nil, false
	}

	return body, true
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}

	s.lock.Lock()
	s.nextID++
	id := s.nextID
	s.lock.Unlock()

	body["id"] = strconv.Itoa(id)
	body["createdAt"] = s.now().UTC().Format(timeFormat)

	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}

	body["updatedAt"] = s.now().UTC().Format(timeFormat)

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) deleteUser(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeObject(w, r)
	if !ok {
		return
	}

	email, _ := body["email"].(string)
	password, _ := body["password"].(string)

	switch {
	case email == "":
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing email or username"})
		return
	case password == "":
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing password"})
		return
	}

	for _, user := range s.users {
		if user.Email == email {
			writeJSON(w, http.StatusOK, map[string]any{"token": Token})
			return
		}
	}

	writeJSON(w, http.StatusBadRequest, map[string]any{"error": "user not found"})
}
