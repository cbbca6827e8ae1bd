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

package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/enokjanuario/ReqRes/pkg/operations"
)

// Endpoints contains all API endpoint patterns, relative to the base URL.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// User endpoints.
func (e *Endpoints) ListUsers(page int) string {
	if page <= 0 {
		return "/users"
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	return "/users?" + query.Encode()
}

func (e *Endpoints) GetUser(userID string) string {
	return fmt.Sprintf("/users/%s", url.PathEscape(userID))
}

func (e *Endpoints) CreateUser() string {
	return "/users"
}

func (e *Endpoints) UpdateUser(userID string) string {
	return fmt.Sprintf("/users/%s", url.PathEscape(userID))
}

func (e *Endpoints) DeleteUser(userID string) string {
	return fmt.Sprintf("/users/%s", url.PathEscape(userID))
}

// Authentication endpoints.
func (e *Endpoints) Login() string {
	return "/login"
}

// Operations lists every operation the client issues as "METHOD /template".
func (e *Endpoints) Operations() []string {
	return operations.All()
}
