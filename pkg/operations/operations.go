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

// Package operations names the ReqRes operations the API client issues.
package operations

const (
	ListUsers  = "GET /users"
	GetUser    = "GET /users/{id}"
	CreateUser = "POST /users"
	UpdateUser = "PUT /users/{id}"
	DeleteUser = "DELETE /users/{id}"
	Login      = "POST /login"
)

// All returns every operation as "METHOD /template", sorted, in the same
// form as schema.Document.Operations.
func All() []string {
	return []string{
		DeleteUser,
		ListUsers,
		GetUser,
		Login,
		CreateUser,
		UpdateUser,
	}
}
