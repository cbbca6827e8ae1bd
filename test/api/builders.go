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
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	payload map[string]any
}

// NewUserPayload creates a new user payload builder with the canonical
// ReqRes example user.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: map[string]any{
			"name": "morpheus",
			"job":  "leader",
		},
	}
}

// WithName sets the user name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithJob sets the job title.
func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload["job"] = job
	return b
}

// WithField sets an arbitrary field.
func (b *UserPayloadBuilder) WithField(key string, value any) *UserPayloadBuilder {
	b.payload[key] = value
	return b
}

// Without removes a field.
func (b *UserPayloadBuilder) Without(key string) *UserPayloadBuilder {
	delete(b.payload, key)
	return b
}

// Build returns a copy of the completed payload.
func (b *UserPayloadBuilder) Build() map[string]any {
	payload := make(map[string]any, len(b.payload))
	for k, v := range b.payload {
		payload[k] = v
	}

	return payload
}

func generateRandomName(prefix string) string {
	suffix := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(suffix)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(suffix))
}

// GenerateTestID returns a unique name for data created by a spec.
func GenerateTestID() string {
	return generateRandomName("test")
}
