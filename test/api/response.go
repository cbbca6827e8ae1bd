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
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-json-experiment/json"

	"github.com/enokjanuario/ReqRes/pkg/jsonpath"
)

var ErrEmptyBody = errors.New("response has no body")

// Response is the outcome of a single request.  The body is decoded lazily
// on first field access.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string

	once      sync.Once
	document  any
	decodeErr error
}

// JSON returns the decoded body.
func (r *Response) JSON() (any, error) {
	r.once.Do(func() {
		if len(r.Body) == 0 {
			r.decodeErr = fmt.Errorf("%w: status %d (trace ID: %s)", ErrEmptyBody, r.StatusCode, r.TraceID)
			return
		}

		r.document, r.decodeErr = jsonpath.Decode(r.Body)
	})

	return r.document, r.decodeErr
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("%w: status %d (trace ID: %s)", ErrEmptyBody, r.StatusCode, r.TraceID)
	}

	return json.Unmarshal(r.Body, v)
}

// Path returns the value at a dotted path such as "data.email".
func (r *Response) Path(path string) (any, error) {
	document, err := r.JSON()
	if err != nil {
		return nil, err
	}

	return jsonpath.Lookup(document, path)
}

// String returns the value at path as a string.
func (r *Response) String(path string) (string, error) {
	document, err := r.JSON()
	if err != nil {
		return "", err
	}

	return jsonpath.String(document, path)
}

// Int returns the value at path as an integer, truncating fractions.
func (r *Response) Int(path string) (int, error) {
	document, err := r.JSON()
	if err != nil {
		return 0, err
	}

	return jsonpath.Int(document, path)
}

// List returns the array at path; the empty path addresses the root.
func (r *Response) List(path string) ([]any, error) {
	document, err := r.JSON()
	if err != nil {
		return nil, err
	}

	return jsonpath.List(document, path)
}

// Has reports whether path holds a non-null value.
func (r *Response) Has(path string) bool {
	document, err := r.JSON()
	if err != nil {
		return false
	}

	return jsonpath.Has(document, path)
}
