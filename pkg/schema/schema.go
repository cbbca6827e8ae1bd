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

// Package schema validates JSON documents against JSON Schema files and
// OpenAPI component schemas.
package schema

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/enokjanuario/ReqRes/pkg/jsonpath"
)

// ErrMismatch is returned, wrapped in a MismatchError, when a document does
// not conform to a schema.
var ErrMismatch = errors.New("document does not match schema")

// Cause is a single schema violation.
type Cause struct {
	// Location is the JSON pointer of the offending value in the document.
	Location string
	Message  string
}

// MismatchError lists every violation found while validating a document.
type MismatchError struct {
	Schema string
	Causes []Cause
}

func (e *MismatchError) Error() string {
	lines := make([]string, 0, len(e.Causes)+1)
	lines = append(lines, fmt.Sprintf("document does not match schema %s", e.Schema))

	for _, cause := range e.Causes {
		location := cause.Location
		if location == "" {
			location = "/"
		}

		lines = append(lines, fmt.Sprintf("  at %s: %s", location, cause.Message))
	}

	return strings.Join(lines, "\n")
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Validator checks documents against one compiled JSON Schema.
type Validator struct {
	path   string
	schema *jsonschema.Schema
}

// Compile loads and compiles the JSON Schema file at path.  The draft is
// taken from the document's $schema keyword.
func Compile(path string) (*Validator, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving schema path %s: %w", path, err)
	}

	compiled, err := jsonschema.Compile("file://" + filepath.ToSlash(abs))
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", path, err)
	}

	return &Validator{
		path:   path,
		schema: compiled,
	}, nil
}

// Path returns the file the schema was compiled from.
func (v *Validator) Path() string {
	return v.path
}

// Validate checks a decoded JSON value.
func (v *Validator) Validate(value any) error {
	err := v.schema.Validate(value)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("validating against %s: %w", v.path, err)
	}

	mismatch := &MismatchError{Schema: v.path}
	collectCauses(validationErr, &mismatch.Causes)

	return mismatch
}

// ValidateBytes decodes and checks a raw JSON document.
func (v *Validator) ValidateBytes(data []byte) error {
	document, err := jsonpath.Decode(data)
	if err != nil {
		return err
	}

	return v.Validate(document)
}

// collectCauses flattens the validation tree into its leaves, which carry
// the specific violations.
func collectCauses(err *jsonschema.ValidationError, causes *[]Cause) {
	if len(err.Causes) == 0 {
		*causes = append(*causes, Cause{
			Location: err.InstanceLocation,
			Message:  err.Message,
		})

		return
	}

	for _, cause := range err.Causes {
		collectCauses(cause, causes)
	}
}
