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

// Package jsonpath resolves dotted field paths such as "data.email" or
// "data.0.id" against decoded JSON documents.
package jsonpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-openapi/jsonpointer"
)

var (
	// ErrNotFound is returned when a path does not resolve to a value.
	ErrNotFound = errors.New("path not found")

	// ErrType is returned when a path resolves to a value of the wrong type.
	ErrType = errors.New("unexpected value type")
)

// Decode parses a JSON document into generic maps, slices, float64s,
// strings, bools and nils.
func Decode(data []byte) (any, error) {
	var document any

	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("decoding JSON document: %w", err)
	}

	return document, nil
}

// Pointer converts a dotted path into an RFC 6901 JSON pointer.
// The empty path addresses the document root.
func Pointer(path string) string {
	if path == "" {
		return ""
	}

	segments := strings.Split(path, ".")
	for i := range segments {
		segments[i] = jsonpointer.Escape(segments[i])
	}

	return "/" + strings.Join(segments, "/")
}

// Lookup returns the value at path.  A JSON null at the path is returned
// as nil without an error.
func Lookup(document any, path string) (any, error) {
	pointer, err := jsonpointer.New(Pointer(path))
	if err != nil {
		return nil, fmt.Errorf("parsing path %q: %w", path, err)
	}

	value, _, err := pointer.Get(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}

	return value, nil
}

// String returns the value at path formatted as a string.  Integral numbers
// are printed without a fractional part.
func String(document any, path string) (string, error) {
	value, err := Lookup(document, path)
	if err != nil {
		return "", err
	}

	switch t := value.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", fmt.Errorf("%w: %q is null", ErrNotFound, path)
	}

	return "", fmt.Errorf("%w: %q is %T, not a scalar", ErrType, path, value)
}

// Int returns the numeric value at path truncated toward zero.  Numeric
// strings are accepted.
func Int(document any, path string) (int, error) {
	value, err := Lookup(document, path)
	if err != nil {
		return 0, err
	}

	var number float64

	switch t := value.(type) {
	case float64:
		number = t
	case string:
		if number, err = strconv.ParseFloat(t, 64); err != nil {
			return 0, fmt.Errorf("%w: %q is %q, not a number", ErrType, path, t)
		}
	default:
		return 0, fmt.Errorf("%w: %q is %T, not a number", ErrType, path, value)
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrType, path)
	}

	return int(number), nil
}

// List returns the array at path.
func List(document any, path string) ([]any, error) {
	value, err := Lookup(document, path)
	if err != nil {
		return nil, err
	}

	list, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, not an array", ErrType, path, value)
	}

	return list, nil
}

// Has reports whether path resolves to a non-null value.
func Has(document any, path string) bool {
	value, err := Lookup(document, path)

	return err == nil && value != nil
}
