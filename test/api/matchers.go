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

	"github.com/onsi/gomega/types"

	"github.com/enokjanuario/ReqRes/pkg/jsonpath"
	"github.com/enokjanuario/ReqRes/pkg/schema"
)

// toDocument accepts a *Response, raw JSON or an already decoded value.
func toDocument(actual any) (any, error) {
	switch t := actual.(type) {
	case *Response:
		if t == nil {
			return nil, fmt.Errorf("expected a response, got nil")
		}

		return t.JSON()
	case []byte:
		return jsonpath.Decode(t)
	case string:
		return jsonpath.Decode([]byte(t))
	}

	return actual, nil
}

type jsonSchemaMatcher struct {
	path string
	err  error
}

// MatchJSONSchema succeeds when the body conforms to the JSON Schema file
// at path.  The failure message lists every violation.
func MatchJSONSchema(path string) types.GomegaMatcher {
	return &jsonSchemaMatcher{path: path}
}

func (m *jsonSchemaMatcher) Match(actual any) (bool, error) {
	document, err := toDocument(actual)
	if err != nil {
		return false, err
	}

	validator, err := schema.Compile(m.path)
	if err != nil {
		return false, err
	}

	m.err = validator.Validate(document)

	return m.err == nil, nil
}

func (m *jsonSchemaMatcher) FailureMessage(_ any) string {
	return fmt.Sprintf("Expected body to match JSON schema %s\n%v", m.path, m.err)
}

func (m *jsonSchemaMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("Expected body not to match JSON schema %s", m.path)
}

type openAPIComponentMatcher struct {
	document *schema.Document
	name     string
	err      error
}

// MatchOpenAPIComponent succeeds when the body conforms to the named
// component schema of an OpenAPI document.
func MatchOpenAPIComponent(document *schema.Document, name string) types.GomegaMatcher {
	return &openAPIComponentMatcher{document: document, name: name}
}

func (m *openAPIComponentMatcher) Match(actual any) (bool, error) {
	if m.document == nil {
		return false, fmt.Errorf("no OpenAPI document to match component %s against", m.name)
	}

	document, err := toDocument(actual)
	if err != nil {
		return false, err
	}

	m.err = m.document.ValidateComponent(m.name, document)

	return m.err == nil, nil
}

func (m *openAPIComponentMatcher) FailureMessage(_ any) string {
	return fmt.Sprintf("Expected body to match OpenAPI component %s\n%v", m.name, m.err)
}

func (m *openAPIComponentMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("Expected body not to match OpenAPI component %s", m.name)
}

type statusMatcher struct {
	expected int
}

// HaveStatus succeeds when a *Response carries the expected status code.
// Failures include the response body and trace ID.
func HaveStatus(expected int) types.GomegaMatcher {
	return &statusMatcher{expected: expected}
}

func (m *statusMatcher) Match(actual any) (bool, error) {
	resp, ok := actual.(*Response)
	if !ok || resp == nil {
		return false, fmt.Errorf("HaveStatus expects a *api.Response, got %T", actual)
	}

	return resp.StatusCode == m.expected, nil
}

func (m *statusMatcher) FailureMessage(actual any) string {
	resp, _ := actual.(*Response)

	return fmt.Sprintf("Expected status %d, got %d\nbody: %s\ntrace ID: %s", m.expected, resp.StatusCode, string(resp.Body), resp.TraceID)
}

func (m *statusMatcher) NegatedFailureMessage(actual any) string {
	resp, _ := actual.(*Response)

	return fmt.Sprintf("Expected status other than %d (trace ID: %s)", m.expected, resp.TraceID)
}
