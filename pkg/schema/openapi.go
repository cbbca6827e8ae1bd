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

package schema

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrUnknownComponent is returned when a document has no component schema
// with the requested name.
var ErrUnknownComponent = errors.New("unknown component schema")

// Document is a loaded and validated OpenAPI 3 description.
type Document struct {
	path string
	spec *openapi3.T
}

// LoadOpenAPI reads the OpenAPI document at path and checks that it is
// itself valid.
func LoadOpenAPI(ctx context.Context, path string) (*Document, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document %s: %w", path, err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating OpenAPI document %s: %w", path, err)
	}

	return &Document{
		path: path,
		spec: spec,
	}, nil
}

// Components returns the sorted names of the component schemas.
func (d *Document) Components() []string {
	if d.spec.Components == nil {
		return nil
	}

	names := make([]string, 0, len(d.spec.Components.Schemas))
	for name := range d.spec.Components.Schemas {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Operations returns every declared operation as "METHOD /path", sorted.
func (d *Document) Operations() []string {
	if d.spec.Paths == nil {
		return nil
	}

	var operations []string

	for path, item := range d.spec.Paths.Map() {
		for method := range item.Operations() {
			operations = append(operations, strings.ToUpper(method)+" "+path)
		}
	}

	slices.Sort(operations)

	return operations
}

// ValidateComponent checks a decoded JSON value against the named schema
// under components.schemas.
func (d *Document) ValidateComponent(name string, value any) error {
	if d.spec.Components == nil {
		return fmt.Errorf("%w: %s", ErrUnknownComponent, name)
	}

	ref, ok := d.spec.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownComponent, name)
	}

	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return openAPIMismatch(d.path+"#/components/schemas/"+name, err)
	}

	return nil
}

func openAPIMismatch(schema string, err error) error {
	errs := []error{err}

	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		errs = multi
	}

	mismatch := &MismatchError{Schema: schema}

	for _, e := range errs {
		cause := Cause{Message: e.Error()}

		var schemaErr *openapi3.SchemaError
		if errors.As(e, &schemaErr) {
			if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
				cause.Location = "/" + strings.Join(pointer, "/")
			}

			cause.Message = schemaErr.Reason
		}

		mismatch.Causes = append(mismatch.Causes, cause)
	}

	return mismatch
}
