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

// Package lint checks the resources an API test run depends on.
package lint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/enokjanuario/ReqRes/pkg/fixtures"
	"github.com/enokjanuario/ReqRes/pkg/schema"
)

var (
	ErrNoSchemas         = errors.New("no schema files found")
	ErrMissingOperations = errors.New("operations missing from OpenAPI document")
	ErrEmptyFixtureTable = errors.New("fixture workbook has no data rows")
)

// Options selects the resources to check.
type Options struct {
	FixturePath string
	SchemaDir   string
	OpenAPIPath string
	Verbose     bool
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.FixturePath, "fixtures", "test/resources/files/testData.xlsx", "Login fixture workbook.")
	f.StringVar(&o.SchemaDir, "schemas", "test/resources/schemas", "Directory of JSON Schema files.")
	f.StringVar(&o.OpenAPIPath, "openapi", "test/resources/openapi/reqres.yaml", "OpenAPI description of the service.")
	f.BoolVar(&o.Verbose, "verbose", false, "List every fixture row and schema.")
}

// Result is the outcome of a single check.
type Result struct {
	Name string
	Err  error
}

// Report collects the results of a run in the order they were checked.
type Report struct {
	Results []Result
}

func (r *Report) add(name string, err error) {
	r.Results = append(r.Results, Result{Name: name, Err: err})
}

// Failed is true if any check failed.
func (r *Report) Failed() bool {
	return slices.ContainsFunc(r.Results, func(result Result) bool {
		return result.Err != nil
	})
}

// Checker runs the checks.  Operations lists the "METHOD /path" pairs the
// client issues, each of which must be declared by the OpenAPI document.
type Checker struct {
	options    *Options
	operations []string
	logger     logr.Logger
}

func New(options *Options, operations []string, logger logr.Logger) *Checker {
	return &Checker{
		options:    options,
		operations: operations,
		logger:     logger,
	}
}

// Run performs every check, continuing past failures.
func (c *Checker) Run(ctx context.Context) *Report {
	report := &Report{}

	report.add("fixtures", c.checkFixtures())
	report.add("schemas", c.checkSchemas())
	report.add("openapi", c.checkOpenAPI(ctx))

	return report
}

func (c *Checker) checkFixtures() error {
	rows, err := fixtures.LoadLoginFixtures(c.options.FixturePath)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFixtureTable, c.options.FixturePath)
	}

	c.logger.Info("loaded login fixtures", "path", c.options.FixturePath, "rows", len(rows))

	if c.options.Verbose {
		for i, row := range rows {
			c.logger.Info("fixture", "row", i+1, "email", row.Email, "expectedStatus", row.ExpectedStatus)
		}
	}

	return nil
}

func (c *Checker) checkSchemas() error {
	paths, err := filepath.Glob(filepath.Join(c.options.SchemaDir, "*.json"))
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		if _, err := os.Stat(c.options.SchemaDir); err != nil {
			return err
		}

		return fmt.Errorf("%w in %s", ErrNoSchemas, c.options.SchemaDir)
	}

	var errs []error

	for _, path := range paths {
		if _, err := schema.Compile(path); err != nil {
			errs = append(errs, err)
			continue
		}

		if c.options.Verbose {
			c.logger.Info("compiled schema", "path", path)
		}
	}

	c.logger.Info("checked schemas", "directory", c.options.SchemaDir, "count", len(paths), "failed", len(errs))

	return errors.Join(errs...)
}

func (c *Checker) checkOpenAPI(ctx context.Context) error {
	document, err := schema.LoadOpenAPI(ctx, c.options.OpenAPIPath)
	if err != nil {
		return err
	}

	declared := document.Operations()

	var missing []string

	for _, operation := range c.operations {
		if !slices.Contains(declared, operation) {
			missing = append(missing, operation)
		}
	}

	c.logger.Info("loaded OpenAPI document", "path", c.options.OpenAPIPath, "operations", len(declared), "components", len(document.Components()))

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %v", ErrMissingOperations, missing)
	}

	return nil
}
