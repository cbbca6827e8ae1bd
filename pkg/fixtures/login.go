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

// Package fixtures reads tabular test data used to parameterize API specs.
package fixtures

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	emailColumn = iota
	passwordColumn
	expectedStatusColumn
)

var (
	// ErrNoHeader is returned when the first sheet of a workbook is empty.
	ErrNoHeader = errors.New("fixture sheet has no header row")

	// ErrConversion is returned when a cell cannot be converted to the
	// type its column requires.
	ErrConversion = errors.New("fixture cell conversion failed")

	errNegative = errors.New("value must not be negative")
	errRange    = errors.New("value out of range")
)

// LoginFixture is a single row of the login workbook.
type LoginFixture struct {
	Email          string
	Password       string
	ExpectedStatus int
}

func (f LoginFixture) String() string {
	return fmt.Sprintf("email=%q password=%q expected=%d", f.Email, f.Password, f.ExpectedStatus)
}

// ConversionError describes a cell that holds the wrong kind of value.
// Row and Column are zero based, as they appear in the sheet.
type ConversionError struct {
	Row    int
	Column int
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("row %d column %d: cannot convert %q to an integer: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

// LoadLoginFixtures reads the first sheet of the workbook at path and returns
// one fixture per row after the header, in sheet order. Missing email and
// password cells read as empty strings, a missing status cell reads as zero.
// Rows are counted up to the last one holding data, so an absent row between
// data rows reads as a zero-valued fixture.
// The workbook is always closed before returning.
func LoadLoginFixtures(path string) (fixtures []LoginFixture, err error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening fixture workbook %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing fixture workbook %s: %w", path, closeErr))
		}
	}()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoHeader)
	}

	fixtures = make([]LoginFixture, len(rows)-1)

	for i := 1; i < len(rows); i++ {
		fixture, rowErr := parseLoginRow(i, rows[i])
		if rowErr != nil {
			return nil, fmt.Errorf("%s: %w", path, rowErr)
		}

		fixtures[i-1] = fixture
	}

	return fixtures, nil
}

func parseLoginRow(index int, row []string) (LoginFixture, error) {
	status, err := cellInt(row, index, expectedStatusColumn)
	if err != nil {
		return LoginFixture{}, err
	}

	return LoginFixture{
		Email:          cellString(row, emailColumn),
		Password:       cellString(row, passwordColumn),
		ExpectedStatus: status,
	}, nil
}

func cellString(row []string, column int) string {
	if column >= len(row) {
		return ""
	}

	return row[column]
}

// cellInt truncates any numeric representation toward zero, so "200",
// "200.0" and "2e2" all read as 200.
func cellInt(row []string, index, column int) (int, error) {
	raw := strings.TrimSpace(cellString(row, column))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConversionError{Row: index, Column: column, Value: raw, Err: err}
	}

	switch {
	case math.IsNaN(value) || math.IsInf(value, 0) || value > math.MaxInt32:
		return 0, &ConversionError{Row: index, Column: column, Value: raw, Err: errRange}
	case value < 0:
		return 0, &ConversionError{Row: index, Column: column, Value: raw, Err: errNegative}
	}

	return int(value), nil
}
