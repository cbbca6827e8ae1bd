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
)

var ErrInconsistentPage = errors.New("inconsistent pagination")

// Page is a decoded page of the user listing.
type Page struct {
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Data       []map[string]any `json:"data"`
}

// ExpectedTotalPages is ceil(total / perPage).
func ExpectedTotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}

	return (total + perPage - 1) / perPage
}

// CheckConsistency verifies that per_page is positive and no larger than
// total, and that total_pages is ceil(total / per_page).
func (p *Page) CheckConsistency() error {
	if p.PerPage <= 0 {
		return fmt.Errorf("%w: per_page %d must be positive", ErrInconsistentPage, p.PerPage)
	}

	if p.PerPage > p.Total {
		return fmt.Errorf("%w: per_page %d exceeds total %d", ErrInconsistentPage, p.PerPage, p.Total)
	}

	if expected := ExpectedTotalPages(p.Total, p.PerPage); p.TotalPages != expected {
		return fmt.Errorf("%w: total_pages %d, expected ceil(%d / %d) = %d", ErrInconsistentPage, p.TotalPages, p.Total, p.PerPage, expected)
	}

	return nil
}

// PastEnd reports whether the page lies beyond the last page.
func (p *Page) PastEnd() bool {
	return p.Page > p.TotalPages
}

// IDs returns the numeric IDs of the users on the page.
func (p *Page) IDs() []int {
	ids := make([]int, 0, len(p.Data))

	for _, user := range p.Data {
		if id, ok := user["id"].(float64); ok {
			ids = append(ids, int(id))
		}
	}

	return ids
}
