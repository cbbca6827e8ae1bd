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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/enokjanuario/ReqRes/test/api"
)

var _ = Describe("Pagination", func() {
	Context("When listing users page by page", func() {
		var first *api.Page

		BeforeEach(func() {
			var err error

			first, err = client.ListUsersPage(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
		})

		Describe("Given the first page", func() {
			It("should never return more users per page than exist", func() {
				Expect(first.PerPage).To(BeNumerically(">", 0))
				Expect(first.PerPage).To(BeNumerically("<=", first.Total))
				Expect(len(first.Data)).To(BeNumerically("<=", first.PerPage))
			})

			It("should report total pages as total divided by page size, rounded up", func() {
				Expect(first.TotalPages).To(Equal(api.ExpectedTotalPages(first.Total, first.PerPage)))
				Expect(first.CheckConsistency()).To(Succeed())
			})
		})

		Describe("Given page 3", func() {
			It("should be empty exactly when it lies beyond the last page", func() {
				third, err := client.ListUsersPage(ctx, 3)
				Expect(err).NotTo(HaveOccurred())
				Expect(third.CheckConsistency()).To(Succeed())

				if third.PastEnd() {
					Expect(third.Data).To(BeEmpty())
				} else {
					Expect(third.Data).NotTo(BeEmpty())
				}
			})
		})

		Describe("Given the page after the last", func() {
			It("should return an empty list", func() {
				past, err := client.ListUsersPage(ctx, first.TotalPages+1)
				Expect(err).NotTo(HaveOccurred())
				Expect(past.PastEnd()).To(BeTrue())
				Expect(past.Data).To(BeEmpty())
			})
		})

		Describe("Given every page in range", func() {
			It("should return each user once", func() {
				seen := map[int]bool{}

				for page := 1; page <= first.TotalPages; page++ {
					result, err := client.ListUsersPage(ctx, page)
					Expect(err).NotTo(HaveOccurred())
					Expect(result.Data).NotTo(BeEmpty())

					for _, id := range result.IDs() {
						Expect(seen).NotTo(HaveKey(id), "user %d listed twice", id)
						seen[id] = true
					}
				}

				Expect(seen).To(HaveLen(first.Total))
			})
		})
	})
})
