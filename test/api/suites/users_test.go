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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/enokjanuario/ReqRes/test/api"
)

var _ = Describe("User Management", func() {
	Context("When retrieving a single user", func() {
		Describe("Given the user exists", func() {
			It("should return the user's details", func() {
				resp, err := client.GetUser(ctx, "2")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusOK))

				Expect(resp.String("data.email")).To(Equal("janet.weaver@reqres.in"))
				Expect(resp.Int("data.id")).To(Equal(2))
			})
		})

		Describe("Given the user does not exist", func() {
			It("should return not found", func() {
				resp, err := client.GetUser(ctx, "23")
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusNotFound))
			})
		})
	})

	Context("When listing users", func() {
		Describe("Given a page within range", func() {
			It("should return a non-empty list", func() {
				resp, err := client.ListUsers(ctx, 2)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusOK))

				Expect(resp.Int("page")).To(Equal(2))
				Expect(resp.List("data")).NotTo(BeEmpty())
			})
		})
	})

	Context("When creating a user", func() {
		Describe("Given a name and job", func() {
			It("should echo the fields with an ID and creation time", func() {
				resp, err := client.CreateUser(ctx, api.NewUserPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusCreated))

				Expect(resp.String("name")).To(Equal("morpheus"))
				Expect(resp.String("job")).To(Equal("leader"))
				Expect(resp.String("id")).NotTo(BeEmpty())
				Expect(resp.String("createdAt")).NotTo(BeEmpty())
			})
		})

		Describe("Given a unique name", func() {
			It("should echo the name back", func() {
				name := api.GenerateTestID()

				resp, err := client.CreateUser(ctx, api.NewUserPayload().WithName(name).Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusCreated))
				Expect(resp.String("name")).To(Equal(name))
			})
		})
	})

	Context("When updating a user", func() {
		Describe("Given a new job", func() {
			It("should echo the fields with an update time", func() {
				resp, err := client.UpdateUser(ctx, "2", api.NewUserPayload().WithJob("zion resident").Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusOK))

				Expect(resp.String("name")).To(Equal("morpheus"))
				Expect(resp.String("job")).To(Equal("zion resident"))
				Expect(resp.String("updatedAt")).NotTo(BeEmpty())
			})
		})
	})

	Context("When deleting a user", func() {
		It("should return no content", func() {
			resp, err := client.DeleteUser(ctx, "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusNoContent))
			Expect(resp.Body).To(BeEmpty())
		})
	})
})
