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

package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/onsi/gomega/ghttp"
	"go.uber.org/mock/gomock"

	"github.com/enokjanuario/ReqRes/test/api"
	"github.com/enokjanuario/ReqRes/test/api/mock"
)

var _ = Describe("APIClient", func() {
	var (
		server      *ghttp.Server
		config      *api.TestConfig
		diagnostics *api.Diagnostics
		client      *api.APIClient
		ctx         context.Context
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		DeferCleanup(server.Close)

		config = &api.TestConfig{
			BaseURL:        server.URL() + "/api",
			APIKey:         "reqres-free-v1",
			RequestTimeout: 2 * time.Second,
		}
		diagnostics = api.NewDiagnostics()
		client = api.NewAPIClient(config, api.WithDiagnostics(diagnostics))
		ctx = context.Background()
	})

	Context("When issuing requests", func() {
		It("should resolve paths against the base URL and expose body fields", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/users/2"),
				ghttp.VerifyHeaderKV("X-Api-Key", "reqres-free-v1"),
				ghttp.RespondWith(http.StatusOK, `{"data":{"id":2,"email":"janet.weaver@reqres.in"},"tags":["a","b"]}`),
			))

			resp, err := client.GetUser(ctx, "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(resp.String("data.email")).To(Equal("janet.weaver@reqres.in"))
			Expect(resp.Int("data.id")).To(Equal(2))
			Expect(resp.List("tags")).To(HaveLen(2))
			Expect(resp.Has("data.avatar")).To(BeFalse())
		})

		It("should send the page as a query parameter", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, "/api/users", "page=2"),
				ghttp.RespondWith(http.StatusOK, `{"page":2,"per_page":6,"total":12,"total_pages":2,"data":[{"id":7},{"id":8}]}`),
			))

			page, err := client.ListUsersPage(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(2))
			Expect(page.IDs()).To(Equal([]int{7, 8}))
			Expect(page.CheckConsistency()).To(Succeed())
		})

		It("should send JSON bodies with a content type", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/api/login"),
				ghttp.VerifyContentType("application/json"),
				ghttp.VerifyJSON(`{"email":"peter@klaven","password":""}`),
				ghttp.RespondWith(http.StatusBadRequest, `{"error":"Missing password"}`),
			))

			resp, err := client.Login(ctx, api.Credentials{Email: "peter@klaven"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusBadRequest))
			Expect(resp.String("error")).To(Equal("Missing password"))
		})

		It("should issue PUT and DELETE requests", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodPut, "/api/users/2"),
					ghttp.VerifyJSON(`{"name":"morpheus","job":"zion resident"}`),
					ghttp.RespondWith(http.StatusOK, `{"name":"morpheus","job":"zion resident","updatedAt":"2026-01-01T00:00:00.000Z"}`),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodDelete, "/api/users/2"),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			resp, err := client.UpdateUser(ctx, "2", api.NewUserPayload().WithJob("zion resident").Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Has("updatedAt")).To(BeTrue())

			resp, err = client.DeleteUser(ctx, "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusNoContent))

			_, err = resp.JSON()
			Expect(err).To(MatchError(api.ErrEmptyBody))
		})

		It("should send string bodies verbatim", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/api/users"),
				ghttp.VerifyBody([]byte(`{"name":`)),
				ghttp.RespondWith(http.StatusBadRequest, `{"error":"Bad Request"}`),
			))

			resp, err := client.Post(ctx, "/users", `{"name":`)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp).To(api.HaveStatus(http.StatusBadRequest))
		})

		It("should attach trace context to every request", func() {
			var received http.Header

			server.AppendHandlers(ghttp.CombineHandlers(
				func(_ http.ResponseWriter, r *http.Request) {
					received = r.Header.Clone()
				},
				ghttp.RespondWith(http.StatusOK, `{}`),
			))

			resp, err := client.Get(ctx, "/users/1")
			Expect(err).NotTo(HaveOccurred())
			Expect(received.Get("Traceparent")).To(MatchRegexp(`^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`))
			Expect(received.Get("Traceparent")).To(ContainSubstring(resp.TraceID))
			Expect(received.Get("Tracestate")).To(Equal("test-automation=ginkgo"))
			Expect(received.Get("Content-Type")).To(BeEmpty())
		})

		It("should fail when the server does not answer within the request timeout", func() {
			server.AppendHandlers(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(300 * time.Millisecond)
				w.WriteHeader(http.StatusOK)
			})

			config.RequestTimeout = 50 * time.Millisecond
			client = api.NewAPIClient(config)

			_, err := client.Get(ctx, "/users")
			Expect(err).To(HaveOccurred())
		})

		It("should fail a non-200 page listing", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, `{}`))

			_, err := client.ListUsersPage(ctx, 1)
			Expect(err).To(MatchError(api.ErrUnexpectedStatus))
		})
	})

	Context("When the network fails", func() {
		It("should make a single attempt and return the error", func() {
			ctrl := gomock.NewController(GinkgoT())

			doer := mock.NewMockHTTPDoer(ctrl)
			doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)

			client = api.NewAPIClient(config, api.WithHTTPDoer(doer), api.WithDiagnostics(diagnostics))

			resp, err := client.GetUser(ctx, "2")
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
			Expect(resp).To(BeNil())

			out := &bytes.Buffer{}
			Expect(diagnostics.Flush(out, true)).To(BeNumerically(">=", 2))
			Expect(out.String()).To(ContainSubstring("http request failed"))
			Expect(out.String()).To(ContainSubstring("TRACE CONTEXT"))
		})

		It("should write request lines to any Logger", func() {
			ctrl := gomock.NewController(GinkgoT())

			logger := mock.NewMockLogger(ctrl)
			logger.EXPECT().Printf(gomock.Any(), gomock.Any()).MinTimes(1)

			server.AppendHandlers(ghttp.RespondWith(http.StatusOK, `{}`))

			client = api.NewAPIClient(config, api.WithDiagnostics(logger))

			_, err := client.Get(ctx, "/users")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("When capturing diagnostics", func() {
		It("should record the exchange without writing it unless the spec failed", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusCreated, `{"name":"morpheus","id":"7"}`))

			_, err := client.CreateUser(ctx, api.NewUserPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(diagnostics.Len()).To(BeNumerically(">=", 4))

			passed := &bytes.Buffer{}
			Expect(diagnostics.Flush(passed, false)).To(Equal(0))
			Expect(passed.Len()).To(Equal(0))
			Expect(diagnostics.Len()).To(Equal(0))
		})

		It("should write the exchange when the spec failed", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest, `{"error":"Missing password"}`))

			_, err := client.Login(ctx, api.Credentials{Email: "peter@klaven"})
			Expect(err).NotTo(HaveOccurred())

			failed := &bytes.Buffer{}
			Expect(diagnostics.Flush(failed, true)).To(BeNumerically(">=", 4))
			Expect(failed.String()).To(ContainSubstring(`request body: {"email":"peter@klaven","password":""}`))
			Expect(failed.String()).To(ContainSubstring(`response body: {"error":"Missing password"}`))
			Expect(failed.String()).To(ContainSubstring("status=400"))
		})
	})
})
