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

// Package api provides integration test utilities for the ReqRes API.
//
// # Client
//
// APIClient is a thin wrapper over net/http rather than a generated client,
// so specs see exactly what went over the wire:
//   - one attempt per call, bounded by the configured request timeout
//   - W3C trace context on every request for correlation
//   - direct access to status codes, headers and raw bodies
//   - dotted-path field access ("data.email") on the decoded body
//
// # Diagnostics
//
// Each spec gets its own Diagnostics buffer.  The client records every
// request and response into it, and the suite prints the buffer only when
// the spec fails.
//
// # Configuration
//
// TestConfig is loaded once per run from the environment and an optional
// .env file (see LoadTestConfig) and shared read-only by every spec.
package api
