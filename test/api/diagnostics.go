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
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type diagnosticEntry struct {
	time    time.Time
	message string
}

// Diagnostics buffers the request and response traffic of a single spec so
// it can be reported only if that spec fails.
type Diagnostics struct {
	entries []diagnosticEntry
	lock    sync.Mutex
}

// NewDiagnostics returns an empty buffer.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Printf implements Logger.
func (d *Diagnostics) Printf(format string, args ...any) {
	d.lock.Lock()
	d.entries = append(d.entries, diagnosticEntry{time: time.Now(), message: fmt.Sprintf(format, args...)})
	d.lock.Unlock()
}

// Len returns the number of buffered lines.
func (d *Diagnostics) Len() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return len(d.entries)
}

// Flush writes the buffer to dest when failed is set, then empties it
// either way.  It returns the number of lines written.
func (d *Diagnostics) Flush(dest io.Writer, failed bool) int {
	d.lock.Lock()
	entries := d.entries
	d.entries = nil
	d.lock.Unlock()

	if !failed || len(entries) == 0 {
		return 0
	}

	fmt.Fprintf(dest, "Captured %d diagnostic line(s) for the failed spec:\n", len(entries))

	for _, entry := range entries {
		fmt.Fprintf(dest, "  [%s] %s\n", entry.time.Format(timestampFormat), entry.message)
	}

	return len(entries)
}
