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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/enokjanuario/ReqRes/pkg/constants"
	"github.com/enokjanuario/ReqRes/pkg/lint"
	"github.com/enokjanuario/ReqRes/pkg/operations"
)

// newLogger returns a development logger, or a no-op one when quiet.
func newLogger(quiet bool) (logr.Logger, func(), error) {
	if quiet {
		return logr.Discard(), func() {}, nil
	}

	zapLog, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard(), nil, err
	}

	return zapr.NewLogger(zapLog), func() { _ = zapLog.Sync() }, nil
}

// printReport writes one coloured line per check, or only the summary when
// quiet.
func printReport(w io.Writer, report *lint.Report, quiet bool) {
	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	failed := 0

	for _, result := range report.Results {
		if result.Err != nil {
			failed++

			if !quiet {
				fmt.Fprintf(w, "%s %s: %v\n", fail("FAIL"), result.Name, result.Err)
			}

			continue
		}

		if !quiet {
			fmt.Fprintf(w, "%s %s\n", pass("PASS"), result.Name)
		}
	}

	status := pass("OK")
	if failed > 0 {
		status = fail("FAILED")
	}

	fmt.Fprintf(w, "%s %d checks, %d failed\n", status, len(report.Results), failed)
}

func main() {
	var (
		options lint.Options
		quiet   bool
		noColor bool
	)

	options.AddFlags(pflag.CommandLine)

	pflag.BoolVar(&quiet, "quiet", false, "Print only the summary line and suppress logs.")
	pflag.BoolVar(&noColor, "no-color", false, "Disable coloured output.")

	pflag.Parse()

	if noColor {
		color.NoColor = true
	}

	logger, sync, err := newLogger(quiet)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer sync()

	logger = logger.WithName("init")
	logger.Info("lint starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	report := lint.New(&options, operations.All(), logger.WithName("lint")).Run(context.Background())

	printReport(os.Stdout, report, quiet)

	if report.Failed() {
		sync()
		os.Exit(1)
	}
}
