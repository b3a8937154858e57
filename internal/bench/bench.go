// Package bench defines the per-benchmark descriptors: where a mini-app
// lives, how it is launched, and how its captured output is scraped into one
// row of report columns. The IMB suite is the exception; its multi-record
// output is handled by the imb package.
package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"strconv"
	"strings"

	"hpcbench/internal/launcher"
)

// Descriptor describes one mini-app benchmark.
type Descriptor struct {
	Name       string // benchmark identifier, also the CLI flag name
	Executable string // path of the binary relative to the bin directory
	Args       string // default application arguments
	OutputFile string // set when results land in a file instead of stdout
	Columns    []string
	// Extract scrapes one captured run into a row of values aligned to
	// Columns. For benchmarks with an OutputFile, out.Stdout holds that
	// file's contents.
	Extract func(out *launcher.Output) ([]string, error)
}

const (
	AMG     = "amg"
	Branson = "branson"
	Ember   = "ember"
	IMB     = "imb"
	Laghos  = "laghos"
	MiniAMR = "miniamr"
	PENNANT = "pennant"
	SNAP    = "snap"
	XSBench = "xsbench"
)

var descriptors = []Descriptor{
	amgDescriptor,
	bransonDescriptor,
	emberDescriptor,
	laghosDescriptor,
	miniAMRDescriptor,
	pennantDescriptor,
	snapDescriptor,
	xsbenchDescriptor,
}

// Available returns the names of all launchable benchmarks, the descriptor
// set plus the IMB suite.
func Available() []string {
	names := []string{AMG, Branson, Ember, IMB, Laghos, MiniAMR, PENNANT, SNAP, XSBench}
	return names
}

// Lookup returns the descriptor for the named benchmark.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// elapsedSeconds formats a run's total execution time the way the reports
// record it.
func elapsedSeconds(out *launcher.Output) string {
	return fmt.Sprintf("%.3f", out.Elapsed.Seconds())
}

// valueAfterColon returns the text after the first ':' in a line, trimmed.
func valueAfterColon(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
