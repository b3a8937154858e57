package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"regexp"
	"strings"

	"hpcbench/internal/launcher"
)

// SNAP is a discrete-ordinates transport proxy. Its results land in an output
// file, not stdout; the harness reads that file before extraction. The timing
// summary looks like:
//
//	          keyword Timing Summary
//	********************************
//	  Parallel Setup        1.234E-02
//	  Input                 5.678E-03
var snapKeywords = []string{
	"Parallel Setup",
	"Input",
	"Setup",
	"Solve",
	"Parameter Setup",
	"Outer Source",
	"Inner Iterations",
	"Inner Source",
	"Transport Sweeps",
	"Inner Misc Ops",
	"Solution Misc Ops",
	"Output",
	"Total Execution time",
	"Grind Time (nanoseconds)",
}

var snapColumnsRegex = regexp.MustCompile(`[ ]{2,}`)

var snapDescriptor = Descriptor{
	Name:       SNAP,
	Executable: "snap",
	Args:       "./input ./output",
	OutputFile: "output",
	Columns:    append(append([]string{}, snapKeywords...), "Command"),
	Extract:    snapFromOutput,
}

func snapFromOutput(out *launcher.Output) ([]string, error) {
	lines := strings.Split(out.Stdout, "\n")

	// locate the timing table
	table := []string{}
	for pos, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "keyword Timing Summary") {
			table = lines[pos+1:]
			break
		}
	}
	if len(table) == 0 {
		slog.Warn("no timing summary in SNAP output", slog.String("cmd", out.Command))
	}

	values := make(map[string]string)
	for _, row := range table {
		// columns are separated by runs of two or more spaces
		trimmed := snapColumnsRegex.ReplaceAllString(strings.TrimSpace(row), ":")
		// skip empty or decorative rows
		if trimmed == "" || strings.Contains(trimmed, "*") {
			continue
		}
		label, value, found := strings.Cut(trimmed, ":")
		if !found {
			continue
		}
		values[label] = value
	}

	row := make([]string, 0, len(snapKeywords)+1)
	for _, keyword := range snapKeywords {
		row = append(row, values[keyword])
	}
	return append(row, out.Command), nil
}
