package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strings"

	"hpcbench/internal/launcher"
)

// XSBench models the macroscopic cross section lookup kernel of Monte Carlo
// neutronics. Relevant stdout lines:
//
//	Threads:                      32
//	Total Lookups/s:              12,345,678
//	Avg Lookups/s per MPI rank:   6,172,839
var xsbenchDescriptor = Descriptor{
	Name:       XSBench,
	Executable: "XSBench",
	Args:       "-t 1 -s large -l 34",
	Columns:    []string{"NUMPE", "NThread", "Average Lookups/s", "Total Lookups/s"},
	Extract:    xsbenchFromOutput,
}

func xsbenchFromOutput(out *launcher.Output) ([]string, error) {
	numpe, err := launcher.NumProcesses(out.Command)
	if err != nil {
		return nil, err
	}
	var threads, total, avg string
	for line := range strings.SplitSeq(out.Stdout, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "Threads:") {
			threads = xsbenchCount(line)
			continue
		}
		if strings.HasPrefix(line, "Total Lookups/s:") {
			total = xsbenchCount(line)
			continue
		}
		if strings.HasPrefix(line, "Avg Lookups/s per MPI rank:") {
			avg = xsbenchCount(line)
		}
	}
	return []string{itoa(numpe), threads, avg, total}, nil
}

// xsbenchCount strips the thousands separators XSBench prints.
func xsbenchCount(line string) string {
	return strings.ReplaceAll(valueAfterColon(line), ",", "")
}
