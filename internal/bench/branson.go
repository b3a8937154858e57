package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"strings"

	"hpcbench/internal/launcher"
)

// Branson is a Monte Carlo transport mini-app. Its end-of-run summary is a
// decorated totals table on stdout:
//
//	********************************************************************
//	Total cells requested: 4096
//	Total cells sent: 2048
//	...
var bransonKeywords = []string{
	"Total cells requested",
	"Total cells sent",
	"Total cell messages",
	"Total transport",
	"Total setup",
}

var bransonDescriptor = Descriptor{
	Name:       Branson,
	Executable: "BRANSON",
	Columns:    append(append([]string{}, bransonKeywords...), "Command"),
	Extract:    bransonFromOutput,
}

func bransonFromOutput(out *launcher.Output) ([]string, error) {
	lines := strings.Split(out.Stdout, "\n")

	// find the end-of-run totals table
	table := []string{}
	for pos, line := range lines {
		if strings.HasPrefix(line, "Total cells requested") {
			table = lines[pos:]
			break
		}
	}
	if len(table) == 0 {
		slog.Warn("no end-of-run table in Branson output", slog.String("cmd", out.Command))
	}

	values := make(map[string]string)
	for _, row := range table {
		// skip decorative lines
		if strings.Contains(row, "*") {
			continue
		}
		label, value, found := strings.Cut(row, ": ")
		if !found {
			continue
		}
		values[label] = strings.TrimRight(value, " \r")
	}

	row := make([]string, 0, len(bransonKeywords)+1)
	for _, keyword := range bransonKeywords {
		row = append(row, values[keyword])
	}
	return append(row, out.Command), nil
}
