package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"regexp"
	"strings"

	"hpcbench/internal/launcher"
)

// Ember communication-pattern mini-apps print a single result row under a
// commented header:
//
//	# Time KBytesXchng/Rank-Max MB/S/Rank
//	  12.334      524288.000     42504.367
var emberSpacesRegex = regexp.MustCompile(`[ ]+`)

var emberDescriptor = Descriptor{
	Name:       Ember,
	Executable: "mpi/halo3d/halo3d",
	Columns:    []string{"Time", "KBytesXchng/Rank-Max", "MB/S/Rank", "Command"},
	Extract:    emberFromOutput,
}

func emberFromOutput(out *launcher.Output) ([]string, error) {
	lines := strings.Split(out.Stdout, "\n")
	for pos, line := range lines {
		normalized := emberSpacesRegex.ReplaceAllString(strings.TrimSpace(line), " ")
		if normalized != "# Time KBytesXchng/Rank-Max MB/S/Rank" {
			continue
		}
		if pos+1 >= len(lines) {
			break
		}
		fields := strings.Fields(lines[pos+1])
		if len(fields) < 3 {
			break
		}
		return []string{fields[0], fields[1], fields[2], out.Command}, nil
	}
	slog.Warn("no result row in Ember output", slog.String("cmd", out.Command))
	return []string{"", "", "", out.Command}, nil
}
