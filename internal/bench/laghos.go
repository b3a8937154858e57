package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strings"

	"hpcbench/internal/launcher"
)

// Laghos reports its conjugate-gradient kernel times on stdout:
//
//	CG (H1) total time: 5.2426s
//	CG (L2) total time: 0.0912s
var laghosDescriptor = Descriptor{
	Name:       Laghos,
	Executable: "laghos",
	Args:       "-p 1 -m data/cube01_hex.mesh -rs 2 -tf 0.6",
	Columns:    []string{"numpe", "tottime", "cgh1", "cgl2"},
	Extract:    cgTimesFromOutput,
}

// cgTimesFromOutput scrapes the CG timing lines shared by the Laghos and
// miniAMR run scripts.
func cgTimesFromOutput(out *launcher.Output) ([]string, error) {
	numpe, err := launcher.NumProcesses(out.Command)
	if err != nil {
		return nil, err
	}
	var cgh1, cgl2 string
	for line := range strings.SplitSeq(out.Stdout, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, "CG (H1) total time:") {
			cgh1 = valueAfterColon(line)
			continue
		}
		if strings.HasPrefix(line, "CG (L2) total time:") {
			cgl2 = valueAfterColon(line)
		}
	}
	return []string{itoa(numpe), elapsedSeconds(out), cgh1, cgl2}, nil
}
