package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"log/slog"
	"regexp"
	"strings"

	"hpcbench/internal/launcher"
)

// AMG is a parallel algebraic multigrid solver for unstructured grids. Sample
// output:
//
//	Running with these driver parameters:
//	  solver ID    = 1
//	  (Nx, Ny, Nz) = (64, 64, 64)
//	  (Px, Py, Pz) = (2, 2, 2)
//	...
//	Figure of Merit (FOM_2): 1.634926e+06
var (
	amgSolverIDRegex = regexp.MustCompile(`\s*solver ID\s*=\s*(?P<solid>[0-9]+)`)
	amgGridRegex     = regexp.MustCompile(`\s*\(Nx, Ny, Nz\)\s*=\s*\((?P<nx>[0-9]+), (?P<ny>[0-9]+), (?P<nz>[0-9]+)\)`)
	amgDecompRegex   = regexp.MustCompile(`\s*\(Px, Py, Pz\)\s*=\s*\((?P<px>[0-9]+), (?P<py>[0-9]+), (?P<pz>[0-9]+)\)`)
)

var amgDescriptor = Descriptor{
	Name:       AMG,
	Executable: "test/amg",
	Columns:    []string{"solver_id", "numpe", "tottime", "nx,ny,nz", "px,py,pz", "fom"},
	Extract:    amgFromOutput,
}

func amgFromOutput(out *launcher.Output) ([]string, error) {
	numpe, err := launcher.NumProcesses(out.Command)
	if err != nil {
		return nil, err
	}
	var solverID, grid, decomp, fom string
	for line := range strings.SplitSeq(out.Stdout, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if match := amgSolverIDRegex.FindStringSubmatch(line); match != nil {
			solverID = match[1]
			continue
		}
		if match := amgGridRegex.FindStringSubmatch(line); match != nil {
			grid = strings.Join(match[1:4], ",")
			continue
		}
		if match := amgDecompRegex.FindStringSubmatch(line); match != nil {
			decomp = strings.Join(match[1:4], ",")
			continue
		}
		if strings.HasPrefix(line, "Figure of Merit") {
			fom = valueAfterColon(line)
		}
	}
	if fom == "" {
		slog.Warn("no figure of merit in AMG output", slog.String("cmd", out.Command))
	}
	return []string{solverID, itoa(numpe), elapsedSeconds(out), grid, decomp, fom}, nil
}
