package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"hpcbench/internal/launcher"
)

// PENNANT is an unstructured-mesh staggered-grid hydrodynamics mini-app. Only
// the launch command and total execution time are recorded.
var pennantDescriptor = Descriptor{
	Name:       PENNANT,
	Executable: "pennant",
	Args:       "test/sedovbig/sedovbig.pnt",
	Columns:    []string{"numpe", "tottime", "Command"},
	Extract:    pennantFromOutput,
}

func pennantFromOutput(out *launcher.Output) ([]string, error) {
	numpe, err := launcher.NumProcesses(out.Command)
	if err != nil {
		return nil, err
	}
	return []string{itoa(numpe), elapsedSeconds(out), out.Command}, nil
}
