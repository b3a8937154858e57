package bench

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// miniAMR exercises adaptive mesh refinement communication. Its run script
// historically scrapes the same CG timing keys as Laghos.
var miniAMRDescriptor = Descriptor{
	Name:       MiniAMR,
	Executable: "ref/ma.x",
	Args:       "--num_refine 4 --max_blocks 4000 --npx 2 --npy 2 --npz 2",
	Columns:    []string{"numpe", "tottime", "cgh1", "cgl2"},
	Extract:    cgTimesFromOutput,
}
