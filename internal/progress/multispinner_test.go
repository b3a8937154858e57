package progress

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"testing"
)

func TestNewMultiSpinner(t *testing.T) {
	spinner := NewMultiSpinner()
	if spinner == nil {
		t.Fatal("failed to create a spinner")
	}
}

func TestMultiSpinner(t *testing.T) {
	spinner := NewMultiSpinner()
	if spinner == nil {
		t.Fatal("failed to create a spinner")
	}
	if spinner.AddSpinner("amg") != nil {
		t.Fatal("failed to add spinner")
	}
	if spinner.AddSpinner("snap") != nil {
		t.Fatal("failed to add spinner")
	}
	if spinner.AddSpinner("amg") == nil {
		t.Fatal("added spinner with same label")
	}
	spinner.Start()

	if spinner.Status("amg", "running, numpe=2") != nil {
		t.Fatal("failed to update spinner status")
	}
	if spinner.Complete("snap", "done") != nil {
		t.Fatal("failed to complete spinner")
	}
	if spinner.Status("xsbench", "oops") == nil {
		t.Fatal("updated status of non-existent spinner")
	}
	spinner.Finish()
}
