package util

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandUser("~"); got != home {
		t.Errorf("ExpandUser(~) = %q, want %q", got, home)
	}
	if got := ExpandUser("~/results"); got != filepath.Join(home, "results") {
		t.Errorf("ExpandUser(~/results) = %q", got)
	}
	if got := ExpandUser("/tmp/results"); got != "/tmp/results" {
		t.Errorf("ExpandUser left absolute path changed: %q", got)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	if exists, err := FileExists(path); err != nil || exists {
		t.Errorf("FileExists on missing file = %v, %v", exists, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if exists, err := FileExists(path); err != nil || !exists {
		t.Errorf("FileExists on file = %v, %v", exists, err)
	}
	if _, err := FileExists(dir); err == nil {
		t.Error("FileExists on directory did not return error")
	}
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	if exists, err := DirectoryExists(dir); err != nil || !exists {
		t.Errorf("DirectoryExists on dir = %v, %v", exists, err)
	}
	if exists, err := DirectoryExists(filepath.Join(dir, "missing")); err != nil || exists {
		t.Errorf("DirectoryExists on missing dir = %v, %v", exists, err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := CreateDirectoryIfNotExists(dir, 0755); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}
	if exists, _ := DirectoryExists(dir); !exists {
		t.Error("directory was not created")
	}
	if err := CreateDirectoryIfNotExists(dir, 0755); err != nil {
		t.Errorf("second call failed: %v", err)
	}
}

func TestGeoMean(t *testing.T) {
	if got := GeoMean([]float64{4, 9}); math.Abs(got-6) > 1e-9 {
		t.Errorf("GeoMean(4,9) = %f, want 6", got)
	}
	if got := GeoMean([]float64{5}); math.Abs(got-5) > 1e-9 {
		t.Errorf("GeoMean(5) = %f, want 5", got)
	}
}
