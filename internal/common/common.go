// Package common defines data structures shared by the application commands.
package common

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var AppName = filepath.Base(os.Args[0])

// AppContext represents the application context that can be accessed from all commands.
type AppContext struct {
	Timestamp   string // Timestamp is the app startup time, used to name output artifacts.
	OutputDir   string // OutputDir is the directory where the application will write output files.
	LogFilePath string // LogFilePath is the path to the log file, empty when logging to stdout.
	Version     string // Version is the version of the application.
	Debug       bool   // Debug indicates whether debug logging is enabled.
}

type Flag struct {
	Name string
	Help string
}
type FlagGroup struct {
	GroupName string
	Flags     []Flag
}

// Category associates a benchmark selection flag with the benchmark it
// enables.
type Category struct {
	FlagName     string
	Benchmark    string
	FlagVar      *bool
	DefaultValue bool
	Help         string
}

// FlagValidationError prints a flag validation error message to stderr and
// returns the error with command usage suppressed.
func FlagValidationError(cmd *cobra.Command, msg string) error {
	err := errors.New(msg)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintf(os.Stderr, "See '%s --help' for usage details.\n", cmd.CommandPath())
	cmd.SilenceUsage = true
	return err
}
