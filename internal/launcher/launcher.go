// Package launcher expands benchmark launch command matrices and executes
// them locally, capturing output and timing for the scrapers.
package launcher

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/casbin/govaluate"
	"github.com/pkg/errors"
)

// Output holds everything captured from one benchmark execution.
type Output struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	Elapsed  time.Duration
}

var numpeRegex = regexp.MustCompile(`\s+-n\s?(?P<numpe>[0-9]+)`)

// RunCmds expands a launch template into one command line per step of the
// process-count sweep. For each index in [start, stop], the node-count
// expression (e.g. "nidx + 1") is evaluated with nidx bound to the index and
// the result substituted for the %n placeholder in the template
// (e.g. "srun -n %n").
func RunCmds(start, stop int, template, expression string) ([]string, error) {
	if start > stop {
		return nil, fmt.Errorf("invalid run command range: start %d > stop %d", start, stop)
	}
	eval, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse node-count expression %q", expression)
	}
	var cmds []string
	for nidx := start; nidx <= stop; nidx++ {
		result, err := eval.Evaluate(map[string]interface{}{"nidx": float64(nidx)})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to evaluate node-count expression %q", expression)
		}
		numpe, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("node-count expression %q is not numeric", expression)
		}
		cmds = append(cmds, strings.ReplaceAll(template, "%n", strconv.Itoa(int(numpe))))
	}
	return cmds, nil
}

// NumProcesses extracts the process count from a launch command line, e.g. 2
// from "srun -n 2 /IMB/IMB-MPI1".
func NumProcesses(cmdline string) (int, error) {
	match := numpeRegex.FindStringSubmatch(cmdline)
	if match == nil {
		return 0, fmt.Errorf("cannot determine process count from %q", cmdline)
	}
	return strconv.Atoi(match[1])
}

// Run executes a command line locally and captures its output, exit code, and
// elapsed wall time. A timeout of 0 means no timeout. A non-zero exit is
// reported through the returned error; the captured output is returned either
// way so callers can log what the benchmark printed before failing.
func Run(cmdline string, timeout int) (Output, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return Output{}, errors.New("empty command line")
	}
	slog.Debug("running benchmark command", slog.String("cmd", cmdline), slog.Int("timeout", timeout))
	cmd := exec.Command(fields[0], fields[1:]...) // #nosec G204
	if timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
		defer cancel()
		cmd = exec.CommandContext(ctx, fields[0], fields[1:]...) // #nosec G204
	}
	var outbuf, errbuf strings.Builder
	cmd.Stdout = &outbuf
	cmd.Stderr = &errbuf
	start := time.Now()
	err := cmd.Run()
	output := Output{
		Command: cmdline,
		Stdout:  outbuf.String(),
		Stderr:  errbuf.String(),
		Elapsed: time.Since(start),
	}
	if err != nil {
		exitError := &exec.ExitError{}
		if goerrors.As(err, &exitError) {
			output.ExitCode = exitError.ExitCode()
		}
		return output, errors.Wrapf(err, "failed to run %q", cmdline)
	}
	return output, nil
}
