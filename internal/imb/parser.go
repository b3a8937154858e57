// Package imb parses the textual stdout of the Intel MPI Benchmarks suite
// into structured records. The output mixes mandatory and optional sections
// whose presence varies by benchmark mode (blocking vs. non-blocking,
// threaded vs. not), so each section has its own scanner that either consumes
// its lines or restores the cursor and reports the section absent.
package imb

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedHeader indicates that the line following a matched
	// benchmark name did not have a recognized header shape.
	ErrMalformedHeader = errors.New("imb: malformed benchmark header")
	// ErrMissingMetrics indicates end-of-input where a metrics header line
	// was required.
	ErrMissingMetrics = errors.New("imb: expected metrics line")
	// ErrNoStatRows indicates a metrics header with no statistics rows
	// following it.
	ErrNoStatRows = errors.New("imb: expected run statistics, but found none")
)

var (
	benchmarkNameRegex = regexp.MustCompile(`# Benchmarking (?P<bmname>[A-Za-z_]+)`)
	processCountRegex  = regexp.MustCompile(`# #processes = (?P<numpe>[0-9]+)( \(threads: (?P<numt>[0-9]+)\))?`)
	windowSizeRegex    = regexp.MustCompile(`# window_size = (?P<winsize>[0-9]+)`)
	modeRegex          = regexp.MustCompile(`#    MODE: (?P<mode>[A-Z-]+)`)
	barrierWaitRegex   = regexp.MustCompile(`^# \(\s*[0-9]+ additional process(?:es)? waiting in MPI_Barrier\)`)
)

// noSuccessfulExecutions marks a (benchmark, process count) combination that
// produced no data. It is an expected outcome, not a parse error.
const noSuccessfulExecutions = "# NO SUCCESSFUL EXECUTIONS"

type parser struct {
	cur *lineCursor
}

// Parse scans the captured stdout lines of one IMB invocation and returns the
// run of records discovered, tagged with the caller-supplied label. Lines
// must already be right-trimmed. Any fatal condition aborts the whole parse;
// no partial run is returned.
func Parse(label Label, lines []string) (*Run, error) {
	p := &parser{cur: newLineCursor(lines)}
	run := &Run{Label: label}
	for {
		if _, ok := p.cur.current(); !ok {
			break
		}
		name, ok := p.scanName()
		if !ok {
			continue
		}
		processes, threads, ok, err := p.scanProcessCount()
		if err != nil {
			return nil, err
		}
		if !ok {
			// No data for this combination. Seek the next name.
			continue
		}
		windowSize, err := p.scanWindowSize()
		if err != nil {
			return nil, err
		}
		mode, err := p.scanMode()
		if err != nil {
			return nil, err
		}
		metrics, err := p.scanMetrics()
		if err != nil {
			return nil, err
		}
		stats, err := p.scanStats()
		if err != nil {
			return nil, err
		}
		run.Records = append(run.Records, Record{
			Name:       name,
			Processes:  processes,
			Threads:    threads,
			WindowSize: windowSize,
			Mode:       mode,
			Metrics:    metrics,
			Stats:      stats,
		})
	}
	return run, nil
}

// ParseOutput right-trims the captured stdout of one IMB invocation and
// parses it.
func ParseOutput(label Label, output string) (*Run, error) {
	var lines []string
	for line := range strings.SplitSeq(output, "\n") {
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	return Parse(label, lines)
}

// scanName consumes one line and reports whether it names a benchmark.
func (p *parser) scanName() (string, bool) {
	line, ok := p.cur.advance()
	if !ok {
		return "", false
	}
	match := benchmarkNameRegex.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// scanProcessCount consumes the process/thread count line that contractually
// follows a benchmark name. A "NO SUCCESSFUL EXECUTIONS" line is a valid
// alternative; the scanner consumes it plus the separator after it and
// reports no data (ok=false) without error.
func (p *parser) scanProcessCount() (processes int, threads *int, ok bool, err error) {
	line, _ := p.cur.advance()
	if strings.HasPrefix(line, noSuccessfulExecutions) {
		p.eatSeparator()
		return 0, nil, false, nil
	}
	match := processCountRegex.FindStringSubmatch(line)
	if match == nil {
		return 0, nil, false, fmt.Errorf("%w: expected '# #processes', got %q", ErrMalformedHeader, line)
	}
	processes, _ = strconv.Atoi(match[1])
	if match[3] != "" {
		numt, _ := strconv.Atoi(match[3])
		threads = &numt
	}
	return processes, threads, true, nil
}

// scanWindowSize consumes the optional window-size section. A separator line
// or a transient "processes waiting in MPI_Barrier" notice means the section
// is absent; those lines carry no information for later scanners and are
// consumed. Any other non-matching line is left for the next scanner.
func (p *parser) scanWindowSize() (*int, error) {
	line, ok := p.cur.current()
	if !ok {
		return nil, nil
	}
	if strings.HasPrefix(line, "#-") {
		p.cur.eat()
		return nil, nil
	}
	if barrierWaitRegex.MatchString(line) {
		p.cur.eat() // the notice
		p.eatSeparator()
		return nil, nil
	}
	match := windowSizeRegex.FindStringSubmatch(line)
	if match == nil {
		return nil, nil
	}
	p.cur.eat()
	p.eatSeparator()
	winsize, _ := strconv.Atoi(match[1])
	return &winsize, nil
}

// scanMode consumes the optional MODE block: a lone "#" line followed by
// "#    MODE: <TOKEN>". On mismatch the cursor is rewound to its entry
// position and the section reported absent.
func (p *parser) scanMode() (string, error) {
	line, ok := p.cur.advance()
	if !ok {
		return "", nil
	}
	if line != "#" {
		if err := p.cur.rewind(1); err != nil {
			return "", err
		}
		return "", nil
	}
	line, ok = p.cur.advance()
	if !ok {
		if err := p.cur.rewind(1); err != nil {
			return "", err
		}
		return "", nil
	}
	match := modeRegex.FindStringSubmatch(line)
	if match == nil {
		if err := p.cur.rewind(2); err != nil {
			return "", err
		}
		return "", nil
	}
	p.eatSeparator()
	return match[1], nil
}

// eatSeparator consumes the current line only if it is a separator.
func (p *parser) eatSeparator() {
	if line, ok := p.cur.current(); ok && strings.HasPrefix(line, "#-") {
		p.cur.eat()
	}
}

// scanMetrics consumes exactly one line and splits it into the ordered
// metric-name sequence.
func (p *parser) scanMetrics() ([]string, error) {
	line, ok := p.cur.advance()
	if !ok {
		return nil, ErrMissingMetrics
	}
	return strings.Fields(line), nil
}

// scanStats consumes consecutive non-blank lines as statistics rows until a
// blank line or end-of-input.
func (p *parser) scanStats() ([][]string, error) {
	var rows [][]string
	for {
		line, ok := p.cur.current()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		p.cur.eat()
		rows = append(rows, strings.Fields(line))
	}
	if len(rows) == 0 {
		return nil, ErrNoStatRows
	}
	return rows, nil
}
