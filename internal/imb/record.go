package imb

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"fmt"
	"sync"
)

// Record is one complete measurement block from IMB output: a single
// (benchmark name, process count[, thread count]) combination with one
// statistics row per message size tested.
type Record struct {
	Name       string     // benchmark identifier, e.g. "PingPong"
	Processes  int        // number of MPI processes
	Threads    *int       // nil when the output does not report a thread count
	WindowSize *int       // nil except for windowed/non-blocking modes
	Mode       string     // e.g. "NBC", empty when the output has no MODE block
	Metrics    []string   // ordered column labels, e.g. "#bytes", "t_avg[usec]"
	Stats      [][]string // one row per message size, aligned to Metrics
}

// Label tags a parsed run for downstream reporting. The generation index
// disambiguates repeated trials of the same (name, process count) pair.
type Label struct {
	Name       string
	Processes  int
	Generation int
}

// Run is the ordered collection of records parsed from one captured output.
// Records appear in discovery order. A Run is not mutated after Parse returns.
type Run struct {
	Label   Label
	Records []Record
}

// Labeler hands out run labels with a zero-based generation counter per
// (name, process count) pair. It is safe for concurrent use so that callers
// launching benchmarks in parallel cannot reuse generation numbers.
type Labeler struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewLabeler() *Labeler {
	return &Labeler{counts: make(map[string]int)}
}

// Label returns the next label for the given benchmark name and process count.
func (l *Labeler) Label(name string, processes int) Label {
	key := fmt.Sprintf("%s-%d", name, processes)
	l.mu.Lock()
	defer l.mu.Unlock()
	generation := l.counts[key]
	l.counts[key]++
	return Label{Name: name, Processes: processes, Generation: generation}
}
