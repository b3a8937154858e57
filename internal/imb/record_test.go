package imb

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelerGenerations(t *testing.T) {
	labeler := NewLabeler()

	// generations increment per (name, processes) pair
	assert.Equal(t, Label{Name: "IMB-MPI1", Processes: 2, Generation: 0}, labeler.Label("IMB-MPI1", 2))
	assert.Equal(t, Label{Name: "IMB-MPI1", Processes: 2, Generation: 1}, labeler.Label("IMB-MPI1", 2))
	assert.Equal(t, Label{Name: "IMB-MPI1", Processes: 2, Generation: 2}, labeler.Label("IMB-MPI1", 2))

	// distinct pairs have independent counters
	assert.Equal(t, 0, labeler.Label("IMB-MPI1", 4).Generation)
	assert.Equal(t, 0, labeler.Label("IMB-P2P", 2).Generation)
	assert.Equal(t, 3, labeler.Label("IMB-MPI1", 2).Generation)
}

func TestLabelerConcurrent(t *testing.T) {
	labeler := NewLabeler()
	const n = 100
	generations := make(chan int, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			generations <- labeler.Label("IMB-MT", 8).Generation
		}()
	}
	wg.Wait()
	close(generations)
	seen := make(map[int]bool)
	for gen := range generations {
		assert.False(t, seen[gen], "generation %d assigned twice", gen)
		seen[gen] = true
	}
	assert.Len(t, seen, n)
}
