package launcher

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCmds(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		stop       int
		template   string
		expression string
		want       []string
		wantErr    bool
	}{
		{
			name:       "default sweep",
			start:      0,
			stop:       2,
			template:   "srun -n %n",
			expression: "nidx + 1",
			want:       []string{"srun -n 1", "srun -n 2", "srun -n 3"},
		},
		{
			name:       "powers of two",
			start:      0,
			stop:       3,
			template:   "mpirun -n %n",
			expression: "2 ** nidx",
			want:       []string{"mpirun -n 1", "mpirun -n 2", "mpirun -n 4", "mpirun -n 8"},
		},
		{
			name:       "single step",
			start:      4,
			stop:       4,
			template:   "srun -n %n --exclusive",
			expression: "nidx",
			want:       []string{"srun -n 4 --exclusive"},
		},
		{
			name:       "start after stop",
			start:      2,
			stop:       0,
			template:   "srun -n %n",
			expression: "nidx",
			wantErr:    true,
		},
		{
			name:       "bad expression",
			start:      0,
			stop:       1,
			template:   "srun -n %n",
			expression: "nidx +",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := RunCmds(tt.start, tt.stop, tt.template, tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmds)
		})
	}
}

func TestNumProcesses(t *testing.T) {
	numpe, err := NumProcesses("srun -n 2 /IMB/IMB-MPI1")
	require.NoError(t, err)
	assert.Equal(t, 2, numpe)

	numpe, err = NumProcesses("mpirun -n16 ./amg")
	require.NoError(t, err)
	assert.Equal(t, 16, numpe)

	_, err = NumProcesses("./amg -P 2 2 2")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	out, err := Run("echo hello world", 10)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out.Stdout)
	assert.Equal(t, 0, out.ExitCode)
	assert.Greater(t, out.Elapsed.Nanoseconds(), int64(0))
}

func TestRunFailure(t *testing.T) {
	out, err := Run("false", 10)
	assert.Error(t, err)
	assert.NotEqual(t, 0, out.ExitCode)

	_, err = Run("", 0)
	assert.Error(t, err)
}

func TestRunCmdsTemplateWithoutPlaceholder(t *testing.T) {
	cmds, err := RunCmds(0, 1, "srun", "nidx + 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"srun", "srun"}, cmds)
	for _, cmd := range cmds {
		assert.False(t, strings.Contains(cmd, "%n"))
	}
}
