package imb

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import "errors"

// ErrInvalidRewind indicates an attempt to rewind the cursor past the start of
// the input. It signals a scanner-sequencing bug, not a malformed capture.
var ErrInvalidRewind = errors.New("imb: cannot rewind past start of input")

// lineCursor provides positional access to the lines of one captured output.
// Lines are expected to be right-trimmed of trailing newline/whitespace.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(lines []string) *lineCursor {
	return &lineCursor{lines: lines}
}

// current returns the line at the cursor position without advancing. The
// second return value is false at or past end-of-input.
func (c *lineCursor) current() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// advance returns the current line and moves the cursor forward one position.
func (c *lineCursor) advance() (string, bool) {
	line, ok := c.current()
	if ok {
		c.pos++
	}
	return line, ok
}

// eat moves the cursor forward one position, discarding the current line.
func (c *lineCursor) eat() {
	if c.pos < len(c.lines) {
		c.pos++
	}
}

// rewind moves the cursor backward n positions.
func (c *lineCursor) rewind(n int) error {
	if c.pos-n < 0 {
		return ErrInvalidRewind
	}
	c.pos -= n
	return nil
}
