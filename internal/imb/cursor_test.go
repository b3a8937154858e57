package imb

// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

import (
	"errors"
	"testing"
)

func TestLineCursor(t *testing.T) {
	cur := newLineCursor([]string{"one", "two", "three"})

	line, ok := cur.current()
	if !ok || line != "one" {
		t.Errorf("current() = %q, %v, want \"one\", true", line, ok)
	}
	// current does not advance
	line, _ = cur.current()
	if line != "one" {
		t.Errorf("current() moved the cursor, got %q", line)
	}
	line, _ = cur.advance()
	if line != "one" {
		t.Errorf("advance() = %q, want \"one\"", line)
	}
	line, _ = cur.current()
	if line != "two" {
		t.Errorf("current() after advance = %q, want \"two\"", line)
	}
	cur.eat()
	cur.eat()
	if _, ok := cur.current(); ok {
		t.Error("current() at end-of-input reported a line")
	}
	if _, ok := cur.advance(); ok {
		t.Error("advance() at end-of-input reported a line")
	}
	if err := cur.rewind(1); err != nil {
		t.Errorf("rewind(1) failed: %v", err)
	}
	line, _ = cur.current()
	if line != "three" {
		t.Errorf("current() after rewind = %q, want \"three\"", line)
	}
}

func TestLineCursorInvalidRewind(t *testing.T) {
	cur := newLineCursor([]string{"one", "two"})
	cur.eat()
	err := cur.rewind(2)
	if !errors.Is(err, ErrInvalidRewind) {
		t.Errorf("rewind past zero returned %v, want ErrInvalidRewind", err)
	}
	// the failed rewind must not move the cursor
	line, _ := cur.current()
	if line != "two" {
		t.Errorf("cursor moved by failed rewind, current() = %q", line)
	}
}

func TestLineCursorEmpty(t *testing.T) {
	cur := newLineCursor(nil)
	if _, ok := cur.current(); ok {
		t.Error("current() on empty input reported a line")
	}
	cur.eat() // must not panic
	if err := cur.rewind(1); !errors.Is(err, ErrInvalidRewind) {
		t.Error("rewind(1) on empty input did not fail")
	}
}
