// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("broken")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "broken")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, Log1(0, New("no value")))
	assert.Contains(t, buf.String(), "no value")
}

func TestWarn(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Warn(nil))
	err := fmt.Errorf("wrapped: %w", New("base"))
	assert.Equal(t, err, Warn(err, "node", "path"))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "node=path")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("x")) })
	assert.Equal(t, "v", Must1("v", nil))
	assert.Panics(t, func() { Must1("v", New("x")) })
}

func TestIs(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("context: %w", base)
	assert.True(t, Is(err, base))
	assert.True(t, Is(Join(New("other"), err), base))
}
