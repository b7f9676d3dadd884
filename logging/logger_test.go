// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewJSON(&buf, slog.LevelDebug).WithRunID("r1").WithSample("NA1")
	l.LogExtraction(context.Background(), 5, 2, 3, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "sample extraction completed", rec["msg"])
	assert.Equal(t, "r1", rec["run_id"])
	assert.Equal(t, "NA1", rec["sample"])
	assert.EqualValues(t, 2, rec["nodes_removed"])
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewText(&buf, slog.LevelInfo)
	l.LogSkippedRecord(context.Background(), "chr1", 10, "symbolic allele")
	assert.Empty(t, buf.String(), "debug records are below info")

	l.LogOperation(context.Background(), "sort", 0, errors.New("cycle"))
	assert.Contains(t, buf.String(), "op=sort")
	assert.Contains(t, buf.String(), "error=cycle")
}

func TestNoop(t *testing.T) {
	l := logging.Noop()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
