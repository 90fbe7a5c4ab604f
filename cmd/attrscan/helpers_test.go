package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

// wire joins name, value pairs into one attribute list.
func wire(pairs ...string) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p)
		b.WriteByte(0)
	}
	b.WriteByte(0)
	return b.String()
}

func inputFile(t *testing.T, lists ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.attr")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lists, "")), 0644))
	return path
}
