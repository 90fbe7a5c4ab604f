package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/epithet-ssh/attrscan/pkg/attr"
	"github.com/epithet-ssh/attrscan/pkg/config"
)

// openInput opens path for reading; "" and "-" mean stdin.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	return f, path, nil
}

// peerName prefers the configured peer name over the input's own name.
func peerName(s *config.Settings, fallback string) string {
	if s.Path != "" {
		return s.Path
	}
	return fallback
}

// newScanner binds a Scanner to br using the settings.
func newScanner(br *bufio.Reader, s *config.Settings, logger *slog.Logger, peer string) *attr.Scanner {
	opts := append(s.ScannerOptions(), attr.Path(peer), attr.Logger(logger))
	return attr.NewScanner(br, opts...)
}

// eachList calls fn once per attribute list until the input ends on a
// list boundary or fn returns false. Input ending inside a list is
// reported by fn.
func eachList(br *bufio.Reader, fn func() (bool, error)) error {
	for {
		if _, err := br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		more, err := fn()
		if err != nil || !more {
			return err
		}
	}
}

// positioned reports whether the last scan finished its list, so the next
// byte starts a new one. A scan that gave up inside a list leaves nothing
// usable behind it.
func positioned(logger *slog.Logger, sc *attr.Scanner) bool {
	if sc.Terminated() {
		return true
	}
	logger.Warn("scan stopped inside an attribute list, ignoring the remaining input", "peer", sc.Path())
	return false
}
