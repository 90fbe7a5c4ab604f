package attr

import (
	"io"
	"log/slog"
)

// Scanner reads attribute lists from an io.ByteReader.
//
// io.ByteReader is implemented by *bufio.Reader and *bytes.Reader.
// For pipes and sockets, wrap the io.Reader in a bufio.Reader:
//
//	sc := attr.NewScanner(bufio.NewReader(conn))
//
// A Scanner never reads past the token it needs. It is not safe for
// concurrent use; one Scan call owns the stream for its duration.
type Scanner struct {
	r        io.ByteReader
	path     string
	maxToken int
	logger   *slog.Logger

	name  []byte // scratch buffer for attribute names
	value []byte // scratch buffer for values that are converted or skipped

	terminated bool
}

// NewScanner creates a new attribute scanner reading from r.
//
// Example:
//
//	sc := attr.NewScanner(bufio.NewReader(conn), attr.Path("private/bounce"), attr.LineLimit(4096))
func NewScanner(r io.ByteReader, opts ...Option) *Scanner {
	cfg := &config{
		path:      defaultPath,
		lineLimit: DefaultLineLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.lineLimit <= 0 {
		cfg.lineLimit = DefaultLineLimit
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return &Scanner{
		r:        r,
		path:     cfg.path,
		maxToken: 2 * cfg.lineLimit,
		logger:   cfg.logger,
	}
}

// Path returns the peer identifier used in diagnostics.
func (s *Scanner) Path() string {
	return s.path
}

// MaxTokenLength returns the longest name or value the Scanner accepts.
func (s *Scanner) MaxTokenLength() int {
	return s.maxToken
}
