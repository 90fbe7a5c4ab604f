package attr

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// readToken reads the next NUL-terminated token into buf and returns it.
// The NUL is consumed but not returned. The stream position advances
// irreversibly; on error it is left somewhere inside the token.
//
// what describes the token for diagnostics ("input attribute name" or
// "input attribute value"); name is the attribute it belongs to, if known.
func (s *Scanner) readToken(buf []byte, what, name string) ([]byte, error) {
	buf = buf[:0]
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrUnexpectedEOF
			}
			return buf, s.fail(what, name, err)
		}
		if b == 0 {
			s.traceToken(what, buf)
			return buf, nil
		}
		// A token of exactly maxToken bytes is fine; one more byte is not.
		if len(buf) >= s.maxToken {
			return buf, s.fail(what, name, ErrTooLong)
		}
		buf = append(buf, b)
	}
}

func (s *Scanner) traceToken(what string, tok []byte) {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	val := string(tok)
	if len(tok) == 0 {
		val = "(end)"
	}
	s.logger.Debug(what, "peer", s.path, "value", val)
}

func (s *Scanner) fail(what, name string, err error) error {
	return &ScanError{Path: s.path, Context: what, Attr: name, Err: err}
}
