package attr

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrUnexpectedEOF indicates the stream ended before the attribute
	// list terminator.
	ErrUnexpectedEOF = errors.New("attr: premature end of input")

	// ErrTooLong indicates a name or value exceeds twice the line limit.
	ErrTooLong = errors.New("attr: string length exceeds limit")

	// ErrMalformedNumber indicates a numeric value that is not a complete
	// base-10 unsigned 32-bit integer.
	ErrMalformedNumber = errors.New("attr: malformed numerical data")

	// ErrBadRequest indicates a malformed request list.
	ErrBadRequest = errors.New("attr: bad request list")
)

// ScanError describes a failure that voids a Scan call.
type ScanError struct {
	Path    string // Peer identifier
	Context string // What was being read, e.g. "input attribute value"
	Attr    string // Attribute involved, empty while reading a name
	Err     error  // ErrUnexpectedEOF, ErrTooLong, ErrMalformedNumber or a read error
}

func (e *ScanError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%v from %s while reading %s %s", e.Err, e.Path, e.Context, e.Attr)
	}
	return fmt.Sprintf("%v from %s while reading %s", e.Err, e.Path, e.Context)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
