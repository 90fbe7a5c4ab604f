package attr

import (
	"fmt"
	"strconv"
)

// maxQuoted bounds how much of a bad token ends up in an error message.
const maxQuoted = 100

// ParseUint converts a complete token to an unsigned 32-bit integer.
//
// The whole token must be base-10 digits: no sign, no whitespace, no
// trailing bytes. Values that overflow 32 bits are malformed.
func ParseUint(tok []byte) (uint32, error) {
	n, err := strconv.ParseUint(string(tok), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, quoted(tok))
	}
	return uint32(n), nil
}

func quoted(tok []byte) []byte {
	if len(tok) > maxQuoted {
		return tok[:maxQuoted]
	}
	return tok
}
