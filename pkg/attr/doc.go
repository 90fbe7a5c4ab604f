// Package attr recovers attribute lists sent between cooperating processes.
//
// An attribute list is a sequence of (name, value) pairs followed by an
// empty name. Names and values are NUL-terminated byte strings:
//
//	attr-list   :== simple-attr* NUL
//	simple-attr :== attr-name NUL attr-value NUL
//
// Neither names nor values may contain NUL. No other escaping exists.
//
// # Basic Usage
//
// The caller declares the attributes it wants, in the order the sender
// writes them:
//
//	var status uint32
//	var reason string
//	sc := attr.NewScanner(bufio.NewReader(conn), attr.Path("private/defer"))
//	n, err := sc.Scan(attr.ReportMissing, attr.MustRequests(
//		attr.Num("status", &status),
//		attr.Str("reason", &reason),
//	))
//
// Scan returns the number of attributes recovered. A short count is not an
// error by itself; the caller decides whether it can live without the
// missing attributes.
//
// Attributes the caller did not ask for are skipped unless StopOnExtra is
// set. Requested attributes must still arrive in declaration order: an
// attribute is never matched against a later request.
//
// # Collecting Everything
//
// Map collects every remaining attribute into a map. It must be the last
// request in the list. Only the first instance of each name is stored.
//
//	table := map[string]string{}
//	n, err := sc.ScanMap(attr.None, table)
//
// Map accepts arbitrary names from the peer. Query the resulting table only
// with known names.
//
// # Multiple Calls Per List
//
// With LeavePositioned, Scan stops right after the last request and leaves
// the rest of the list, including its terminator, in the stream. A later
// Scan on the same Scanner continues with the same list. Without it, Scan
// reads and discards up to and including the terminator.
//
// # Errors
//
// Scan returns an error only when the input is unusable: the stream ended
// before the list terminator, a token exceeded twice the line limit, a
// numeric value did not parse, or the reader failed. Such errors are
// *ScanError values that unwrap to ErrUnexpectedEOF, ErrTooLong,
// ErrMalformedNumber or the reader's error. Results are void after an error.
//
// Missing, spurious and duplicate attributes are logged as warnings through
// the Scanner's *slog.Logger and end the call early with a nil error.
//
// Malformed request lists are programming errors. NewRequests reports them
// as ErrBadRequest; MustRequests and Scan panic.
package attr
