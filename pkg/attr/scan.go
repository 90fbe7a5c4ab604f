package attr

import (
	"bytes"
	"fmt"
)

const (
	ctxName  = "input attribute name"
	ctxValue = "input attribute value"
)

// Scan recovers the requested attributes from the next attribute list.
//
// Requests are satisfied in order. Unrequested attributes in between are
// skipped, or end the call when flags include StopOnExtra. Hitting the list
// terminator before all requests are satisfied ends the call early, with a
// warning when flags include ReportMissing.
//
// The result is the number of attributes recovered; a Map request counts
// the entries it stored. A non-nil error means the input was unusable and
// nothing written to the destinations can be trusted.
//
// Scan panics if flags contains unknown bits.
func (s *Scanner) Scan(flags Flags, reqs Requests) (int, error) {
	if flags&^allFlags != 0 {
		panic(fmt.Sprintf("attr: bad flags: 0x%x", uint8(flags)))
	}

	s.terminated = false
	conversions := 0
	for i := 0; ; i++ {
		want := reqs.at(i)
		if want.kind == KindEnd && flags&LeavePositioned != 0 {
			return conversions, nil
		}
		if want.kind == KindMap {
			n, err := s.collect(flags, want.table)
			return conversions + n, err
		}

		// Locate the next attribute of interest. Past the last request
		// this drains the list through its terminator.
		for {
			s.logger.Debug("wanted attribute", "peer", s.path, "attribute", want.Name())

			var err error
			if s.name, err = s.readToken(s.name, ctxName, ""); err != nil {
				return conversions, err
			}
			if len(s.name) == 0 {
				s.terminated = true
				if want.kind == KindEnd {
					return conversions, nil
				}
				if flags&ReportMissing != 0 {
					s.logger.Warn("missing attribute", "attribute", want.name, "peer", s.path)
				}
				return conversions, nil
			}
			if want.kind != KindEnd && string(s.name) == want.name {
				break
			}
			if flags&StopOnExtra != 0 {
				s.logger.Warn("spurious attribute", "attribute", string(s.name), "peer", s.path)
				return conversions, nil
			}
			if s.value, err = s.readToken(s.value, ctxValue, string(s.name)); err != nil {
				return conversions, err
			}
		}

		if err := s.convert(want); err != nil {
			return conversions, err
		}
		conversions++
	}
}

// Terminated reports whether the most recent Scan or ScanMap call consumed
// the list terminator. When it did not, the stream is still inside the
// list: after LeavePositioned, or after StopOnExtra gave up at a spurious
// attribute.
func (s *Scanner) Terminated() bool {
	return s.terminated
}

// ScanMap collects every attribute of the next list into table. It is
// shorthand for Scan(flags, MustRequests(Map(table))).
func (s *Scanner) ScanMap(flags Flags, table map[string]string) (int, error) {
	return s.Scan(flags, MustRequests(Map(table)))
}

// convert reads the value of the attribute named by want into its
// destination.
func (s *Scanner) convert(want Request) error {
	var err error
	switch want.kind {
	case KindNum:
		if s.value, err = s.readToken(s.value, ctxValue, want.name); err != nil {
			return err
		}
		n, err := ParseUint(s.value)
		if err != nil {
			return s.fail(ctxValue, want.name, err)
		}
		*want.num = n
	case KindStr:
		if s.value, err = s.readToken(s.value, ctxValue, want.name); err != nil {
			return err
		}
		*want.str = string(s.value)
	case KindBytes:
		if s.value, err = s.readToken(s.value, ctxValue, want.name); err != nil {
			return err
		}
		*want.bytes = bytes.Clone(s.value)
		if *want.bytes == nil {
			*want.bytes = []byte{}
		}
	default:
		panic(fmt.Sprintf("attr: unknown type code: %d", uint8(want.kind)))
	}
	return nil
}

// collect stores every remaining attribute into table until the list
// terminator. The first instance of a name wins; with StopOnExtra a repeat
// ends collection instead.
func (s *Scanner) collect(flags Flags, table map[string]string) (int, error) {
	stored := 0
	for {
		s.logger.Debug("wanted attribute", "peer", s.path, "attribute", anyName)

		var err error
		if s.name, err = s.readToken(s.name, ctxName, ""); err != nil {
			return stored, err
		}
		if len(s.name) == 0 {
			s.terminated = true
			return stored, nil
		}
		name := string(s.name)
		if s.value, err = s.readToken(s.value, ctxValue, name); err != nil {
			return stored, err
		}
		if _, dup := table[name]; dup {
			if flags&StopOnExtra != 0 {
				s.logger.Warn("duplicate attribute", "attribute", name, "peer", s.path)
				return stored, nil
			}
			continue
		}
		table[name] = string(s.value)
		stored++
	}
}
