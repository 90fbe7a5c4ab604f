package attr

import (
	"fmt"
	"strings"
)

// Flags select how a Scan call treats missing and unrequested attributes.
type Flags uint8

const (
	// ReportMissing logs a warning when the list ends before all requests
	// are satisfied. The return value is unchanged.
	ReportMissing Flags = 1 << iota

	// StopOnExtra logs a warning and stops at the first attribute that was
	// not requested, including repeated instances of a requested one.
	StopOnExtra

	// LeavePositioned stops after the last request without reading the
	// rest of the list, so another Scan can continue with it.
	LeavePositioned

	// None requests none of the above.
	None Flags = 0

	// Strict combines ReportMissing and StopOnExtra.
	Strict = ReportMissing | StopOnExtra

	allFlags = ReportMissing | StopOnExtra | LeavePositioned
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{ReportMissing, "missing"},
	{StopOnExtra, "extra"},
	{LeavePositioned, "more"},
}

// String renders the set as "missing|extra", or "none".
func (f Flags) String() string {
	if f == None {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if rest := f &^ allFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseFlags combines flag names into a set. Accepted names are
// "none", "missing", "extra", "more" and "strict", in any case.
func ParseFlags(names []string) (Flags, error) {
	var f Flags
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "none", "":
		case "strict":
			f |= Strict
		default:
			found := false
			for _, fn := range flagNames {
				if fn.name == name {
					f |= fn.flag
					found = true
					break
				}
			}
			if !found {
				return None, fmt.Errorf("attr: unknown flag %q", raw)
			}
		}
	}
	return f, nil
}
