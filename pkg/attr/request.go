package attr

import "fmt"

// Diagnostic names for requests that do not match a single attribute.
const (
	endName = "(list terminator)"
	anyName = "(any attribute name or list terminator)"
)

// Kind identifies the variant of a Request.
type Kind uint8

const (
	KindEnd Kind = iota
	KindNum
	KindStr
	KindBytes
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	case KindBytes:
		return "bytes"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Request describes one attribute the caller expects and where its value
// goes. Build requests with Num, Str, Bytes, Map and End.
//
// The Scanner only writes into the destinations; it keeps no reference to
// them after Scan returns.
type Request struct {
	kind  Kind
	name  string
	num   *uint32
	str   *string
	bytes *[]byte
	table map[string]string
}

// Num requests a numeric attribute stored into dst.
func Num(name string, dst *uint32) Request {
	return Request{kind: KindNum, name: name, num: dst}
}

// Str requests a string attribute stored into dst.
func Str(name string, dst *string) Request {
	return Request{kind: KindStr, name: name, str: dst}
}

// Bytes requests a string attribute stored into dst as a fresh slice.
func Bytes(name string, dst *[]byte) Request {
	return Request{kind: KindBytes, name: name, bytes: dst}
}

// Map collects all remaining attributes into table. Existing entries are
// never replaced. Map must be the last request.
func Map(table map[string]string) Request {
	return Request{kind: KindMap, table: table}
}

// End terminates a request list. It is optional in NewRequests; the end of
// the argument list implies it.
func End() Request {
	return Request{kind: KindEnd}
}

// Kind returns the request variant.
func (r Request) Kind() Kind {
	return r.kind
}

// Name returns the requested attribute name, or a description for Map and
// End requests as used in diagnostics.
func (r Request) Name() string {
	switch r.kind {
	case KindEnd:
		return endName
	case KindMap:
		return anyName
	default:
		return r.name
	}
}

func (r Request) validate() error {
	switch r.kind {
	case KindEnd:
		return nil
	case KindNum:
		if r.num == nil {
			return fmt.Errorf("%w: nil destination for num %q", ErrBadRequest, r.name)
		}
	case KindStr:
		if r.str == nil {
			return fmt.Errorf("%w: nil destination for str %q", ErrBadRequest, r.name)
		}
	case KindBytes:
		if r.bytes == nil {
			return fmt.Errorf("%w: nil destination for bytes %q", ErrBadRequest, r.name)
		}
	case KindMap:
		if r.table == nil {
			return fmt.Errorf("%w: nil map", ErrBadRequest)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown type code %d", ErrBadRequest, uint8(r.kind))
	}
	if r.name == "" {
		return fmt.Errorf("%w: empty name for %s request", ErrBadRequest, r.kind)
	}
	return nil
}

// Requests is a validated request list. The zero value is the empty list,
// which recovers nothing and skips to the end of the input list.
type Requests struct {
	list []Request
}

// NewRequests validates reqs and returns them as a request list. A Map
// request may only be followed by End; End may only come last.
func NewRequests(reqs ...Request) (Requests, error) {
	list := make([]Request, 0, len(reqs))
	for i, r := range reqs {
		if err := r.validate(); err != nil {
			return Requests{}, err
		}
		if r.kind == KindEnd {
			if i != len(reqs)-1 {
				return Requests{}, fmt.Errorf("%w: end at position %d is not last", ErrBadRequest, i)
			}
			break
		}
		if r.kind == KindMap {
			rest := reqs[i+1:]
			if len(rest) > 1 || (len(rest) == 1 && rest[0].kind != KindEnd) {
				return Requests{}, fmt.Errorf("%w: map not followed by end", ErrBadRequest)
			}
		}
		list = append(list, r)
	}
	return Requests{list: list}, nil
}

// MustRequests is like NewRequests but panics on a malformed list.
func MustRequests(reqs ...Request) Requests {
	rl, err := NewRequests(reqs...)
	if err != nil {
		panic(err)
	}
	return rl
}

// Len returns the number of requests, not counting End.
func (rl Requests) Len() int {
	return len(rl.list)
}

// at returns the i-th request, or End past the last one.
func (rl Requests) at(i int) Request {
	if i >= len(rl.list) {
		return End()
	}
	return rl.list[i]
}
