package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/epithet-ssh/attrscan/pkg/attr"
	"github.com/epithet-ssh/attrscan/pkg/config"
)

// FixedCLI recovers a declared sequence of attributes from each list.
type FixedCLI struct {
	File string   `arg:"" optional:"" help:"Input file (default stdin)"`
	Want []string `help:"Attribute to recover as num:NAME or str:NAME, in wire order (repeatable)" short:"w" required:""`
	Rest bool     `help:"Collect the attributes after the last --want into a map"`
	More bool     `help:"Recover each --want with its own call, leaving the stream positioned in between"`
	JSON bool     `help:"Print one JSON object per list" short:"j"`
}

// want is one parsed --want entry.
type want struct {
	kind attr.Kind
	name string
}

func parseWants(specs []string) ([]want, error) {
	wants := make([]want, 0, len(specs))
	for _, spec := range specs {
		kind, name, ok := strings.Cut(spec, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --want %q: expected num:NAME or str:NAME", spec)
		}
		switch strings.ToLower(kind) {
		case "num":
			wants = append(wants, want{attr.KindNum, name})
		case "str":
			wants = append(wants, want{attr.KindStr, name})
		default:
			return nil, fmt.Errorf("invalid --want %q: unknown type %q", spec, kind)
		}
	}
	return wants, nil
}

// slots holds the destinations for one list.
type slots struct {
	wants []want
	nums  []uint32
	strs  []string
	rest  map[string]string
}

func newSlots(wants []want, rest bool) *slots {
	s := &slots{
		wants: wants,
		nums:  make([]uint32, len(wants)),
		strs:  make([]string, len(wants)),
	}
	if rest {
		s.rest = map[string]string{}
	}
	return s
}

func (s *slots) request(i int) attr.Request {
	w := s.wants[i]
	if w.kind == attr.KindNum {
		return attr.Num(w.name, &s.nums[i])
	}
	return attr.Str(w.name, &s.strs[i])
}

// requests builds the request list for wants[from:to], plus the map when
// withRest is set.
func (s *slots) requests(from, to int, withRest bool) attr.Requests {
	var reqs []attr.Request
	for i := from; i < to; i++ {
		reqs = append(reqs, s.request(i))
	}
	if withRest && s.rest != nil {
		reqs = append(reqs, attr.Map(s.rest))
	}
	return attr.MustRequests(append(reqs, attr.End())...)
}

func (s *slots) value(i int) string {
	if s.wants[i].kind == attr.KindNum {
		return strconv.FormatUint(uint64(s.nums[i]), 10)
	}
	return s.strs[i]
}

func (c *FixedCLI) Run(logger *slog.Logger, s *config.Settings, out io.Writer) error {
	wants, err := parseWants(c.Want)
	if err != nil {
		return err
	}
	flags, err := s.ScanFlags()
	if err != nil {
		return err
	}
	flags &^= attr.LeavePositioned

	in, name, err := openInput(c.File)
	if err != nil {
		return err
	}
	defer in.Close()

	br := bufio.NewReader(in)
	sc := newScanner(br, s, logger, peerName(s, name))

	return eachList(br, func() (bool, error) {
		slot := newSlots(wants, c.Rest)

		var n int
		var err error
		if c.More {
			n, err = scanSplit(sc, flags, slot)
		} else {
			n, err = sc.Scan(flags, slot.requests(0, len(wants), true))
		}
		if err != nil {
			return false, err
		}
		logger.Info("attribute list", "peer", sc.Path(), "count", n)
		if err := printFixed(out, c.JSON, n, slot); err != nil {
			return false, err
		}
		return positioned(logger, sc), nil
	})
}

// scanSplit recovers each want with its own LeavePositioned call, then
// drains the list, collecting the rest when requested. It stops early when
// a call comes up short.
func scanSplit(sc *attr.Scanner, flags attr.Flags, slot *slots) (int, error) {
	total := 0
	for i := range slot.wants {
		n, err := sc.Scan(flags|attr.LeavePositioned, slot.requests(i, i+1, false))
		total += n
		if err != nil || n == 0 || sc.Terminated() {
			return total, err
		}
	}
	n, err := sc.Scan(flags, slot.requests(len(slot.wants), len(slot.wants), true))
	return total + n, err
}

func printFixed(out io.Writer, asJSON bool, n int, slot *slots) error {
	recovered := min(n, len(slot.wants))
	if asJSON {
		obj := map[string]any{"count": n}
		values := map[string]string{}
		for i := 0; i < recovered; i++ {
			values[slot.wants[i].name] = slot.value(i)
		}
		obj["values"] = values
		if slot.rest != nil {
			obj["rest"] = slot.rest
		}
		return json.NewEncoder(out).Encode(obj)
	}

	if _, err := fmt.Fprintf(out, "count=%d\n", n); err != nil {
		return err
	}
	for i := 0; i < recovered; i++ {
		if _, err := fmt.Fprintf(out, "%s=%s\n", slot.wants[i].name, slot.value(i)); err != nil {
			return err
		}
	}
	if len(slot.rest) > 0 {
		if _, err := fmt.Fprintln(out, "# rest"); err != nil {
			return err
		}
		return printMap(out, false, slot.rest)
	}
	_, err := fmt.Fprintln(out)
	return err
}
