package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/epithet-ssh/attrscan/pkg/attr"
	"github.com/epithet-ssh/attrscan/pkg/config"
)

// MapCLI collects every attribute of each list into a map.
type MapCLI struct {
	File string `arg:"" optional:"" help:"Input file (default stdin)"`
	JSON bool   `help:"Print one JSON object per list" short:"j"`
}

func (c *MapCLI) Run(logger *slog.Logger, s *config.Settings, out io.Writer) error {
	in, name, err := openInput(c.File)
	if err != nil {
		return err
	}
	defer in.Close()

	flags, err := s.ScanFlags()
	if err != nil {
		return err
	}
	// A map consumes the whole list; there is nothing to leave positioned.
	flags &^= attr.LeavePositioned

	br := bufio.NewReader(in)
	sc := newScanner(br, s, logger, peerName(s, name))
	return eachList(br, func() (bool, error) {
		table := map[string]string{}
		n, err := sc.ScanMap(flags, table)
		if err != nil {
			return false, err
		}
		logger.Info("attribute list", "peer", sc.Path(), "count", n)
		if err := printMap(out, c.JSON, table); err != nil {
			return false, err
		}
		return positioned(logger, sc), nil
	})
}

func printMap(out io.Writer, asJSON bool, table map[string]string) error {
	if asJSON {
		return json.NewEncoder(out).Encode(table)
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(out, "%s=%s\n", k, table[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out)
	return err
}
