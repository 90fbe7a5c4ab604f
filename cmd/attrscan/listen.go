package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/epithet-ssh/attrscan/pkg/attr"
	"github.com/epithet-ssh/attrscan/pkg/config"
)

// ListenCLI accepts peers on a Unix socket and logs each attribute list
// they send.
type ListenCLI struct {
	Socket string `arg:"" help:"Unix socket path to listen on"`
}

// reportFunc receives each recovered list.
type reportFunc func(peer string, n int, table map[string]string)

func (c *ListenCLI) Run(logger *slog.Logger, s *config.Settings) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("unix", c.Socket)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Socket, err)
	}
	defer os.Remove(c.Socket)
	logger.Info("listening", "socket", c.Socket)

	return c.serve(ctx, ln, logger, s, func(peer string, n int, table map[string]string) {
		logger.Info("attribute list", "peer", peer, "count", n, "attributes", table)
	})
}

// serve accepts connections until ctx is done. Each connection gets its
// own Scanner; a connection ends at EOF on a list boundary or at the first
// failure.
func (c *ListenCLI) serve(ctx context.Context, ln net.Listener, logger *slog.Logger, s *config.Settings, report reportFunc) error {
	flags, err := s.ScanFlags()
	if err != nil {
		ln.Close()
		return err
	}
	flags &^= attr.LeavePositioned

	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	base := peerName(s, c.Socket)
	var seq atomic.Uint64
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept failed: %w", err)
		}

		peer := fmt.Sprintf("%s#%d", base, seq.Add(1))
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			stop := context.AfterFunc(ctx, func() { conn.Close() })
			defer stop()

			if err := c.handle(conn, peer, logger, s, flags, report); err != nil {
				logger.Warn("peer failed", "peer", peer, "error", err)
			}
		}()
	}
}

func (c *ListenCLI) handle(conn net.Conn, peer string, logger *slog.Logger, s *config.Settings, flags attr.Flags, report reportFunc) error {
	br := bufio.NewReader(conn)
	sc := newScanner(br, s, logger, peer)
	return eachList(br, func() (bool, error) {
		table := map[string]string{}
		n, err := sc.ScanMap(flags, table)
		if err != nil {
			return false, err
		}
		report(sc.Path(), n, table)
		return positioned(logger, sc), nil
	})
}
