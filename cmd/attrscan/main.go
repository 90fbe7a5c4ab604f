package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/epithet-ssh/attrscan/pkg/config"
	"github.com/lmittmann/tint"
)

const defaultConfigPath = "/etc/attrscan/attrscan.yaml"

// CLI is the root command. Global flags override the settings file.
type CLI struct {
	Config    string   `help:"Settings file (YAML, JSON or CUE); defaults to ${default_config} if present" short:"c" env:"ATTRSCAN_CONFIG" type:"path"`
	LineLimit int      `help:"Line length limit; names and values may be twice as long" name:"line-limit" env:"ATTRSCAN_LINE_LIMIT"`
	Flag      []string `help:"Scan flag: none, missing, extra, more or strict (repeatable)" short:"f"`
	Verbose   int      `help:"Log verbosity (-v info, -vv debug)" short:"v" type:"counter"`

	Map    MapCLI    `cmd:"" help:"Collect each attribute list into a map and print it"`
	Fixed  FixedCLI  `cmd:"" help:"Recover declared attributes from each attribute list"`
	Listen ListenCLI `cmd:"" help:"Accept peers on a Unix socket and log their attribute lists"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("attrscan"),
		kong.Description("Recover attribute lists from NUL-delimited attribute streams."),
		kong.UsageOnError(),
		kong.Vars{"default_config": defaultConfigPath},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	logger := newLogger(os.Stderr, cli.Verbose)

	settings, err := cli.settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("settings", "line_limit", settings.LineLimit, "flags", settings.Flags, "path", settings.Path)

	if err := kctx.Run(logger, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// settings loads the settings file and applies flag overrides.
func (c *CLI) settings() (*config.Settings, error) {
	var s *config.Settings
	var err error
	if c.Config != "" {
		s, err = config.Load(c.Config)
	} else {
		s, err = config.LoadOptional(defaultConfigPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if c.LineLimit != 0 {
		s.LineLimit = c.LineLimit
	}
	if len(c.Flag) > 0 {
		s.Flags = c.Flag
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    os.Getenv("NO_COLOR") != "",
	}))
}
