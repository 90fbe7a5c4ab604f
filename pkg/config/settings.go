package config

import (
	"errors"
	"fmt"
	"io/fs"

	"cuelang.org/go/cue"
	"github.com/epithet-ssh/attrscan/pkg/attr"
)

// Settings configures attribute scanning.
//
//	line_limit: 4096
//	flags: [strict]
//	path: private/defer
type Settings struct {
	LineLimit int      `json:"line_limit,omitempty"`
	Flags     []string `json:"flags,omitempty"`
	Path      string   `json:"path,omitempty"`
}

// Defaults returns the settings used when no file is given.
func Defaults() *Settings {
	return &Settings{LineLimit: attr.DefaultLineLimit}
}

// Load reads settings from path and validates them. Unset fields keep
// their defaults.
func Load(path string) (*Settings, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}
	return FromValue(val)
}

// LoadOptional is like Load but returns Defaults when path does not exist
// or is empty.
func LoadOptional(path string) (*Settings, error) {
	if path == "" {
		return Defaults(), nil
	}
	s, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return s, err
}

// FromValue decodes settings from an already loaded CUE value. Only the
// top level is consulted; other keys are ignored.
func FromValue(val cue.Value) (*Settings, error) {
	s := &Settings{}
	if err := val.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.LineLimit == 0 {
		s.LineLimit = attr.DefaultLineLimit
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the line limit and flag names.
func (s *Settings) Validate() error {
	if s.LineLimit <= 0 {
		return fmt.Errorf("line_limit must be positive, got %d", s.LineLimit)
	}
	if _, err := attr.ParseFlags(s.Flags); err != nil {
		return err
	}
	return nil
}

// ScanFlags returns the configured flags as an attr.Flags set.
func (s *Settings) ScanFlags() (attr.Flags, error) {
	return attr.ParseFlags(s.Flags)
}

// ScannerOptions returns options that apply these settings to a Scanner.
func (s *Settings) ScannerOptions() []attr.Option {
	opts := []attr.Option{attr.LineLimit(s.LineLimit)}
	if s.Path != "" {
		opts = append(opts, attr.Path(s.Path))
	}
	return opts
}
