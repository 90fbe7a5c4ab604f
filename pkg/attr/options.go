package attr

import "log/slog"

const (
	// DefaultLineLimit is the default line length limit. Tokens may be
	// up to twice this long.
	DefaultLineLimit = 2048

	defaultPath = "stream"
)

// config holds scanner configuration.
type config struct {
	path      string
	lineLimit int
	logger    *slog.Logger
}

// Option configures a Scanner.
type Option func(*config)

// LineLimit sets the configured line length limit. Names and values longer
// than twice this limit fail with ErrTooLong.
//
// Default: 2048
func LineLimit(n int) Option {
	return func(c *config) {
		c.lineLimit = n
	}
}

// Path sets the peer identifier that appears in warnings and errors,
// typically the service socket name.
//
// Default: "stream"
func Path(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// Logger sets the logger for warnings about missing, spurious and duplicate
// attributes, and for per-token debug records.
//
// Default: slog.Default()
func Logger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
