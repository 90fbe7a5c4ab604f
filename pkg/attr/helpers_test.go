package attr

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/require"
)

// list builds wire bytes for one attribute list from name, value pairs.
func list(pairs ...string) []byte {
	if len(pairs)%2 != 0 {
		panic("list: odd number of arguments")
	}
	var buf bytes.Buffer
	for _, p := range pairs {
		buf.WriteString(p)
		buf.WriteByte(0)
	}
	buf.WriteByte(0)
	return buf.Bytes()
}

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(tint.NewHandler(t.Output(), &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05",
	}))
}

func newTestScanner(t *testing.T, data []byte, opts ...Option) *Scanner {
	opts = append([]Option{Logger(testLogger(t)), Path("test")}, opts...)
	return NewScanner(bytes.NewReader(data), opts...)
}

// warnings captures warning records emitted by a Scanner.
type warnings struct {
	buf bytes.Buffer
}

func (w *warnings) logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&w.buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// records returns each captured record as "msg attribute".
func (w *warnings) records(t *testing.T) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(w.buf.String()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		require.Equal(t, "test", rec["peer"])
		out = append(out, rec["msg"].(string)+" "+rec["attribute"].(string))
	}
	return out
}

func newWarnScanner(data []byte, opts ...Option) (*Scanner, *warnings) {
	w := &warnings{}
	opts = append([]Option{Logger(w.logger()), Path("test")}, opts...)
	return NewScanner(bytes.NewReader(data), opts...), w
}
