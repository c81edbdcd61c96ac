// Package logger holds the explorer's session log. Records are discarded
// unless Init enables a daily JSON file; every sort run gets a child logger
// carrying its run attributes, which is also handed to the run's group so
// its structural records land in the same file.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joshuapare/sortkit/pkg/types"
)

// L is the session logger. It discards everything until Init is called.
var L = slog.New(slog.DiscardHandler)

// DefaultRetention is how long daily log files are kept.
const DefaultRetention = 30 * 24 * time.Hour

const dayLayout = "2006-01-02"

// Options configures the session log.
type Options struct {
	Enabled   bool
	Dir       string        // default ~/.sortexplorer/logs
	Level     slog.Level    // minimum level written
	Retention time.Duration // files older than this are removed; default DefaultRetention
}

// Init configures L. With Enabled unset, L discards all records.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return nil
	}

	dir := opts.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".sortexplorer", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	now := time.Now()
	retention := opts.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}
	Prune(dir, now.Add(-retention))

	f, err := os.OpenFile(filepath.Join(dir, FileName(now)), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})).
		With("pid", os.Getpid())
	return nil
}

// ParseLevel maps "debug", "info", "warn" or "error" to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, types.ErrInvalidInput)
	}
	return lvl, nil
}

// ForRun returns a child of L tagged with one run's settings.
func ForRun(run int, algorithm string, kind types.InputKind, size int) *slog.Logger {
	return L.With(slog.Group("run",
		slog.Int("id", run),
		slog.String("algorithm", algorithm),
		slog.String("kind", kind.String()),
		slog.Int("size", size),
	))
}

// FileName is the log file for the day containing t.
func FileName(t time.Time) string {
	return "sortexplorer-" + t.Format(dayLayout) + ".log"
}

// Prune removes daily log files dated before cutoff. Other files, and
// errors, are ignored.
func Prune(dir string, cutoff time.Time) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		day, ok := strings.CutPrefix(e.Name(), "sortexplorer-")
		if !ok {
			continue
		}
		day, ok = strings.CutSuffix(day, ".log")
		if !ok {
			continue
		}
		t, err := time.Parse(dayLayout, day)
		if err == nil && t.Before(cutoff) {
			os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
