package group

import (
	"io"
	"log/slog"
	"time"
)

// DefaultDelay is the pacing delay applied after every tracked access.
const DefaultDelay = 5 * time.Millisecond

// Options configures a Group.
//
// The zero value enables pacing at DefaultDelay, enables notifications and
// discards log output.
type Options struct {
	// Delay is the pacing sleep after each Get/Set. Values below one
	// millisecond select DefaultDelay.
	Delay time.Duration

	// DisablePacing starts the group with pacing off (see ToggleSleep).
	DisablePacing bool

	// DisableNotifications starts the group with state-changed
	// notifications off (see ToggleReportUpdates).
	DisableNotifications bool

	// Logger receives Debug records for structural changes. Nil discards.
	Logger *slog.Logger
}

func (o Options) delay() time.Duration {
	if o.Delay < time.Millisecond {
		return DefaultDelay
	}
	return o.Delay
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
