package verifyemail

import (
	"log/slog"
	"time"
)

// DefaultLifetime is how long a link stays valid unless configured otherwise.
const DefaultLifetime = time.Hour

// Option configures a Helper.
type Option func(*Helper)

// WithLifetime sets how long generated links stay valid.
// Sub-second precision is dropped; the result must be at least one second.
func WithLifetime(d time.Duration) Option {
	return func(h *Helper) {
		h.lifetime = d.Truncate(time.Second)
	}
}

// WithLogger sets the logger used for rejected verifications.
func WithLogger(l *slog.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(h *Helper) {
		if now != nil {
			h.now = now
		}
	}
}
