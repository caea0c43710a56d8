package verifyemail

import (
	"time"

	"golang.org/x/text/language"
)

// SignatureComponents describes a generated link. It is immutable.
type SignatureComponents struct {
	signedURL   string
	generatedAt time.Time
	expiresAt   time.Time
	hashedToken string
}

// SignedURL returns the absolute URL to send to the user.
func (c SignatureComponents) SignedURL() string { return c.signedURL }

// ExpiresAt returns the instant after which the link is rejected as expired.
func (c SignatureComponents) ExpiresAt() time.Time { return c.expiresAt }

// GeneratedAt returns the instant the link was generated, truncated to the second.
func (c SignatureComponents) GeneratedAt() time.Time { return c.generatedAt }

// HashedToken returns the link's signature. It is safe to embed in a follow-up
// page: it cannot be used to sign anything else.
func (c SignatureComponents) HashedToken() string { return c.hashedToken }

// Unit is a unit of the link lifetime used in expiration messages.
type Unit string

const (
	UnitYear   Unit = "year"
	UnitMonth  Unit = "month"
	UnitDay    Unit = "day"
	UnitHour   Unit = "hour"
	UnitMinute Unit = "minute"
	UnitSecond Unit = "second"
)

func (u Unit) String() string { return string(u) }

// Months and years are fixed lengths here; the lifetime is a duration, not a date.
var units = []struct {
	unit Unit
	size time.Duration
}{
	{UnitYear, 365 * 24 * time.Hour},
	{UnitMonth, 30 * 24 * time.Hour},
	{UnitDay, 24 * time.Hour},
	{UnitHour, time.Hour},
	{UnitMinute, time.Minute},
	{UnitSecond, time.Second},
}

// ExpiresIn returns the link lifetime in its largest whole unit, rounded down:
// 90 minutes is (1, UnitHour).
func (c SignatureComponents) ExpiresIn() (int, Unit) {
	d := c.expiresAt.Sub(c.generatedAt)
	for _, u := range units {
		if d >= u.size {
			return int(d / u.size), u.unit
		}
	}
	return 0, UnitSecond
}

// ExpirationMessageKey returns a translator key in the "%count% unit|%count% units" form.
func (c SignatureComponents) ExpirationMessageKey() string {
	_, unit := c.ExpiresIn()
	return "%count% " + string(unit) + "|%count% " + string(unit) + "s"
}

// ExpirationMessageData returns the placeholder values for ExpirationMessageKey.
func (c SignatureComponents) ExpirationMessageData() map[string]any {
	count, _ := c.ExpiresIn()
	return map[string]any{"%count%": count}
}

// ExpirationMessage renders the lifetime for tag, e.g. "1 hour" or "2 Stunden".
// Unsupported languages fall back to English.
func (c SignatureComponents) ExpirationMessage(tag language.Tag) string {
	count, unit := c.ExpiresIn()
	return expirationText(tag, unit, count)
}
