package cards

import (
	"time"

	"github.com/google/uuid"
)

// ISOFormat is the timestamp layout used everywhere: UTC with fixed
// millisecond precision, matching JavaScript's Date.toISOString(). The
// fixed width keeps lexicographic string comparison equivalent to
// chronological order and keeps export files compatible with dumps
// written by earlier versions of the app.
const ISOFormat = "2006-01-02T15:04:05.000Z"

// FormatISO renders t as an ISO-8601 string in the canonical layout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOFormat)
}

// ParseISO parses a timestamp in the canonical layout, falling back to
// RFC 3339 for hand-typed CLI input.
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(ISOFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// MaxISO returns the lexicographically (and therefore chronologically)
// later of two ISO timestamps. Empty strings compare lowest.
func MaxISO(a, b string) string {
	if a >= b {
		return a
	}
	return b
}

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
