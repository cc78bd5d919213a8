// Package puzzleid mints identifiers of the form
// 2006-01-02T15-04-05-123456: a UTC timestamp plus a six digit random suffix.
// Identifiers are not checked for uniqueness.
package puzzleid

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	// Layout is the timestamp part of an identifier.
	Layout = "2006-01-02T15-04-05"

	suffixMin  = 100000
	suffixSpan = 900000
)

// Source builds identifiers from a clock and a random source.
type Source struct {
	Now  func() time.Time
	IntN func(n int) int
}

// New returns a Source backed by the wall clock and math/rand/v2.
func New() *Source {
	return &Source{Now: time.Now, IntN: rand.IntN}
}

// NewID returns a fresh identifier.
func (s *Source) NewID() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	intn := rand.IntN
	if s.IntN != nil {
		intn = s.IntN
	}
	ts := now().UTC().Format(Layout)
	return ts + "-" + strconv.Itoa(suffixMin+intn(suffixSpan))
}
