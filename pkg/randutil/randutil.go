// Package randutil wraps a seedable pseudo-random source so that every
// generator in this module draws from an explicitly injected stream.
// Passwords produced here are synthetic test data, not secrets, so a
// deterministic math/rand source is the right tool.
package randutil

import (
	"math/rand"
	"time"
)

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	// No comma, semicolon or quote characters: generated values must not
	// break the bare CSV dialects on their own. Mr Blobby owns that job.
	Symbols = "!@#$%^&*()-_=+[]{}:.?"

	Alphanumeric = Lowercase + Uppercase + Digits
)

// Rand is a seedable random source. It is not safe for concurrent use;
// construct one per generation run.
type Rand struct {
	src *rand.Rand
}

// New returns a source seeded with the given value. The same seed always
// yields the same stream.
func New(seed int64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(seed))} // #nosec G404 -- synthetic data, determinism wanted
}

// NewFromTime returns a source seeded from the current time.
func NewFromTime() *Rand {
	return New(time.Now().UnixNano())
}

func (r *Rand) Intn(n int) int {
	return r.src.Intn(n)
}

func (r *Rand) Int63() int64 {
	return r.src.Int63()
}

// IntBetween returns a uniform value in [min, max] inclusive.
func (r *Rand) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.Intn(max-min+1)
}

// Chance draws a uniform value in [1, 100] and reports whether it is at
// most pct. Chance(0) is always false, Chance(100) always true.
func (r *Rand) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	return r.src.Intn(100)+1 <= pct
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Read fills p with pseudo-random bytes and never fails. Rand satisfies
// io.Reader so id generators can draw from the seeded stream.
func (r *Rand) Read(p []byte) (int, error) {
	return r.src.Read(p)
}

// Letters returns a string of n runes drawn uniformly from charset.
func (r *Rand) Letters(n int, charset string) string {
	runes := []rune(charset)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[r.src.Intn(len(runes))]
	}
	return string(out)
}

// Pick returns a uniformly chosen element of items. Empty input returns the
// zero value.
func Pick[T any](r *Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Intn(len(items))]
}

// Shuffle permutes items in place.
func Shuffle[T any](r *Rand, items []T) {
	r.src.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
