package pipeline

import (
	"math/rand"
	"time"
)

// Clock supplies the current time. Injected so optimal-time recommendations
// are reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Jitter supplies bounded pseudo-random offsets for forecast metrics.
type Jitter interface {
	Intn(n int) int
}

// randJitter draws from the shared math/rand source, which is safe for
// concurrent use across requests.
type randJitter struct{}

// NewJitter returns the production Jitter.
func NewJitter() Jitter { return randJitter{} }

func (randJitter) Intn(n int) int {
	return rand.Intn(n)
}

// zeroJitter always returns zero. Used where deterministic output is needed.
type zeroJitter struct{}

func (zeroJitter) Intn(int) int { return 0 }

// NoJitter returns a Jitter that contributes nothing.
func NoJitter() Jitter { return zeroJitter{} }
