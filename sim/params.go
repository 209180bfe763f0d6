// Package sim sits on top of the verified model: timing parameters for the
// intervals between arrivals, departures and car operations, and a seeded
// random walk that plays one concrete execution of a machine. The verifier
// never consumes any of this; simulation only decides when, in wall-clock
// time, an action worth firing would be requested.
package sim

import (
	"math/rand"
	"time"
)

// Default intervals of the original system.
const (
	DefaultOperateTime        = 800 * time.Millisecond
	DefaultJourneyTime        = 1200 * time.Millisecond
	DefaultMaxArriveInterval  = 2400 * time.Millisecond
	DefaultMaxDepartInterval  = 800 * time.Millisecond
	DefaultMaxOperateInterval = 6400 * time.Millisecond
)

// Params generates the time lapses that drive a simulation. Lapses are
// uniformly distributed over the configured maxima; an exponential
// distribution might be a fairer assumption, but uniform keeps the original
// behaviour.
type Params struct {
	// OperateTime is how long operating the cable car takes.
	OperateTime time.Duration
	// JourneyTime is how long a single train journey takes.
	JourneyTime time.Duration

	// Upper bounds for the random intervals between group arrivals, group
	// departures and car operations.
	MaxArriveInterval  time.Duration
	MaxDepartInterval  time.Duration
	MaxOperateInterval time.Duration

	rand *rand.Rand
}

// NewParams creates the default parameters with a seeded generator, so a
// simulation can be replayed by reusing its seed.
func NewParams(seed int64) *Params {
	return &Params{
		OperateTime:        DefaultOperateTime,
		JourneyTime:        DefaultJourneyTime,
		MaxArriveInterval:  DefaultMaxArriveInterval,
		MaxDepartInterval:  DefaultMaxDepartInterval,
		MaxOperateInterval: DefaultMaxOperateInterval,
		rand:               rand.New(rand.NewSource(seed)),
	}
}

// ArrivalLapse returns the wait before the next group arrives.
func (p *Params) ArrivalLapse() time.Duration {
	return p.lapse(p.MaxArriveInterval)
}

// DepartureLapse returns the wait before the next group departs.
func (p *Params) DepartureLapse() time.Duration {
	return p.lapse(p.MaxDepartInterval)
}

// OperateLapse returns the wait before the cable car is operated again.
func (p *Params) OperateLapse() time.Duration {
	return p.lapse(p.MaxOperateInterval)
}

func (p *Params) lapse(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(p.rand.Int63n(int64(max)))
}
