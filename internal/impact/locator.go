package impact

import (
	"math/rand"
	"sync"
	"time"
)

// LocationPicker decides where a confirmed impact lands.
type LocationPicker interface {
	PickLocation() Location
}

// FixedLocator always returns the same location.
type FixedLocator Location

// PickLocation implements LocationPicker.
func (f FixedLocator) PickLocation() Location { return Location(f) }

// RandomLocator draws ocean or inland from a pseudo-random source. It is safe
// for concurrent use.
type RandomLocator struct {
	mu               sync.Mutex
	rng              *rand.Rand
	oceanProbability float64
}

// NewRandomLocator creates a RandomLocator. A zero seed seeds from the clock.
// oceanProbability is clamped to [0,1].
func NewRandomLocator(seed int64, oceanProbability float64) *RandomLocator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if oceanProbability < 0 {
		oceanProbability = 0
	} else if oceanProbability > 1 {
		oceanProbability = 1
	}
	return &RandomLocator{
		rng:              rand.New(rand.NewSource(seed)),
		oceanProbability: oceanProbability,
	}
}

// PickLocation implements LocationPicker.
func (r *RandomLocator) PickLocation() Location {
	r.mu.Lock()
	draw := r.rng.Float64()
	r.mu.Unlock()
	return locationForDraw(draw, r.oceanProbability)
}

// locationForDraw maps a uniform draw in [0,1) to a location: ocean when the
// draw exceeds 1-p.
func locationForDraw(draw, oceanProbability float64) Location {
	if oceanProbability >= 1 || draw > 1-oceanProbability {
		return LocationOcean
	}
	return LocationInland
}
