package selector

import (
	"fmt"
	"strings"
)

// PivotStrategy decides which element of the partition window becomes the pivot
type PivotStrategy int

const (
	// PivotMidpoint always takes the middle of the window. Deterministic,
	// but an adversarial ordering can drive it to quadratic time.
	PivotMidpoint PivotStrategy = iota

	// PivotRandom takes a uniformly random element of the window
	PivotRandom
)

func (p PivotStrategy) String() string {
	switch p {
	case PivotMidpoint:
		return "midpoint"
	case PivotRandom:
		return "random"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

// ParsePivot maps a strategy name to its PivotStrategy. The empty string
// selects the midpoint strategy.
func ParsePivot(name string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "midpoint", "":
		return PivotMidpoint, nil
	case "random":
		return PivotRandom, nil
	default:
		return PivotMidpoint, fmt.Errorf("%w: %q", ErrUnknownPivot, name)
	}
}

// choosePivot returns an index in [start, end]
func (s *Selector) choosePivot(start, end int) int {
	if s.pivot != PivotRandom {
		return start + (end-start)/2
	}

	s.mu.Lock()
	offset := s.rng.Intn(end - start + 1)
	s.mu.Unlock()

	return start + offset
}
