// Package selector finds the k points closest to the origin with an
// in-place quickselect over squared distances. The k results come back in
// partition order, not sorted order, and ties at the k-th boundary are
// broken by wherever partitioning happens to leave them.
package selector

import (
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/ken/kclosest/pkg/core/distance"
	"github.com/ken/kclosest/pkg/core/point"
)

// keyedIndex pairs a point's squared distance with its position in the input
type keyedIndex struct {
	dist  uint64
	index int
}

// Selector runs k-closest selections. A Selector may be shared between
// goroutines; every call works on its own private buffer.
type Selector struct {
	pivot   PivotStrategy
	seed    int64
	hasSeed bool
	logger  *slog.Logger

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Option configures a Selector
type Option func(*Selector)

// WithPivot sets the pivot strategy. The default is PivotMidpoint.
func WithPivot(p PivotStrategy) Option {
	return func(s *Selector) {
		s.pivot = p
	}
}

// WithSeed fixes the seed used by PivotRandom
func WithSeed(seed int64) Option {
	return func(s *Selector) {
		s.seed = seed
		s.hasSeed = true
	}
}

// WithLogger sets the logger that receives debug records for each call
func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Selector with the given options
func New(opts ...Option) *Selector {
	s := &Selector{
		pivot:  PivotMidpoint,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.pivot == PivotRandom {
		seed := s.seed
		if !s.hasSeed {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	return s
}

var defaultSelector = New()

// Select returns the k points closest to the origin using a midpoint-pivot
// Selector. See (*Selector).Select.
func Select(points []point.Point, k int) ([]point.Point, error) {
	return defaultSelector.Select(points, k)
}

// Pivot returns the selector's pivot strategy
func (s *Selector) Pivot() PivotStrategy {
	return s.pivot
}

// Select returns the k points of points closest to the origin. Every
// returned point has a squared distance no larger than that of any point
// left out. points is not modified; k must be in [1, len(points)].
func (s *Selector) Select(points []point.Point, k int) ([]point.Point, error) {
	indices, err := s.SelectIndices(points, k)
	if err != nil {
		return nil, err
	}

	result := make([]point.Point, len(indices))
	for i, idx := range indices {
		result[i] = points[idx]
	}

	return result, nil
}

// SelectIndices is like Select but returns the positions in points of the
// chosen points instead of the points themselves.
func (s *Selector) SelectIndices(points []point.Point, k int) ([]int, error) {
	if err := validate(len(points), k); err != nil {
		s.logger.Debug("selection rejected", "n", len(points), "k", k, "error", err)
		return nil, err
	}

	keyed := make([]keyedIndex, len(points))
	for i, p := range points {
		keyed[i] = keyedIndex{dist: distance.Squared(p), index: i}
	}

	passes := s.quickSelect(keyed, k)

	s.logger.Debug("selection complete",
		"n", len(points),
		"k", k,
		"pivot", s.pivot.String(),
		"passes", passes,
	)

	indices := make([]int, k)
	for i := range indices {
		indices[i] = keyed[i].index
	}

	return indices, nil
}

// quickSelect reorders keyed so its first k entries hold the k smallest
// distances. It returns the number of partition passes made.
func (s *Selector) quickSelect(keyed []keyedIndex, k int) int {
	target := k - 1
	start, end := 0, len(keyed)-1
	passes := 0

	for start < end {
		passes++
		sep := partition(keyed, start, end, s.choosePivot(start, end))

		switch {
		case sep == target:
			return passes
		case sep < target:
			start = sep + 1
		default:
			end = sep - 1
		}
	}

	return passes
}

// partition is a Lomuto pass over keyed[start:end+1] around the entry at
// pivotIdx. On return keyed[start:sep] < pivot <= keyed[sep+1:end+1] and the
// pivot sits at sep.
func partition(keyed []keyedIndex, start, end, pivotIdx int) int {
	pivot := keyed[pivotIdx].dist
	keyed[pivotIdx], keyed[end] = keyed[end], keyed[pivotIdx]

	sep := start
	for j := start; j < end; j++ {
		if keyed[j].dist < pivot {
			keyed[sep], keyed[j] = keyed[j], keyed[sep]
			sep++
		}
	}

	keyed[sep], keyed[end] = keyed[end], keyed[sep]
	return sep
}
