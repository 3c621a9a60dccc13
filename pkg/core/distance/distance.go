package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ken/kclosest/pkg/core/point"
)

// MetricType represents the type of distance metric
type MetricType string

const (
	// SquaredEuclidean is x*x + y*y. It orders points exactly like the
	// Euclidean distance without a square root.
	SquaredEuclidean MetricType = "squared_euclidean"
)

// MaxCoordinate is the largest coordinate magnitude a Point can hold. Squared
// keys are computed in uint64, so even two coordinates of this magnitude
// produce 2^63 and never overflow.
const MaxCoordinate = 1 << 31

var (
	// ErrUnknownMetric is returned when a metric name is not recognised
	ErrUnknownMetric = errors.New("unknown distance metric")
)

// GetMetric resolves a metric by name. Only squared Euclidean distance is
// supported; "euclidean" is accepted as an alias since it ranks points the
// same way.
func GetMetric(name string) (MetricType, error) {
	switch MetricType(strings.ToLower(strings.TrimSpace(name))) {
	case SquaredEuclidean, "euclidean", "":
		return SquaredEuclidean, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Squared returns the squared Euclidean distance of p from the origin
func Squared(p point.Point) uint64 {
	x := abs(p.X)
	y := abs(p.Y)
	return x*x + y*y
}

func abs(v int32) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}
