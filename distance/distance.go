package distance

import (
	"math"

	"github.com/hupe1980/vecspace/internal/math32"
)

// Distance returns the distance between a and b under metric m.
// Smaller values mean more similar vectors for every metric.
//
// It returns *ErrDimensionMismatch when len(a) != len(b) and
// *ErrUnknownMetric when m is not a supported metric. It does not allocate
// and is safe for concurrent use.
func Distance(m Metric, a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	switch m {
	case Euclidean:
		return EuclideanDistance(a, b), nil
	case Cosine:
		return CosineDistance(a, b), nil
	case InnerProduct:
		return InnerProductDistance(a, b), nil
	default:
		return 0, &ErrUnknownMetric{Metric: m}
	}
}

// Func is a function type for distance calculation.
// Implementations assume equal-length inputs.
type Func func(a, b []float32) float32

// Provider returns the unchecked distance function for the given metric.
//
// Callers that validate dimensions once up front (e.g. an index scanning
// vectors of a fixed dimension) can call the returned Func directly.
func Provider(m Metric) (Func, error) {
	switch m {
	case Euclidean:
		return EuclideanDistance, nil
	case Cosine:
		return CosineDistance, nil
	case InnerProduct:
		return InnerProductDistance, nil
	default:
		return nil, &ErrUnknownMetric{Metric: m}
	}
}

// EuclideanDistance returns sqrt(Σ(aᵢ−bᵢ)²).
// Assumes vectors are the same length (caller's responsibility).
func EuclideanDistance(a, b []float32) float32 {
	return math32.L2(a, b)
}

// CosineDistance returns 1 − (a·b)/(‖a‖·‖b‖), clamped to [0, 2].
//
// If either vector has zero norm the similarity is taken as 0 and the
// distance is exactly 1: a zero vector is equally dissimilar to everything.
// The same holds when a component is NaN or ±Inf and the similarity is
// undefined, so the result is always finite.
// Assumes vectors are the same length (caller's responsibility).
func CosineDistance(a, b []float32) float32 {
	dot, aa, bb := math32.DotNorms(a, b)

	if aa == 0 || bb == 0 {
		return 1
	}

	// sqrt(x*x) == x in float64 for any such x, so identical inputs give a
	// similarity of exactly 1.
	sim := dot / math.Sqrt(aa*bb)
	switch {
	case math.IsNaN(sim) || math.IsInf(sim, 0):
		return 1
	case sim > 1:
		sim = 1
	case sim < -1:
		sim = -1
	}

	return float32(1 - sim)
}

// InnerProductDistance returns 1 − a·b. The result has no lower bound.
// Assumes vectors are the same length (caller's responsibility).
func InnerProductDistance(a, b []float32) float32 {
	return 1 - math32.Dot(a, b)
}
