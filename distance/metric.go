package distance

import "fmt"

// Metric represents the distance metric used for vector comparison.
//
// The set is closed. The zero value is not a valid metric, so an unset
// configuration field never silently selects one.
type Metric int

const (
	// Euclidean is the L2 distance sqrt(Σ(aᵢ−bᵢ)²). Wire name "l2".
	Euclidean Metric = iota + 1
	// Cosine is 1 − cos(a, b). Wire name "cosine".
	Cosine
	// InnerProduct is 1 − a·b. Wire name "ip". It can be negative.
	InnerProduct
)

// Wire names of the supported metrics.
const (
	NameEuclidean    = "l2"
	NameCosine       = "cosine"
	NameInnerProduct = "ip"
)

// Metrics returns every supported metric in declaration order.
func Metrics() []Metric {
	return []Metric{Euclidean, Cosine, InnerProduct}
}

// Parse maps a configuration string to its Metric.
//
// Matching is exact and case-sensitive. Any other input yields an
// *ErrInvalidDistanceFunction carrying s verbatim.
func Parse(s string) (Metric, error) {
	switch s {
	case NameEuclidean:
		return Euclidean, nil
	case NameCosine:
		return Cosine, nil
	case NameInnerProduct:
		return InnerProduct, nil
	default:
		return 0, &ErrInvalidDistanceFunction{Name: s}
	}
}

// String returns the wire name of m ("l2", "cosine" or "ip").
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return NameEuclidean
	case Cosine:
		return NameCosine
	case InnerProduct:
		return NameInnerProduct
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	switch m {
	case Euclidean, Cosine, InnerProduct:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, &ErrUnknownMetric{Metric: m}
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
