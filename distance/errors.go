package distance

import "fmt"

// ErrInvalidDistanceFunction is returned by Parse for an unrecognized
// metric name. It reports bad user input.
type ErrInvalidDistanceFunction struct {
	Name string // Offending configuration string, verbatim
}

func (e *ErrInvalidDistanceFunction) Error() string {
	return fmt.Sprintf("invalid distance function %q", e.Name)
}

// ErrDimensionMismatch is returned when two compared vectors differ in length.
// It signals a broken contract in the caller, not bad user input.
type ErrDimensionMismatch struct {
	Expected int // Length of the first vector
	Actual   int // Length of the second vector
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrUnknownMetric is returned when a Metric value outside the supported
// set reaches the evaluator, e.g. through an unchecked integer conversion.
type ErrUnknownMetric struct {
	Metric Metric
}

func (e *ErrUnknownMetric) Error() string {
	return fmt.Sprintf("unknown metric: %d", int(e.Metric))
}
