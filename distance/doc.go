// Package distance defines the metrics used to rank vectors against a query.
//
// # Supported Metrics
//
//   - Euclidean ("l2"): sqrt(Σ(aᵢ−bᵢ)²)
//   - Cosine ("cosine"): 1 − (a·b)/(‖a‖·‖b‖); a zero-norm operand yields 1
//   - InnerProduct ("ip"): 1 − a·b; may be negative
//
// For all three, smaller values mean more similar vectors.
//
// # Usage
//
//	m, err := distance.Parse("cosine")
//	if err != nil {
//	    // *ErrInvalidDistanceFunction: bad collection configuration
//	}
//	d, err := distance.Distance(m, query, candidate)
//
// Euclidean and inner-product distances over long vectors use SIMD kernels
// from github.com/viterin/vek when the CPU supports them. Cosine accumulates
// in float64 so that extreme magnitudes neither overflow nor underflow.
package distance
