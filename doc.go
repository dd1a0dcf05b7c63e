// Package vecspace ranks vectors against a query under a per-collection
// distance metric.
//
// # Metrics
//
// A collection picks its metric once, at creation time, from the metadata
// key "hnsw:space":
//
//	"l2"      Euclidean distance sqrt(Σ(aᵢ−bᵢ)²)
//	"cosine"  1 − cos(a, b); a zero vector is at distance 1 from everything
//	"ip"      1 − a·b; may be negative
//
// Smaller distances always mean more similar vectors. Metric names are
// case-sensitive; anything else fails with *distance.ErrInvalidDistanceFunction.
//
// # Quick Start
//
//	c, err := vecspace.NewCollection("docs", 384, map[string]any{"hnsw:space": "cosine"})
//	if err != nil {
//	    return status.Error(vecspace.Code(err), err.Error())
//	}
//	_ = c.Insert(ctx, 1, embedding)
//	results, _ := c.Search(ctx, query, 10)
//
// # Errors
//
// Code and Status map every error returned by this module onto gRPC status
// codes, so an API layer can surface configuration errors as InvalidArgument.
//
// The distance package can be used on its own:
//
//	m, _ := distance.Parse("ip")
//	d, err := distance.Distance(m, a, b)
package vecspace
