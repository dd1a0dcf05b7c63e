// Package testutil provides testing utilities for vecspace.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors, computing exact
// nearest neighbors, and verifying search results.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformRangeVectors(100, 128) // uniform [-1, 1)
//	units := rng.UnitVectors(100, 128)        // on the unit hypersphere
//
// # Exact Search (Ground Truth)
//
//	results := testutil.ExactTopK(query, dataset, k, distance.EuclideanDistance)
package testutil
