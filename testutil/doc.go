// Package testutil provides testing utilities for vectordb.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors and computing
// exact cosine-ranked ground truth.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float32, 128)
//	rng.FillUniform(vec)                        // uniform [0, 1)
//	vecs := rng.UniformRangeVectors(1000, 128)  // uniform [-1, 1)
//
// # Exact Ranking (Ground Truth)
//
//	ranked := testutil.ExactTopK(query, dataset, k)
package testutil
