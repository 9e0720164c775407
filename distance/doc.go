// Package distance provides the vector similarity calculations used by the
// store's brute-force search.
//
// The only ranking metric is cosine similarity:
//
//	sim := distance.Cosine(a, b)
//
// Dot and Magnitude are exposed as building blocks for callers that want to
// precompute norms.
package distance
