// Package linkage implements agglomerative hierarchical clustering on a
// precomputed pairwise dissimilarity matrix.
//
// The input to Linkage is a condensed pairwise dissimilarity matrix: a
// flat slice storing only the upper triangle (excluding the diagonal)
// of the full N-by-N matrix, in row-major order. Its length must be
// N*(N-1)/2 for N observations. Dissimilarities must be reflexive
// (symmetric) and finite for every pair.
//
// Basic usage:
//
//	dend, err := linkage.Linkage(matrix, len(observations), linkage.MethodAverage)
//	for _, step := range dend.Steps() {
//		// step.Cluster1 and step.Cluster2 were merged at step.Dissimilarity
//	}
//
// # Choosing a method
//
// Single, complete, average, weighted and Ward linkage satisfy the
// reducibility property, which lets them run in O(N^2) time: single
// linkage uses a minimum spanning tree shortcut, and the rest use the
// nearest-neighbor chain algorithm. Centroid and median linkage do not
// satisfy reducibility and fall back to a generic priority-queue
// algorithm, which runs in O(N^2) memory and O(N^2 log N) time.
//
// # Amortizing allocation
//
// Linkage allocates a fresh Scratch for every call. Callers running
// many small clusterings back to back should instead build one
// Scratch with NewScratch and pass it to LinkageWith repeatedly:
//
//	s := linkage.NewScratch[float64]()
//	for _, matrix := range matrices {
//		dend, err := linkage.LinkageWith(s, matrix, n, linkage.MethodWard, linkage.DefaultConfig())
//		...
//	}
package linkage
