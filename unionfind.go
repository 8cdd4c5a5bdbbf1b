package linkage

import "sort"

// sortStepsByDissimilarity stably sorts steps by ascending dissimilarity.
// A NaN dissimilarity panics: the engine declines to validate inputs for
// NaN, but a NaN surfacing this deep in a merge record indicates an
// engine defect, not a caller mistake worth recovering from gracefully.
func sortStepsByDissimilarity[T Float](steps []Step[T]) {
	sort.SliceStable(steps, func(i, j int) bool {
		a, b := float64(steps[i].Dissimilarity), float64(steps[j].Dissimilarity)
		if a != a || b != b {
			panic("linkage: NaN dissimilarity in dendrogram")
		}
		return a < b
	})
}

// unionFind is a specialized disjoint-set structure for assigning final
// dendrogram labels. It represents a fixed universe of 2N-1 cluster
// labels for N observations: 0..N-1 are the original observations and
// N..2N-2 are clusters created by merges, assigned in the order they are
// unioned.
type unionFind struct {
	// parent[i] is the parent of cluster i; parent[i] == i means i is a
	// root.
	parent []int
	// nextLabel is the label assigned to the next union.
	nextLabel int
}

// newUnionFind creates a union-find over the 2*n-1 labels for n
// observations.
func newUnionFind(n int) *unionFind {
	uf := &unionFind{}
	uf.reset(n)
	return uf
}

// reset reinitializes the union-find for n observations, reusing the
// underlying allocation.
func (uf *unionFind) reset(n int) {
	size := 0
	if n > 0 {
		size = 2*n - 1
	}
	if cap(uf.parent) < size {
		uf.parent = make([]int, size)
	} else {
		uf.parent = uf.parent[:size]
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	uf.nextLabel = n
}

// find returns the root label of the cluster containing label, applying
// path compression.
func (uf *unionFind) find(label int) int {
	root := label
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[label] != root {
		uf.parent[label], label = root, uf.parent[label]
	}
	return root
}

// union merges the clusters rooted at label1 and label2, assigning the
// next fresh label to their union. It is a no-op if they are already
// merged.
func (uf *unionFind) union(label1, label2 int) {
	if uf.find(label1) == uf.find(label2) {
		return
	}
	uf.parent[label1] = uf.nextLabel
	uf.parent[label2] = uf.nextLabel
	uf.nextLabel++
}

// relabelDendrogram rewrites every step of dend in place so that cluster
// labels follow the canonical scheme: 0..N-1 for observations, N..2N-2
// assigned in step order. If doSort is true, the
// steps are first reordered by ascending dissimilarity (a stable sort;
// NaN dissimilarity panics, since it indicates a defect upstream rather
// than a valid input — every update formula is defined for finite
// inputs only).
//
// Go does not allow methods to carry their own type parameters
// independent of the receiver's, so this lives as a free function over
// the non-generic unionFind rather than a method.
func relabelDendrogram[T Float](uf *unionFind, dend *Dendrogram[T], doSort bool) {
	uf.reset(dend.observations)
	if doSort {
		sortStepsByDissimilarity(dend.steps)
	}
	for i := range dend.steps {
		c1 := uf.find(dend.steps[i].Cluster1)
		c2 := uf.find(dend.steps[i].Cluster2)
		uf.union(c1, c2)

		size1 := dend.clusterSize(c1)
		size2 := dend.clusterSize(c2)
		dend.steps[i] = newStep(c1, c2, dend.steps[i].Dissimilarity, size1+size2)
	}
}
