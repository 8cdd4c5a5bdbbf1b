package linkage

// Step is a single merge record in a dendrogram: the creation of a new
// cluster by merging exactly two previously existing clusters.
//
// By convention Cluster1 is always the smaller of the two labels.
type Step[T Float] struct {
	// Cluster1 is the label of the first (smaller) cluster merged.
	Cluster1 int
	// Cluster2 is the label of the second (larger) cluster merged.
	Cluster2 int
	// Dissimilarity is the dissimilarity between Cluster1 and Cluster2
	// at the time of the merge.
	Dissimilarity T
	// Size is the total number of observations in the newly formed
	// cluster, equal to the size of Cluster1 plus the size of Cluster2.
	Size int
}

// newStep builds a Step, swapping the labels if necessary so that
// Cluster1 < Cluster2 always holds.
func newStep[T Float](cluster1, cluster2 int, dissimilarity T, size int) Step[T] {
	if cluster2 < cluster1 {
		cluster1, cluster2 = cluster2, cluster1
	}
	return Step[T]{Cluster1: cluster1, Cluster2: cluster2, Dissimilarity: dissimilarity, Size: size}
}

// Dendrogram is a stepwise representation of a hierarchical clustering of
// N observations, produced by Linkage or LinkageWith.
//
// It always has exactly max(0, N-1) steps. Labels 0..N-1 refer to the
// original observations; label N-1+k refers to the cluster created by
// the k-th step (1-indexed).
type Dendrogram[T Float] struct {
	steps        []Step[T]
	observations int
}

// newDendrogram returns an empty dendrogram with capacity for the given
// number of observations.
func newDendrogram[T Float](observations int) *Dendrogram[T] {
	return &Dendrogram[T]{steps: make([]Step[T], 0, observations), observations: observations}
}

// reset clears the dendrogram and resizes it to support the given number
// of observations, reusing its backing array.
func (d *Dendrogram[T]) reset(observations int) {
	d.steps = d.steps[:0]
	d.observations = observations
}

// push appends step, panicking if the dendrogram would exceed its
// observations-1 capacity — an internal invariant violation, never a
// caller mistake, since every algorithm is structured to call push
// exactly N-1 times.
func (d *Dendrogram[T]) push(step Step[T]) {
	if d.Len() >= max0(d.observations-1) {
		panic("linkage: dendrogram already has observations-1 steps")
	}
	d.steps = append(d.steps, step)
}

// Steps returns the merge records that make up this dendrogram, in
// step order.
func (d *Dendrogram[T]) Steps() []Step[T] {
	return d.steps
}

// Observations returns the number of observations this dendrogram
// clusters.
func (d *Dendrogram[T]) Observations() int {
	return d.observations
}

// Len returns the number of steps in the dendrogram (always
// max(0, Observations()-1)).
func (d *Dendrogram[T]) Len() int {
	return len(d.steps)
}

// clusterSize returns the total number of observations belonging to the
// cluster identified by label, which may name either an original
// observation (size 1) or a previously merged cluster.
func (d *Dendrogram[T]) clusterSize(label int) int {
	if label < d.observations {
		return 1
	}
	return d.steps[label-d.observations].Size
}

// SortByDissimilarity reorders the dendrogram's steps by ascending
// dissimilarity and relabels them to match, preserving the dependency
// DAG between steps. This is the optional post-processing available for
// non-reducible methods (centroid, median), whose merge order can
// contain genuine inversions; reducible methods are sorted
// unconditionally by Linkage/LinkageWith already and calling this again
// on their output is a no-op.
func (d *Dendrogram[T]) SortByDissimilarity() {
	uf := newUnionFind(d.observations)
	relabelDendrogram(uf, d, true)
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
