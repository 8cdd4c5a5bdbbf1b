package linkage

// Scratch holds the mutable working state used internally by the
// linkage algorithms: cluster sizes, the active-set tracker, the
// relabeling union-find, the NN-chain stack, and the generic
// algorithm's heap and nearest-neighbor cache.
//
// Plain Linkage allocates a fresh Scratch per call. Callers running many
// small clusterings back to back can instead build one Scratch and pass
// it to LinkageWith repeatedly, amortizing the O(N) allocation of its
// auxiliary structures across calls. This mirrors the kodama crate's
// LinkageState, the one piece of that source's allocation-reuse idiom
// worth carrying into this otherwise single-threaded, synchronous
// engine.
type Scratch[T Float] struct {
	sizes   []int
	active  *activeSet
	set     *unionFind
	chain   []int
	queue   *addressableHeap[T]
	nearest []int
	// minDist is scratch space for the MST shortcut's per-observation
	// minimum distance to the growing tree.
	minDist []T
}

// NewScratch returns an empty Scratch. It will be sized on first use by
// LinkageWith.
func NewScratch[T Float]() *Scratch[T] {
	return &Scratch[T]{
		active: newActiveSet(0),
		set:    newUnionFind(0),
		queue:  newAddressableHeap[T](0),
	}
}

// reset clears and resizes every piece of scratch space for n
// observations, reusing existing allocations where possible.
func (s *Scratch[T]) reset(n int) {
	s.sizes = growInts(s.sizes, n)
	for i := range s.sizes {
		s.sizes[i] = 1
	}
	s.active.reset(n)
	s.set.reset(n)
	s.chain = s.chain[:0]
	s.queue.reset(n)
	s.nearest = growInts(s.nearest, n)
	inf := infinityT[T]()
	s.minDist = growTs(s.minDist, n)
	for i := range s.minDist {
		s.minDist[i] = inf
	}
}

// merge records the merge of cluster1 and cluster2 (cluster1 < cluster2
// is not required by this helper, only by the final dendrogram) into
// dend, accumulating cluster2's size and removing cluster1 from the
// active set. Matches the original LinkageState::merge convention:
// cluster2's slot survives and is reused as the merged cluster.
func (s *Scratch[T]) merge(dend *Dendrogram[T], cluster1, cluster2 int, dissimilarity T) {
	s.sizes[cluster2] = s.sizes[cluster1] + s.sizes[cluster2]
	s.active.remove(cluster1)
	dend.push(newStep(cluster1, cluster2, dissimilarity, s.sizes[cluster2]))
}

func growInts(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}

func growTs[T Float](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
