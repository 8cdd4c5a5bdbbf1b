package linkage

import (
	"log"
	"math"
)

// mst performs single-linkage clustering using Prim's minimum spanning
// tree algorithm, the fastest path for single linkage: O(N^2) time with
// no priority queue, at the cost of discovering merges in the order
// Prim's algorithm grows the tree rather than in increasing order of
// dissimilarity. mst relabels its output unconditionally
// (Method.sortsByDefault), which is what turns Prim's order into a
// valid, monotonic dendrogram.
func mst[T Float](s *Scratch[T], matrix []T, observations int, dend *Dendrogram[T]) {
	dis := newCondensedMatrix(matrix, observations)

	dend.reset(observations)
	if dis.Observations() == 0 {
		return
	}
	s.reset(dis.Observations())

	cluster := 0
	s.active.remove(cluster)

	for step := 0; step < dis.Observations()-1; step++ {
		minObs := s.active.first()
		if minObs == -1 {
			panic("linkage: mst ran out of active observations early")
		}
		minDist := s.minDist[minObs]

		s.active.forEachBefore(cluster, func(x int) {
			d := dis.at(x, cluster)
			if !isFinite(d) {
				log.Printf("linkage: mst encountered non-finite dissimilarity between %d and %d", x, cluster)
			}
			slot := &s.minDist[x]
			methodSingle(d, slot)
			if *slot < minDist {
				minObs, minDist = x, *slot
			}
		})
		s.active.forEachFrom(cluster, func(x int) {
			d := dis.at(cluster, x)
			if !isFinite(d) {
				log.Printf("linkage: mst encountered non-finite dissimilarity between %d and %d", cluster, x)
			}
			slot := &s.minDist[x]
			methodSingle(d, slot)
			if *slot < minDist {
				minObs, minDist = x, *slot
			}
		})

		s.merge(dend, minObs, cluster, minDist)
		cluster = minObs
	}
	relabelDendrogram(s.set, dend, true)
}

func isFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
