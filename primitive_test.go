package linkage

// primitiveLinkage is the "naive" O(n^3) agglomerative clustering
// algorithm: at every step, scan every active pair for the global
// minimum dissimilarity, merge it, and update the matrix. It exists
// only as an unambiguous reference implementation for cross-checking
// the faster nnchain, generic and MST algorithms in tests.
func primitiveLinkage[T Float](matrix []T, observations int, method Method) *Dendrogram[T] {
	if method.onSquares() {
		newCondensedMatrix(matrix, observations).square()
	}
	dis := newCondensedMatrix(matrix, observations)

	dend := newDendrogram[T](observations)
	if dis.Observations() == 0 {
		return dend
	}
	s := NewScratch[T]()
	s.reset(dis.Observations())

	for step := 0; step < dis.Observations()-1; step++ {
		a, b, dist := primitiveArgmin(dis, s.active)

		sizeA, sizeB := s.sizes[a], s.sizes[b]
		switch method {
		case MethodSingle:
			s.active.forEachBefore(a, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodSingle(dis.at(x, a), &v); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodSingle(dis.at(a, x), &v); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				dis.updateAt(b, x, func(v T) T { methodSingle(dis.at(a, x), &v); return v })
			})
		case MethodComplete:
			s.active.forEachBefore(a, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodComplete(dis.at(x, a), &v); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodComplete(dis.at(a, x), &v); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				dis.updateAt(b, x, func(v T) T { methodComplete(dis.at(a, x), &v); return v })
			})
		case MethodAverage:
			s.active.forEachBefore(a, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodAverage(dis.at(x, a), &v, sizeA, sizeB); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodAverage(dis.at(a, x), &v, sizeA, sizeB); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				dis.updateAt(b, x, func(v T) T { methodAverage(dis.at(a, x), &v, sizeA, sizeB); return v })
			})
		case MethodWeighted:
			s.active.forEachBefore(a, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodWeighted(dis.at(x, a), &v); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodWeighted(dis.at(a, x), &v); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				dis.updateAt(b, x, func(v T) T { methodWeighted(dis.at(a, x), &v); return v })
			})
		case MethodWard:
			s.active.forEachBefore(a, func(x int) {
				sizeX := s.sizes[x]
				dis.updateAt(x, b, func(v T) T { methodWard(dis.at(x, a), &v, dist, sizeA, sizeB, sizeX); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				sizeX := s.sizes[x]
				dis.updateAt(x, b, func(v T) T { methodWard(dis.at(a, x), &v, dist, sizeA, sizeB, sizeX); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				sizeX := s.sizes[x]
				dis.updateAt(b, x, func(v T) T { methodWard(dis.at(a, x), &v, dist, sizeA, sizeB, sizeX); return v })
			})
		case MethodCentroid:
			s.active.forEachBefore(a, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodCentroid(dis.at(x, a), &v, dist, sizeA, sizeB); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodCentroid(dis.at(a, x), &v, dist, sizeA, sizeB); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				dis.updateAt(b, x, func(v T) T { methodCentroid(dis.at(a, x), &v, dist, sizeA, sizeB); return v })
			})
		case MethodMedian:
			s.active.forEachBefore(a, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodMedian(dis.at(x, a), &v, dist); return v })
			})
			s.active.forEachRange(a+1, b, func(x int) {
				dis.updateAt(x, b, func(v T) T { methodMedian(dis.at(a, x), &v, dist); return v })
			})
			s.active.forEachFrom(b+1, func(x int) {
				dis.updateAt(b, x, func(v T) T { methodMedian(dis.at(a, x), &v, dist); return v })
			})
		}
		s.merge(dend, a, b, dist)
	}
	relabelDendrogram(s.set, dend, method.sortsByDefault())
	sqrtSteps(dend, method)
	return dend
}

// primitiveArgmin scans every active pair for the smallest dissimilarity.
func primitiveArgmin[T Float](dis condensedMatrix[T], active *activeSet) (a, b int, min T) {
	min = maxValueT[T]()
	found := false
	active.forEach(func(row int) {
		active.forEachFrom(row+1, func(col int) {
			if d := dis.at(row, col); !found || d < min {
				a, b, min, found = row, col, d, true
			}
		})
	})
	return a, b, min
}
