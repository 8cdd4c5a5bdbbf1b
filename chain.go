package linkage

// nnchain performs hierarchical clustering using Müllner's
// nearest-neighbor chain algorithm, the fast path for every reducible
// method except single linkage (which uses the MST shortcut instead).
//
// Squaring the matrix on entry and sqrtSteps on exit bracket the call for Ward,
// whose update formula is cheaper in squared form; average and weighted
// are unaffected since they're not computed on squares.
func nnchain[T Float](s *Scratch[T], matrix []T, observations int, method Method, dend *Dendrogram[T]) {
	if method.onSquares() {
		newCondensedMatrix(matrix, observations).square()
	}
	dis := newCondensedMatrix(matrix, observations)

	dend.reset(observations)
	if dis.Observations() == 0 {
		return
	}
	s.reset(dis.Observations())

	for step := 0; step < dis.Observations()-1; step++ {
		var a, b int
		var min T

		if len(s.chain) < 4 {
			a = s.active.first()
			s.chain = s.chain[:0]
			s.chain = append(s.chain, a)

			b = s.active.nth(1)
			min = dis.at(a, b)
			s.active.forEachFrom(b+1, func(i int) {
				if d := dis.at(a, i); d < min {
					min, b = d, i
				}
			})
		} else {
			n := len(s.chain)
			s.chain = s.chain[:n-2]
			b = s.chain[len(s.chain)-1]
			s.chain = s.chain[:len(s.chain)-1]
			a = s.chain[len(s.chain)-1]
			min = dis.at(a, b)
		}

		for {
			s.chain = append(s.chain, b)
			argmin, curMin := a, min
			s.active.forEachBefore(b, func(x int) {
				if d := dis.at(x, b); d < curMin {
					curMin, argmin = d, x
				}
			})
			s.active.forEachFrom(b+1, func(x int) {
				if d := dis.at(b, x); d < curMin {
					curMin, argmin = d, x
				}
			})
			min = curMin
			nextB := argmin
			a = s.chain[len(s.chain)-1]
			b = nextB
			if b == s.chain[len(s.chain)-2] {
				break
			}
		}
		if a > b {
			a, b = b, a
		}

		switch method {
		case MethodSingle:
			chainSingle(s, dis, a, b)
		case MethodComplete:
			chainComplete(s, dis, a, b)
		case MethodAverage:
			chainAverage(s, dis, a, b)
		case MethodWeighted:
			chainWeighted(s, dis, a, b)
		case MethodWard:
			chainWard(s, dis, a, b)
		default:
			panic("linkage: nnchain does not support this method")
		}
		s.merge(dend, a, b, min)
	}
	relabelDendrogram(s.set, dend, method.sortsByDefault())
	sqrtSteps(dend, method)
}

func chainSingle[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodSingle(dis.at(x, a), &v); return v })
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodSingle(dis.at(a, x), &v); return v })
	})
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodSingle(dis.at(a, x), &v); return v })
	})
}

func chainComplete[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodComplete(dis.at(x, a), &v); return v })
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodComplete(dis.at(a, x), &v); return v })
	})
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodComplete(dis.at(a, x), &v); return v })
	})
}

func chainAverage[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	sizeA, sizeB := s.sizes[a], s.sizes[b]
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodAverage(dis.at(x, a), &v, sizeA, sizeB); return v })
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodAverage(dis.at(a, x), &v, sizeA, sizeB); return v })
	})
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodAverage(dis.at(a, x), &v, sizeA, sizeB); return v })
	})
}

func chainWeighted[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodWeighted(dis.at(x, a), &v); return v })
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodWeighted(dis.at(a, x), &v); return v })
	})
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodWeighted(dis.at(a, x), &v); return v })
	})
}

func chainWard[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	dist := dis.at(a, b)
	sizeA, sizeB := s.sizes[a], s.sizes[b]
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
}

// sqrtSteps takes the square root of every step's dissimilarity if
// method operates on squared dissimilarities during clustering, so the
// dendrogram handed back to the caller always reports actual
// (unsquared) dissimilarities.
func sqrtSteps[T Float](dend *Dendrogram[T], method Method) {
	if !method.onSquares() {
		return
	}
	for i := range dend.steps {
		dend.steps[i].Dissimilarity = sqrtT(dend.steps[i].Dissimilarity)
	}
}
