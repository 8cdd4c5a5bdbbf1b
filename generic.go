package linkage

// generic performs hierarchical clustering using Müllner's "generic"
// algorithm: an addressable min-heap over clusters keyed by each
// cluster's cached nearest-neighbor distance, with lazy invalidation of
// stale cache entries. This is the only correct algorithm for centroid
// and median, whose update formulas do not satisfy the reducibility
// property the NN-chain algorithm depends on.
//
// It is also usable (and tested against, for cross-checking) the
// reducible methods, but nnchain and the MST shortcut are faster for
// those and are what Linkage/LinkageWith actually dispatch to.
func generic[T Float](s *Scratch[T], matrix []T, observations int, method Method, dend *Dendrogram[T]) {
	if method.onSquares() {
		newCondensedMatrix(matrix, observations).square()
	}
	dis := newCondensedMatrix(matrix, observations)

	dend.reset(observations)
	if dis.Observations() == 0 {
		return
	}
	s.reset(dis.Observations())

	n := dis.Observations()
	nearest := s.nearest
	s.queue.heapify(func(dists []T) {
		for row := 0; row < n-1; row++ {
			min, minDist := row+1, dis.at(row, row+1)
			for col := row + 2; col < n; col++ {
				if d := dis.at(row, col); d < minDist {
					min, minDist = col, d
				}
			}
			dists[row] = minDist
			nearest[row] = min
		}
	})

	for step := 0; step < n-1; step++ {
		var a int
		for {
			var ok bool
			a, ok = s.queue.Peek()
			if !ok {
				panic("linkage: generic algorithm ran out of active clusters early")
			}
			if dis.at(a, nearest[a]) == s.queue.Priority(a) {
				break
			}

			min := maxValueT[T]()
			s.active.forEachRange(a+1, n, func(x int) {
				if d := dis.at(a, x); d < min {
					min, nearest[a] = d, x
				}
			})
			s.queue.SetPriority(a, min)
		}

		a, _ = s.queue.Pop()
		b := nearest[a]
		dist := dis.at(a, b)

		switch method {
		case MethodSingle:
			genericSingle(s, dis, a, b)
		case MethodComplete:
			genericComplete(s, dis, a, b)
		case MethodAverage:
			genericAverage(s, dis, a, b)
		case MethodWeighted:
			genericWeighted(s, dis, a, b)
		case MethodWard:
			genericWard(s, dis, a, b)
		case MethodCentroid:
			genericCentroid(s, dis, a, b, dist)
		case MethodMedian:
			genericMedian(s, dis, a, b, dist)
		default:
			panic("linkage: generic does not support this method")
		}
		s.merge(dend, a, b, dist)
	}
	relabelDendrogram(s.set, dend, method.sortsByDefault())
	sqrtSteps(dend, method)
}

func genericSingle[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	ab := b
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodSingle(dis.at(x, a), &v); return v })
		if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodSingle(dis.at(a, x), &v); return v })
		if d := dis.at(x, ab); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		}
	})
	min := s.queue.Priority(b)
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodSingle(dis.at(a, x), &v); return v })
		if d := dis.at(ab, x); d < min {
			s.queue.SetPriority(b, d)
			s.nearest[b] = x
			min = d
		}
	})
}

func genericComplete[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	ab := b
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodComplete(dis.at(x, a), &v); return v })
		if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodComplete(dis.at(a, x), &v); return v })
	})
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodComplete(dis.at(a, x), &v); return v })
	})
}

func genericAverage[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	ab := b
	sizeA, sizeB := s.sizes[a], s.sizes[b]
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodAverage(dis.at(x, a), &v, sizeA, sizeB); return v })
		if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodAverage(dis.at(a, x), &v, sizeA, sizeB); return v })
		if d := dis.at(x, ab); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		}
	})
	min := s.queue.Priority(b)
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodAverage(dis.at(a, x), &v, sizeA, sizeB); return v })
		if d := dis.at(ab, x); d < min {
			s.queue.SetPriority(b, d)
			s.nearest[b] = x
			min = d
		}
	})
}

func genericWeighted[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	ab := b
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodWeighted(dis.at(x, a), &v); return v })
		if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodWeighted(dis.at(a, x), &v); return v })
		if d := dis.at(x, ab); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		}
	})
	min := s.queue.Priority(b)
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodWeighted(dis.at(a, x), &v); return v })
		if d := dis.at(ab, x); d < min {
			s.queue.SetPriority(b, d)
			s.nearest[b] = x
			min = d
		}
	})
}

func genericWard[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int) {
	ab := b
	sizeA, sizeB := s.sizes[a], s.sizes[b]
	dist := dis.at(a, b)
	s.active.forEachBefore(a, func(x int) {
		sizeX := s.sizes[x]
		dis.updateAt(x, b, func(v T) T { methodWard(dis.at(x, a), &v, dist, sizeA, sizeB, sizeX); return v })
		if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		sizeX := s.sizes[x]
		dis.updateAt(x, b, func(v T) T { methodWard(dis.at(a, x), &v, dist, sizeA, sizeB, sizeX); return v })
		if d := dis.at(x, ab); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		}
	})
	min := s.queue.Priority(b)
	s.active.forEachFrom(b+1, func(x int) {
		sizeX := s.sizes[x]
		dis.updateAt(b, x, func(v T) T { methodWard(dis.at(a, x), &v, dist, sizeA, sizeB, sizeX); return v })
		if d := dis.at(ab, x); d < min {
			s.queue.SetPriority(b, d)
			s.nearest[b] = x
			min = d
		}
	})
}

func genericCentroid[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int, dist T) {
	ab := b
	sizeA, sizeB := s.sizes[a], s.sizes[b]
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodCentroid(dis.at(x, a), &v, dist, sizeA, sizeB); return v })
		if d := dis.at(x, b); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		} else if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodCentroid(dis.at(a, x), &v, dist, sizeA, sizeB); return v })
		if d := dis.at(x, ab); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		}
	})
	min := s.queue.Priority(b)
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodCentroid(dis.at(a, x), &v, dist, sizeA, sizeB); return v })
		if d := dis.at(ab, x); d < min {
			s.queue.SetPriority(b, d)
			s.nearest[b] = x
			min = d
		}
	})
}

func genericMedian[T Float](s *Scratch[T], dis condensedMatrix[T], a, b int, dist T) {
	ab := b
	s.active.forEachBefore(a, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodMedian(dis.at(x, a), &v, dist); return v })
		if d := dis.at(x, b); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		} else if s.nearest[x] == a {
			s.nearest[x] = ab
		}
	})
	s.active.forEachRange(a+1, b, func(x int) {
		dis.updateAt(x, b, func(v T) T { methodMedian(dis.at(a, x), &v, dist); return v })
		if d := dis.at(x, ab); d < s.queue.Priority(x) {
			s.queue.SetPriority(x, d)
			s.nearest[x] = ab
		}
	})
	min := s.queue.Priority(b)
	s.active.forEachFrom(b+1, func(x int) {
		dis.updateAt(b, x, func(v T) T { methodMedian(dis.at(a, x), &v, dist); return v })
		if d := dis.at(ab, x); d < min {
			s.queue.SetPriority(b, d)
			s.nearest[b] = x
			min = d
		}
	})
}
