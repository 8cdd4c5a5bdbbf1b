package linkage

import "fmt"

// Method selects the linkage criterion: the update formula used to
// recompute the dissimilarity between a newly merged cluster and every
// other live cluster.
type Method int

// The seven linkage criteria supported by the engine.
const (
	MethodSingle Method = iota
	MethodComplete
	MethodAverage
	MethodWeighted
	MethodWard
	MethodCentroid
	MethodMedian
)

// String returns the canonical lowercase name of the method, matching
// the selector strings accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodSingle:
		return "single"
	case MethodComplete:
		return "complete"
	case MethodAverage:
		return "average"
	case MethodWeighted:
		return "weighted"
	case MethodWard:
		return "ward"
	case MethodCentroid:
		return "centroid"
	case MethodMedian:
		return "median"
	default:
		return fmt.Sprintf("linkage.Method(%d)", int(m))
	}
}

// ParseMethod converts a selector string into a Method: one of
// "single", "complete", "average", "weighted", "ward", "centroid", or
// "median".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "single":
		return MethodSingle, nil
	case "complete":
		return MethodComplete, nil
	case "average":
		return MethodAverage, nil
	case "weighted":
		return MethodWeighted, nil
	case "ward":
		return MethodWard, nil
	case "centroid":
		return MethodCentroid, nil
	case "median":
		return MethodMedian, nil
	default:
		return 0, fmt.Errorf("linkage: unrecognized method name: %q", s)
	}
}

// reducible reports whether the method satisfies d(ab,x) >= min(d(a,x),
// d(b,x)), which makes it eligible for the NN-chain algorithm (and, for
// single linkage specifically, the MST shortcut).
func (m Method) reducible() bool {
	switch m {
	case MethodSingle, MethodComplete, MethodAverage, MethodWeighted, MethodWard:
		return true
	default:
		return false
	}
}

// onSquares reports whether this method computes dissimilarities on the
// square of the input values, to avoid repeated sqrt calls in the inner
// loop.
func (m Method) onSquares() bool {
	switch m {
	case MethodWard, MethodCentroid, MethodMedian:
		return true
	default:
		return false
	}
}

// sortsByDefault reports whether the dendrogram produced by this method
// is unconditionally sorted by dissimilarity (and relabeled) before
// being handed back to the caller. It is true for every reducible
// method: nnchain records merges in the order the chain finds reciprocal
// nearest neighbors, and the MST shortcut discovers edges in Prim order;
// neither order is guaranteed sorted, so both need the sort. Centroid and median are non-reducible and may produce
// genuine inversions; sorting them is left as an optional,
// Config-controlled post-processing step instead.
func (m Method) sortsByDefault() bool {
	return m.reducible()
}

// methodSingle updates b in place to the minimum of a and b.
func methodSingle[T Float](a T, b *T) {
	if a < *b {
		*b = a
	}
}

// methodComplete updates b in place to the maximum of a and b.
func methodComplete[T Float](a T, b *T) {
	if a > *b {
		*b = a
	}
}

// methodAverage updates b in place to the size-weighted average of a and b.
func methodAverage[T Float](a T, b *T, sizeA, sizeB int) {
	fa, fb := fromInt[T](sizeA), fromInt[T](sizeB)
	*b = (fa*a + fb**b) / (fa + fb)
}

// methodWeighted updates b in place to the unweighted average of a and b.
func methodWeighted[T Float](a T, b *T) {
	var half T = T(0.5)
	*b = half * (a + *b)
}

// methodWard updates b in place (both a and b hold squared dissimilarities)
// per the Lance-Williams recurrence for Ward's criterion.
func methodWard[T Float](a T, b *T, mergedDist T, sizeA, sizeB, sizeX int) {
	fa, fb, fx := fromInt[T](sizeA), fromInt[T](sizeB), fromInt[T](sizeX)
	numerator := (fx+fa)*a + (fx+fb)**b - fx*mergedDist
	*b = numerator / (fa + fb + fx)
}

// methodCentroid updates b in place (both a and b hold squared
// dissimilarities) per the centroid linkage recurrence.
func methodCentroid[T Float](a T, b *T, mergedDist T, sizeA, sizeB int) {
	fa, fb := fromInt[T](sizeA), fromInt[T](sizeB)
	sizeAB := fa + fb
	*b = ((fa*a+fb**b)/sizeAB) - ((fa * fb * mergedDist) / (sizeAB * sizeAB))
}

// methodMedian updates b in place (both a and b hold squared
// dissimilarities) per the median linkage recurrence.
func methodMedian[T Float](a T, b *T, mergedDist T) {
	var half, quarter T = T(0.5), T(0.25)
	*b = (half * (a + *b)) - (mergedDist * quarter)
}
