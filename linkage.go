package linkage

import (
	"errors"
	"fmt"
)

// ErrMatrixLength is returned by Linkage and LinkageWith, when
// Config.Validate is true, if the condensed matrix's length is
// inconsistent with the given number of observations.
var ErrMatrixLength = errors.New("linkage: matrix length inconsistent with observations")

// Config controls the optional, policy-level behavior of Linkage and
// LinkageWith. The zero value is the engine's default behavior: no
// input validation, and non-reducible methods left in merge order.
// Start with DefaultConfig and override the fields you need.
type Config struct {
	// Validate, if true, checks that len(matrix) ==
	// observations*(observations-1)/2 before clustering and returns
	// ErrMatrixLength instead of panicking if it doesn't. Default: false.
	Validate bool

	// Sort, if true and method is non-reducible (MethodCentroid or
	// MethodMedian), sorts the returned dendrogram's steps by ascending
	// dissimilarity and relabels them to match. Reducible methods are
	// always returned sorted regardless of this field: their algorithms
	// sort and relabel the steps unconditionally. Default: false.
	Sort bool
}

// DefaultConfig returns the zero-value Config: no validation, no
// optional sorting.
func DefaultConfig() Config {
	return Config{}
}

func validateMatrixLength[T Float](matrix []T, observations int) error {
	want := 0
	if observations > 1 {
		want = observations * (observations - 1) / 2
	}
	if len(matrix) != want {
		return fmt.Errorf("%w: have %d observations, want matrix of length %d, got %d",
			ErrMatrixLength, observations, want, len(matrix))
	}
	return nil
}

// Linkage performs hierarchical clustering on a condensed pairwise
// dissimilarity matrix using the given method, with DefaultConfig
// behavior. It allocates a fresh Scratch and Dendrogram for the call;
// callers clustering many small matrices back to back should use
// LinkageWith with a shared Scratch instead.
func Linkage[T Float](matrix []T, observations int, method Method) (*Dendrogram[T], error) {
	return LinkageWith(NewScratch[T](), matrix, observations, method, DefaultConfig())
}

// LinkageWith is like Linkage, but reuses s across calls to amortize
// the allocation Linkage would otherwise perform on every call, and
// accepts a Config to control optional validation and post-processing.
func LinkageWith[T Float](s *Scratch[T], matrix []T, observations int, method Method, cfg Config) (*Dendrogram[T], error) {
	if cfg.Validate {
		if err := validateMatrixLength(matrix, observations); err != nil {
			return nil, err
		}
	}

	dend := newDendrogram[T](observations)
	switch {
	case method == MethodSingle:
		mst(s, matrix, observations, dend)
	case method.reducible():
		nnchain(s, matrix, observations, method, dend)
	default:
		generic(s, matrix, observations, method, dend)
		if cfg.Sort {
			dend.SortByDissimilarity()
		}
	}
	return dend, nil
}
