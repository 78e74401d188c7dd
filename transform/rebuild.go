package transform

import "iter"

// Builder constructs a container of kind C from a sequence of owned strings.
// The sequence is single pass.
type Builder[C any] func(iter.Seq[string]) C

// Trimmed lazily trims every element of seq. Under DropEmpty, elements that
// are empty after trimming are skipped.
func Trimmed(seq iter.Seq[string], p Policy) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s := range seq {
			s = Space(s)
			if !p.keep(s) {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Rebuild folds the trimmed, filtered elements of seq into a new container
// through build. Filtering happens before build sees an element, so set
// dedup and heap order are computed on retained values only.
func Rebuild[C any](seq iter.Seq[string], p Policy, build Builder[C]) C {
	return build(Trimmed(seq, p))
}
