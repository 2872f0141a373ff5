package partition

import (
	"golang.org/x/sync/errgroup"
)

// Span is a contiguous half-open index range [Lo, Hi) owned by one worker.
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Clamp bounds a requested worker count to [1, n]. Over-subscription reduces
// the count silently; there are never more workers than items.
func Clamp(workers, n int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		// n == 0: a single empty span keeps callers loop-free.
		workers = 1
	}

	return workers
}

// Spans splits [0, n) into p contiguous spans. Sizes differ by at most one
// element; the first n%p spans each take one extra. Spans never overlap and
// their union is the full range.
//
// p must already be clamped to [1, max(n, 1)].
func Spans(n, p int) []Span {
	base := n / p
	remainder := n % p

	spans := make([]Span, p)
	lo := 0
	for k := range spans {
		take := base
		if k < remainder {
			take++
		}
		spans[k] = Span{Lo: lo, Hi: lo + take}
		lo += take
	}

	return spans
}

// Run executes fn once per span, each on its own goroutine, and waits for
// all of them. It returns the first error any span produced; even on error
// every started span runs to completion before Run returns, so callers may
// treat the return as a full barrier.
func Run(spans []Span, fn func(Span) error) error {
	var g errgroup.Group
	for _, span := range spans {
		span := span
		g.Go(func() error {
			return fn(span)
		})
	}

	return g.Wait()
}
