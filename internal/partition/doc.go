// Package partition implements the static work-partitioning protocol shared
// by the correlation and blur engines.
//
// An index range [0, n) is split into at most p contiguous, non-overlapping
// spans whose sizes differ by at most one; the remainder of n/p goes to the
// first n%p spans. The assignment depends only on (n, p), never on runtime
// scheduling, so results are reproducible for any worker count.
//
// Run fans the spans out to one goroutine each and joins them all before
// returning. The join is the barrier both engines rely on: no combined
// output is read, and no dependent phase starts, until every span of the
// current phase has completed.
package partition
