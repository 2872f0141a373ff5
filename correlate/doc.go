// Package correlate computes the full pairwise Pearson correlation matrix
// of a vector batch, flattened to its upper triangle.
//
// Two paths are provided. Coefficients is the sequential reference: for each
// unordered pair it mean-centers both vectors, scales each by its own L2
// magnitude, dots them and clamps to [-1, 1]. CoefficientsParallel
// pre-normalizes every vector once, shards the outer row index across a
// bounded worker count, and lets each worker write only the output slots of
// pairs it exclusively owns. No locks are needed; the join of all workers is
// the only synchronization point. Both paths emit the same values within
// floating-point tolerance, in the same order.
//
// Output ordering is part of the contract: pair (i, j), i < j, lands at
// PairIndex(n, i, j), row-major over the upper triangle. Downstream
// consumers rely on it.
package correlate
