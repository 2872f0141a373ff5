// Package vector provides the numeric vector and batch leaf types used by
// the correlation engine.
//
// A Vector is an immutable-by-convention sequence of float64 samples; all
// derived quantities (mean, magnitude, centered and normalized copies) are
// pure functions that never mutate the receiver. A Batch groups vectors of
// one shared length and is read-only for the duration of a computation.
package vector
