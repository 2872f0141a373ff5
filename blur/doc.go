// Package blur implements a separable two-pass Gaussian blur over a raster
// matrix.
//
// Pass 1 averages each pixel horizontally over taps x-radius..x+radius into
// a scratch matrix; pass 2 averages the scratch vertically into the
// destination. Taps falling outside the image are omitted from both the
// numerator and the weight-sum denominator (no zero padding), so boundary
// pixels average only in-bounds samples. All three channels share one weight
// table and one accumulated weight sum per pixel.
//
// BlurParallel shards rows across workers per pass. Pass 2 reads scratch
// rows written by arbitrary pass-1 workers, so a hard barrier separates the
// passes: every pass-1 worker is joined before any pass-2 worker starts.
// Within a pass, workers write disjoint rows and need no locks. The weight
// table is computed once per call and shared read-only; recomputing it per
// worker would yield identical values, it is a pure function of the radius.
package blur
