// Package power computes RMS statistics of fixed-point vectors.
//
// The RMS value here is the mean of squared, fixed-point-scaled samples; the
// square root is omitted, as is conventional for fixed-point power kernels.
// Each function exists in a single-core form (RMSQ8, RMSQ16) and a multicore
// form (RMSQ8Parallel, RMSQ16Parallel) that partitions the vector across the
// cores of a [cluster.Team], computes a partial mean of squares per core, and
// combines the partials into a mean of means.
//
// The two-level parallel reduction is exact only when the block size divides
// evenly across the cores: with an uneven split the tail core's shorter
// sub-range is weighted like a full one, introducing a small bias
// proportional to the tail's relative size. This is an inherent property of
// the scheme, not a defect; callers that need the exact global value on
// uneven splits should use the single-core form.
package power
