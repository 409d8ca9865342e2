// Package sampler draws correlated multivariate Gaussian samples for
// beam generation.
//
// The single capability is the [Source] interface; [Gaussian] is the
// seeded default implementation:
//
//   - [New]: seeded sampler, identical seeds give identical streams
//   - [Default]: process-wide sampler, seeded from the clock on first use
//   - [SetDefault]: install a sampler once at startup for reproducibility
//
// # Degenerate Covariances
//
// Positive-definite covariances sample through gonum's Cholesky-based
// generator. Positive SEMI-definite covariances (zero-variance
// coordinates, exact correlations) fall back to an eigendecomposition
// drawing mean + Q·sqrt(Λ)·z, so a beam with zero momentum spread still
// samples. Covariances with genuinely negative eigenvalues fail with
// [ErrInvalidCovariance].
package sampler
