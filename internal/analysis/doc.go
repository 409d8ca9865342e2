// Package analysis computes sample statistics of beam distributions.
//
//   - [Summarize]: per-column mean, sigma and extrema
//   - [Covariance]: sample covariance matrix of the coordinates
//   - [EstimateTwiss]: optics recovered from a sampled distribution
//   - [Histogram]: equal-width bin counts for column profiles
//
// # Emittance Recovery
//
// EstimateTwiss inverts the optics-to-covariance map on measured
// moments, per transverse plane:
//
//	emit  = sqrt(s11*s22 - s12^2)
//	beta  = s11 / emit
//	alpha = -s12 / emit
//
// so a distribution generated from Twiss parameters measures back to
// them within sampling error.
package analysis
