// Package linear provides the linearized solution of the growth
// model around its steady state, used as an independent reference for the
// grid-based solvers in package ddp.
//
// The Euler equation and the resource constraint, linearized in deviations
// x = (c − c*, k − k*), give x(t+1) = A·x(t) with
//
//	coeff = u'(c*)·f''(k*) / u''(c*)
//	A     = [[1 + β·coeff, −coeff],
//	         [−1,          1/β  ]]
//
// A has one eigenvalue below one and one above 1/β. Pinning consumption to
// the eigenvector of the stable root gives the saddle path
//
//	c − c* = slope·(k − k*)
//
// along which capital converges geometrically at the stable root.
package linear
