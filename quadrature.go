/*
Package quadrature provides Gauss-Kronrod quadrature rules for weight
functions given by their three-term recurrence coefficients, and batched
1-D integration with an embedded error estimate.

The sub-packages follow the data flow of the computation: orthopoly
produces recurrence coefficients, kronrod extends them to the
(2n+1)-point Kronrod rule, rule realizes coefficients as nodes and
weights through a symmetric tridiagonal eigenproblem and caches the
matched (Gauss, Kronrod) pairs, and integrate applies a pair to batches
of segments, sharing function evaluations between the two rules.
*/
package quadrature
