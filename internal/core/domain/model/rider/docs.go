// Package rider contains the Rider aggregate: a courier account with a
// required vehicle registration, a mutable geo position, and the availability
// flag the delivery lifecycle engine toggles when a rider claims or completes
// a delivery. Only the lifecycle engine (and its reconciliation job) may flip
// availability; everything else treats the flag as read-only.
package rider
