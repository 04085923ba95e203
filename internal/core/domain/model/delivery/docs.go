// Package delivery contains the Delivery aggregate: the order entity tracked
// from creation through its terminal delivered state, with its item lines and
// append-only status image evidence log.
//
// The status set is deliberately open. Clients report arbitrary intermediate
// labels ("picked up", "at the gate", ...); the engine only distinguishes the
// initial waiting state and the terminal delivered state, because those two
// are what the rider-availability coupling keys on. There is no transition
// whitelist beyond that.
package delivery
