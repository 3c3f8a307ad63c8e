// Package pairing computes pair rotations that avoid repeating past pairings.
//
// The optimizer is a memoized exhaustive search over matchings of the available
// members. Its cost is exponential in the pool size, so it is meant for teams of
// tens of members; Options.MaxPoolSize and Options.MaxExpansions bound the work
// for larger pools. Nothing in this package performs I/O or keeps global state.
package pairing
