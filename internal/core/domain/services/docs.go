// Package services provides domain services that implement business rules
// spanning more than one aggregate in the servicetrack system.
//
// The package includes:
//   - AccessGate: A pure, stateless authorization decision over a principal snapshot
//
// Domain services hold no state of their own and derive every decision from
// the arguments passed in, following Domain-Driven Design principles.
package services
