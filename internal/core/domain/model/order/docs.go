// Package order provides domain entities and business logic for service order
// management in the servicetrack system. It implements the Order aggregate root
// with lifecycle management, an append-only status log, and assignment relations.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, assignments, and lifecycle
//   - Status: A state machine over the order lifecycle statuses
//   - StatusEvent: An immutable entry of the append-only status log
//
// Key business rules:
//   - Orders must have a valid unique identifier, track number, customer, and item
//   - The nominal workflow is pending -> process -> waiting_approval -> ready -> done
//   - cancel is reachable from any non-terminal status; done and cancel are terminal
//   - The status log is append-only and its last entry matches the current status
//   - Technician and sales assignments are independent of the status machine
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
