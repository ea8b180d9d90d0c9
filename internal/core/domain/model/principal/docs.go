// Package principal provides the domain model for authenticated actors in the
// servicetrack system.
//
// The package includes:
//   - Principal: A read-only snapshot of an actor's identity, role, and approval state
//   - Role: An enumerated classification driving every authorization decision
//
// Key business rules:
//   - Every principal carries exactly one role; there are no multi-role flags
//   - Unapproved principals may not perform any mutating action
//   - Only approved staff or manager principals are assignable as technicians
//   - Role and approval changes happen in an external staff-management workflow;
//     this core only reads the directory
package principal
