// Package domain contains the core entities of the fleet API, administrators
// and vehicles, together with the role enumeration and the field validation
// rules applied at the API boundary.
//
// Validation is deliberately exhaustive rather than fail-fast: every failing
// field contributes a message, in a fixed order, so clients can fix all
// issues in a single round trip.
package domain
