// Package store defines the persistence interfaces for the fleet API and
// the sentinel errors shared by every implementation.
//
// Handlers depend only on these interfaces; the PostgreSQL implementations
// live in internal/platform/postgres and test doubles in internal/mocks.
package store
