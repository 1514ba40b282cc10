// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock offers optional function fields to override
// behavior per test, with a map-backed default implementation.
package mocks
