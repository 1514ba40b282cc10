// Package api contains the HTTP handlers and request/response DTOs for the
// fleet API. Handlers translate requests into validation calls and store
// operations; they hold no state of their own and are safe for concurrent
// invocation.
package api
