// Package driving defines the interfaces through which external actors
// (the CLI) call INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement these interfaces.
//
// All operations share one contract: validate, delegate to the archive
// client, and on any failure report out of band and return a nil table.
// Callers observe absence, never an error value.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or archive package
package driving
