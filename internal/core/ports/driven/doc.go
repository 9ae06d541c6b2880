// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - The archive client ports (SimbadClient, VizierClient, GaiaClient,
//     IrsaClient, SdssClient, NedClient, MastClient, XMatchClient): one
//     opaque capability set per external archive
//   - NameResolver: name to coordinate resolution used for coercions
//   - Reporter: the external error-reporting sink
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
//   - HistoryStore: query history persistence. Can be nil; history is
//     then not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or archive package
package driven
