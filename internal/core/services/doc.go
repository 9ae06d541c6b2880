// Package services implements the core query adapters.
//
// Every service binds one external archive client and exposes
// validate-then-delegate operations. The contract is uniform:
//
//  1. each required argument must be non-empty, checked before any
//     archive interaction;
//  2. the call is forwarded verbatim to the client, after trivial
//     coercions such as name-to-coordinate resolution;
//  3. a successful result is returned exactly as the client produced it;
//  4. any failure is tagged with module, component and operation, handed
//     to the reporting sink, and the caller receives a nil table.
//
// Services hold no state beyond their ports and share nothing with each
// other but the reporting convention.
package services
