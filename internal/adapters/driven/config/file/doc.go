// Package file implements a TOML-backed configuration store living in
// the cosmo config directory. Keys use dot notation; nested TOML
// tables are flattened on load so `[endpoints] gaia = "..."` reads
// back as "endpoints.gaia".
package file
