// Package sqlite provides SQLite-backed persistence for the query
// history. The schema is managed through embedded migrations applied
// at open time.
package sqlite
