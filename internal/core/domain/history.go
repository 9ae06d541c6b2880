package domain

import "time"

// QueryRecord is one entry in the query history: which archive was
// asked what, and how it went. History is a log of past invocations,
// never a cache; results are not stored.
type QueryRecord struct {
	// ID uniquely identifies the record.
	ID string

	// Archive names the archive queried, e.g. "simbad".
	Archive string

	// Op names the operation, e.g. "QueryObject".
	Op string

	// Target is the human-readable query target (name, coordinate, ADQL).
	Target string

	// OK reports whether a result came back.
	OK bool

	// Detail carries the failure summary when OK is false.
	Detail string

	// Duration is how long the call took.
	Duration time.Duration

	// When is the invocation time.
	When time.Time
}
