package domain

import (
	"fmt"
	"time"
)

// Module is the originating-module tag carried by every report.
const Module = "cosmo"

// ReportKind classifies a failure report.
type ReportKind string

const (
	// ReportArgument marks a precondition failure caught before any
	// archive interaction.
	ReportArgument ReportKind = "argument"

	// ReportDelegation marks a failure surfaced by an archive client,
	// whatever the underlying cause.
	ReportDelegation ReportKind = "delegation"
)

// Report is the structured error record handed to a reporting sink.
// A service never returns a failure to its caller; it builds one Report
// per failure and routes it out of band.
type Report struct {
	// ID uniquely identifies this record.
	ID string

	// Module is the originating module tag (always "cosmo").
	Module string

	// Component names the originating service, e.g. "SimbadService".
	Component string

	// Op names the operation that failed, e.g. "QueryObject".
	Op string

	// Kind classifies the failure.
	Kind ReportKind

	// Err is the underlying cause.
	Err error

	// Time is when the failure was recorded.
	Time time.Time
}

// Summary renders a one-line description of the report.
func (r Report) Summary() string {
	return fmt.Sprintf("%s: %s.%s (%s): %v", r.Module, r.Component, r.Op, r.Kind, r.Err)
}
