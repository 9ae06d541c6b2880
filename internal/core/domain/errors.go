package domain

import "errors"

// Domain errors represent failures native to the query layer.
// Archive bindings wrap remote failures into these sentinels so the
// rest of the code can classify them with errors.Is.
var (
	// ErrEmptyArgument indicates a required argument was empty or nil.
	// Raised by a service before any archive interaction.
	ErrEmptyArgument = errors.New("cannot be empty")

	// ErrNotFound indicates the archive has no record of the target.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates missing or invalid archive credentials.
	ErrUnauthorized = errors.New("unauthorised")

	// ErrRateLimited indicates the archive rejected the call for quota.
	ErrRateLimited = errors.New("rate limited")

	// ErrRemoteQuery indicates the archive rejected the query itself
	// (malformed ADQL, unknown catalog, bad parameters).
	ErrRemoteQuery = errors.New("remote query rejected")

	// ErrUnavailable indicates the archive service is down or unreachable.
	ErrUnavailable = errors.New("archive unavailable")
)
