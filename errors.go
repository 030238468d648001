package paginator

import "errors"

// Failures raised by this package wrap one of these sentinels so callers can
// distinguish the kind with errors.Is while still getting a readable message.
// Collaborator failures (query execution, connectivity) are forwarded as-is
// and never wrapped.
var (
	// ErrNotImplemented is returned by Base.Paginate. Calling paginate on
	// the base contract instead of a concrete strategy is a programming
	// error, not a recoverable condition.
	ErrNotImplemented = errors.New("paginator: not implemented")

	// ErrInvalidArgument reports caller-supplied bad input: a non-positive
	// limit, an offset that does not align to the limit, or a malformed
	// cursor token. It is always raised before any query executes.
	ErrInvalidArgument = errors.New("paginator: invalid argument")
)
