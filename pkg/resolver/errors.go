package resolver

import "errors"

// Every failure of a resolve call is terminal for that call; nothing here is
// retried automatically.
var (
	// ErrDepthExceeded means the chain hit the hop bound before reaching a
	// terminal record.
	ErrDepthExceeded = errors.New("DNS resolution depth limit exceeded")

	// ErrNoRecords means the domain is unregistered or holds no matching
	// record.
	ErrNoRecords = errors.New("no DNS entries found")

	// ErrMalformedAddress means a terminal record carried a peer identifier
	// that does not parse.
	ErrMalformedAddress = errors.New("failed to parse ADNL address")

	// ErrUnsupportedRecord means the registry answered with a record kind
	// this resolver does not handle.
	ErrUnsupportedRecord = errors.New("unsupported or no final record type returned")
)
