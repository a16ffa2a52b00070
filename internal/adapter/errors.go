package adapter

import "errors"

var (
	// ErrExternalService is returned (wrapped) when the generation API call
	// fails, returns a non-2xx status, or yields a body that cannot be
	// decoded. It is always distinguishable from "no data yet": callers get
	// either a value or this error, never a silent empty success.
	ErrExternalService = errors.New("external generation service failed")

	// ErrMissingAPIKey is returned when a generation call is attempted
	// without a configured API key.
	ErrMissingAPIKey = errors.New("generation API key is not configured")
)
