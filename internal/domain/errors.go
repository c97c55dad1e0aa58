package domain

import "errors"

// Sentinel errors for failed axis lookups. Callers can distinguish a missing
// timestamp from a missing pressure level with errors.Is.
var (
	ErrNoMatchingTime  = errors.New("no matching timestamp")
	ErrNoMatchingLevel = errors.New("no matching pressure level")
)
