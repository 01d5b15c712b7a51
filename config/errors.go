package config

import (
	"errors"
	"fmt"
)

// Validation errors, one per cross-field invariant. Validate reports
// the first violated invariant only, in a fixed order, so each sentinel
// alone identifies the failure.
var (
	ErrInvalidElectionTimeoutMinMax             = errors.New("election-timeout-min must be smaller than election-timeout-max")
	ErrElectionTimeoutLessThanHeartBeatInterval = errors.New("election-timeout-min must be greater than heartbeat-interval")
	ErrMaxPayloadEntriesTooSmall                = errors.New("max-payload-entries must be greater than 0")
)

// ErrUnknownFlag is returned by Build for an override token that does
// not match any configuration field.
var ErrUnknownFlag = errors.New("unknown flag")

// FieldError reports which configuration field failed to resolve, and why.
type FieldError struct {
	Field string // long-form flag name, e.g. "snapshot-policy"
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value for --%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
