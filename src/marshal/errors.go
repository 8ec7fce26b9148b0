// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package marshal

// ReasonOutOfMemory is the diagnostic attached to storage allocation failures.
const ReasonOutOfMemory = "out of memory while allocating a byte buffer"

// MarshalError reports a failure in the marshaling layer.
//
// The original failure is kept in Err and is reachable through [errors.Is]
// and [errors.As].
type MarshalError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *MarshalError) Error() string {
	if e.Err == nil {
		return "marshal: " + e.Reason
	}
	return "marshal: " + e.Reason + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *MarshalError) Unwrap() error { return e.Err }

func allocationError(cause error) error {
	return &MarshalError{Reason: ReasonOutOfMemory, Err: cause}
}
