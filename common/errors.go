// Copyright 2024 Contributors to the Vemorak project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"errors"
	"fmt"
)

// ErrNoBatch is reported (wrapped) by the batch-wait poll loop when the
// server has not anchored the event before the caller's deadline. It is a
// client-side condition, distinct from a transport TimeoutError.
var ErrNoBatch = errors.New("no batch assigned before deadline")

// ValidationError reports a locally-detectable contract violation (malformed
// tenant, scope, identifier or limit, or a guardrail mismatch). It is raised
// before any network I/O and is never worth retrying.
type ValidationError struct {
	Msg string
}

func (o *ValidationError) Error() string {
	return o.Msg
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TimeoutError reports that the transport layer signalled a request timeout.
// It is distinguished from APIError so that callers can apply their own
// retry policy; this layer never retries.
type TimeoutError struct {
	Op  string
	Err error
}

func (o *TimeoutError) Error() string {
	return fmt.Sprintf("VMP request timed out: %s", o.Op)
}

func (o *TimeoutError) Unwrap() error {
	return o.Err
}

// APIError reports a non-2xx response from the VMP service. Message is the
// server's "error" string when the body follows the VMP error contract,
// Details carries the optional structured "details" field, and RawBody holds
// the unparsed body text for debugging.
type APIError struct {
	StatusCode int
	Message    string
	Details    interface{}
	RawBody    string
}

func (o *APIError) Error() string {
	return fmt.Sprintf("VMP request failed (%d): %s", o.StatusCode, o.Message)
}
