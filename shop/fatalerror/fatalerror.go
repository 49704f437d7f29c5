// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fatalerror

import "errors"

// This package defines the error categories a run can end with.
// Separate package for namespacing

// ErrorType is reported in the run summary.
type ErrorType string

const (
	ResourceExhausted  ErrorType = "Shop.ResourceExhausted"  // goroutine or allocation failure
	InvariantViolation ErrorType = "Shop.InvariantViolation" // logic bug caught by an assert
	ProtocolError      ErrorType = "Shop.ProtocolError"      // checkout handshake used out of order
	DeadlineExceeded   ErrorType = "Shop.DeadlineExceeded"   // sessions abandoned at the wall-clock limit
	InvalidConfig      ErrorType = "Shop.InvalidConfig"
	Unknown            ErrorType = "Unknown"
)

// Error tags an underlying error with its category.
type Error struct {
	Type ErrorType
	Err  error
}

// WrapErrorType returns err tagged with errorType, or nil when err is nil.
func WrapErrorType(errorType ErrorType, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Type: errorType, Err: err}
}

func (e *Error) Error() string {
	return string(e.Type) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GetErrorType returns the category of the first tagged error in err's chain.
func GetErrorType(err error) ErrorType {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Type
	}
	return Unknown
}
