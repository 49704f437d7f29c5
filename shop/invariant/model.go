// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invariant

// ViolationError describes a broken shop invariant, e.g. a receipt that was
// not settled or a clerk holding a completion for a job it never submitted.
type ViolationError struct {
	Statement string
}

func (err ViolationError) Error() string {
	return "Invariant violation: " + err.Statement
}

// ViolationExecutor decides what happens to a violation. The CLI installs
// the panicking executor unless --no-asserts is given.
type ViolationExecutor interface {
	Exec(ViolationError)
}
