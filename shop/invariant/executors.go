// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invariant

// PanicViolationExecutor stops the simulation at the first violation.
type PanicViolationExecutor struct{}

var _ ViolationExecutor = (*PanicViolationExecutor)(nil)

func NewPanicViolationExecuter() *PanicViolationExecutor {
	return &PanicViolationExecutor{}
}

func (executor *PanicViolationExecutor) Exec(err ViolationError) {
	panic(err)
}

// NoopViolationExecutor drops violations so a run with asserts disabled
// still produces its summary.
type NoopViolationExecutor struct{}

var _ ViolationExecutor = (*NoopViolationExecutor)(nil)

func NewNoopViolationExecutor() *NoopViolationExecutor {
	return &NoopViolationExecutor{}
}

func (executor *NoopViolationExecutor) Exec(ViolationError) {}
