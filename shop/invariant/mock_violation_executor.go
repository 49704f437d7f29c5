// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package invariant

import mock "github.com/stretchr/testify/mock"

// MockViolationExecutor lets tests expect specific shop violations instead
// of panicking.
type MockViolationExecutor struct {
	mock.Mock
}

var _ ViolationExecutor = (*MockViolationExecutor)(nil)

func (m *MockViolationExecutor) Exec(err ViolationError) {
	m.Called(err)
}

// NewMockViolationExecutor returns a mock whose expectations are asserted
// when the test ends.
func NewMockViolationExecutor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockViolationExecutor {
	executor := &MockViolationExecutor{}
	executor.Test(t)
	t.Cleanup(func() { executor.AssertExpectations(t) })
	return executor
}
