// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import (
	mock "github.com/stretchr/testify/mock"

	"github.com/ekspedientki/checkout/shop/inventory"
)

// MockGateway is a testify mock of inventory.Gateway.
type MockGateway struct {
	mock.Mock
}

var _ inventory.Gateway = (*MockGateway)(nil)

func (_m *MockGateway) TryAcquire(id int) bool {
	return _m.Called(id).Bool(0)
}

func (_m *MockGateway) Release(id int) {
	_m.Called(id)
}

func (_m *MockGateway) Price(id int) int {
	return _m.Called(id).Int(0)
}

func (_m *MockGateway) NeedsAssistance(id int) bool {
	return _m.Called(id).Bool(0)
}

func (_m *MockGateway) Stock(id int) int {
	return _m.Called(id).Int(0)
}

func (_m *MockGateway) Len() int {
	return _m.Called().Int(0)
}

func NewMockGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGateway {
	mock := &MockGateway{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
