// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fatalerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorType(t *testing.T) {
	base := errors.New("gate canceled")

	var tests = []struct {
		input    error
		expected ErrorType
	}{
		{base, Unknown},
		{WrapErrorType(ProtocolError, base), ProtocolError},
		{fmt.Errorf("clerk 2: %w", WrapErrorType(DeadlineExceeded, base)), DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.input.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetErrorType(tt.input))
		})
	}
}

func TestWrapErrorTypeKeepsChain(t *testing.T) {
	base := errors.New("boom")
	err := WrapErrorType(InvariantViolation, base)
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, "Shop.InvariantViolation: boom", err.Error())
	assert.Nil(t, WrapErrorType(Unknown, nil))
}
