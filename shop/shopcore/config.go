// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shopcore

import (
	"fmt"
	"time"

	"github.com/ekspedientki/checkout/shop/clerk"
	"github.com/ekspedientki/checkout/shop/fatalerror"
)

const (
	DefaultCustomers     = 100
	DefaultClerks        = 3
	DefaultMaxConcurrent = 10
	DefaultIntensity     = 100
	DefaultWallet        = 10000
)

// ListFunc builds the shopping list of customer id over numProducts products.
type ListFunc func(id, numProducts int) []int

// Config describes one simulation run.
type Config struct {
	Customers     int
	Clerks        int
	MaxConcurrent int
	Intensity     int
	Wallet        int
	AssistantWait clerk.WaitPolicy
	Deadline      time.Duration

	// ShoppingList defaults to customer.ShoppingList.
	ShoppingList ListFunc
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Customers:     DefaultCustomers,
		Clerks:        DefaultClerks,
		MaxConcurrent: DefaultMaxConcurrent,
		Intensity:     DefaultIntensity,
		Wallet:        DefaultWallet,
		AssistantWait: clerk.WaitSerial,
	}
}

// Validate returns ErrInvalidConfig, typed InvalidConfig, naming the first bad field.
func (c Config) Validate() error {
	var bad string
	switch {
	case c.Customers < 1:
		bad = fmt.Sprintf("customers must be at least 1, got %d", c.Customers)
	case c.Clerks < 1:
		bad = fmt.Sprintf("clerks must be at least 1, got %d", c.Clerks)
	case c.MaxConcurrent < 1:
		bad = fmt.Sprintf("max concurrent customers must be at least 1, got %d", c.MaxConcurrent)
	case c.Intensity < 1:
		bad = fmt.Sprintf("intensity must be at least 1, got %d", c.Intensity)
	case c.Wallet < 0:
		bad = fmt.Sprintf("wallet must not be negative, got %d", c.Wallet)
	case c.Deadline < 0:
		bad = fmt.Sprintf("deadline must not be negative, got %s", c.Deadline)
	case c.AssistantWait != clerk.WaitSerial && c.AssistantWait != clerk.WaitBatch:
		bad = fmt.Sprintf("unknown assistant wait policy %d", c.AssistantWait)
	default:
		return nil
	}
	return fatalerror.WrapErrorType(fatalerror.InvalidConfig, fmt.Errorf("%w: %s", ErrInvalidConfig, bad))
}
