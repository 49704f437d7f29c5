// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package safe holds the shop's takings once clerks leave.
package safe

import "sync"

// Safe is a concurrency-safe running total.
type Safe struct {
	mu    sync.Mutex
	total int
	count int
}

func New() *Safe {
	return &Safe{}
}

// Deposit adds amount to the total.
func (s *Safe) Deposit(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total += amount
	s.count++
}

// Total returns the sum of all deposits so far.
func (s *Safe) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Deposits returns how many deposits were made.
func (s *Safe) Deposits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
