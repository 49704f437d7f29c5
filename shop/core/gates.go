// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"sync"
)

// Gate is a counting barrier. Waiters are released once the expected number
// of arrivals have walked through, or when the gate is canceled.
type Gate interface {
	Reset()
	SetCount(int) error
	WalkThrough() error
	AwaitGateCondition() error
	Arrived() int
	CancelWithError(error)
}

type gateImpl struct {
	count         int
	arrived       int
	gateCondition *sync.Cond
	canceled      bool
	err           error
}

// SetCount sets the expected number of arrivals on the gate
func (g *gateImpl) SetCount(count int) error {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()
	if count < 0 || count < g.arrived {
		return ErrGateIntegrity
	}
	g.count = count
	if g.arrived == g.count {
		g.gateCondition.Broadcast()
	}
	return nil
}

func (g *gateImpl) Reset() {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()
	if !g.canceled {
		g.arrived = 0
	}
}

// ErrGateIntegrity ...
var ErrGateIntegrity = errors.New("ErrGateIntegrity")

// ErrGateCanceled ...
var ErrGateCanceled = errors.New("ErrGateCanceled")

// WalkThrough walks through this gate without awaiting others.
func (g *gateImpl) WalkThrough() error {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()

	if g.arrived == g.count {
		return ErrGateIntegrity
	}

	g.arrived++

	if g.arrived == g.count {
		g.gateCondition.Broadcast()
	}

	return nil
}

// AwaitGateCondition suspends goroutine execution until gate condition
// is met or await is canceled via Cancel method.
func (g *gateImpl) AwaitGateCondition() error {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()

	for g.arrived != g.count && !g.canceled {
		g.gateCondition.Wait()
	}

	if g.canceled {
		if g.err != nil {
			return g.err
		}
		return ErrGateCanceled
	}

	return nil
}

// Arrived returns the number of arrivals since the last reset.
func (g *gateImpl) Arrived() int {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()
	return g.arrived
}

// CancelWithError cancels gate condition with error and awakes suspended goroutines.
func (g *gateImpl) CancelWithError(err error) {
	g.gateCondition.L.Lock()
	defer g.gateCondition.L.Unlock()
	g.canceled = true
	g.err = err
	g.gateCondition.Broadcast()
}

// NewGate returns new gate instance.
func NewGate(count int) Gate {
	return &gateImpl{
		count:         count,
		gateCondition: sync.NewCond(&sync.Mutex{}),
	}
}
