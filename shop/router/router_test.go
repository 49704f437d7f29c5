// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ekspedientki/checkout/shop/core"
	"github.com/ekspedientki/checkout/shop/model"
)

// fakeLane is a line nobody serves, so its length only grows.
type fakeLane struct {
	id    int
	mu    sync.Mutex
	flows []core.CheckoutFlow
}

func (l *fakeLane) ID() int { return l.id }

func (l *fakeLane) QueueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.flows)
}

func (l *fakeLane) Enqueue(f core.CheckoutFlow) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flows = append(l.flows, f)
}

func newFlow(id int) core.CheckoutFlow {
	return core.NewCheckoutFlow(id, model.NewWallet(0))
}

func TestNewWithoutLanes(t *testing.T) {
	_, err := New()
	assert.Equal(t, ErrNoLanes, err)
}

func TestJoinPicksShortestLowestIDOnTie(t *testing.T) {
	lanes := []*fakeLane{{id: 2}, {id: 0}, {id: 1}}
	r, err := New(lanes[0], lanes[1], lanes[2])
	require.NoError(t, err)

	var picked []int
	for i := 0; i < 6; i++ {
		picked = append(picked, r.Join(newFlow(i)))
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, picked)
	assert.Equal(t, []int{2, 2, 2}, r.Lengths())
}

func TestJoinMarksFlowQueued(t *testing.T) {
	r, err := New(&fakeLane{id: 0})
	require.NoError(t, err)

	f := newFlow(1)
	r.Join(f)
	assert.Equal(t, core.CheckoutQueued, f.State())
}

func TestConcurrentJoinsStayBalanced(t *testing.T) {
	const lanesCount, perLane = 4, 50
	lanes := make([]Lane, lanesCount)
	for i := range lanes {
		lanes[i] = &fakeLane{id: i}
	}
	r, err := New(lanes...)
	require.NoError(t, err)

	var errg errgroup.Group
	for i := 0; i < lanesCount*perLane; i++ {
		id := i
		errg.Go(func() error {
			r.Join(newFlow(id))
			return nil
		})
	}
	require.NoError(t, errg.Wait())

	for _, l := range r.Lengths() {
		assert.Equal(t, perLane, l)
	}
}
