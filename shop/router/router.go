// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"errors"
	"sort"
	"sync"

	"github.com/ekspedientki/checkout/shop/core"
)

// ErrNoLanes is returned when a router is built without lanes.
var ErrNoLanes = errors.New("router has no lanes")

// Lane is a clerk's line as seen by arriving customers.
type Lane interface {
	ID() int
	QueueLen() int
	Enqueue(core.CheckoutFlow)
}

// Router sends each arriving customer to the shortest line.
type Router struct {
	mu    sync.Mutex
	lanes []Lane
}

// New returns a router over lanes, ordered by lane id.
func New(lanes ...Lane) (*Router, error) {
	if len(lanes) == 0 {
		return nil, ErrNoLanes
	}
	sorted := append([]Lane(nil), lanes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })
	return &Router{lanes: sorted}, nil
}

// Join puts flow at the back of the strictly shortest line, lowest id on
// ties, and returns that lane's id. Reading the lengths and pushing happen
// under one lock, so two arrivals never both see the same line as shortest.
func (r *Router) Join(flow core.CheckoutFlow) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	shortest := r.lanes[0]
	shortestLen := shortest.QueueLen()
	for _, lane := range r.lanes[1:] {
		if l := lane.QueueLen(); l < shortestLen {
			shortest, shortestLen = lane, l
		}
	}

	flow.Queued()
	shortest.Enqueue(flow)
	return shortest.ID()
}

// Lengths returns a snapshot of every line length, indexed like the lanes.
func (r *Router) Lengths() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	lengths := make([]int, len(r.lanes))
	for i, lane := range r.lanes {
		lengths[i] = lane.QueueLen()
	}
	return lengths
}
