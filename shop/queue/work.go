// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package queue

// Work is either a unit of work or a shutdown marker. A consumer that pops
// a shutdown marker must stop popping from that queue.
type Work[T any] struct {
	value    T
	shutdown bool
}

// Payload wraps v as a unit of work.
func Payload[T any](v T) Work[T] {
	return Work[T]{value: v}
}

// Shutdown returns the marker telling one consumer to exit.
func Shutdown[T any]() Work[T] {
	return Work[T]{shutdown: true}
}

// IsShutdown reports whether w is a shutdown marker.
func (w Work[T]) IsShutdown() bool {
	return w.shutdown
}

// Value returns the wrapped payload. It is the zero value for shutdown markers.
func (w Work[T]) Value() T {
	return w.value
}

// WorkQueue is a queue of work items terminated by shutdown markers.
type WorkQueue[T any] struct {
	*Queue[Work[T]]
}

// NewWorkQueue returns an empty work queue.
func NewWorkQueue[T any]() WorkQueue[T] {
	return WorkQueue[T]{Queue: New[Work[T]]()}
}

// Submit pushes v as a unit of work.
func (q WorkQueue[T]) Submit(v T) {
	q.Push(Payload(v))
}

// Close pushes n shutdown markers, one per consumer.
func (q WorkQueue[T]) Close(n int) {
	for i := 0; i < n; i++ {
		q.Push(Shutdown[T]())
	}
}

// Next blocks for the next item. ok is false once a shutdown marker is popped.
func (q WorkQueue[T]) Next() (v T, ok bool) {
	w := q.Pop()
	if w.IsShutdown() {
		return v, false
	}
	return w.Value(), true
}
