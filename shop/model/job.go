// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/google/uuid"

	"github.com/ekspedientki/checkout/shop/queue"
)

// Job asks the assistant to prepare one item for one clerk. The completion
// is pushed to Inbox, which belongs to the issuing clerk.
type Job struct {
	ID      uuid.UUID
	ItemID  int
	ClerkID int
	Inbox   *queue.Queue[Completion]
}

// NewJob returns a job routed back to inbox.
func NewJob(itemID, clerkID int, inbox *queue.Queue[Completion]) Job {
	return Job{
		ID:      uuid.New(),
		ItemID:  itemID,
		ClerkID: clerkID,
		Inbox:   inbox,
	}
}

// Completion is the assistant's one-shot answer to a Job.
type Completion struct {
	JobID   uuid.UUID
	ItemID  int
	ClerkID int
	Result  float64
}
