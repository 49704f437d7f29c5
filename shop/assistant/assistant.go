// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/model"
	"github.com/ekspedientki/checkout/shop/queue"
)

// Assistant is the single consumer of the shared preparation queue. Every
// job it pops is answered with exactly one Completion on the job's inbox.
type Assistant struct {
	jobs      queue.WorkQueue[model.Job]
	intensity int
	processed int64
}

// New returns an assistant that will do intensity-scaled work per job.
func New(intensity int) *Assistant {
	return &Assistant{
		jobs:      queue.NewWorkQueue[model.Job](),
		intensity: intensity,
	}
}

// Submit enqueues job for preparation. It never blocks.
func (a *Assistant) Submit(job model.Job) {
	a.jobs.Submit(job)
}

// Stop asks the assistant to exit once the jobs already queued are done.
func (a *Assistant) Stop() {
	a.jobs.Close(1)
}

// Backlog returns the number of queued jobs.
func (a *Assistant) Backlog() int {
	return a.jobs.Len()
}

// Processed returns the number of completed jobs.
func (a *Assistant) Processed() int {
	return int(atomic.LoadInt64(&a.processed))
}

// Run processes jobs until Stop's marker is popped.
func (a *Assistant) Run() {
	log.Debug("Assistant has entered the shop")

	for {
		job, ok := a.jobs.Next()
		if !ok {
			break
		}

		logger := log.WithFields(log.Fields{"job": job.ID, "item": job.ItemID, "clerk": job.ClerkID})
		logger.Debug("Assistant is preparing item")

		result := Prepare(a.intensity)
		atomic.AddInt64(&a.processed, 1)

		// the job is not touched after this push
		job.Inbox.Push(model.Completion{
			JobID:   job.ID,
			ItemID:  job.ItemID,
			ClerkID: job.ClerkID,
			Result:  result,
		})

		logger.WithField("result", result).Debug("Assistant finished preparing item")
	}

	log.WithField("jobs", a.Processed()).Debug("Assistant is leaving the shop")
}
