// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package spawner admits customers into the shop, never more than a fixed
// number at a time, and closes the shop once every customer has left.
package spawner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/core"
	"github.com/ekspedientki/checkout/shop/customer"
	"github.com/ekspedientki/checkout/shop/fatalerror"
	"github.com/ekspedientki/checkout/shop/invariant"
	"github.com/ekspedientki/checkout/shop/model"
)

// ErrDeadlineExceeded cancels the checkouts still running when the
// shop's deadline expires.
var ErrDeadlineExceeded = errors.New("shop deadline exceeded")

// ErrInvalidOptions is returned by New for a non-positive quota or limit.
var ErrInvalidOptions = errors.New("invalid spawner options")

// Closer is a clerk's line that accepts a shutdown marker.
type Closer interface {
	Close()
}

// Stopper is the assistant's queue that accepts a shutdown marker.
type Stopper interface {
	Stop()
}

// CustomerFactory builds customer id.
type CustomerFactory func(id int) (*customer.Customer, error)

// Options configure a Spawner.
type Options struct {
	Quota    int
	Limit    int
	Deadline time.Duration

	NewCustomer CustomerFactory
	Joiner      customer.Joiner

	Clerks []Closer
	// ClerksExited is walked through once by every clerk after it left.
	// The assistant is only stopped after it opens. Optional.
	ClerksExited core.Gate
	Assistant    Stopper

	// OnAdmit observes the counters right after each admission.
	OnAdmit func(Counters)
}

// Counters is a snapshot of the admission state.
type Counters struct {
	Active    int `json:"active"`
	Spawned   int `json:"spawned"`
	Quota     int `json:"quota"`
	Limit     int `json:"limit"`
	Completed int `json:"completed"`
	Abandoned int `json:"abandoned"`
}

// Spawner is the admission controller.
type Spawner struct {
	opts Options

	mu        sync.Mutex
	slotFree  *sync.Cond
	active    int
	spawned   int
	completed int
	abandoned int
	flows     map[int]core.CheckoutFlow
	receipts  []*model.Receipt
	expired   error
	finished  bool
	firstErr  error

	sessionsDone core.Gate
}

// New returns a spawner that will admit opts.Quota customers, at most
// opts.Limit at a time.
func New(opts Options) (*Spawner, error) {
	if opts.Quota < 1 || opts.Limit < 1 || opts.Deadline < 0 {
		return nil, fmt.Errorf("%w: quota %d, limit %d, deadline %s", ErrInvalidOptions, opts.Quota, opts.Limit, opts.Deadline)
	}
	if opts.NewCustomer == nil || opts.Joiner == nil {
		return nil, fmt.Errorf("%w: customer factory and joiner are required", ErrInvalidOptions)
	}

	s := &Spawner{
		opts:         opts,
		flows:        make(map[int]core.CheckoutFlow),
		sessionsDone: core.NewGate(opts.Quota),
	}
	s.slotFree = sync.NewCond(&s.mu)
	return s, nil
}

// Snapshot returns the current counters.
func (s *Spawner) Snapshot() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countersLocked()
}

func (s *Spawner) countersLocked() Counters {
	return Counters{
		Active:    s.active,
		Spawned:   s.spawned,
		Quota:     s.opts.Quota,
		Limit:     s.opts.Limit,
		Completed: s.completed,
		Abandoned: s.abandoned,
	}
}

// Receipts returns the receipts of every customer that paid.
func (s *Spawner) Receipts() []*model.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.Receipt(nil), s.receipts...)
}

// Run admits customers until the quota is spawned, waits for all of them to
// leave, then sends the shutdown cascade. If the deadline or ctx expires
// first, admission stops, active checkouts are canceled and the cascade
// still runs.
func (s *Spawner) Run(ctx context.Context) error {
	var cancel context.CancelFunc
	if s.opts.Deadline > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.opts.Deadline)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			s.expire(cancelCause(ctx.Err()))
		case <-done:
		}
	}()

	log.WithFields(log.Fields{"quota": s.opts.Quota, "limit": s.opts.Limit}).Info("Shop is open")

	for id := 0; id < s.opts.Quota; id++ {
		c, err := s.opts.NewCustomer(id)
		if err != nil {
			s.fail(fmt.Errorf("customer %d: %w", id, err))
			break
		}
		if !s.admit(c) {
			break
		}
		go s.session(c)
	}

	s.mu.Lock()
	spawned := s.spawned
	s.mu.Unlock()
	if err := s.sessionsDone.SetCount(spawned); err != nil {
		invariant.Violatef("sessions gate rejects count %d: %s", spawned, err)
	}
	if err := s.sessionsDone.AwaitGateCondition(); err != nil {
		return err
	}

	s.mu.Lock()
	s.finished = true
	counters := s.countersLocked()
	expired, firstErr := s.expired, s.firstErr
	s.mu.Unlock()
	close(done)

	invariant.Checkf(counters.Active == 0, "%d customers still inside after all sessions ended", counters.Active)
	invariant.Checkf(counters.Completed+counters.Abandoned == counters.Spawned,
		"completed %d plus abandoned %d differ from spawned %d", counters.Completed, counters.Abandoned, counters.Spawned)

	log.WithFields(log.Fields{"completed": counters.Completed, "abandoned": counters.Abandoned}).Info("All customers have left")
	s.cascade()

	if firstErr != nil {
		return firstErr
	}
	return expired
}

// admit blocks until a slot is free and registers c's flow. It returns
// false once the spawner has expired.
func (s *Spawner) admit(c *customer.Customer) bool {
	s.mu.Lock()
	for s.active == s.opts.Limit && s.expired == nil && s.firstErr == nil {
		s.slotFree.Wait()
	}
	if s.expired != nil || s.firstErr != nil {
		s.mu.Unlock()
		return false
	}

	s.active++
	s.spawned++
	s.flows[c.ID()] = c.Flow()
	invariant.Checkf(s.active >= 0 && s.active <= s.opts.Limit, "active %d outside [0, %d]", s.active, s.opts.Limit)
	invariant.Checkf(s.spawned <= s.opts.Quota, "spawned %d over quota %d", s.spawned, s.opts.Quota)
	counters := s.countersLocked()
	s.mu.Unlock()

	log.WithFields(log.Fields{"customer": c.ID(), "active": counters.Active}).Debug("Customer admitted")
	if s.opts.OnAdmit != nil {
		s.opts.OnAdmit(counters)
	}
	return true
}

func (s *Spawner) session(c *customer.Customer) {
	result, err := c.Run(s.opts.Joiner)
	s.releaseSlot(c, result, err)
}

func (s *Spawner) releaseSlot(c *customer.Customer, result customer.Result, err error) {
	logger := log.WithField("customer", c.ID())

	s.mu.Lock()
	s.active--
	delete(s.flows, c.ID())
	switch {
	case err == nil:
		s.completed++
		s.receipts = append(s.receipts, result.Receipt)
	case c.Flow().State() == core.CheckoutAbandoned:
		s.abandoned++
		logger.WithError(err).Warn("Customer left without paying")
	default:
		s.abandoned++
		if s.firstErr == nil {
			s.firstErr = fatalerror.WrapErrorType(fatalerror.ProtocolError, fmt.Errorf("customer %d: %w", c.ID(), err))
		}
		logger.WithError(err).Error("Checkout failed")
	}
	s.slotFree.Signal()
	s.mu.Unlock()

	if err := s.sessionsDone.WalkThrough(); err != nil {
		invariant.Violatef("customer %d left twice: %s", c.ID(), err)
	}
}

// fail stops admission after an unrecoverable error.
func (s *Spawner) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.firstErr == nil {
		s.firstErr = err
	}
	s.slotFree.Broadcast()
}

// expire stops admission and cancels every flow still in progress. Flows
// whose customer already holds the receipt are left to finish.
func (s *Spawner) expire(cause error) {
	s.mu.Lock()
	if s.finished || s.expired != nil {
		s.mu.Unlock()
		return
	}
	s.expired = cause
	flows := make([]core.CheckoutFlow, 0, len(s.flows))
	for _, flow := range s.flows {
		flows = append(flows, flow)
	}
	s.slotFree.Broadcast()
	s.mu.Unlock()

	log.WithError(cause).WithField("active", len(flows)).Warn("Shop is closing early")
	for _, flow := range flows {
		if !flow.CancelWithError(cause) {
			log.WithField("customer", flow.CustomerID()).Debug("Customer is already paying, letting checkout finish")
		}
	}
}

// cascade sends one shutdown marker to every clerk and, once all clerks
// are gone, one to the assistant.
func (s *Spawner) cascade() {
	for _, clerk := range s.opts.Clerks {
		clerk.Close()
	}
	if s.opts.ClerksExited != nil {
		if err := s.opts.ClerksExited.AwaitGateCondition(); err != nil {
			log.WithError(err).Error("Awaiting clerks failed")
		}
	}
	if s.opts.Assistant != nil {
		s.opts.Assistant.Stop()
	}
	log.Debug("Shutdown cascade sent")
}

func cancelCause(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fatalerror.WrapErrorType(fatalerror.DeadlineExceeded, ErrDeadlineExceeded)
	}
	return fatalerror.WrapErrorType(fatalerror.Unknown, err)
}
