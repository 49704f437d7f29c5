// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clerk

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/core"
	"github.com/ekspedientki/checkout/shop/fatalerror"
	"github.com/ekspedientki/checkout/shop/inventory"
	"github.com/ekspedientki/checkout/shop/invariant"
	"github.com/ekspedientki/checkout/shop/model"
	"github.com/ekspedientki/checkout/shop/queue"
)

// JobSubmitter accepts preparation jobs.
type JobSubmitter interface {
	Submit(model.Job)
}

// Depositor receives a clerk's takings when the clerk leaves.
type Depositor interface {
	Deposit(amount int)
}

// Clerk serves checkouts from its own queue, one at a time, in FIFO order.
type Clerk struct {
	id        int
	checkouts queue.WorkQueue[core.CheckoutFlow]
	inbox     *queue.Queue[model.Completion]
	gateway   inventory.Gateway
	assistant JobSubmitter
	safe      Depositor
	policy    WaitPolicy

	mu        sync.Mutex
	register  int
	customers int
	items     int
	sales     int
	abandoned int
}

// New returns a clerk with an empty queue.
func New(id int, gateway inventory.Gateway, assistant JobSubmitter, safe Depositor, policy WaitPolicy) *Clerk {
	return &Clerk{
		id:        id,
		checkouts: queue.NewWorkQueue[core.CheckoutFlow](),
		inbox:     queue.New[model.Completion](),
		gateway:   gateway,
		assistant: assistant,
		safe:      safe,
		policy:    policy,
	}
}

func (c *Clerk) ID() int {
	return c.id
}

// Enqueue appends a checkout to this clerk's line.
func (c *Clerk) Enqueue(flow core.CheckoutFlow) {
	c.checkouts.Submit(flow)
}

// QueueLen returns the number of checkouts waiting in line.
func (c *Clerk) QueueLen() int {
	return c.checkouts.Len()
}

// Close tells the clerk to leave after the checkouts already in line.
func (c *Clerk) Close() {
	c.checkouts.Close(1)
}

// Register returns the takings so far.
func (c *Clerk) Register() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.register
}

// Stats returns a snapshot of what this clerk has handled.
func (c *Clerk) Stats() model.ClerkStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.ClerkStats{
		ID:        c.id,
		Customers: c.customers,
		Items:     c.items,
		Sales:     c.sales,
		Register:  c.register,
	}
}

// Abandoned returns the number of checkouts that were canceled mid-service.
func (c *Clerk) Abandoned() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.abandoned
}

// Run serves checkouts until the shutdown marker is popped, then deposits
// the register into the safe. It returns the first protocol failure seen.
func (c *Clerk) Run() error {
	logger := log.WithField("clerk", c.id)
	logger.Debug("Clerk has entered the shop")

	var firstErr error
	for {
		flow, ok := c.checkouts.Next()
		if !ok {
			break
		}

		err := c.serve(flow)
		if err == nil {
			continue
		}

		if fatalerror.GetErrorType(err) == fatalerror.ProtocolError {
			logger.WithError(err).Error("Checkout failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		c.mu.Lock()
		c.abandoned++
		c.mu.Unlock()
		logger.WithError(err).WithField("customer", flow.CustomerID()).Warn("Checkout abandoned")
	}

	takings := c.Register()
	c.safe.Deposit(takings)
	logger.WithField("register", takings).Debug("Clerk is leaving the shop")
	return firstErr
}

func protocolError(step string, err error) error {
	if errors.Is(err, core.ErrGateIntegrity) || errors.Is(err, core.ErrReceiptAlreadyIssued) {
		return fatalerror.WrapErrorType(fatalerror.ProtocolError, fmt.Errorf("%s: %w", step, err))
	}
	return fmt.Errorf("%s: %w", step, err)
}

func (c *Clerk) serve(flow core.CheckoutFlow) error {
	logger := log.WithFields(log.Fields{"clerk": c.id, "customer": flow.CustomerID()})
	logger.Debug("Clerk is serving customer")

	if err := flow.ClerkReady(); err != nil {
		return protocolError("clerk ready", err)
	}

	receipt := model.NewReceipt(flow.CustomerID(), c.id)
	pending := make(map[uuid.UUID]int)

	for {
		item, more, err := flow.AwaitItemRequest()
		if err != nil {
			c.abandon(receipt, pending)
			return protocolError("await item", err)
		}
		if !more {
			break
		}

		acquired := c.gateway.TryAcquire(item)
		if acquired {
			price := c.gateway.Price(item)
			invariant.Checkf(price > 0, "item %d has price %d", item, price)
			receipt.Add(item, price)

			if c.gateway.NeedsAssistance(item) {
				job := model.NewJob(item, c.id, c.inbox)
				pending[job.ID] = item
				logger.WithFields(log.Fields{"item": item, "job": job.ID}).Debug("Clerk requests assistant")
				c.assistant.Submit(job)

				if c.policy == WaitSerial {
					c.awaitCompletions(pending)
				}
			}
		} else {
			logger.WithField("item", item).Debug("Item out of stock")
		}

		if err := flow.ItemServed(acquired); err != nil {
			c.abandon(receipt, pending)
			return protocolError("item served", err)
		}
	}

	c.awaitCompletions(pending)
	invariant.Checkf(len(pending) == 0, "clerk %d issues receipt with %d pending jobs", c.id, len(pending))

	if err := flow.IssueReceipt(receipt); err != nil {
		c.abandon(receipt, pending)
		return protocolError("issue receipt", err)
	}

	logger.WithField("total", receipt.TotalDue).Debug("Clerk is waiting for payment")
	payment, err := flow.AwaitPayment()
	if err != nil {
		c.abandon(receipt, pending)
		return protocolError("await payment", err)
	}

	invariant.Checkf(payment.Paid == payment.TotalDue, "customer %d paid %d of %d", flow.CustomerID(), payment.Paid, payment.TotalDue)
	invariant.Checkf(receipt.Settled(), "receipt %s of customer %d is not settled", receipt.ID, flow.CustomerID())
	invariant.Checkf(payment.WalletBefore-payment.TotalDue == payment.WalletAfter,
		"customer %d wallet went from %d to %d paying %d", flow.CustomerID(), payment.WalletBefore, payment.WalletAfter, payment.TotalDue)

	c.mu.Lock()
	c.register += payment.Paid
	c.customers++
	c.items += len(receipt.Items)
	if len(receipt.Items) > 0 {
		c.sales++
	}
	c.mu.Unlock()

	logger.WithField("paid", payment.Paid).Debug("Clerk has been paid")
	if err := flow.Settle(); err != nil {
		return protocolError("settle", err)
	}
	return nil
}

// awaitCompletions blocks until every pending job has been answered.
func (c *Clerk) awaitCompletions(pending map[uuid.UUID]int) {
	for len(pending) > 0 {
		done := c.inbox.Pop()
		_, ok := pending[done.JobID]
		invariant.Checkf(ok, "clerk %d got completion for foreign job %s", c.id, done.JobID)
		delete(pending, done.JobID)
	}
}

// abandon drains outstanding jobs so their completions do not leak into the
// next checkout, then puts the unsold items back on the shelf.
func (c *Clerk) abandon(receipt *model.Receipt, pending map[uuid.UUID]int) {
	c.awaitCompletions(pending)
	for _, item := range receipt.Items {
		c.gateway.Release(item)
	}
}
