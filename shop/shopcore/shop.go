// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shopcore wires clerks, the assistant, the router, the spawner and
// the safe into one shop and runs it to completion.
package shopcore

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ekspedientki/checkout/shop/assistant"
	"github.com/ekspedientki/checkout/shop/clerk"
	"github.com/ekspedientki/checkout/shop/core"
	"github.com/ekspedientki/checkout/shop/customer"
	"github.com/ekspedientki/checkout/shop/fatalerror"
	"github.com/ekspedientki/checkout/shop/inventory"
	"github.com/ekspedientki/checkout/shop/invariant"
	"github.com/ekspedientki/checkout/shop/model"
	"github.com/ekspedientki/checkout/shop/router"
	"github.com/ekspedientki/checkout/shop/safe"
	"github.com/ekspedientki/checkout/shop/spawner"
)

// Stats is a live view of a running shop.
type Stats struct {
	Running            bool               `json:"running"`
	Elapsed            time.Duration      `json:"elapsed"`
	Customers          spawner.Counters   `json:"customers"`
	Lines              []int              `json:"lines"`
	Clerks             []model.ClerkStats `json:"clerks"`
	AssistantBacklog   int                `json:"assistantBacklog"`
	AssistantProcessed int                `json:"assistantProcessed"`
	Safe               int                `json:"safe"`
}

// Shop owns every actor of one simulation run.
type Shop struct {
	cfg          Config
	gateway      inventory.Gateway
	assistant    *assistant.Assistant
	clerks       []*clerk.Clerk
	router       *router.Router
	spawner      *spawner.Spawner
	safe         *safe.Safe
	clerksExited core.Gate

	mu       sync.Mutex
	started  time.Time
	finished time.Time
	ran      bool
}

// New validates cfg and builds a shop selling from gw.
func New(cfg Config, gw inventory.Gateway) (*Shop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gw == nil || gw.Len() == 0 {
		return nil, fatalerror.WrapErrorType(fatalerror.InvalidConfig, fmt.Errorf("%w: empty catalog", ErrInvalidConfig))
	}
	if cfg.MaxConcurrent < cfg.Clerks {
		log.WithFields(log.Fields{"maxConcurrent": cfg.MaxConcurrent, "clerks": cfg.Clerks}).
			Warn("Fewer concurrent customers than clerks, some clerks will stay idle")
	}
	if cfg.ShoppingList == nil {
		cfg.ShoppingList = customer.ShoppingList
	}

	s := &Shop{
		cfg:          cfg,
		gateway:      gw,
		assistant:    assistant.New(cfg.Intensity),
		safe:         safe.New(),
		clerksExited: core.NewGate(cfg.Clerks),
	}

	lanes := make([]router.Lane, cfg.Clerks)
	closers := make([]spawner.Closer, cfg.Clerks)
	for i := 0; i < cfg.Clerks; i++ {
		c := clerk.New(i, gw, s.assistant, s.safe, cfg.AssistantWait)
		s.clerks = append(s.clerks, c)
		lanes[i] = c
		closers[i] = c
	}

	r, err := router.New(lanes...)
	if err != nil {
		return nil, err
	}
	s.router = r

	numProducts := gw.Len()
	sp, err := spawner.New(spawner.Options{
		Quota:    cfg.Customers,
		Limit:    cfg.MaxConcurrent,
		Deadline: cfg.Deadline,
		NewCustomer: func(id int) (*customer.Customer, error) {
			list := cfg.ShoppingList(id, numProducts)
			for _, item := range list {
				if item < 0 || item >= numProducts {
					return nil, fmt.Errorf("%w: customer %d wants item %d", inventory.ErrUnknownProduct, id, item)
				}
			}
			return customer.New(id, cfg.Wallet, list)
		},
		Joiner:       r,
		Clerks:       closers,
		ClerksExited: s.clerksExited,
		Assistant:    s.assistant,
	})
	if err != nil {
		return nil, fatalerror.WrapErrorType(fatalerror.InvalidConfig, fmt.Errorf("%w: %s", ErrInvalidConfig, err))
	}
	s.spawner = sp

	return s, nil
}

// Run opens the shop and blocks until every actor has left. The summary is
// filled even when an error is returned.
func (s *Shop) Run(ctx context.Context) (model.RunSummary, error) {
	s.mu.Lock()
	if s.ran {
		s.mu.Unlock()
		return model.RunSummary{}, ErrAlreadyRun
	}
	s.ran = true
	s.started = time.Now()
	s.mu.Unlock()

	log.WithFields(log.Fields{
		"customers":     s.cfg.Customers,
		"clerks":        s.cfg.Clerks,
		"maxConcurrent": s.cfg.MaxConcurrent,
		"intensity":     s.cfg.Intensity,
		"assistantWait": s.cfg.AssistantWait,
	}).Info("Starting simulation")

	var g errgroup.Group
	g.Go(func() error {
		s.assistant.Run()
		return nil
	})
	for _, c := range s.clerks {
		c := c
		g.Go(func() error {
			defer func() {
				if err := s.clerksExited.WalkThrough(); err != nil {
					invariant.Violatef("clerk %d left twice: %s", c.ID(), err)
				}
			}()
			return c.Run()
		})
	}
	g.Go(func() error {
		return s.spawner.Run(ctx)
	})
	err := g.Wait()

	s.mu.Lock()
	s.finished = time.Now()
	elapsed := s.finished.Sub(s.started)
	s.mu.Unlock()

	summary := s.summary(elapsed)
	if balanceErr := s.checkBalance(summary); balanceErr != nil && err == nil {
		err = balanceErr
	}
	if err != nil {
		summary.FirstFatalError = err.Error()
		log.WithError(err).WithField("errorType", fatalerror.GetErrorType(err)).Error("Simulation ended with error")
	}

	log.WithFields(log.Fields{
		"earnings":  summary.Earnings,
		"served":    summary.CustomersServed,
		"abandoned": summary.Abandoned,
		"elapsed":   elapsed,
	}).Info("Simulation finished")
	return summary, err
}

func (s *Shop) summary(elapsed time.Duration) model.RunSummary {
	counters := s.spawner.Snapshot()
	summary := model.RunSummary{
		Earnings:        s.safe.Total(),
		CustomersServed: counters.Completed,
		Abandoned:       counters.Abandoned,
		AssistantJobs:   s.assistant.Processed(),
		Elapsed:         elapsed,
	}
	for _, r := range s.spawner.Receipts() {
		summary.ReceiptTotal += r.TotalDue
	}
	for _, c := range s.clerks {
		summary.Clerks = append(summary.Clerks, c.Stats())
	}
	return summary
}

// checkBalance verifies that what entered the safe is what the clerks
// took and what the customers were charged.
func (s *Shop) checkBalance(summary model.RunSummary) error {
	registers := summary.RegisterTotal()
	invariant.Checkf(summary.Earnings == registers, "safe holds %d, registers took %d", summary.Earnings, registers)
	invariant.Checkf(summary.Earnings == summary.ReceiptTotal, "safe holds %d, receipts total %d", summary.Earnings, summary.ReceiptTotal)
	invariant.Checkf(s.safe.Deposits() == len(s.clerks), "safe got %d deposits from %d clerks", s.safe.Deposits(), len(s.clerks))

	if summary.Earnings != registers || summary.Earnings != summary.ReceiptTotal {
		return fatalerror.WrapErrorType(fatalerror.InvariantViolation,
			fmt.Errorf("%w: safe %d, registers %d, receipts %d", ErrBalanceMismatch, summary.Earnings, registers, summary.ReceiptTotal))
	}
	return nil
}

// Stats returns a live view of the shop. It is safe to call at any time.
func (s *Shop) Stats() Stats {
	s.mu.Lock()
	running := s.ran && s.finished.IsZero()
	var elapsed time.Duration
	switch {
	case running:
		elapsed = time.Since(s.started)
	case s.ran:
		elapsed = s.finished.Sub(s.started)
	}
	s.mu.Unlock()

	stats := Stats{
		Running:            running,
		Elapsed:            elapsed,
		Customers:          s.spawner.Snapshot(),
		Lines:              s.router.Lengths(),
		AssistantBacklog:   s.assistant.Backlog(),
		AssistantProcessed: s.assistant.Processed(),
		Safe:               s.safe.Total(),
	}
	for _, c := range s.clerks {
		stats.Clerks = append(stats.Clerks, c.Stats())
	}
	return stats
}

// Receipts returns the receipts of every customer that paid, in the order
// they left the shop.
func (s *Shop) Receipts() []*model.Receipt {
	return s.spawner.Receipts()
}

// Config returns the validated configuration.
func (s *Shop) Config() Config {
	return s.cfg
}
