// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clerk

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ekspedientki/checkout/shop/core"
	"github.com/ekspedientki/checkout/shop/model"
	"github.com/ekspedientki/checkout/shop/testdata"
)

type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// recordingFlow logs the clerk side milestones of a checkout.
type recordingFlow struct {
	core.CheckoutFlow
	log *eventLog
}

func (f *recordingFlow) ClerkReady() error {
	f.log.add("ready %d", f.CustomerID())
	return f.CheckoutFlow.ClerkReady()
}

func (f *recordingFlow) IssueReceipt(r *model.Receipt) error {
	f.log.add("receipt %d", f.CustomerID())
	return f.CheckoutFlow.IssueReceipt(r)
}

func (f *recordingFlow) Settle() error {
	f.log.add("settle %d", f.CustomerID())
	return f.CheckoutFlow.Settle()
}

// instantAssistant answers every job as soon as it is submitted.
type instantAssistant struct {
	log       *eventLog
	mu        sync.Mutex
	submitted int
	overlaps  int
}

func (a *instantAssistant) Submit(job model.Job) {
	a.mu.Lock()
	a.submitted++
	if job.Inbox.Len() != 0 {
		a.overlaps++
	}
	a.mu.Unlock()
	if a.log != nil {
		a.log.add("prepared %d", job.ItemID)
	}
	job.Inbox.Push(model.Completion{JobID: job.ID, ItemID: job.ItemID, ClerkID: job.ClerkID})
}

// batchingAssistant holds completions until it has seen want jobs.
type batchingAssistant struct {
	want int
	log  *eventLog
	mu   sync.Mutex
	held []model.Job
}

func (a *batchingAssistant) Submit(job model.Job) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.held = append(a.held, job)
	if len(a.held) < a.want {
		return
	}
	for _, j := range a.held {
		a.log.add("prepared %d", j.ItemID)
		j.Inbox.Push(model.Completion{JobID: j.ID, ItemID: j.ItemID, ClerkID: j.ClerkID})
	}
	a.held = nil
}

func checkout(f core.CheckoutFlow, items []int) (*model.Receipt, error) {
	if err := f.AwaitClerk(); err != nil {
		return nil, err
	}
	for _, id := range items {
		if _, err := f.RequestItem(id); err != nil {
			return nil, err
		}
	}
	if err := f.FinishItems(); err != nil {
		return nil, err
	}
	r, err := f.AwaitReceipt()
	if err != nil {
		return nil, err
	}
	if _, err := f.Pay(); err != nil {
		return nil, err
	}
	return r, f.AwaitSettlement()
}

func TestClerkServesCustomersFIFO(t *testing.T) {
	safe := &testdata.Depositor{}
	c := New(0, testdata.NewScarceCatalog(), &instantAssistant{}, safe, WaitSerial)
	events := &eventLog{}

	var customers errgroup.Group
	for id := 0; id < 4; id++ {
		f := &recordingFlow{CheckoutFlow: core.NewCheckoutFlow(id, model.NewWallet(5000)), log: events}
		c.Enqueue(f)
		customers.Go(func() error {
			_, err := checkout(f, []int{testdata.ItemA})
			return err
		})
	}
	c.Close()

	require.NoError(t, c.Run())
	require.NoError(t, customers.Wait())

	assert.Equal(t, []string{
		"ready 0", "receipt 0", "settle 0",
		"ready 1", "receipt 1", "settle 1",
		"ready 2", "receipt 2", "settle 2",
		"ready 3", "receipt 3", "settle 3",
	}, events.snapshot())
	assert.Equal(t, model.ClerkStats{ID: 0, Customers: 4, Items: 4, Sales: 4, Register: 2000}, c.Stats())
	assert.Equal(t, []int{2000}, safe.Deposits)
}

func TestClerkChargesOnlyAcquiredItems(t *testing.T) {
	gw := testdata.NewMockGateway(t)
	gw.On("TryAcquire", 3).Return(true).Once()
	gw.On("TryAcquire", 4).Return(false).Once()
	gw.On("Price", 3).Return(250).Once()
	gw.On("NeedsAssistance", 3).Return(false).Once()

	c := New(1, gw, &instantAssistant{}, &testdata.Depositor{}, WaitSerial)
	wallet := model.NewWallet(1000)
	f := core.NewCheckoutFlow(9, wallet)
	c.Enqueue(f)
	c.Close()

	var errg errgroup.Group
	var receipt *model.Receipt
	errg.Go(func() (err error) {
		receipt, err = checkout(f, []int{3, 4})
		return err
	})
	require.NoError(t, c.Run())
	require.NoError(t, errg.Wait())

	assert.Equal(t, []int{3}, receipt.Items)
	assert.Equal(t, 250, receipt.TotalDue)
	assert.Equal(t, 250, receipt.AmountPaid)
	assert.Equal(t, 750, wallet.Balance())
	assert.Equal(t, 250, c.Register())
}

func TestClerkZeroTotalCheckout(t *testing.T) {
	gw := testdata.NewMockGateway(t)
	gw.On("TryAcquire", 1).Return(false).Once()

	safe := &testdata.Depositor{}
	c := New(0, gw, &instantAssistant{}, safe, WaitSerial)
	f := core.NewCheckoutFlow(2, model.NewWallet(10))
	c.Enqueue(f)
	c.Close()

	var errg errgroup.Group
	errg.Go(func() error {
		r, err := checkout(f, []int{1})
		if err == nil && r.TotalDue != 0 {
			return errors.New("expected an empty receipt")
		}
		return err
	})
	require.NoError(t, c.Run())
	require.NoError(t, errg.Wait())

	assert.Equal(t, model.ClerkStats{ID: 0, Customers: 1}, c.Stats())
	assert.Equal(t, core.CheckoutDone, f.State())
	assert.Equal(t, 0, safe.Total())
}

func TestClerkSerialWaitsForEachJob(t *testing.T) {
	assistant := &instantAssistant{}
	catalog := testdata.NewScarceCatalog()
	catalog.Release(testdata.ItemB)
	catalog.Release(testdata.ItemB)

	c := New(0, catalog, assistant, &testdata.Depositor{}, WaitSerial)
	f := core.NewCheckoutFlow(0, model.NewWallet(0))
	c.Enqueue(f)
	c.Close()

	var errg errgroup.Group
	errg.Go(func() error {
		_, err := checkout(f, []int{testdata.ItemB, testdata.ItemA, testdata.ItemB, testdata.ItemB})
		return err
	})
	require.NoError(t, c.Run())
	require.NoError(t, errg.Wait())

	assert.Equal(t, 3, assistant.submitted)
	assert.Equal(t, 0, assistant.overlaps)
	assert.Equal(t, 900*3+500, c.Register())
}

func TestClerkBatchWaitsBeforeReceipt(t *testing.T) {
	events := &eventLog{}
	catalog := testdata.NewScarceCatalog()
	catalog.Release(testdata.ItemB)

	// a serial clerk would deadlock here: completions only flow after two jobs
	assistant := &batchingAssistant{want: 2, log: events}
	c := New(0, catalog, assistant, &testdata.Depositor{}, WaitBatch)
	f := &recordingFlow{CheckoutFlow: core.NewCheckoutFlow(5, model.NewWallet(0)), log: events}
	c.Enqueue(f)
	c.Close()

	var errg errgroup.Group
	errg.Go(func() error {
		_, err := checkout(f, []int{testdata.ItemB, testdata.ItemA, testdata.ItemB})
		return err
	})
	require.NoError(t, c.Run())
	require.NoError(t, errg.Wait())

	assert.Equal(t, []string{"ready 5", "prepared 1", "prepared 1", "receipt 5", "settle 5"}, events.snapshot())
}

func TestClerkAbandonedCheckoutRestocks(t *testing.T) {
	catalog := testdata.NewScarceCatalog()
	c := New(0, catalog, &instantAssistant{}, &testdata.Depositor{}, WaitSerial)
	f := core.NewCheckoutFlow(0, model.NewWallet(100))
	c.Enqueue(f)
	c.Close()

	cause := errors.New("deadline")
	var errg errgroup.Group
	errg.Go(func() error {
		if err := f.AwaitClerk(); err != nil {
			return err
		}
		if _, err := f.RequestItem(testdata.ItemB); err != nil {
			return err
		}
		f.CancelWithError(cause)
		return nil
	})

	require.NoError(t, c.Run())
	require.NoError(t, errg.Wait())

	assert.Equal(t, 1, catalog.Stock(testdata.ItemB))
	assert.Equal(t, 1, c.Abandoned())
	assert.Equal(t, 0, c.Register())
	assert.Equal(t, core.CheckoutAbandoned, f.State())
}

func TestParseWaitPolicy(t *testing.T) {
	p, err := ParseWaitPolicy("batch")
	require.NoError(t, err)
	assert.Equal(t, WaitBatch, p)
	assert.Equal(t, "serial", WaitSerial.String())

	_, err = ParseWaitPolicy("parallel")
	assert.Error(t, err)
}
