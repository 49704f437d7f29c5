// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ekspedientki/checkout/shop/model"
)

// ErrNoReceipt is returned when the receipt gate opens without a receipt.
var ErrNoReceipt = errors.New("ErrNoReceipt")

// ErrReceiptAlreadyIssued is returned on a second IssueReceipt.
var ErrReceiptAlreadyIssued = errors.New("ErrReceiptAlreadyIssued")

// ErrAlreadyPaid is returned on a second Pay.
var ErrAlreadyPaid = errors.New("ErrAlreadyPaid")

// Payment is what the clerk observes once the customer has paid.
type Payment struct {
	Paid         int
	TotalDue     int
	WalletBefore int
	WalletAfter  int
}

// CheckoutFlow wraps the barriers of a single customer/clerk checkout.
//
// The customer side calls AwaitClerk, RequestItem for each item,
// FinishItems, AwaitReceipt, Pay and AwaitSettlement. The clerk side mirrors
// it with ClerkReady, AwaitItemRequest/ItemServed, IssueReceipt,
// AwaitPayment and Settle.
type CheckoutFlow interface {
	ID() uuid.UUID
	CustomerID() int
	State() CheckoutState
	Queued()

	// customer side
	AwaitClerk() error
	RequestItem(itemID int) (acquired bool, err error)
	FinishItems() error
	AwaitReceipt() (*model.Receipt, error)
	Pay() (int, error)
	AwaitSettlement() error

	// clerk side
	ClerkReady() error
	AwaitItemRequest() (itemID int, more bool, err error)
	ItemServed(acquired bool) error
	IssueReceipt(*model.Receipt) error
	AwaitPayment() (Payment, error)
	Settle() error

	CancelWithError(error) bool
}

type checkoutFlowImpl struct {
	id         uuid.UUID
	customerID int
	wallet     *model.Wallet

	mu           sync.Mutex
	state        CheckoutState
	item         int
	more         bool
	acquired     bool
	receipt      *model.Receipt
	paid         bool
	walletBefore int
	cancelErr    error

	clerkReadyGate  Gate
	itemRequestGate Gate
	itemServedGate  Gate
	receiptGate     Gate
	paymentGate     Gate
	settlementGate  Gate
}

func (f *checkoutFlowImpl) ID() uuid.UUID {
	return f.id
}

func (f *checkoutFlowImpl) CustomerID() int {
	return f.customerID
}

func (f *checkoutFlowImpl) State() CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *checkoutFlowImpl) setState(s CheckoutState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != CheckoutAbandoned {
		f.state = s
	}
}

// Queued records that the customer has joined a clerk queue.
func (f *checkoutFlowImpl) Queued() {
	f.setState(CheckoutQueued)
}

// AwaitClerk suspends the customer until a clerk has picked it from the queue.
func (f *checkoutFlowImpl) AwaitClerk() error {
	if err := f.clerkReadyGate.AwaitGateCondition(); err != nil {
		return err
	}
	f.setState(CheckoutItemRound)
	return nil
}

// RequestItem hands one item to the clerk and waits for the clerk's answer.
func (f *checkoutFlowImpl) RequestItem(itemID int) (bool, error) {
	f.mu.Lock()
	f.item = itemID
	f.more = true
	f.mu.Unlock()

	if err := f.itemRequestGate.WalkThrough(); err != nil {
		return false, err
	}
	if err := f.itemServedGate.AwaitGateCondition(); err != nil {
		return false, err
	}

	f.mu.Lock()
	acquired := f.acquired
	f.mu.Unlock()

	// the clerk only walks the served gate again after our next request
	f.itemServedGate.Reset()
	return acquired, nil
}

// FinishItems tells the clerk the shopping list is exhausted.
func (f *checkoutFlowImpl) FinishItems() error {
	f.mu.Lock()
	f.more = false
	if f.state != CheckoutAbandoned {
		f.state = CheckoutAwaitingReceipt
	}
	f.mu.Unlock()

	return f.itemRequestGate.WalkThrough()
}

// AwaitReceipt suspends the customer until the clerk issues the receipt.
func (f *checkoutFlowImpl) AwaitReceipt() (*model.Receipt, error) {
	if err := f.receiptGate.AwaitGateCondition(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == CheckoutAbandoned {
		return nil, f.cancelErr
	}
	if f.receipt == nil {
		return nil, ErrNoReceipt
	}
	f.state = CheckoutPaying
	return f.receipt, nil
}

// Pay settles the full amount due from the customer's wallet and signals the
// clerk. A zero total still signals, so the handshake is the same for every sale.
func (f *checkoutFlowImpl) Pay() (int, error) {
	f.mu.Lock()
	if f.receipt == nil {
		f.mu.Unlock()
		return 0, ErrNoReceipt
	}
	if f.paid {
		f.mu.Unlock()
		return 0, ErrAlreadyPaid
	}
	f.paid = true
	f.receipt.AmountPaid = f.receipt.TotalDue
	f.wallet.Debit(f.receipt.AmountPaid)
	paid := f.receipt.AmountPaid
	f.mu.Unlock()

	return paid, f.paymentGate.WalkThrough()
}

// AwaitSettlement suspends the customer until the clerk has banked the payment.
func (f *checkoutFlowImpl) AwaitSettlement() error {
	if err := f.settlementGate.AwaitGateCondition(); err != nil {
		return err
	}
	f.setState(CheckoutDone)
	return nil
}

// ClerkReady is called by the clerk once the checkout has been popped.
func (f *checkoutFlowImpl) ClerkReady() error {
	return f.clerkReadyGate.WalkThrough()
}

// AwaitItemRequest suspends the clerk until the customer names the next item.
// more is false once the customer has finished its list.
func (f *checkoutFlowImpl) AwaitItemRequest() (int, bool, error) {
	if err := f.itemRequestGate.AwaitGateCondition(); err != nil {
		return 0, false, err
	}

	f.mu.Lock()
	item, more := f.item, f.more
	f.mu.Unlock()

	// reset before answering so the customer's next request is not lost
	f.itemRequestGate.Reset()
	return item, more, nil
}

// ItemServed answers the pending item request.
func (f *checkoutFlowImpl) ItemServed(acquired bool) error {
	f.mu.Lock()
	f.acquired = acquired
	f.mu.Unlock()

	return f.itemServedGate.WalkThrough()
}

// IssueReceipt hands the receipt to the customer. It may be called once.
func (f *checkoutFlowImpl) IssueReceipt(r *model.Receipt) error {
	f.mu.Lock()
	if f.receipt != nil {
		f.mu.Unlock()
		return ErrReceiptAlreadyIssued
	}
	f.receipt = r
	f.walletBefore = f.wallet.Balance()
	f.mu.Unlock()

	return f.receiptGate.WalkThrough()
}

// AwaitPayment suspends the clerk until the customer has paid.
func (f *checkoutFlowImpl) AwaitPayment() (Payment, error) {
	if err := f.paymentGate.AwaitGateCondition(); err != nil {
		return Payment{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return Payment{
		Paid:         f.receipt.AmountPaid,
		TotalDue:     f.receipt.TotalDue,
		WalletBefore: f.walletBefore,
		WalletAfter:  f.wallet.Balance(),
	}, nil
}

// Settle releases the customer once the payment is in the register.
func (f *checkoutFlowImpl) Settle() error {
	return f.settlementGate.WalkThrough()
}

// CancelWithError aborts the checkout and wakes both sides. A checkout whose
// customer already holds the receipt is left to finish; false is returned.
func (f *checkoutFlowImpl) CancelWithError(err error) bool {
	if err == nil {
		err = ErrGateCanceled
	}

	f.mu.Lock()
	if f.state == CheckoutPaying || f.state == CheckoutDone || f.state == CheckoutAbandoned {
		f.mu.Unlock()
		return false
	}
	f.state = CheckoutAbandoned
	f.cancelErr = err
	f.mu.Unlock()

	f.clerkReadyGate.CancelWithError(err)
	f.itemRequestGate.CancelWithError(err)
	f.itemServedGate.CancelWithError(err)
	f.receiptGate.CancelWithError(err)
	f.paymentGate.CancelWithError(err)
	f.settlementGate.CancelWithError(err)
	return true
}

// NewCheckoutFlow returns the barriers for one customer paying from wallet.
func NewCheckoutFlow(customerID int, wallet *model.Wallet) CheckoutFlow {
	return &checkoutFlowImpl{
		id:              uuid.New(),
		customerID:      customerID,
		wallet:          wallet,
		state:           CheckoutEntering,
		clerkReadyGate:  NewGate(1),
		itemRequestGate: NewGate(1),
		itemServedGate:  NewGate(1),
		receiptGate:     NewGate(1),
		paymentGate:     NewGate(1),
		settlementGate:  NewGate(1),
	}
}
