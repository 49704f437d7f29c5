// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package customer

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ekspedientki/checkout/shop/core"
	"github.com/ekspedientki/checkout/shop/invariant"
	"github.com/ekspedientki/checkout/shop/model"
)

// ErrEmptyShoppingList is returned by New for a list without items.
var ErrEmptyShoppingList = errors.New("shopping list is empty")

// Joiner places a checkout in a clerk's line and returns the clerk id.
type Joiner interface {
	Join(core.CheckoutFlow) int
}

// Customer is one shopper. It owns its wallet and its shopping list, and
// receives the receipt from the clerk at the end of the checkout.
type Customer struct {
	id     int
	wallet *model.Wallet
	list   []int
	flow   core.CheckoutFlow
}

// Result is what a finished checkout leaves the customer with.
type Result struct {
	CustomerID   int
	ClerkID      int
	Receipt      *model.Receipt
	WalletBefore int
	WalletAfter  int
}

// New returns a customer holding balance and wanting the items of list, in order.
func New(id, balance int, list []int) (*Customer, error) {
	if len(list) == 0 {
		return nil, ErrEmptyShoppingList
	}
	wallet := model.NewWallet(balance)
	return &Customer{
		id:     id,
		wallet: wallet,
		list:   append([]int(nil), list...),
		flow:   core.NewCheckoutFlow(id, wallet),
	}, nil
}

func (c *Customer) ID() int {
	return c.id
}

// Flow exposes the checkout barriers, e.g. to cancel them at a deadline.
func (c *Customer) Flow() core.CheckoutFlow {
	return c.flow
}

func (c *Customer) Balance() int {
	return c.wallet.Balance()
}

// Run joins the shortest line and goes through the checkout to the end.
func (c *Customer) Run(joiner Joiner) (Result, error) {
	result := Result{CustomerID: c.id, WalletBefore: c.wallet.Balance()}
	logger := log.WithField("customer", c.id)
	logger.Debug("Customer has entered the shop")

	result.ClerkID = joiner.Join(c.flow)
	logger = logger.WithField("clerk", result.ClerkID)
	logger.Debug("Customer joined queue")

	if err := c.flow.AwaitClerk(); err != nil {
		return result, fmt.Errorf("await clerk: %w", err)
	}

	for _, item := range c.list {
		acquired, err := c.flow.RequestItem(item)
		if err != nil {
			return result, fmt.Errorf("request item %d: %w", item, err)
		}
		logger.WithFields(log.Fields{"item": item, "acquired": acquired}).Debug("Customer requested item")
	}
	if err := c.flow.FinishItems(); err != nil {
		return result, fmt.Errorf("finish items: %w", err)
	}

	receipt, err := c.flow.AwaitReceipt()
	if err != nil {
		return result, fmt.Errorf("await receipt: %w", err)
	}
	invariant.Checkf(receipt.AmountPaid == 0, "customer %d got receipt already paid %d", c.id, receipt.AmountPaid)

	before := c.wallet.Balance()
	paid, err := c.flow.Pay()
	if err != nil {
		return result, fmt.Errorf("pay: %w", err)
	}
	logger.WithField("paid", paid).Debug("Customer is paying the clerk")

	if err := c.flow.AwaitSettlement(); err != nil {
		return result, fmt.Errorf("await settlement: %w", err)
	}

	result.Receipt = receipt
	result.WalletAfter = c.wallet.Balance()
	invariant.Checkf(result.WalletAfter == before-receipt.TotalDue,
		"customer %d wallet %d after paying %d from %d", c.id, result.WalletAfter, receipt.TotalDue, before)
	invariant.Checkf(receipt.AmountPaid == receipt.TotalDue, "customer %d paid %d of %d", c.id, receipt.AmountPaid, receipt.TotalDue)

	logger.Debug("Customer has left the shop")
	return result, nil
}

// JoinerFunc adapts a function to Joiner.
type JoinerFunc func(core.CheckoutFlow) int

func (f JoinerFunc) Join(flow core.CheckoutFlow) int {
	return f(flow)
}
