// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import "sync"

// Wallet holds a customer's money. The balance may go negative.
type Wallet struct {
	mu      sync.Mutex
	balance int
}

func NewWallet(balance int) *Wallet {
	return &Wallet{balance: balance}
}

func (w *Wallet) Balance() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Debit takes amount out of the wallet and returns the new balance.
func (w *Wallet) Debit(amount int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balance -= amount
	return w.balance
}
