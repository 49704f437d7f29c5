// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import (
	"sync"

	"github.com/ekspedientki/checkout/shop/inventory"
	"github.com/ekspedientki/checkout/shop/model"
)

const (
	ItemA = 0 // plain item, price 500
	ItemB = 1 // needs the assistant, price 900, stock 1
)

// NewScarceCatalog returns a catalog with plenty of A and a single B.
func NewScarceCatalog() *inventory.Catalog {
	c, err := inventory.NewCatalog(
		model.Product{ID: ItemA, Name: "A", Price: 500, Stock: 100},
		model.Product{ID: ItemB, Name: "B", Price: 900, Stock: 1, NeedsAssistance: true},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Depositor records deposits. It satisfies clerk.Depositor.
type Depositor struct {
	mu       sync.Mutex
	Deposits []int
}

func (d *Depositor) Deposit(amount int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Deposits = append(d.Deposits, amount)
}

func (d *Depositor) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	total := 0
	for _, v := range d.Deposits {
		total += v
	}
	return total
}
