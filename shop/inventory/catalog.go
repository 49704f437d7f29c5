// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ekspedientki/checkout/shop/model"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrUnknownProduct = errors.New("unknown product")
)

// Catalog is an in-memory Gateway. Stock is only mutated under mu; prices
// and assistance flags are immutable after construction.
type Catalog struct {
	mu       sync.Mutex
	products []model.Product
}

var _ Gateway = (*Catalog)(nil)

// NewCatalog validates products and returns a catalog indexed by product id.
// Ids must be dense and start at 0.
func NewCatalog(products ...model.Product) (*Catalog, error) {
	indexed := make([]model.Product, len(products))
	seen := make([]bool, len(products))
	for _, p := range products {
		if p.ID < 0 || p.ID >= len(products) || seen[p.ID] {
			return nil, fmt.Errorf("%w: id %d", ErrInvalidProduct, p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("%w: %q has price %d", ErrInvalidProduct, p.Name, p.Price)
		}
		if p.Stock < 0 {
			return nil, fmt.Errorf("%w: %q has stock %d", ErrInvalidProduct, p.Name, p.Stock)
		}
		seen[p.ID] = true
		indexed[p.ID] = p
	}
	return &Catalog{products: indexed}, nil
}

// NewDefaultCatalog returns a catalog stocked with DefaultProducts.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultProducts()...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) known(id int) bool {
	return id >= 0 && id < len(c.products)
}

// TryAcquire atomically checks that stock is positive and decrements it.
// Unknown ids are never in stock.
func (c *Catalog) TryAcquire(id int) bool {
	if !c.known(id) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.products[id].Stock <= 0 {
		return false
	}
	c.products[id].Stock--
	return true
}

func (c *Catalog) Release(id int) {
	if !c.known(id) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[id].Stock++
}

func (c *Catalog) Price(id int) int {
	if !c.known(id) {
		return 0
	}
	return c.products[id].Price
}

func (c *Catalog) NeedsAssistance(id int) bool {
	if !c.known(id) {
		return false
	}
	return c.products[id].NeedsAssistance
}

func (c *Catalog) Stock(id int) int {
	if !c.known(id) {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.products[id].Stock
}

func (c *Catalog) Len() int {
	return len(c.products)
}
