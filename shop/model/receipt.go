// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"github.com/google/uuid"
)

// Receipt is a sale between one clerk and one customer. The clerk fills it
// item by item, hands it over once, and the customer sets AmountPaid once.
type Receipt struct {
	ID         uuid.UUID `json:"id"`
	CustomerID int       `json:"customerId"`
	ClerkID    int       `json:"clerkId"`
	TotalDue   int       `json:"totalDue"`
	AmountPaid int       `json:"amountPaid"`
	Items      []int     `json:"items"`
}

// NewReceipt returns an empty receipt for the given checkout.
func NewReceipt(customerID, clerkID int) *Receipt {
	return &Receipt{
		ID:         uuid.New(),
		CustomerID: customerID,
		ClerkID:    clerkID,
		Items:      []int{},
	}
}

// Add records a purchased item.
func (r *Receipt) Add(itemID, price int) {
	r.Items = append(r.Items, itemID)
	r.TotalDue += price
}

// Settled reports whether the full amount has been paid.
func (r *Receipt) Settled() bool {
	return r.AmountPaid == r.TotalDue
}
