// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// CheckoutState is the customer's position in the checkout handshake.
type CheckoutState int

const (
	CheckoutEntering CheckoutState = iota
	CheckoutQueued
	CheckoutItemRound
	CheckoutAwaitingReceipt
	CheckoutPaying
	CheckoutDone
	CheckoutAbandoned
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutEntering:
		return "ENTERING"
	case CheckoutQueued:
		return "QUEUED"
	case CheckoutItemRound:
		return "ITEM_ROUND"
	case CheckoutAwaitingReceipt:
		return "AWAITING_RECEIPT"
	case CheckoutPaying:
		return "PAYING"
	case CheckoutDone:
		return "DONE"
	case CheckoutAbandoned:
		return "ABANDONED"
	}
	return "UNKNOWN"
}
