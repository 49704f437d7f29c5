// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inventory

// Gateway is everything the checkout needs from the product catalog.
// Implementations must be safe for concurrent use.
type Gateway interface {
	// TryAcquire takes one unit of stock if any is left.
	TryAcquire(id int) bool
	// Release puts one unit back.
	Release(id int)
	Price(id int) int
	NeedsAssistance(id int) bool
	Stock(id int) int
	Len() int
}
