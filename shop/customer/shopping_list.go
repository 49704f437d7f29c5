// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package customer

// ShoppingList returns the deterministic list of customer id: between two
// and five items, spread three products apart so neighbours want different things.
func ShoppingList(id, numProducts int) []int {
	if numProducts < 1 {
		numProducts = 1
	}
	size := id%4 + 2
	list := make([]int, size)
	for i := range list {
		list[i] = (id + i*3) % numProducts
	}
	return list
}
