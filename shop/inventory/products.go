// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package inventory

import "github.com/ekspedientki/checkout/shop/model"

// DefaultProducts is the shop's standard assortment. Prices are in cents.
// The last ten entries need the assistant before they can be sold.
func DefaultProducts() []model.Product {
	return []model.Product{
		{ID: 0, Name: "Banana", Price: 129, Stock: 45},
		{ID: 1, Name: "Apple", Price: 159, Stock: 50},
		{ID: 2, Name: "Bread", Price: 349, Stock: 32},
		{ID: 3, Name: "Milk", Price: 399, Stock: 40},
		{ID: 4, Name: "Eggs", Price: 599, Stock: 30},
		{ID: 5, Name: "Pasta", Price: 259, Stock: 35},
		{ID: 6, Name: "Rice", Price: 329, Stock: 48},
		{ID: 7, Name: "Salt", Price: 159, Stock: 60},
		{ID: 8, Name: "Sugar", Price: 289, Stock: 55},
		{ID: 9, Name: "Chocolate", Price: 499, Stock: 40},
		{ID: 10, Name: "Cheese", Price: 899, Stock: 25},
		{ID: 11, Name: "Yogurt", Price: 449, Stock: 30},
		{ID: 12, Name: "Butter", Price: 599, Stock: 28},
		{ID: 13, Name: "Coffee", Price: 999, Stock: 35},
		{ID: 14, Name: "Tea", Price: 599, Stock: 40},
		{ID: 15, Name: "Juice", Price: 449, Stock: 38},
		{ID: 16, Name: "Water", Price: 149, Stock: 70},
		{ID: 17, Name: "Soda", Price: 249, Stock: 60},
		{ID: 18, Name: "Chips", Price: 349, Stock: 45},
		{ID: 19, Name: "Cookies", Price: 399, Stock: 35},
		{ID: 20, Name: "Cereal", Price: 459, Stock: 30},
		{ID: 21, Name: "Jam", Price: 399, Stock: 25},
		{ID: 22, Name: "Honey", Price: 799, Stock: 20},
		{ID: 23, Name: "Nuts", Price: 699, Stock: 30},
		{ID: 24, Name: "Peanuts", Price: 499, Stock: 35},
		{ID: 25, Name: "Candy", Price: 299, Stock: 50},
		{ID: 26, Name: "Pepper", Price: 199, Stock: 40},
		{ID: 27, Name: "Oil", Price: 599, Stock: 30},
		{ID: 28, Name: "Flour", Price: 349, Stock: 35},
		{ID: 29, Name: "Tuna", Price: 599, Stock: 30},
		{ID: 30, Name: "Soup", Price: 399, Stock: 25},
		{ID: 31, Name: "Beans", Price: 299, Stock: 40},
		{ID: 32, Name: "Tomato", Price: 179, Stock: 60},
		{ID: 33, Name: "Potato", Price: 199, Stock: 55},
		{ID: 34, Name: "Onion", Price: 129, Stock: 65},
		{ID: 35, Name: "Garlic", Price: 159, Stock: 45},
		{ID: 36, Name: "Lemon", Price: 129, Stock: 40},
		{ID: 37, Name: "Orange", Price: 179, Stock: 50},
		{ID: 38, Name: "Beef", Price: 1299, Stock: 20},
		{ID: 39, Name: "Chicken", Price: 999, Stock: 25},
		{ID: 40, Name: "Cake", Price: 899, Stock: 15, NeedsAssistance: true},
		{ID: 41, Name: "Deli Meat", Price: 799, Stock: 25, NeedsAssistance: true},
		{ID: 42, Name: "Fresh Fish", Price: 1299, Stock: 20, NeedsAssistance: true},
		{ID: 43, Name: "Sliced Bread", Price: 399, Stock: 30, NeedsAssistance: true},
		{ID: 44, Name: "Cheese Wheel", Price: 1599, Stock: 10, NeedsAssistance: true},
		{ID: 45, Name: "Custom Coffee", Price: 699, Stock: 35, NeedsAssistance: true},
		{ID: 46, Name: "Watermelon", Price: 599, Stock: 20, NeedsAssistance: true},
		{ID: 47, Name: "Fresh Meat", Price: 1099, Stock: 15, NeedsAssistance: true},
		{ID: 48, Name: "Salad Mix", Price: 349, Stock: 30, NeedsAssistance: true},
		{ID: 49, Name: "Fresh Juice", Price: 899, Stock: 25, NeedsAssistance: true},
	}
}
