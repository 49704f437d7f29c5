// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package model

// Product is a catalog entry.
type Product struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	Stock           int    `json:"stock"`
	NeedsAssistance bool   `json:"needsAssistance"`
}
