// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shopcore

import "errors"

var ErrInvalidConfig = errors.New("InvalidConfig")
var ErrAlreadyRun = errors.New("ShopAlreadyRun")
var ErrBalanceMismatch = errors.New("BalanceMismatch")
