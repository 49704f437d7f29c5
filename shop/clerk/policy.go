// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clerk

import "fmt"

// WaitPolicy decides when a clerk blocks on assistant jobs.
type WaitPolicy int

const (
	// WaitSerial blocks on each job before ringing up the next item.
	WaitSerial WaitPolicy = iota
	// WaitBatch issues every job first and waits for all of them before the receipt.
	WaitBatch
)

func (p WaitPolicy) String() string {
	switch p {
	case WaitSerial:
		return "serial"
	case WaitBatch:
		return "batch"
	}
	return fmt.Sprintf("WaitPolicy(%d)", int(p))
}

// ParseWaitPolicy accepts "serial" or "batch".
func ParseWaitPolicy(s string) (WaitPolicy, error) {
	switch s {
	case "serial", "":
		return WaitSerial, nil
	case "batch":
		return WaitBatch, nil
	}
	return WaitSerial, fmt.Errorf("unknown assistant wait policy %q", s)
}
