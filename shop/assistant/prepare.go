// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package assistant

import "math"

// Prepare burns a deterministic amount of CPU proportional to intensity and
// returns a value derived from the work. The value carries no meaning.
func Prepare(intensity int) float64 {
	if intensity < 1 {
		intensity = 1
	}

	result := 0.0
	for i := 0; i < intensity*100; i++ {
		result += math.Sin(float64(i)) * math.Cos(float64(i))
		if i%intensity == 0 {
			result = math.Mod(result, 10.0)
		}
	}
	return result
}
