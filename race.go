// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package bbq

// RaceEnabled is true when the race detector is active.
// Used by tests to shrink stress workloads, which run several times
// slower under the detector.
const RaceEnabled = true
