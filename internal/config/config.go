// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the bitmask-based configuration shared by the
// analyzer surface and the analysis pipeline.
package config

// CheckerFlags represents specific checkers.
type CheckerFlags uint8

const (
	// BlockingChecker enables detection of known blocking calls on future values.
	BlockingChecker CheckerFlags = 1 << iota

	// AlternativeChecker enables discovery of Async-suffixed sibling functions.
	AlternativeChecker

	// ByteCountChecker enables the byte-count provenance check on bulk-copy calls.
	ByteCountChecker
)

// Config represents behavioral options for the checkers.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Checkers is the set of enabled checkers.
type Checkers = BitMask[CheckerFlags]

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultCheckers returns the checker set enabled by default.
func DefaultCheckers() Checkers {
	return NewBitMask(BlockingChecker, AlternativeChecker, ByteCountChecker)
}

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
