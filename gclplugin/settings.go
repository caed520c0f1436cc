// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package gclplugin

import asyncguard "fillmore-labs.com/asyncguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Blocking enables blocking call checks.
	Blocking *bool `json:"blocking,omitzero"`
	// Alternative enables suggestions of asynchronous alternatives.
	Alternative *bool `json:"alternative,omitzero"`
	// ByteCount enables element count checks on bulk copy calls.
	ByteCount *bool `json:"bytecount,omitzero"`
	// Generated enables checking generated files.
	Generated *bool `json:"generated,omitzero"`
	// Future sets the recognized future types.
	Future *[]string `json:"future,omitzero"`
	// BlockCopy sets the recognized bulk copy functions.
	BlockCopy *[]string `json:"blockcopy,omitzero"`
}

// Options converts [Settings] into a list of [asyncguard.Option] for the asyncguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []asyncguard.Option {
	var opts []asyncguard.Option

	opts = appendOption(opts, s.Blocking, asyncguard.WithBlocking)
	opts = appendOption(opts, s.Alternative, asyncguard.WithAlternative)
	opts = appendOption(opts, s.ByteCount, asyncguard.WithByteCount)
	opts = appendOption(opts, s.Generated, asyncguard.WithGenerated)
	opts = appendOption(opts, s.Future, withFutures)
	opts = appendOption(opts, s.BlockCopy, withBlockCopy)

	return opts
}

func withFutures(refs []string) asyncguard.Option { return asyncguard.WithFutures(refs...) }

func withBlockCopy(refs []string) asyncguard.Option { return asyncguard.WithBlockCopy(refs...) }

// appendOption appends a non-nil setting to an [asyncguard.Option] list.
func appendOption[T any](opts []asyncguard.Option, value *T, constructor func(T) asyncguard.Option) []asyncguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
