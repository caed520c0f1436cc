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

package report_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/asyncguard/internal/report"
)

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

func TestBlocking(t *testing.T) {
	t.Parallel()

	rng := span{pos: 1, end: 2}

	f := Blocking(rng, "Task.Wait", "", "")
	assert.Equal(t, BlockingCall, f.Kind)
	assert.Equal(t, SeverityWarning, f.Severity)
	assert.Equal(t,
		"Call to Task.Wait synchronously blocks inside an asynchronous function; await the result instead (ag:blk)",
		f.Message())
	assert.Empty(t, f.Alternative())
	assert.NotContains(t, f.Props, PropExtensionNamespace)

	f = Blocking(rng, "future.WaitAll", "WhenAll", "example.com/future")
	assert.Equal(t, BlockingAlternative, f.Kind)
	assert.Equal(t,
		"Call to future.WaitAll synchronously blocks inside an asynchronous function; use WhenAll instead (ag:alt)",
		f.Message())
	assert.Equal(t, "WhenAll", f.Alternative())
	assert.Equal(t, "example.com/future", f.Props[PropExtensionNamespace])
}

func TestSuggestion(t *testing.T) {
	t.Parallel()

	f := Suggestion(span{pos: 1, end: 2}, "Client.Do", "DoAsync", "example.com/client")
	assert.Equal(t, SyncCall, f.Kind)
	assert.Equal(t, SeveritySuggestion, f.Severity)
	assert.Equal(t,
		"Synchronous call to Client.Do inside an asynchronous function; consider DoAsync instead (ag:sync)",
		f.Message())
	assert.Equal(t, "DoAsync", f.Alternative())
	assert.Equal(t, "example.com/client", f.Props[PropExtensionNamespace])
}

func TestElementCount(t *testing.T) {
	t.Parallel()

	f := ElementCount(span{pos: 1, end: 2}, "samples")
	assert.Equal(t, ByteCount, f.Kind)
	assert.Equal(t,
		"Count argument is the element count of 'samples', not a byte count (ag:cnt)",
		f.Message())
}

func TestRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blocking", BlockingCall.Rule())
	assert.Equal(t, "blocking", BlockingAlternative.Rule())
	assert.Equal(t, "synccall", SyncCall.Rule())
	assert.Equal(t, "bytecount", ByteCount.Rule())
}

func TestEmit(t *testing.T) {
	t.Parallel()

	var reported []analysis.Diagnostic

	pass := &analysis.Pass{
		Report: func(d analysis.Diagnostic) { reported = append(reported, d) },
	}

	findings := &Findings{}
	findings.Emit(pass, Blocking(span{pos: 1, end: 2}, "Task.Wait", "", ""))
	findings.Emit(pass, ElementCount(span{pos: 3, end: 4}, "buf"))

	assert.Len(t, findings.All(), 2)
	assert.Len(t, reported, 2)

	assert.Equal(t, "blocking", reported[0].Category)
	assert.Equal(t, token.Pos(1), reported[0].Pos)

	// Every emitted finding carries the alternative key, even when empty.
	for _, f := range findings.All() {
		_, ok := f.Props[PropAlternative]
		assert.True(t, ok)
	}
}
