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

// Package report defines the structured finding records the engine
// produces and emits them as analysis diagnostics.
//
// Finding kinds are a tagged variant carrying their own message
// template; downstream tooling receives the records, including the
// string-keyed property bag, through the analyzer result.
package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Kind is the finding variant. Each kind selects a rule identifier and a
// message template.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// BlockingCall is a cataloged blocking call without a known
	// asynchronous counterpart.
	BlockingCall Kind = iota // blk

	// BlockingAlternative is a cataloged blocking call whose entry names
	// an asynchronous counterpart.
	BlockingAlternative // alt

	// SyncCall is a synchronous call with a discovered Async-suffixed
	// sibling.
	SyncCall // sync

	// ByteCount is an element count passed where a byte count is required.
	ByteCount // cnt
)

// Rule returns the rule identifier reported as the diagnostic category.
func (k Kind) Rule() string {
	switch k {
	case BlockingCall, BlockingAlternative:
		return "blocking"

	case SyncCall:
		return "synccall"

	case ByteCount:
		return "bytecount"

	default:
		return "asyncguard"
	}
}

// template returns the message template of the kind. The final verb is
// the kind tag.
func (k Kind) template() string {
	switch k {
	case BlockingCall:
		return "Call to %s synchronously blocks inside an asynchronous function; await the result instead (ag:%s)"

	case BlockingAlternative:
		return "Call to %s synchronously blocks inside an asynchronous function; use %s instead (ag:%s)"

	case SyncCall:
		return "Synchronous call to %s inside an asynchronous function; consider %s instead (ag:%s)"

	case ByteCount:
		return "Count argument is the element count of %s, not a byte count (ag:%s)"

	default:
		return "Unknown finding (ag:%s)"
	}
}

// Severity classes findings for downstream consumers. The analysis
// framework itself has no severity notion, so the class travels with the
// finding record.
type Severity uint8

const (
	// SeverityWarning is the default class for likely bugs.
	SeverityWarning Severity = iota

	// SeveritySuggestion classes advisory findings.
	SeveritySuggestion
)

// Property bag keys.
const (
	// PropAlternative carries the suggested asynchronous alternative
	// name, empty when none exists.
	PropAlternative = "asyncAlternative"

	// PropExtensionNamespace carries the package path of an
	// extension-style alternative.
	PropExtensionNamespace = "extensionNamespace"
)

// Finding is one diagnostic record.
type Finding struct {
	Kind     Kind
	Severity Severity
	Pos, End token.Pos
	Args     []any
	Props    map[string]string
}

// Message formats the finding's message from its template and arguments.
func (f Finding) Message() string {
	args := make([]any, 0, len(f.Args)+1)
	args = append(args, f.Args...)
	args = append(args, f.Kind)

	return fmt.Sprintf(f.Kind.template(), args...)
}

// Alternative returns the suggested alternative name, empty when none.
func (f Finding) Alternative() string {
	return f.Props[PropAlternative]
}

// Findings collects the records of one pass. It is appended to during
// the pass and read-only afterwards; it is also the analyzer result
// handed to downstream tooling.
type Findings struct {
	list []Finding
}

// All returns the collected findings. The order between findings from
// different call sites is unspecified.
func (fs *Findings) All() []Finding {
	return fs.list
}

// Emit records one finding and reports it to the pass. This is the only
// place diagnostics leave the engine, keeping the one-finding-per-node
// invariant in the callers' hands.
func (fs *Findings) Emit(p *analysis.Pass, f Finding) {
	if f.Props == nil {
		f.Props = map[string]string{PropAlternative: ""}
	} else if _, ok := f.Props[PropAlternative]; !ok {
		f.Props[PropAlternative] = ""
	}

	fs.list = append(fs.list, f)

	p.Report(analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Kind.Rule(),
		Message:  f.Message(),
	})
}
