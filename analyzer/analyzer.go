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

package analyzer

import (
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/asyncguard/internal/report"
	"fillmore-labs.com/asyncguard/internal/run"
)

// Public API constants for the asyncguard analyzer.
const (
	name = "asyncguard"
	doc  = `asyncguard detects synchronous blocking calls inside asynchronous functions`
	url  = "https://pkg.go.dev/fillmore-labs.com/asyncguard"
)

// Finding is one structured diagnostic record, including the property
// bag handed to downstream tooling.
type Finding = report.Finding

// Findings is the analyzer result type: the finding records of one pass.
// The order of findings from different call sites is unspecified.
type Findings = report.Findings

// New creates a new instance of the asyncguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:       name,
		Doc:        doc,
		URL:        url,
		Run:        r.Run,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		ResultType: reflect.TypeOf((*Findings)(nil)),
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] for detecting synchronous blocking calls inside asynchronous functions.
var Analyzer = New()
