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

// Package alternative discovers Async-suffixed siblings of synchronous
// calls.
//
// The resolver runs only for invocations the blocking matcher did not
// claim. Candidates are collected in visibility and proximity order and
// evaluated against a fixed filter sequence; the first candidate passing
// every filter wins. Ties between equally valid candidates in different
// visible scopes are not detected.
package alternative

import (
	"context"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/asyncguard/internal/asyncscope"
	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/blocking"
	"fillmore-labs.com/asyncguard/internal/report"
)

// Suffix is the fixed name suffix of asynchronous counterparts.
const Suffix = "Async"

// Resolver performs the fallback sibling search.
type Resolver struct {
	pass  *analysis.Pass
	cls   *asyncscope.Classifier
	decls *astutil.DeclIndex
}

// New creates a [Resolver] for one pass.
func New(pass *analysis.Pass, cls *asyncscope.Classifier, decls *astutil.DeclIndex) *Resolver {
	return &Resolver{pass: pass, cls: cls, decls: decls}
}

// Resolve searches for an Async-suffixed sibling of the call's target.
// The enclosing name is the name of the named function the call is
// nested in; a candidate with that name is never suggested. An aborted
// context yields no finding.
func (r *Resolver) Resolve(ctx context.Context, call *ast.CallExpr, enclosing string) (report.Finding, bool) {
	fn := astutil.Callee(r.pass.TypesInfo, call)
	if fn == nil {
		return report.Finding{}, false
	}

	// A call that already carries the suffix, or whose own result is
	// asynchronous-compatible, is not replaceable.
	if strings.HasSuffix(fn.Name(), Suffix) {
		return report.Finding{}, false
	}

	if r.cls.Compatible(asyncscope.SignatureResult(fn.Signature())) {
		return report.Finding{}, false
	}

	for _, cand := range r.lookup(call, fn.Name()+Suffix) {
		if ctx.Err() != nil {
			return report.Finding{}, false
		}

		if !r.admissible(cand, fn, enclosing) {
			continue
		}

		extension := ""
		if cand.extension {
			extension = cand.fn.Pkg().Path()
		}

		return report.Suggestion(call, blocking.DisplayName(fn), cand.fn.Name(), extension), true
	}

	return report.Finding{}, false
}

// admissible evaluates the filter sequence: not deprecated, parameter
// superset, no self-suggestion, asynchronous-compatible result.
func (r *Resolver) admissible(cand candidate, fn *types.Func, enclosing string) bool {
	if deprecated, known := r.decls.Deprecated(cand.fn); known && deprecated {
		return false
	}

	if !paramSuperset(cand, fn.Signature()) {
		return false
	}

	if cand.fn.Name() == enclosing {
		return false
	}

	return r.cls.Compatible(asyncscope.SignatureResult(cand.fn.Signature()))
}

// paramSuperset reports whether the candidate's parameter types cover
// every parameter type of the original target, in order. The check is
// structural type identity only: no implicit conversions, optional
// parameters, or variance.
func paramSuperset(cand candidate, orig *types.Signature) bool {
	candParams := cand.fn.Signature().Params()

	next := 0
	if cand.extension {
		// The first parameter stands in for the receiver.
		next = 1
	}

	origParams := orig.Params()
	for i := range origParams.Len() {
		want := origParams.At(i).Type()

		found := false
		for ; next < candParams.Len(); next++ {
			if types.Identical(candParams.At(next).Type(), want) {
				found = true
				next++

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}
