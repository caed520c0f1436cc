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

package run

import (
	"context"
	"go/ast"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/asyncguard/internal/alternative"
	"fillmore-labs.com/asyncguard/internal/asyncscope"
	"fillmore-labs.com/asyncguard/internal/blocking"
	"fillmore-labs.com/asyncguard/internal/bytecount"
	"fillmore-labs.com/asyncguard/internal/catalog"
	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/report"
)

// visitor carries the per-pass state of one traversal. Everything it
// touches besides the findings list is read-only.
type visitor struct {
	pass     *analysis.Pass
	options  *Options
	cat      *catalog.Catalog
	cls      *asyncscope.Classifier
	matcher  *blocking.Matcher
	resolver *alternative.Resolver
	counter  *bytecount.Checker
	findings *report.Findings

	tree    asyncscope.Tree
	parents []ast.Node
	decl    *ast.FuncDecl
}

// visitDecl walks one function declaration, maintaining the arena scope
// tree across nested closures, and dispatches every operation node.
func (v *visitor) visitDecl(ctx context.Context, decl *ast.FuncDecl) {
	v.tree.Reset()
	v.parents = v.parents[:0]
	v.decl = decl

	v.tree.Push(asyncscope.KindFunc, decl.Name.Name, asyncscope.DeclResult(v.pass.TypesInfo, decl))
	defer v.tree.Pop()

	// ast.Inspect signals pops with a nil node, keeping the parent stack
	// and the scope tree symmetric.
	ast.Inspect(decl.Body, func(n ast.Node) bool {
		if n == nil {
			top := len(v.parents) - 1
			if _, ok := v.parents[top].(*ast.FuncLit); ok {
				v.tree.Pop()
			}

			v.parents = v.parents[:top]

			return true
		}

		switch n := n.(type) {
		case *ast.FuncLit:
			v.tree.Push(v.litKind(n), "", asyncscope.LitResult(v.pass.TypesInfo, n))

		case *ast.CallExpr:
			v.visitCall(ctx, n)

		case *ast.SelectorExpr:
			if !v.isCallee(n) {
				v.visitAccess(n)
			}
		}

		v.parents = append(v.parents, n)

		return true
	})
}

// litKind classifies a function literal; one invoked directly by a defer
// or go statement has its result discarded and can never be
// asynchronous-compatible.
func (v *visitor) litKind(lit *ast.FuncLit) asyncscope.Kind {
	if len(v.parents) < 2 {
		return asyncscope.KindClosure
	}

	call, ok := v.parents[len(v.parents)-1].(*ast.CallExpr)
	if !ok || call.Fun != lit {
		return asyncscope.KindClosure
	}

	switch stmt := v.parents[len(v.parents)-2].(type) {
	case *ast.DeferStmt:
		if stmt.Call == call {
			return asyncscope.KindDeferred
		}

	case *ast.GoStmt:
		if stmt.Call == call {
			return asyncscope.KindDeferred
		}
	}

	return asyncscope.KindClosure
}

// isCallee reports whether the selector is the callee of its enclosing
// call, unwrapping parentheses and type-argument lists. Such selectors
// are handled as invocations, not member accesses.
func (v *visitor) isCallee(sel *ast.SelectorExpr) bool {
	var node ast.Node = sel

	for i := len(v.parents) - 1; i >= 0; i-- {
		switch parent := v.parents[i].(type) {
		case *ast.ParenExpr, *ast.IndexExpr, *ast.IndexListExpr:
			node = parent

		case *ast.CallExpr:
			return parent.Fun == node

		default:
			return false
		}
	}

	return false
}

// visitCall dispatches one invocation node. At most one finding is
// emitted per node; a catalog match short-circuits the sibling search.
func (v *visitor) visitCall(ctx context.Context, call *ast.CallExpr) {
	if ctx.Err() != nil {
		return
	}

	if v.cat.ByteCount() && v.options.Checkers.Enabled(config.ByteCountChecker) {
		if f, ok := v.counter.Check(ctx, call, v.decl); ok {
			v.findings.Emit(v.pass, f)

			return
		}
	}

	if !v.cat.Async() {
		return
	}

	idx, ok := v.tree.Current()
	if !ok || !v.cls.AsyncScope(&v.tree, idx) {
		return
	}

	if v.options.Checkers.Enabled(config.BlockingChecker) {
		if f, ok := v.matcher.MatchCall(call); ok {
			v.findings.Emit(v.pass, f)

			return
		}
	}

	if v.options.Checkers.Enabled(config.AlternativeChecker) {
		if f, ok := v.resolver.Resolve(ctx, call, v.tree.EnclosingName(idx)); ok {
			v.findings.Emit(v.pass, f)
		}
	}
}

// visitAccess dispatches one bare member access. Only the catalog
// matcher applies; the sibling search is reserved for invocations.
func (v *visitor) visitAccess(sel *ast.SelectorExpr) {
	if !v.cat.Async() || !v.options.Checkers.Enabled(config.BlockingChecker) {
		return
	}

	idx, ok := v.tree.Current()
	if !ok || !v.cls.AsyncScope(&v.tree, idx) {
		return
	}

	if f, ok := v.matcher.MatchAccess(sel); ok {
		v.findings.Emit(v.pass, f)
	}
}
