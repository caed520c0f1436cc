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

// Package bytecount checks the count argument of bulk-copy calls.
//
// Byte-oriented copy functions take a byte count, but callers habitually
// pass len(arr) of one of the copied slices. When the element type is
// wider than one byte that is a unit-mismatch bug. The provenance trace
// is deliberately a single hop: a local variable resolves to its
// initializer once, and anything else is left alone.
package bytecount

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/catalog"
	"fillmore-labs.com/asyncguard/internal/report"
)

// Checker flags element counts passed as byte counts.
type Checker struct {
	pass *analysis.Pass
	cat  *catalog.Catalog
}

// New creates a [Checker] for one pass.
func New(pass *analysis.Pass, cat *catalog.Catalog) *Checker {
	return &Checker{pass: pass, cat: cat}
}

// Check inspects one call. The enclosing node bounds the search for
// local variable declarations; it is the body of the function the call
// occurs in. An aborted context yields no finding.
func (c *Checker) Check(ctx context.Context, call *ast.CallExpr, enclosing ast.Node) (report.Finding, bool) {
	fn := astutil.Callee(c.pass.TypesInfo, call)
	if fn == nil || !c.cat.IsBulkCopy(fn) {
		return report.Finding{}, false
	}

	srcIdx, dstIdx, ok := shape(len(call.Args))
	if !ok {
		return report.Finding{}, false
	}

	count := call.Args[len(call.Args)-1]

	length := c.lengthOperand(count)
	if length == nil {
		// One-hop provenance: a local variable resolves to its
		// initializing expression once.
		if ident, ok := count.(*ast.Ident); ok {
			length = c.lengthOperand(c.initializer(ident, enclosing))
		}
	}

	if length == nil || ctx.Err() != nil {
		return report.Finding{}, false
	}

	obj := c.referent(length)
	if obj == nil {
		return report.Finding{}, false
	}

	if obj != c.referent(call.Args[srcIdx]) && obj != c.referent(call.Args[dstIdx]) {
		// The length of an unrelated slice is not traced further.
		return report.Finding{}, false
	}

	if c.byteWide(obj.Type()) {
		return report.Finding{}, false
	}

	// Flag the count argument's location, not the declaration site.
	return report.ElementCount(count, obj.Name()), true
}

// shape maps the call arity onto source and destination argument
// positions. The count argument is always last.
func shape(arity int) (srcIdx, dstIdx int, ok bool) {
	switch arity {
	case 3: // (src, dst, n)
		return 0, 1, true

	case 4: // (src, srcOff, dst, n)
		return 0, 2, true

	case 5: // (src, srcOff, dst, dstOff, n)
		return 0, 2, true

	default:
		return 0, 0, false
	}
}

// lengthOperand returns the operand of a len builtin call, unwrapping at
// most one conversion, or nil for any other expression shape.
func (c *Checker) lengthOperand(expr ast.Expr) ast.Expr {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 1 {
		return nil
	}

	ident, ok := call.Fun.(*ast.Ident)
	if !ok {
		return nil
	}

	builtin, ok := c.pass.TypesInfo.Uses[ident].(*types.Builtin)
	if !ok || builtin.Name() != "len" {
		return nil
	}

	return call.Args[0]
}

// referent resolves an argument expression to the object it denotes,
// unwrapping at most one conversion since the slices may travel as a
// common base type.
func (c *Checker) referent(expr ast.Expr) types.Object {
	expr = ast.Unparen(expr)

	if call, ok := expr.(*ast.CallExpr); ok && len(call.Args) == 1 {
		if tv, ok := c.pass.TypesInfo.Types[call.Fun]; ok && tv.IsType() {
			expr = ast.Unparen(call.Args[0])
		}
	}

	switch expr := expr.(type) {
	case *ast.Ident:
		return c.pass.TypesInfo.Uses[expr]

	case *ast.SelectorExpr:
		return c.pass.TypesInfo.Uses[expr.Sel]

	default:
		return nil
	}
}

// byteWide reports whether the length of a value of type t is a byte
// count: a slice or array with a one-byte element type, or a string.
func (c *Checker) byteWide(t types.Type) bool {
	var elem types.Type

	switch t := t.Underlying().(type) {
	case *types.Slice:
		elem = t.Elem()

	case *types.Array:
		elem = t.Elem()

	case *types.Basic:
		return t.Info()&types.IsString != 0

	default:
		return false
	}

	return c.pass.TypesSizes.Sizeof(elem) == 1
}

// initializer resolves a local variable reference to its initializing
// expression within the enclosing function. Parameters, multi-value
// assignments, reassigned variables, and variables declared elsewhere
// have no resolvable initializer and end the trace.
func (c *Checker) initializer(ident *ast.Ident, enclosing ast.Node) ast.Expr {
	obj, ok := c.pass.TypesInfo.Uses[ident].(*types.Var)
	if !ok || enclosing == nil || c.reassigned(obj, enclosing, ident.Pos()) {
		return nil
	}

	var init ast.Expr

	ast.Inspect(enclosing, func(n ast.Node) bool {
		if init != nil || n == nil {
			return false
		}

		if n.End() < obj.Pos() {
			// The declaration cannot be in a subtree ending before it.
			return false
		}

		switch n := n.(type) {
		case *ast.AssignStmt:
			if n.Tok != token.DEFINE || len(n.Lhs) != len(n.Rhs) {
				return true
			}

			for i, lhs := range n.Lhs {
				if id, ok := lhs.(*ast.Ident); ok && c.pass.TypesInfo.Defs[id] == obj {
					init = n.Rhs[i]

					return false
				}
			}

		case *ast.ValueSpec:
			if len(n.Names) != len(n.Values) {
				return true
			}

			for i, name := range n.Names {
				if c.pass.TypesInfo.Defs[name] == obj {
					init = n.Values[i]

					return false
				}
			}
		}

		return true
	})

	return init
}

// reassigned reports whether the variable is the target of a plain
// assignment or an increment before the use position. The declared
// initializer is stale then and must not be traced.
func (c *Checker) reassigned(obj *types.Var, enclosing ast.Node, use token.Pos) bool {
	var found bool

	ast.Inspect(enclosing, func(n ast.Node) bool {
		if found || n == nil || n.Pos() >= use {
			return false
		}

		switch n := n.(type) {
		case *ast.AssignStmt:
			if n.Tok == token.DEFINE {
				return true
			}

			for _, lhs := range n.Lhs {
				if id, ok := lhs.(*ast.Ident); ok && c.pass.TypesInfo.Uses[id] == obj {
					found = true

					return false
				}
			}

		case *ast.IncDecStmt:
			if id, ok := n.X.(*ast.Ident); ok && c.pass.TypesInfo.Uses[id] == obj {
				found = true

				return false
			}
		}

		return true
	})

	return found
}
