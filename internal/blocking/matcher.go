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

// Package blocking matches call sites against the catalog of known
// blocking operations on future values.
package blocking

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/catalog"
	"fillmore-labs.com/asyncguard/internal/report"
)

// Matcher tests resolved call targets against the pattern catalog.
// Entries are tested in registration order; the first structural match
// wins.
type Matcher struct {
	cat  *catalog.Catalog
	info *types.Info
}

// New creates a [Matcher] over the compiled catalog.
func New(cat *catalog.Catalog, info *types.Info) *Matcher {
	return &Matcher{cat: cat, info: info}
}

// MatchCall tests an invocation against the catalog. An unresolvable
// callee is uniformly a non-match.
func (m *Matcher) MatchCall(call *ast.CallExpr) (report.Finding, bool) {
	fn := astutil.Callee(m.info, call)
	if fn == nil {
		return report.Finding{}, false
	}

	entry, ok := m.cat.MatchBlocking(fn, len(call.Args))
	if !ok {
		return report.Finding{}, false
	}

	return report.Blocking(call, DisplayName(fn), entry.Alternative, extensionPath(fn, entry)), true
}

// MatchAccess tests a bare member access, such as a method value of a
// blocking member, against the catalog. Arity is taken from the member's
// own signature.
func (m *Matcher) MatchAccess(sel *ast.SelectorExpr) (report.Finding, bool) {
	fn, ok := m.info.Uses[sel.Sel].(*types.Func)
	if !ok {
		return report.Finding{}, false
	}

	entry, ok := m.cat.MatchBlocking(fn, fn.Signature().Params().Len())
	if !ok {
		return report.Finding{}, false
	}

	return report.Blocking(sel, DisplayName(fn), entry.Alternative, extensionPath(fn, entry)), true
}

// extensionPath is the defining package path of an extension-style
// entry. Extension entries only match package-level functions, so the
// function's own package is the namespace the entry resolved against.
func extensionPath(fn *types.Func, entry catalog.Entry) string {
	if !entry.Extension {
		return ""
	}

	if pkg := fn.Pkg(); pkg != nil {
		return pkg.Path()
	}

	return ""
}

// DisplayName renders a function for diagnostic messages: methods as
// "Type.Member", package-level functions as "pkg.Func".
func DisplayName(fn *types.Func) string {
	if recv := fn.Signature().Recv(); recv != nil {
		t := recv.Type()
		if ptr, ok := t.(*types.Pointer); ok {
			t = ptr.Elem()
		}

		if named, ok := t.(*types.Named); ok {
			return named.Obj().Name() + "." + fn.Name()
		}

		return fn.Name()
	}

	if pkg := fn.Pkg(); pkg != nil {
		return pkg.Name() + "." + fn.Name()
	}

	return fn.Name()
}
