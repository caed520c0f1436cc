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

package alternative

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/asyncguard/internal/astutil"
)

// candidate is one lookup result. Extension candidates are package-level
// functions taking the receiver value as their first parameter.
type candidate struct {
	fn        *types.Func
	extension bool
}

// lookup collects candidates with the given name in visibility and
// proximity order: the lexical scope at the call site (dot imports
// included), the qualified package's scope, the receiver's method set,
// then extension-style functions reachable from the receiver's type.
// Inaccessible symbols are excluded here, not by a later filter.
func (r *Resolver) lookup(call *ast.CallExpr, name string) []candidate {
	var cands []candidate

	switch fun := astutil.BaseFun(call.Fun).(type) {
	case *ast.Ident:
		if scope := r.pass.Pkg.Scope().Innermost(fun.Pos()); scope != nil {
			if _, obj := scope.LookupParent(name, fun.Pos()); obj != nil {
				cands = appendFunc(cands, obj, false)
			}
		}

	case *ast.SelectorExpr:
		if x, ok := astutil.BaseFun(fun.X).(*ast.Ident); ok {
			if pkgName, ok := r.pass.TypesInfo.Uses[x].(*types.PkgName); ok {
				// Qualified package-level call.
				imported := pkgName.Imported()
				if obj := imported.Scope().Lookup(name); obj != nil && accessible(obj, imported, r.pass.Pkg) {
					cands = appendFunc(cands, obj, false)
				}

				break
			}
		}

		// Method call: members of the receiver's type first, then
		// extension-style functions from the type's package.
		recv := r.pass.TypesInfo.TypeOf(fun.X)
		if recv == nil {
			break
		}

		if obj, _, _ := types.LookupFieldOrMethod(recv, true, r.pass.Pkg, name); obj != nil {
			cands = appendFunc(cands, obj, false)
		}

		cands = r.appendExtensions(cands, recv, name)
	}

	return cands
}

// appendExtensions adds package-level functions from the receiver type's
// package whose first parameter accepts the receiver value.
func (r *Resolver) appendExtensions(cands []candidate, recv types.Type, name string) []candidate {
	t := recv
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return cands
	}

	pkg := named.Obj().Pkg()
	if pkg == nil {
		return cands
	}

	obj := pkg.Scope().Lookup(name)
	if obj == nil || !accessible(obj, pkg, r.pass.Pkg) {
		return cands
	}

	fn, ok := obj.(*types.Func)
	if !ok {
		return cands
	}

	params := fn.Signature().Params()
	if params.Len() == 0 || !types.AssignableTo(recv, params.At(0).Type()) {
		return cands
	}

	return append(cands, candidate{fn: fn, extension: true})
}

func appendFunc(cands []candidate, obj types.Object, extension bool) []candidate {
	fn, ok := obj.(*types.Func)
	if !ok {
		return cands
	}

	return append(cands, candidate{fn: fn, extension: extension})
}

// accessible reports whether an object of pkg is visible from the
// package under analysis.
func accessible(obj types.Object, pkg, from *types.Package) bool {
	return pkg == from || obj.Exported()
}

