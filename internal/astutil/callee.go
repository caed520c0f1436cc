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

package astutil

import (
	"go/ast"
	"go/types"
)

// Callee resolves the target function of a call. Unlike
// [golang.org/x/tools/go/types/typeutil.StaticCallee] it also resolves
// interface methods, which future types frequently are. Calls through
// function values and unresolvable callees yield nil.
func Callee(info *types.Info, call *ast.CallExpr) *types.Func {
	switch fun := BaseFun(call.Fun).(type) {
	case *ast.Ident:
		if fn, ok := info.Uses[fun].(*types.Func); ok {
			return fn
		}

	case *ast.SelectorExpr:
		if fn, ok := info.Uses[fun.Sel].(*types.Func); ok {
			return fn
		}
	}

	return nil
}

// BaseFun unwraps parentheses and type-argument lists: generic call
// sites are matched on the base name, ignoring instantiation.
func BaseFun(expr ast.Expr) ast.Expr {
	for {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		case *ast.IndexListExpr:
			expr = e.X

		default:
			return expr
		}
	}
}
