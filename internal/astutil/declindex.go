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

	"golang.org/x/tools/go/analysis"
)

// DeclIndex maps objects of the package under analysis to their declaring
// syntax. It stands in for a declaring-syntax lookup on symbols: objects
// from imported packages have no syntax in the current pass and resolve
// to nil.
type DeclIndex struct {
	funcs    map[types.Object]*ast.FuncDecl
	typeDocs map[types.Object]*ast.CommentGroup
}

// NewDeclIndex builds a [DeclIndex] over all files of the pass.
func NewDeclIndex(p *analysis.Pass) *DeclIndex {
	x := &DeclIndex{
		funcs:    make(map[types.Object]*ast.FuncDecl),
		typeDocs: make(map[types.Object]*ast.CommentGroup),
	}

	for _, file := range p.Files {
		for _, decl := range file.Decls {
			switch decl := decl.(type) {
			case *ast.FuncDecl:
				if obj := p.TypesInfo.Defs[decl.Name]; obj != nil {
					x.funcs[obj] = decl
				}

			case *ast.GenDecl:
				for _, spec := range decl.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}

					obj := p.TypesInfo.Defs[ts.Name]
					if obj == nil {
						continue
					}

					// The directive may sit on the type spec or, for single-spec
					// declarations, on the surrounding gen decl.
					if ts.Doc != nil {
						x.typeDocs[obj] = ts.Doc
					} else {
						x.typeDocs[obj] = decl.Doc
					}
				}
			}
		}
	}

	return x
}

// FuncDecl returns the declaration of a function object, or nil when the
// object was not declared in the current package.
func (x *DeclIndex) FuncDecl(obj types.Object) *ast.FuncDecl {
	return x.funcs[obj]
}

// Deprecated reports whether the function object carries a "Deprecated:"
// doc paragraph. The second result is false when no declaring syntax is
// available, in which case the deprecation state is unknown. Callers
// that treat unknown as not deprecated will admit deprecated functions
// from imported packages, since only the current package has syntax.
func (x *DeclIndex) Deprecated(obj types.Object) (deprecated, known bool) {
	decl := x.funcs[obj]
	if decl == nil {
		return false, false
	}

	return HasDeprecated(decl.Doc), true
}

// TypeDoc returns the doc comment of a type object declared in the
// current package.
func (x *DeclIndex) TypeDoc(obj types.Object) *ast.CommentGroup {
	return x.typeDocs[obj]
}
