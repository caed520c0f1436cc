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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the asyncguard analyzer by handling common
// boilerplate code for parsing and type-checking Go source files, including synthetic
// dependency packages such as a local future library.
package testsource

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// Parse parses a complete Go source file into an AST.
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, fset *token.FileSet, path, src string) *ast.File {
	tb.Helper()

	f, err := parser.ParseFile(fset, path+".go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source for %q: %v", path, err)
	}

	return f
}

// Check performs type checking on the provided AST file, importing it as
// package path `path`. Additional packages passed in deps are made importable
// by their path; all other imports fall back to the default importer.
func Check(tb testing.TB, fset *token.FileSet, path string, f *ast.File, deps ...*types.Package) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: depImporter{deps: deps, fallback: importer.Default()}}

	pkg, err := conf.Check(path, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type check source for %q: %v", path, err)
	}

	return pkg, info
}

// ParseCheck parses and type-checks a single source file as package `path`.
func ParseCheck(tb testing.TB, fset *token.FileSet, path, src string, deps ...*types.Package) (*types.Package, *types.Info, *ast.File) {
	tb.Helper()

	f := Parse(tb, fset, path, src)
	pkg, info := Check(tb, fset, path, f, deps...)

	return pkg, info, f
}

// depImporter resolves imports against a fixed set of pre-checked packages
// before delegating to a fallback importer.
type depImporter struct {
	deps     []*types.Package
	fallback types.Importer
}

func (d depImporter) Import(path string) (*types.Package, error) {
	for _, dep := range d.deps {
		if dep.Path() == path {
			return dep, nil
		}
	}

	if d.fallback == nil {
		return nil, fmt.Errorf("unknown import %q", path)
	}

	return d.fallback.Import(path)
}
