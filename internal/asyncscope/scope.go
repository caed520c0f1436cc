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

// Package asyncscope models the enclosing function scopes of a call site
// as an arena-indexed tree and classifies their declared result types as
// asynchronous-compatible or not.
package asyncscope

import (
	"go/ast"
	"go/types"
)

// Kind distinguishes the function scopes a call site can be nested in.
type Kind uint8

const (
	// KindFunc is a named function or method declaration.
	KindFunc Kind = iota

	// KindClosure is a function literal.
	KindClosure

	// KindDeferred is a function literal invoked directly by a defer or
	// go statement. Its result value is discarded by the language, so it
	// can never be asynchronous-compatible.
	KindDeferred
)

// Scope is one function scope in the arena.
type Scope struct {
	// Parent is the arena index of the enclosing scope, -1 for the root.
	Parent int

	// Kind is the scope kind.
	Kind Kind

	// Name is the declared name, empty for closures.
	Name string

	// Result is the declared result type, nil when the function declares
	// none. A trailing error result is not part of the declared result.
	Result types.Type
}

// Tree is an arena of function scopes for one top-level declaration,
// maintained incrementally during the inspector walk.
type Tree struct {
	scopes []Scope
	stack  []int
}

// Reset clears the arena for the next top-level declaration.
func (t *Tree) Reset() {
	t.scopes = t.scopes[:0]
	t.stack = t.stack[:0]
}

// Push appends a scope to the arena, parented to the current scope, and
// makes it current. It returns the new scope's arena index.
func (t *Tree) Push(kind Kind, name string, result types.Type) int {
	parent := -1
	if len(t.stack) > 0 {
		parent = t.stack[len(t.stack)-1]
	}

	idx := len(t.scopes)
	t.scopes = append(t.scopes, Scope{Parent: parent, Kind: kind, Name: name, Result: result})
	t.stack = append(t.stack, idx)

	return idx
}

// Pop leaves the current scope.
func (t *Tree) Pop() {
	t.stack = t.stack[:len(t.stack)-1]
}

// Current returns the arena index of the innermost scope. The second
// result is false outside of any function scope.
func (t *Tree) Current() (int, bool) {
	if len(t.stack) == 0 {
		return 0, false
	}

	return t.stack[len(t.stack)-1], true
}

// At returns the scope at an arena index.
func (t *Tree) At(idx int) Scope {
	return t.scopes[idx]
}

// EnclosingName walks the parent chain from idx to the nearest named
// scope and returns its name, or "" when every enclosing scope is
// anonymous.
func (t *Tree) EnclosingName(idx int) string {
	for ; idx >= 0; idx = t.scopes[idx].Parent {
		if s := t.scopes[idx]; s.Kind == KindFunc && s.Name != "" {
			return s.Name
		}
	}

	return ""
}

// DeclResult extracts the declared result type of a function declaration.
func DeclResult(info *types.Info, decl *ast.FuncDecl) types.Type {
	fn, ok := info.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil
	}

	return resultType(fn.Signature())
}

// LitResult extracts the declared result type of a function literal.
func LitResult(info *types.Info, lit *ast.FuncLit) types.Type {
	sig, ok := info.TypeOf(lit).(*types.Signature)
	if !ok {
		return nil
	}

	return resultType(sig)
}

// SignatureResult reduces a signature's results to the single declared
// result, tolerating a trailing error.
func SignatureResult(sig *types.Signature) types.Type {
	return resultType(sig)
}

// resultType reduces a signature's results to the single declared result,
// tolerating a trailing error.
func resultType(sig *types.Signature) types.Type {
	res := sig.Results()

	switch res.Len() {
	case 1:
		return res.At(0).Type()

	case 2:
		if isError(res.At(1).Type()) {
			return res.At(0).Type()
		}
	}

	return nil
}

func isError(t types.Type) bool {
	named, ok := t.(*types.Named)

	return ok && named.Obj().Pkg() == nil && named.Obj().Name() == "error"
}
