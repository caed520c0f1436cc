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

package asyncscope

import (
	"go/types"

	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/catalog"
)

// Classifier decides whether a type, and by extension a function scope,
// is asynchronous-compatible. It only reads the catalog and the
// declaration index and is safe for concurrent use.
type Classifier struct {
	cat   *catalog.Catalog
	decls *astutil.DeclIndex
}

// NewClassifier creates a [Classifier] over a compiled catalog and the
// pass's declaration index.
func NewClassifier(cat *catalog.Catalog, decls *astutil.DeclIndex) *Classifier {
	return &Classifier{cat: cat, decls: decls}
}

// AsyncScope reports whether the scope at idx is asynchronous-compatible.
// Deferred closures never are, regardless of their declared result type.
func (c *Classifier) AsyncScope(tree *Tree, idx int) bool {
	s := tree.At(idx)
	if s.Kind == KindDeferred {
		return false
	}

	return c.Compatible(s.Result)
}

// Compatible reports whether t is asynchronous-compatible: a future
// type, an asynchronous sequence, or a type marked with the awaitable
// directive.
func (c *Classifier) Compatible(t types.Type) bool {
	if t == nil {
		return false
	}

	if c.cat.IsFuture(t) {
		return true
	}

	if elem, ok := seqElem(t); ok && c.cat.IsFuture(elem) {
		return true
	}

	if c.cat.ImplementsStream(t) {
		return true
	}

	return c.marked(t)
}

// marked reports whether the declaration of a named type carries the
// awaitable directive. Types without declaring syntax in the current
// pass cannot be marked.
func (c *Classifier) marked(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	return astutil.HasAwaitableDirective(c.decls.TypeDoc(named.Obj()))
}

// seqElem matches the iter.Seq and iter.Seq2 shapes structurally and
// returns the yielded value type. For pair sequences the value is the
// second yield parameter.
func seqElem(t types.Type) (types.Type, bool) {
	sig, ok := t.Underlying().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 0 {
		return nil, false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Results().Len() != 1 {
		return nil, false
	}

	if basic, ok := yield.Results().At(0).Type().(*types.Basic); !ok || basic.Kind() != types.Bool {
		return nil, false
	}

	switch yield.Params().Len() {
	case 1:
		return yield.Params().At(0).Type(), true

	case 2:
		return yield.Params().At(1).Type(), true

	default:
		return nil, false
	}
}
