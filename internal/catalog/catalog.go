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

// Package catalog compiles the pattern catalog of known blocking calls
// on future values and of bulk-copy call shapes.
//
// The catalog is built once per pass, before any call site is visited,
// and is read-only afterwards. Future types that do not resolve against
// the import graph of the package under analysis are dropped; when none
// resolve, the sync-over-async checks are a silent no-op for the pass.
package catalog

import (
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/asyncguard/internal/funcref"
)

// Entry describes one known blocking member of a future type.
type Entry struct {
	// Member is the name of the blocking method, or of the package-level
	// helper for extension entries.
	Member string

	// Arity is the expected number of call arguments, -1 for any.
	Arity int

	// Extension marks a package-level helper taking futures as arguments
	// instead of a method on the future type.
	Extension bool

	// Alternative optionally names the asynchronous counterpart.
	Alternative string

	// Note carries free-text documentation for the entry.
	Note string
}

// HasAlternative reports whether the entry names an asynchronous counterpart.
func (e Entry) HasAlternative() bool { return e.Alternative != "" }

// blockingEntry is an [Entry] compiled against a resolved future type.
type blockingEntry struct {
	Entry
	recv *types.TypeName // receiver type; nil for extension entries
	pkg  *types.Package  // declaring package of extension entries
}

// Config selects the future types and bulk-copy functions the catalog is
// compiled from. Empty slices select the built-in well-known tables.
type Config struct {
	Futures   []funcref.Ref
	BlockCopy []funcref.Ref
}

// Catalog is the compiled, immutable pattern table for one pass.
type Catalog struct {
	futures  []*types.TypeName
	streams  []*types.Interface
	blocking []blockingEntry
	copies   []*types.Func
}

// Build compiles the catalog against the import graph of the pass.
// It never fails: unresolvable patterns are dropped silently.
func Build(p *analysis.Pass, cfg Config) *Catalog {
	imports := importedPackages(p.Pkg)

	c := &Catalog{}

	for _, src := range sources(cfg.Futures) {
		pkg, ok := imports[src.Pkg]
		if !ok {
			continue
		}

		future, ok := pkg.Scope().Lookup(src.Future).(*types.TypeName)
		if !ok {
			continue
		}

		c.futures = append(c.futures, future)

		if iface := streamInterface(pkg, src.Stream); iface != nil {
			c.streams = append(c.streams, iface)
		}

		for _, entry := range memberTable {
			be := blockingEntry{Entry: entry, recv: future}
			if entry.Extension {
				be.recv, be.pkg = nil, pkg
			}

			c.blocking = append(c.blocking, be)
		}
	}

	copies := cfg.BlockCopy
	if copies == nil {
		copies = blockCopyTable
	}

	for _, ref := range copies {
		pkg, ok := imports[ref.Path]
		if !ok {
			continue
		}

		if fn, ok := pkg.Scope().Lookup(ref.Name).(*types.Func); ok {
			c.copies = append(c.copies, fn)
		}
	}

	return c
}

// Async reports whether any future type resolved, enabling the
// sync-over-async checks.
func (c *Catalog) Async() bool { return len(c.futures) > 0 }

// ByteCount reports whether any bulk-copy function resolved, enabling
// the byte-count check.
func (c *Catalog) ByteCount() bool { return len(c.copies) > 0 }

// IsFuture reports whether t is one of the catalog's future types,
// unwrapping one level of pointer indirection.
func (c *Catalog) IsFuture(t types.Type) bool {
	if t == nil {
		return false
	}

	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	for _, future := range c.futures {
		if obj == future {
			return true
		}
	}

	return false
}

// ImplementsStream reports whether t implements one of the resolved
// stream capability interfaces.
func (c *Catalog) ImplementsStream(t types.Type) bool {
	if t == nil {
		return false
	}

	for _, iface := range c.streams {
		if types.Implements(t, iface) {
			return true
		}

		// The method set of *T includes the methods of T.
		if _, isPtr := t.(*types.Pointer); !isPtr && types.Implements(types.NewPointer(t), iface) {
			return true
		}
	}

	return false
}

// MatchBlocking tests a resolved target against the catalog entries in
// registration order. The arity is the number of explicit call
// arguments; pass -1 for a bare member access.
func (c *Catalog) MatchBlocking(fn *types.Func, arity int) (Entry, bool) {
	for _, be := range c.blocking {
		if be.matches(fn, arity) {
			return be.Entry, true
		}
	}

	return Entry{}, false
}

func (be blockingEntry) matches(fn *types.Func, arity int) bool {
	if fn.Name() != be.Member {
		return false
	}

	if be.Arity >= 0 && arity >= 0 && arity != be.Arity {
		return false
	}

	recv := fn.Signature().Recv()

	if be.recv == nil {
		// Extension entry: package-level function in the future package.
		return recv == nil && fn.Pkg() == be.pkg
	}

	if recv == nil {
		return false
	}

	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)

	return ok && named.Obj() == be.recv
}

// IsBulkCopy reports whether fn is one of the resolved bulk-copy functions.
func (c *Catalog) IsBulkCopy(fn *types.Func) bool {
	for _, copyFn := range c.copies {
		if fn == copyFn {
			return true
		}
	}

	return false
}

// importedPackages collects the transitive imports of the package under
// analysis, keyed by path.
func importedPackages(pkg *types.Package) map[string]*types.Package {
	imports := make(map[string]*types.Package)

	var walk func(p *types.Package)
	walk = func(p *types.Package) {
		for _, imp := range p.Imports() {
			if _, seen := imports[imp.Path()]; seen {
				continue
			}

			imports[imp.Path()] = imp
			walk(imp)
		}
	}
	walk(pkg)

	return imports
}

// streamInterface resolves the optional stream capability interface of a
// future package.
func streamInterface(pkg *types.Package, name string) *types.Interface {
	if name == "" {
		name = "Stream"
	}

	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil
	}

	iface, ok := tn.Type().Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	return iface
}
