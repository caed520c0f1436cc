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

package catalog

import "fillmore-labs.com/asyncguard/internal/funcref"

// source describes one future library the catalog knows out of the box.
type source struct {
	// Pkg is the import path of the library.
	Pkg string

	// Future is the name of the library's future type.
	Future string

	// Stream optionally names the library's asynchronous sequence
	// capability interface; defaults to "Stream".
	Stream string
}

// wellKnown lists the future libraries compiled into the default catalog.
var wellKnown = []source{
	{Pkg: "github.com/reugn/async", Future: "Future"},
	{Pkg: "github.com/chebyrash/promise", Future: "Promise"},
	{Pkg: "github.com/fanliao/go-promise", Future: "Future"},
}

// memberTable is the standard blocking-member set compiled for every
// resolved future type. Entries are tested in this order; the first
// structural match wins.
var memberTable = []Entry{
	{Member: "Wait", Arity: 0, Note: "synchronously blocks until the future resolves"},
	{Member: "Result", Arity: 0, Note: "synchronously blocks and returns the resolved value"},
	{Member: "Get", Arity: -1, Note: "synchronously blocks and returns the resolved value"},
	{Member: "WaitAll", Arity: -1, Extension: true, Alternative: "WhenAll"},
	{Member: "WaitAny", Arity: -1, Extension: true, Alternative: "WhenAny"},
}

// blockCopyTable is the default set of bulk-copy functions for the
// byte-count check. There is no established byte-oriented copy helper in
// the ecosystem, so the default set is empty and the check activates
// through the -blockcopy flag.
var blockCopyTable []funcref.Ref

// sources maps the configured future references onto catalog sources,
// falling back to the well-known table.
func sources(futures []funcref.Ref) []source {
	if futures == nil {
		return wellKnown
	}

	srcs := make([]source, len(futures))
	for i, ref := range futures {
		srcs[i] = source{Pkg: ref.Path, Future: ref.Name}
	}

	return srcs
}
