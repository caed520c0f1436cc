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

package catalog_test

import (
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/asyncguard/internal/catalog"
	"fillmore-labs.com/asyncguard/internal/funcref"
	"fillmore-labs.com/asyncguard/internal/testsource"
)

const futureSrc = `package future

type Task interface {
	Wait()
	Result() (any, error)
	Get(timeoutMs int) (any, error)
}

type Stream interface {
	Next() Task
}

func WaitAll(tasks ...Task) {}

func WhenAll(tasks ...Task) Task { return nil }

func Copy(src any, srcOff int, dst any, dstOff int, n int) {}
`

const consumerSrc = `package consumer

import "future"

type source struct{ ts []future.Task }

func (s source) Next() future.Task { return s.ts[0] }

func wait(t future.Task) { t.Wait() }
`

func buildPass(t *testing.T) (*analysis.Pass, *types.Package) {
	t.Helper()

	fset := token.NewFileSet()
	fpkg, _, _ := testsource.ParseCheck(t, fset, "future", futureSrc)
	pkg, _, _ := testsource.ParseCheck(t, fset, "consumer", consumerSrc, fpkg)

	return &analysis.Pass{Fset: fset, Pkg: pkg}, fpkg
}

func taskConfig() Config {
	return Config{Futures: []funcref.Ref{{Path: "future", Name: "Task"}}}
}

func TestBuildResolves(t *testing.T) {
	t.Parallel()

	pass, _ := buildPass(t)

	cat := Build(pass, taskConfig())

	if !cat.Async() {
		t.Error("Expected the future type to resolve")
	}

	if cat.ByteCount() {
		t.Error("Expected no bulk-copy functions without configuration")
	}
}

func TestBuildUnresolvable(t *testing.T) {
	t.Parallel()

	pass, _ := buildPass(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"MissingPackage", Config{Futures: []funcref.Ref{{Path: "missing", Name: "Task"}}}},
		{"MissingType", Config{Futures: []funcref.Ref{{Path: "future", Name: "Nope"}}}},
		{"WellKnownAbsent", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if cat := Build(pass, tt.cfg); cat.Async() {
				t.Error("Expected the checks to stay disabled")
			}
		})
	}
}

func TestIsFuture(t *testing.T) {
	t.Parallel()

	pass, fpkg := buildPass(t)
	cat := Build(pass, taskConfig())

	task := fpkg.Scope().Lookup("Task").(*types.TypeName).Type()

	if !cat.IsFuture(task) {
		t.Error("Expected the future type to be recognized")
	}

	if !cat.IsFuture(types.NewPointer(task)) {
		t.Error("Expected a pointer to the future type to be recognized")
	}

	if cat.IsFuture(types.Typ[types.Int]) {
		t.Error("Expected int not to be recognized")
	}
}

func TestImplementsStream(t *testing.T) {
	t.Parallel()

	pass, fpkg := buildPass(t)
	cat := Build(pass, taskConfig())

	src := pass.Pkg.Scope().Lookup("source").Type()
	if !cat.ImplementsStream(src) {
		t.Error("Expected the source type to implement the stream interface")
	}

	stream := fpkg.Scope().Lookup("Stream").(*types.TypeName).Type()
	if !cat.ImplementsStream(stream) {
		t.Error("Expected the stream interface to implement itself")
	}

	if cat.ImplementsStream(types.Typ[types.Int]) {
		t.Error("Expected int not to implement the stream interface")
	}
}

func TestMatchBlocking(t *testing.T) {
	t.Parallel()

	pass, fpkg := buildPass(t)
	cat := Build(pass, taskConfig())

	task := fpkg.Scope().Lookup("Task").(*types.TypeName).Type()

	wait, _, _ := types.LookupFieldOrMethod(task, true, pass.Pkg, "Wait")
	waitFn := wait.(*types.Func)

	if _, ok := cat.MatchBlocking(waitFn, 0); !ok {
		t.Error("Expected Wait to match")
	}

	if _, ok := cat.MatchBlocking(waitFn, 1); ok {
		t.Error("Expected Wait with one argument not to match")
	}

	get, _, _ := types.LookupFieldOrMethod(task, true, pass.Pkg, "Get")
	if _, ok := cat.MatchBlocking(get.(*types.Func), 1); !ok {
		t.Error("Expected Get to match at any arity")
	}

	waitAll := fpkg.Scope().Lookup("WaitAll").(*types.Func)

	entry, ok := cat.MatchBlocking(waitAll, 2)
	if !ok {
		t.Fatal("Expected WaitAll to match")
	}

	if got, want := entry.Alternative, "WhenAll"; got != want {
		t.Errorf("Alternative = %q, want %q", got, want)
	}

	whenAll := fpkg.Scope().Lookup("WhenAll").(*types.Func)
	if _, ok := cat.MatchBlocking(whenAll, 2); ok {
		t.Error("Expected WhenAll not to match")
	}
}

func TestBulkCopy(t *testing.T) {
	t.Parallel()

	pass, fpkg := buildPass(t)

	cfg := taskConfig()
	cfg.BlockCopy = []funcref.Ref{{Path: "future", Name: "Copy"}}

	cat := Build(pass, cfg)

	if !cat.ByteCount() {
		t.Fatal("Expected the bulk-copy function to resolve")
	}

	copyFn := fpkg.Scope().Lookup("Copy").(*types.Func)
	if !cat.IsBulkCopy(copyFn) {
		t.Error("Expected Copy to be recognized")
	}

	waitAll := fpkg.Scope().Lookup("WaitAll").(*types.Func)
	if cat.IsBulkCopy(waitAll) {
		t.Error("Expected WaitAll not to be recognized")
	}
}
