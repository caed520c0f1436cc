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

// Package run wires the per-pass analysis pipeline.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/asyncguard/internal/alternative"
	"fillmore-labs.com/asyncguard/internal/asyncscope"
	"fillmore-labs.com/asyncguard/internal/astutil"
	"fillmore-labs.com/asyncguard/internal/blocking"
	"fillmore-labs.com/asyncguard/internal/bytecount"
	"fillmore-labs.com/asyncguard/internal/catalog"
	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the asyncguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("asyncguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "AsyncGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	findings := &report.Findings{}

	// The catalog is compiled once per pass, before any call site is
	// visited, and is read-only afterwards.
	cat := catalog.Build(p, catalog.Config{Futures: r.Futures, BlockCopy: r.BlockCopy})

	async := cat.Async() && r.Checkers.Enabled(config.BlockingChecker|config.AlternativeChecker)
	counts := cat.ByteCount() && r.Checkers.Enabled(config.ByteCountChecker)

	if !async && !counts {
		// Nothing resolved against this package's imports. Not an error,
		// the engine is a silent no-op for the pass.
		return findings, nil
	}

	decls := astutil.NewDeclIndex(p)
	cls := asyncscope.NewClassifier(cat, decls)

	v := &visitor{
		pass:     p,
		options:  r,
		cat:      cat,
		cls:      cls,
		matcher:  blocking.New(cat, p.TypesInfo),
		resolver: alternative.New(p, cls, decls),
		counter:  bytecount.New(p, cat),
		findings: findings,
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			decl := c.Node().(*ast.FuncDecl)

			if decl.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if decl.Doc != nil && astutil.CommentHasNoLint(decl.Doc.List[len(decl.Doc.List)-1]) {
				continue
			}

			region := trace.StartRegion(ctx, "VisitDecl")
			v.visitDecl(ctx, decl)
			region.End()
		}
	}

	return findings, nil
}
