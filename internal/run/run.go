// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

// Package run drives the callpair analysis over the functions of a package.
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

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/config"
	"fillmore-labs.com/callpair/internal/pairs"
	"fillmore-labs.com/callpair/internal/report"
	"fillmore-labs.com/callpair/internal/tracker"
	"fillmore-labs.com/callpair/internal/verify"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the callpair analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("callpair: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	s, err := r.resolve()
	if err != nil {
		return nil, fmt.Errorf("callpair: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CallPair")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	v := verify.New(pairs.New(s.pairs), tracker.New(p.TypesInfo), s.behavior, s.maxNesting)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !s.behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if hasNoLint(file.Doc) {
			continue
		}

		// Function declarations and function literals outside of them, like package level variables.
		// Nested function literals are verified with their enclosing function.
		f.Inspect([]ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)}, func(c inspector.Cursor) bool {
			if fun, ok := c.Node().(*ast.FuncDecl); ok && (fun.Body == nil || hasNoLint(fun.Doc)) {
				return false
			}

			region := trace.StartRegion(ctx, "Verify")
			diagnostics := v.Verify(c)
			region.End()

			report.Diagnostics(ctx, p, currentFile, in, diagnostics)

			return false
		})
	}

	return nil, nil
}

// hasNoLint reports whether the last line of a doc comment is a //nolint:callpair directive.
func hasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && astutil.CommentHasNoLint(doc.List[len(doc.List)-1])
}
