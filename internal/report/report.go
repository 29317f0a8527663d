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

// Package report turns verifier diagnostics into analysis diagnostics.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/verify"
)

// Diagnostics emits the diagnostics of one function, skipping those on lines with a //nolint:callpair comment.
func Diagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, in *inspector.Inspector, diagnostics []verify.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, d := range diagnostics {
		node := d.Node.Node(in)
		if currentFile.NoLintComment(node.Pos()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      node.Pos(),
			End:      node.End(),
			Category: d.Kind.String(),
			Message:  Message(in, currentFile, d),
			Related:  related(in, d),
		})
	}
}

// Message formats the message of a diagnostic.
func Message(in *inspector.Inspector, currentFile astutil.CurrentFile, d verify.Diagnostic) string {
	var msg string

	switch data := d.Data; d.Kind {
	case verify.UnpairedOpener:
		if d.Node == data.Related {
			msg = fmt.Sprintf("%s() is not closed %s at line %d", data.Opener, data.Path, exitLine(in, currentFile, data.Exit))
		} else {
			msg = fmt.Sprintf("%s() from line %d is not closed %s", data.Opener, currentFile.Line(data.Related.Node(in).Pos()), data.Path)
		}

	case verify.UnpairedCloser:
		msg = fmt.Sprintf("%s() called while no opener is open", data.Closer)

	case verify.UnexpectedCloser:
		msg = fmt.Sprintf("%s() does not close %s(), expected %s", data.Closer, data.Opener, calls(data.Expected, " or "))

	case verify.WrongOrder:
		msg = fmt.Sprintf("%s() closes %s() while %s() is still open", data.Closer, data.Opener, data.Actual)

	case verify.MultipleOpeners:
		msg = fmt.Sprintf("%s() called again while already open", data.Opener)

	case verify.MaxNestingExceeded:
		msg = fmt.Sprintf("%s() exceeds the maximum nesting depth of %d", data.Opener, data.Limit)

	case verify.AsyncViolation:
		msg = fmt.Sprintf("%s while %s() is open, %s requires synchronous execution", capitalize(data.Path), data.Opener, data.Pair)

	case verify.YieldViolation:
		msg = fmt.Sprintf("%s() implicitly closes %s", data.Actual, calls(data.Openers, ", "))

	default:
		msg = "Unknown diagnostic"
	}

	return msg + " (cp:" + d.Kind.String() + ")"
}

// related points to the opener or still open call involved.
func related(in *inspector.Inspector, d verify.Diagnostic) []analysis.RelatedInformation {
	if !d.Data.Related.Valid() || d.Data.Related == d.Node {
		return nil
	}

	var message string

	switch d.Kind {
	case verify.WrongOrder:
		message = "Still open call"

	case verify.MultipleOpeners:
		message = "Previously opened here"

	case verify.UnexpectedCloser:
		message = "Innermost open call"

	default:
		message = "Opened here"
	}

	node := d.Data.Related.Node(in)

	return []analysis.RelatedInformation{{Pos: node.Pos(), End: node.End(), Message: message}}
}

// exitLine returns the line where the path described by a diagnostic ends. Blocks and clauses end at their last line.
func exitLine(in *inspector.Inspector, currentFile astutil.CurrentFile, exit astutil.NodeIndex) int {
	if !exit.Valid() {
		return 0
	}

	var pos token.Pos

	switch n := exit.Node(in).(type) {
	case *ast.BlockStmt:
		pos = n.Rbrace

	case *ast.CaseClause, *ast.CommClause:
		pos = n.End()

	default:
		pos = n.Pos()
	}

	return currentFile.Line(pos)
}

// calls formats a list of names as calls.
func calls(names []string, sep string) string {
	var b strings.Builder

	for i, name := range names {
		if i > 0 {
			b.WriteString(sep) // ignore error
		}

		b.WriteString(name) // ignore error
		b.WriteString("()") // ignore error
	}

	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
