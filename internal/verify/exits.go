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

package verify

import (
	"go/token"
	"iter"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/flow"
	"fillmore-labs.com/callpair/internal/obligation"
)

// exit handles return statements and non-returning calls.
// Obligations still open are reported, unless the function runs deferred.
func (w *walker) exit(c inspector.Cursor, path string) {
	s := w.scope
	s.terminated = true

	if s.frame.InFinally() {
		return
	}

	node := astutil.NodeIndexOf(c)
	for e := range s.stack.All() {
		if !e.Pending() {
			continue
		}

		w.report(UnpairedOpener, node, Data{Opener: e.Name, Path: path, Exit: node, Related: e.Call})
	}
}

// jump handles break and continue statements leaving target.
func (w *walker) jump(c inspector.Cursor, tok token.Token, target *flow.Target) {
	node := astutil.NodeIndexOf(c)

	if !target.Loop {
		// break out of a switch or select statement ends the arm
		w.record(target.Node, node)

		return
	}

	path := "before " + tok.String()
	for e := range w.scope.stack.All() {
		if !e.Pending() || !e.InLoop(target.Node) {
			continue
		}

		w.report(UnpairedOpener, node, Data{Opener: e.Name, Path: path, Exit: node, Related: e.Call})
	}

	// obligations opened in the loop are reported above
	if tok == token.BREAK || target.Bounded {
		w.branches.Record(target.Node, &w.scope.stack)
	}
}

// leftover reports the open obligations at an implicit end of a scope or arm.
func (w *walker) leftover(entries iter.Seq[obligation.Entry], path string, exit astutil.NodeIndex) {
	for e := range entries {
		if !e.Pending() {
			continue
		}

		w.report(UnpairedOpener, e.Call, Data{Opener: e.Name, Path: path, Exit: exit, Related: e.Call})
	}
}

// suspend handles channel operations that can block. Obligations of synchronous
// pairs must not be open, even when closed by a deferred call.
func (w *walker) suspend(c inspector.Cursor, kind string) {
	if w.quiet > 0 {
		return
	}

	node := astutil.NodeIndexOf(c)
	for e := range w.scope.stack.All() {
		if e.State == obligation.MaybeClosed || !e.Pair.RequireSync {
			continue
		}

		w.report(AsyncViolation, node, Data{Opener: e.Name, Pair: e.Pair.String(), Path: kind, Related: e.Call})
	}
}

func (w *walker) report(kind Kind, node astutil.NodeIndex, data Data) {
	w.diagnostics = append(w.diagnostics, Diagnostic{Kind: kind, Node: node, Data: data})
}
