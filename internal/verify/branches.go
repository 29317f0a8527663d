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
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/flow"
)

// enterBranch records the obligation stack at the start of a branching statement.
func (w *walker) enterBranch(node astutil.NodeIndex, name string, complete bool) {
	w.branches.Enter(node, name, complete, &w.scope.stack, w.seq.Last())
}

// arm walks one arm of a branching statement, starting from the stack at the start of the statement.
func (w *walker) arm(node astutil.NodeIndex, arm inspector.Cursor, walk func(arm inspector.Cursor)) {
	s := w.scope

	w.branches.Restore(node, &s.stack)
	s.terminated = false

	s.frame = s.frame.Enter(astutil.NodeIndexOf(arm), flow.Conditional)
	walk(arm)
	s.frame = s.frame.Leave()

	if !s.terminated {
		w.record(node, astutil.NodeIndexOf(arm))
	}
}

// record stores the current stack as an outcome of a branching statement, reporting
// obligations opened in the arm that are still open at exit.
func (w *walker) record(node, exit astutil.NodeIndex) {
	leftover, ok := w.branches.Record(node, &w.scope.stack)
	if !ok {
		return
	}

	w.leftover(slices.Values(leftover), "before end of "+w.branches.Name(node)+" branch", exit)
}

// mergeBranch replaces the stack with the merged arm outcomes of a branching statement.
func (w *walker) mergeBranch(c inspector.Cursor, node astutil.NodeIndex) {
	s := w.scope
	name := w.branches.Name(node)

	r, ok := w.branches.Merge(node)
	if !ok {
		return
	}

	s.stack.Restore(r.Entries)
	s.terminated = r.Terminated

	if w.allowConditional {
		return
	}

	for _, e := range r.Partial {
		w.report(UnpairedOpener, e.Call, Data{
			Opener:  e.Name,
			Path:    "on all execution paths of " + name,
			Exit:    astutil.NodeIndexOf(c),
			Related: e.Call,
		})
	}
}
