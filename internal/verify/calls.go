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
	"go/ast"
	"slices"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/obligation"
	"fillmore-labs.com/callpair/internal/pairs"
	"fillmore-labs.com/callpair/internal/tracker"
)

// call classifies a call after its operands have been walked.
func (w *walker) call(c inspector.Cursor, call *ast.CallExpr) {
	name, ok := w.tracker.Name(call)
	if ok {
		if p := w.registry.Opener(name); p != nil {
			w.open(c, name, p)

			return
		}

		if closers := w.registry.Closers(name); len(closers) > 0 {
			w.close(c, name, closers)

			return
		}

		if w.autoClose(c, name) {
			return
		}
	}

	if w.tracker.CantReturn(call) {
		path := "before non-returning call"
		if ok {
			path = "before " + name.Text
		}

		w.exit(c, path)
	}
}

// open pushes a new obligation.
func (w *walker) open(c inspector.Cursor, name tracker.CallName, p *pairs.Pair) {
	s := w.scope
	node := astutil.NodeIndexOf(c)

	top, hasTop := s.stack.Top()

	_, advisory := s.stack.Push(obligation.Entry{
		Call:   node,
		Name:   name.Text,
		Opener: name.Short,
		Pair:   p,
		Loops:  s.targets.Loops(),
	})

	if advisory.Enabled(obligation.DepthExceeded) {
		w.report(MaxNestingExceeded, node, Data{Opener: name.Text, Limit: w.limits.MaxDepth})
	}

	if advisory.Enabled(obligation.RepeatedOpener) && hasTop {
		w.report(MultipleOpeners, node, Data{Opener: name.Text, Related: top.Call})
	}

	w.claim(p)
}

// close removes the innermost obligation closed by the call.
func (w *walker) close(c inspector.Cursor, name tracker.CallName, closers []*pairs.Pair) {
	s := w.scope
	node := astutil.NodeIndexOf(c)
	accept := acceptor(closers)

	r := s.stack.PopMatching(accept)
	if r.Found {
		if r.OutOfOrder {
			w.report(WrongOrder, node, Data{
				Closer:  name.Text,
				Opener:  r.Closed.Name,
				Actual:  r.Top.Name,
				Related: r.Top.Call,
			})
		}

		return
	}

	if w.closeForCaller(accept) {
		return
	}

	if s.caller != nil && s.frame.InFinally() {
		w.park(s.caller, node, name, accept)

		return
	}

	w.unmatched(node, name, r.Empty, r.Top)
}

// deferCall marks the obligation closed by a deferred call as closed on function exit.
func (w *walker) deferCall(c inspector.Cursor, call *ast.CallExpr) {
	name, ok := w.tracker.Name(call)
	if !ok {
		return
	}

	closers := w.registry.Closers(name)
	if len(closers) == 0 {
		return
	}

	s := w.scope
	accept := acceptor(closers)

	if _, ok := s.stack.Defer(accept); ok {
		return
	}

	if w.closeForCaller(accept) {
		return
	}

	w.park(s, astutil.NodeIndexOf(c), name, accept)
}

// closeForCaller lets a closer in a deferred function literal close an obligation of
// the enclosing function on its exit.
func (w *walker) closeForCaller(accept func(*pairs.Pair) bool) bool {
	s := w.scope
	if s.caller == nil || !s.frame.InFinally() {
		return false
	}

	state := obligation.Deferred
	if s.frame.Conditional() {
		state = obligation.MaybeClosed
	}

	_, ok := s.caller.stack.Discharge(accept, state)

	return ok
}

// parkedCloser is a closer running at function exit that found no open obligation yet.
type parkedCloser struct {
	node        astutil.NodeIndex
	name        string
	accept      func(*pairs.Pair) bool
	conditional bool
	used        bool
}

// park holds a closer running on exit of owner until an obligation it closes is opened.
func (w *walker) park(owner *scope, node astutil.NodeIndex, name tracker.CallName, accept func(*pairs.Pair) bool) {
	owner.parked = append(owner.parked, parkedCloser{
		node:        node,
		name:        name.Text,
		accept:      accept,
		conditional: w.scope.frame.Conditional(),
	})
}

// claim lets a parked closer accepting p close the obligation just opened on function exit.
// Parked closers are not consumed, the opener may be called on several paths.
func (w *walker) claim(p *pairs.Pair) {
	s := w.scope

	for i := range s.parked {
		pc := &s.parked[i]
		if !pc.accept(p) {
			continue
		}

		state := obligation.Deferred
		if pc.conditional {
			state = obligation.MaybeClosed
		}

		s.stack.Discharge(func(q *pairs.Pair) bool { return q == p }, state)
		pc.used = true

		return
	}
}

// unclaimed reports parked closers that never found an obligation to close.
func (w *walker) unclaimed() {
	for _, pc := range w.scope.parked {
		if pc.used || pc.conditional {
			continue
		}

		w.report(UnpairedCloser, pc.node, Data{Closer: pc.name})
	}
}

// unmatched reports a closer without matching obligation, unless an auto-close trigger already closed it.
func (w *walker) unmatched(node astutil.NodeIndex, name tracker.CallName, empty bool, top obligation.Entry) {
	s := w.scope
	if s.autoClosed {
		s.autoClosed = false

		return
	}

	if empty {
		w.report(UnpairedCloser, node, Data{Closer: name.Text})

		return
	}

	w.report(UnexpectedCloser, node, Data{
		Closer:   name.Text,
		Opener:   top.Name,
		Expected: top.Pair.Closers,
		Related:  top.Call,
	})
}

func acceptor(closers []*pairs.Pair) func(*pairs.Pair) bool {
	return func(p *pairs.Pair) bool { return slices.Contains(closers, p) }
}
