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

// Package flow tracks control flow state of a function body: branch snapshots and
// their merge, branch statement targets and the lexical context.
package flow

import (
	"fillmore-labs.com/callpair/internal/arena"
	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/obligation"
)

// Branches keeps the snapshots and arm outcomes of the branching statements
// currently being walked, keyed by statement node.
type Branches struct {
	slab   arena.Slab[branch]
	active map[astutil.NodeIndex]*branch
}

type branch struct {
	name     string
	snapshot obligation.Snapshot
	outcomes []obligation.Snapshot
	last     uint32 // Last sequence number assigned before the statement
	complete bool   // One of the arms always executes
}

// NewBranches creates an empty branch table.
func NewBranches() *Branches {
	return &Branches{active: make(map[astutil.NodeIndex]*branch)}
}

// Reset drops all state, keeping allocated memory.
func (b *Branches) Reset() {
	b.slab.Reset()
	clear(b.active)
}

// Enter records the stack at the start of a branching statement.
// name describes the statement in diagnostics, complete is true when one of the arms always executes.
func (b *Branches) Enter(node astutil.NodeIndex, name string, complete bool, stack *obligation.Stack, last uint32) {
	br := b.slab.New()
	br.name, br.complete, br.last = name, complete, last
	br.snapshot = stack.Snapshot()

	b.active[node] = br
}

// Name returns the description given to [Branches.Enter].
func (b *Branches) Name(node astutil.NodeIndex) string {
	if br, ok := b.active[node]; ok {
		return br.name
	}

	return ""
}

// Restore resets the stack to the state at the start of the statement, for the next arm.
func (b *Branches) Restore(node astutil.NodeIndex, stack *obligation.Stack) bool {
	br, ok := b.active[node]
	if !ok {
		return false
	}

	stack.Restore(br.snapshot)

	return true
}

// Record stores the stack at the end of an arm. Obligations opened in the arm that
// are still open are returned and not recorded, since they cannot outlive the arm.
func (b *Branches) Record(node astutil.NodeIndex, stack *obligation.Stack) (leftover []obligation.Entry, ok bool) {
	br, ok := b.active[node]
	if !ok {
		return nil, false
	}

	outcome := make(obligation.Snapshot, 0, stack.Len())

	for e := range stack.All() {
		if e.Seq > br.last && e.Pending() {
			leftover = append(leftover, e)
			continue
		}

		outcome = append(outcome, e)
	}

	br.outcomes = append(br.outcomes, outcome)

	return leftover, true
}

// RecordAll stores the whole stack at the end of a loop body. Obligations opened
// in the body stay open after the loop, a later closer may still close them.
func (b *Branches) RecordAll(node astutil.NodeIndex, stack *obligation.Stack) bool {
	br, ok := b.active[node]
	if !ok {
		return false
	}

	br.outcomes = append(br.outcomes, stack.Snapshot())

	return true
}

// MergeResult is the state after a branching statement.
type MergeResult struct {
	Entries    obligation.Snapshot // The stack after the statement
	Partial    []obligation.Entry  // Obligations closed on some, but not all, arms
	Terminated bool                // No arm reaches the end of the statement
}

// Merge combines the recorded arm outcomes and forgets the statement.
//
// When one arm always executes, obligations open on every arm stay open,
// obligations closed on every arm are removed and the others are partial.
// Otherwise the statement may be skipped, and obligations closed on any arm are
// only maybe closed afterwards.
func (b *Branches) Merge(node astutil.NodeIndex) (MergeResult, bool) {
	br, ok := b.active[node]
	if !ok {
		return MergeResult{}, false
	}

	delete(b.active, node)

	if len(br.outcomes) == 0 {
		return MergeResult{Entries: br.snapshot, Terminated: br.complete}, true
	}

	var r MergeResult

	r.Entries = make(obligation.Snapshot, 0, len(br.snapshot))

	for _, e := range br.snapshot {
		var c census
		for _, outcome := range br.outcomes {
			c.add(outcome, e.Seq)
		}

		if br.complete {
			e, keep, partial := c.merge(e)
			if partial {
				r.Partial = append(r.Partial, e)
			}

			if keep {
				r.Entries = append(r.Entries, e)
			}

			continue
		}

		if e.Pending() && c.open < len(br.outcomes) {
			e.State = obligation.MaybeClosed
		}

		r.Entries = append(r.Entries, e)
	}

	// Obligations opened inside an arm that are deferred or may still be open.
	first := len(r.Entries)
	for _, outcome := range br.outcomes {
		for _, e := range outcome {
			if e.Seq <= br.last {
				continue
			}

			if _, ok := r.Entries[first:].Find(e.Seq); !ok {
				r.Entries = append(r.Entries, e)
			}
		}
	}

	return r, true
}

// census counts the states of one obligation over all arm outcomes.
type census struct {
	open, deferred, maybe, closed int
}

func (c *census) add(outcome obligation.Snapshot, seq uint32) {
	e, ok := outcome.Find(seq)
	switch {
	case !ok:
		c.closed++

	case e.State == obligation.Open:
		c.open++

	case e.State == obligation.Deferred:
		c.deferred++

	default:
		c.maybe++
	}
}

// merge computes the state of e after a statement with an always executing arm.
func (c census) merge(e obligation.Entry) (merged obligation.Entry, keep, partial bool) {
	total := c.open + c.deferred + c.maybe + c.closed

	if !e.Pending() {
		// Already deferred or maybe closed before the statement
		switch {
		case c.closed == total:
			return e, false, false

		case c.deferred > 0:
			e.State = obligation.Deferred
		}

		return e, true, false
	}

	switch {
	case c.open == total:
		return e, true, false

	case c.open > 0:
		e.State = obligation.MaybeClosed

		return e, true, true

	case c.maybe > 0:
		e.State = obligation.MaybeClosed

		return e, true, false

	case c.deferred > 0:
		e.State = obligation.Deferred

		return e, true, false

	default:
		return e, false, false
	}
}
