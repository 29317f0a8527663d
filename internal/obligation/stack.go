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

// Package obligation implements the stack of opened, not yet closed, pair obligations.
package obligation

import (
	"iter"
	"slices"

	"fillmore-labs.com/callpair/internal/config"
	"fillmore-labs.com/callpair/internal/pairs"
)

// Limits restricts how obligations can be nested.
type Limits struct {
	MaxDepth      int  // Maximum number of simultaneously open obligations, 0 for unlimited
	AllowMultiple bool // Allow the same opener twice in a row
}

// Advisory is a problem detected when pushing an obligation.
type Advisory uint8

const (
	// DepthExceeded is reported when the maximum nesting depth is reached.
	DepthExceeded Advisory = 1 << iota

	// RepeatedOpener is reported when the innermost obligation has the same opener.
	RepeatedOpener
)

// Stack is a LIFO of obligations of one function scope.
type Stack struct {
	entries []Entry
	limits  Limits
	seq     *Sequence
}

// Snapshot is a value copy of a [Stack].
type Snapshot []Entry

// NewStack creates an empty stack. seq is shared between the stacks of nested scopes.
func NewStack(limits Limits, seq *Sequence) Stack {
	return Stack{limits: limits, seq: seq}
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// All yields the entries from outermost to innermost.
func (s *Stack) All() iter.Seq[Entry] {
	return slices.Values(s.entries)
}

// Top returns the innermost entry a closer can still match.
func (s *Stack) Top() (Entry, bool) {
	if i := s.top(); i >= 0 {
		return s.entries[i], true
	}

	return Entry{}, false
}

// Push opens a new obligation, assigning the next sequence number.
// The returned advisories are informational, the entry is always pushed.
func (s *Stack) Push(e Entry) (Entry, config.BitMask[Advisory]) {
	var advisory config.BitMask[Advisory]

	if s.limits.MaxDepth > 0 && len(s.entries) >= s.limits.MaxDepth {
		advisory.Enable(DepthExceeded)
	}

	if top, ok := s.Top(); ok && !s.limits.AllowMultiple && top.Pair == e.Pair && top.Opener == e.Opener {
		advisory.Enable(RepeatedOpener)
	}

	e.Seq = s.seq.Next()
	e.State = Open
	s.entries = append(s.entries, e)

	return e, advisory
}

// PopResult describes the outcome of [Stack.PopMatching].
type PopResult struct {
	Closed     Entry // The removed entry, when Found
	Top        Entry // The innermost closable entry before the pop, when not Empty
	Found      bool  // A matching entry was removed
	Empty      bool  // No closable entry was open
	OutOfOrder bool  // The removed entry was not the innermost closable one
}

// PopMatching removes the innermost closable entry whose pair is accepted.
// Entries above the match are kept.
func (s *Stack) PopMatching(accept func(*pairs.Pair) bool) PopResult {
	top := s.top()
	if top < 0 {
		return PopResult{Empty: true}
	}

	r := PopResult{Top: s.entries[top]}

	i := s.find(accept)
	if i < 0 {
		return r
	}

	r.Closed, r.Found, r.OutOfOrder = s.entries[i], true, i != top
	s.entries = slices.Delete(s.entries, i, i+1)

	return r
}

// Defer marks the innermost closable entry whose pair is accepted as closed on function exit.
func (s *Stack) Defer(accept func(*pairs.Pair) bool) (Entry, bool) {
	return s.Discharge(accept, Deferred)
}

// Discharge sets the state of the innermost closable entry whose pair is accepted.
func (s *Stack) Discharge(accept func(*pairs.Pair) bool, state State) (Entry, bool) {
	i := s.find(accept)
	if i < 0 {
		return Entry{}, false
	}

	s.entries[i].State = state

	return s.entries[i], true
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}

// Snapshot returns a copy of the current entries.
func (s *Stack) Snapshot() Snapshot {
	return slices.Clone(s.entries)
}

// Restore replaces the entries with a copy of the snapshot.
func (s *Stack) Restore(snap Snapshot) {
	s.entries = append(s.entries[:0], snap...)
}

// top returns the index of the innermost closable entry, or -1.
func (s *Stack) top() int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Closable() {
			return i
		}
	}

	return -1
}

// find returns the index of the innermost closable entry whose pair is accepted, or -1.
func (s *Stack) find(accept func(*pairs.Pair) bool) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if e := s.entries[i]; e.Closable() && accept(e.Pair) {
			return i
		}
	}

	return -1
}

// Find returns the entry with the given sequence number.
func (snap Snapshot) Find(seq uint32) (Entry, bool) {
	for _, e := range snap {
		if e.Seq == seq {
			return e, true
		}
	}

	return Entry{}, false
}
