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

package obligation

import (
	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/pairs"
)

// State describes how an open obligation will be discharged.
type State uint8

const (
	// Open obligations still need a closer on every path.
	Open State = iota

	// Deferred obligations are closed by a deferred call when the function returns.
	Deferred

	// MaybeClosed obligations were closed inside a branch that may not execute.
	MaybeClosed
)

// Entry is an opener call still waiting for its closer.
type Entry struct {
	Call   astutil.NodeIndex   // The opener call expression
	Name   string              // Source text of the opener
	Opener string              // Short name of the opener, "Lock"
	Pair   *pairs.Pair         // The matched pair configuration
	Seq    uint32              // Identity of this entry, increasing in push order
	Loops  []astutil.NodeIndex // Loops enclosing the opener, outermost first. Shared, never modified.
	State  State
}

// Pending reports whether the entry must still be closed on the current path.
func (e Entry) Pending() bool { return e.State == Open }

// Closable reports whether a closer call can still match this entry.
func (e Entry) Closable() bool { return e.State != Deferred }

// InLoop reports whether the opener was called inside the given loop.
func (e Entry) InLoop(loop astutil.NodeIndex) bool {
	for _, l := range e.Loops {
		if l == loop {
			return true
		}
	}

	return false
}

// Sequence hands out entry sequence numbers.
type Sequence struct{ next uint32 }

// Next returns the next sequence number.
func (q *Sequence) Next() uint32 {
	q.next++

	return q.next
}

// Last returns the most recently assigned sequence number.
func (q *Sequence) Last() uint32 {
	return q.next
}
