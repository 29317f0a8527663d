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

package flow

import (
	"fmt"
	"go/token"
	"slices"

	"fillmore-labs.com/callpair/internal/astutil"
)

// Target is a loop, switch or select statement that branch statements can leave.
type Target struct {
	Node    astutil.NodeIndex // The statement
	Loop    bool              // Whether continue statements can target this statement
	Bounded bool              // Whether the loop can end without a break statement
}

// Saved are the targets active before [Targets.Enter], to be passed to [Targets.Leave].
type Saved struct {
	currentBreak    *Target
	currentContinue *Target
	loops           int
}

// Targets maintains the branch targets of the nested control structures of a function body.
type Targets struct {
	currentBreak    *Target
	currentContinue *Target
	labels          map[string]*Target  // Labeled statements, function scoped
	loops           []astutil.NodeIndex // Active loops, outermost first
}

// NewTargets creates an empty target tracker for a function body.
func NewTargets() Targets {
	return Targets{labels: make(map[string]*Target)}
}

// Enter sets t as the current break target and, for loops, as the current continue target,
// returning the old. label is the name of the enclosing labeled statement, or empty.
func (j *Targets) Enter(t *Target, label string) (old Saved) {
	old = Saved{currentBreak: j.currentBreak, currentContinue: j.currentContinue, loops: len(j.loops)}

	if label != "" {
		j.labels[label] = t
	}

	j.currentBreak = t

	if t.Loop {
		j.currentContinue = t
		j.loops = append(j.loops, t.Node)
	}

	return old
}

// Leave restores the targets active before the matching [Targets.Enter].
func (j *Targets) Leave(old Saved) {
	j.currentBreak, j.currentContinue = old.currentBreak, old.currentContinue
	j.loops = j.loops[:old.loops]
}

// Loops returns the active loops, outermost first. The result is not modified by later calls.
func (j *Targets) Loops() []astutil.NodeIndex {
	if len(j.loops) == 0 {
		return nil
	}

	return slices.Clone(j.loops)
}

// Resolve returns the statement a break or continue statement leaves, or nil when
// there is none, as in syntactically invalid code.
func (j *Targets) Resolve(tok token.Token, label string) *Target {
	var target *Target
	if label == "" {
		switch tok {
		case token.BREAK:
			target = j.currentBreak

		case token.CONTINUE:
			target = j.currentContinue

		default:
			panic(fmt.Sprintf("unexpected branch token: %s", tok))
		}

		return target
	}

	target = j.labels[label]

	switch tok {
	case token.BREAK:
		return target

	case token.CONTINUE:
		if target == nil || !target.Loop {
			return nil
		}

		return target

	default:
		panic(fmt.Sprintf("unexpected labeled branch token: %s", tok))
	}
}
