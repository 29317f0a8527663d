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
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/tracker"
)

// autoClose handles calls that implicitly close all open obligations, like a cooperative yield.
// It reports whether the call is an auto-close trigger for one of the open obligations.
func (w *walker) autoClose(c inspector.Cursor, name tracker.CallName) bool {
	s := w.scope

	var (
		openers   []string
		triggered bool
	)

	for e := range s.stack.All() {
		if !e.Closable() {
			continue
		}

		openers = append(openers, e.Name)

		if w.registry.IsYieldTrigger(name, e.Pair) {
			triggered = true
		}
	}

	if !triggered {
		return false
	}

	w.report(YieldViolation, astutil.NodeIndexOf(c), Data{Actual: name.Text, Openers: openers})

	s.stack.Clear()
	s.autoClosed = true

	return true
}
