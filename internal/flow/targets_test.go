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

package flow_test

import (
	"go/token"
	"testing"

	. "fillmore-labs.com/callpair/internal/flow"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	j := NewTargets()

	outer := &Target{Node: 1, Loop: true}
	old1 := j.Enter(outer, "outer")

	sw := &Target{Node: 2}
	old2 := j.Enter(sw, "")

	if got := j.Resolve(token.BREAK, ""); got != sw {
		t.Errorf("break resolves to %v, want switch", got)
	}

	if got := j.Resolve(token.CONTINUE, ""); got != outer {
		t.Errorf("continue resolves to %v, want loop", got)
	}

	if got := j.Resolve(token.BREAK, "outer"); got != outer {
		t.Errorf("break outer resolves to %v, want loop", got)
	}

	if got := j.Resolve(token.BREAK, "missing"); got != nil {
		t.Errorf("break missing resolves to %v, want nil", got)
	}

	if got := j.Loops(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Loops() = %v, want [1]", got)
	}

	j.Leave(old2)
	j.Leave(old1)

	if got := j.Resolve(token.BREAK, ""); got != nil {
		t.Errorf("break after leave resolves to %v, want nil", got)
	}

	if got := j.Loops(); got != nil {
		t.Errorf("Loops() after leave = %v, want none", got)
	}
}

func TestResolveLabeledContinue(t *testing.T) {
	t.Parallel()

	j := NewTargets()

	sw := &Target{Node: 5}
	old := j.Enter(sw, "sw")

	if got := j.Resolve(token.CONTINUE, "sw"); got != nil {
		t.Errorf("continue to switch resolves to %v, want nil", got)
	}

	j.Leave(old)
}

func TestLoopsStable(t *testing.T) {
	t.Parallel()

	j := NewTargets()

	old1 := j.Enter(&Target{Node: 1, Loop: true}, "")
	old2 := j.Enter(&Target{Node: 2, Loop: true}, "")
	loops := j.Loops()
	j.Leave(old2)

	old3 := j.Enter(&Target{Node: 3, Loop: true}, "")

	if loops[1] != 2 {
		t.Errorf("Saved loops modified: %v", loops)
	}

	j.Leave(old3)
	j.Leave(old1)
}
