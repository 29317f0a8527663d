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
	"slices"
	"testing"

	"fillmore-labs.com/callpair/internal/config"
	. "fillmore-labs.com/callpair/internal/flow"
	"fillmore-labs.com/callpair/internal/obligation"
	"fillmore-labs.com/callpair/internal/pairs"
)

var testPair = &pairs.Pair{Pair: config.Pair{Opener: "begin", Closers: []string{"end"}}}

func acceptAll(*pairs.Pair) bool { return true }

func states(snap obligation.Snapshot) []obligation.State {
	s := make([]obligation.State, 0, len(snap))
	for _, e := range snap {
		s = append(s, e.State)
	}

	return s
}

func TestMergeComplete(t *testing.T) {
	t.Parallel()

	const node = 10

	tests := []struct {
		name        string
		arms        []func(s *obligation.Stack)
		wantStates  []obligation.State
		wantPartial int
	}{
		{
			name: "AllClose",
			arms: []func(s *obligation.Stack){
				func(s *obligation.Stack) { s.PopMatching(acceptAll) },
				func(s *obligation.Stack) { s.PopMatching(acceptAll) },
			},
			wantStates: []obligation.State{},
		},
		{
			name: "AllOpen",
			arms: []func(s *obligation.Stack){
				func(*obligation.Stack) {},
				func(*obligation.Stack) {},
			},
			wantStates: []obligation.State{obligation.Open},
		},
		{
			name: "Partial",
			arms: []func(s *obligation.Stack){
				func(s *obligation.Stack) { s.PopMatching(acceptAll) },
				func(*obligation.Stack) {},
			},
			wantStates:  []obligation.State{obligation.MaybeClosed},
			wantPartial: 1,
		},
		{
			name: "Deferred",
			arms: []func(s *obligation.Stack){
				func(s *obligation.Stack) { s.Defer(acceptAll) },
				func(s *obligation.Stack) { s.PopMatching(acceptAll) },
			},
			wantStates: []obligation.State{obligation.Deferred},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seq obligation.Sequence

			s := obligation.NewStack(obligation.Limits{}, &seq)
			s.Push(obligation.Entry{Pair: testPair})

			b := NewBranches()
			b.Enter(node, "if", true, &s, seq.Last())

			for _, arm := range tt.arms {
				b.Restore(node, &s)
				arm(&s)

				if _, ok := b.Record(node, &s); !ok {
					t.Fatal("Record failed")
				}
			}

			r, ok := b.Merge(node)
			if !ok {
				t.Fatal("Merge failed")
			}

			if got := states(r.Entries); !slices.Equal(got, tt.wantStates) {
				t.Errorf("Merge states = %v, want %v", got, tt.wantStates)
			}

			if got := len(r.Partial); got != tt.wantPartial {
				t.Errorf("Merge partial = %d, want %d", got, tt.wantPartial)
			}

			if r.Terminated {
				t.Error("Merge terminated with live arms")
			}

			if b.Active(node) {
				t.Error("Statement still active after merge")
			}
		})
	}
}

func TestMergeIncomplete(t *testing.T) {
	t.Parallel()

	const node = 20

	var seq obligation.Sequence

	s := obligation.NewStack(obligation.Limits{}, &seq)
	s.Push(obligation.Entry{Pair: testPair})

	b := NewBranches()
	b.Enter(node, "if", false, &s, seq.Last())

	s.PopMatching(acceptAll)
	b.Record(node, &s)

	r, _ := b.Merge(node)

	if got, want := states(r.Entries), []obligation.State{obligation.MaybeClosed}; !slices.Equal(got, want) {
		t.Errorf("Merge states = %v, want %v", got, want)
	}

	if len(r.Partial) != 0 || r.Terminated {
		t.Errorf("Merge = %+v, want no partial and not terminated", r)
	}
}

func TestMergeTerminated(t *testing.T) {
	t.Parallel()

	var seq obligation.Sequence

	s := obligation.NewStack(obligation.Limits{}, &seq)
	s.Push(obligation.Entry{Pair: testPair})

	b := NewBranches()
	b.Enter(30, "select", true, &s, seq.Last())
	b.Enter(31, "if", false, &s, seq.Last())

	complete, _ := b.Merge(30)
	if !complete.Terminated || len(complete.Entries) != 1 {
		t.Errorf("Merge complete = %+v, want terminated with snapshot", complete)
	}

	incomplete, _ := b.Merge(31)
	if incomplete.Terminated {
		t.Error("Merge of skippable statement terminated")
	}

	if _, ok := b.Merge(31); ok {
		t.Error("Merge twice succeeded")
	}
}

func TestRecordLeftover(t *testing.T) {
	t.Parallel()

	const node = 40

	var seq obligation.Sequence

	s := obligation.NewStack(obligation.Limits{}, &seq)
	s.Push(obligation.Entry{Pair: testPair})

	b := NewBranches()
	b.Enter(node, "switch", true, &s, seq.Last())

	s.Push(obligation.Entry{Pair: testPair, Name: "inner"})

	leftover, _ := b.Record(node, &s)
	if len(leftover) != 1 || leftover[0].Name != "inner" {
		t.Errorf("Record leftover = %v, want inner", leftover)
	}

	b.Restore(node, &s)

	s.Push(obligation.Entry{Pair: testPair, Name: "held"})
	s.Defer(acceptAll)
	b.Record(node, &s)

	r, _ := b.Merge(node)
	if len(r.Entries) != 2 || r.Entries[1].Name != "held" || r.Entries[1].State != obligation.Deferred {
		t.Errorf("Merge entries = %+v, want outer and deferred held", r.Entries)
	}

	if len(r.Partial) != 0 {
		t.Errorf("Merge partial = %v, want none", r.Partial)
	}
}

func TestRecordAllLoop(t *testing.T) {
	t.Parallel()

	const node = 50

	var seq obligation.Sequence

	s := obligation.NewStack(obligation.Limits{}, &seq)
	s.Push(obligation.Entry{Pair: testPair, Name: "outer"})

	b := NewBranches()
	b.Enter(node, "for", false, &s, seq.Last())

	// break after closing
	s.PopMatching(acceptAll)
	b.Record(node, &s)

	// end of body after closing and reopening
	b.Restore(node, &s)
	s.PopMatching(acceptAll)
	s.Push(obligation.Entry{Pair: testPair, Name: "inner"})

	if !b.RecordAll(node, &s) {
		t.Fatal("RecordAll failed")
	}

	r, _ := b.Merge(node)

	if got, want := states(r.Entries), []obligation.State{obligation.MaybeClosed, obligation.Open}; !slices.Equal(got, want) {
		t.Fatalf("Merge states = %v, want %v", got, want)
	}

	if r.Entries[0].Name != "outer" || r.Entries[1].Name != "inner" {
		t.Errorf("Merge entries = %+v, want outer then inner", r.Entries)
	}

	if r.Terminated {
		t.Error("Merge of loop terminated")
	}
}

func TestMergeNoIterations(t *testing.T) {
	t.Parallel()

	var seq obligation.Sequence

	s := obligation.NewStack(obligation.Limits{}, &seq)
	s.Push(obligation.Entry{Pair: testPair})

	b := NewBranches()
	b.Enter(60, "range", false, &s, seq.Last())

	// the body returns after closing, nothing is recorded
	s.PopMatching(acceptAll)

	r, _ := b.Merge(60)
	if got, want := states(r.Entries), []obligation.State{obligation.Open}; !slices.Equal(got, want) || r.Terminated {
		t.Errorf("Merge = %+v, want open and not terminated", r)
	}
}
