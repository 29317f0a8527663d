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

package pairs_test

import (
	"testing"

	"fillmore-labs.com/callpair/internal/config"
	. "fillmore-labs.com/callpair/internal/pairs"
	"fillmore-labs.com/callpair/internal/tracker"
)

var testPairs = []config.Pair{
	{Opener: "Lock", Closers: []string{"Unlock"}},
	{Opener: "begin", OpenerAliases: []string{"beginTx"}, Closers: []string{"commit", "rollback"}, AutoCloseTriggers: []string{"yield*"}},
	{Opener: "(example.com/db.Conn).Acquire", Closers: []string{"Release"}},
	{Opener: "open*", Closers: []string{"Release", "done"}},
}

func name(short string) tracker.CallName {
	return tracker.CallName{Short: short, Text: short}
}

func TestOpener(t *testing.T) {
	t.Parallel()

	r := New(testPairs)

	tests := []struct {
		name   string
		call   tracker.CallName
		wantID int // -1 for none
	}{
		{"Short", tracker.CallName{Short: "Lock", Text: "mu.Lock", Qualified: "(sync.Mutex).Lock"}, 0},
		{"Alias", name("beginTx"), 1},
		{"Qualified", tracker.CallName{Short: "Acquire", Text: "c.Acquire", Qualified: "(example.com/db.Conn).Acquire"}, 2},
		{"QualifiedMismatch", tracker.CallName{Short: "Acquire", Text: "c.Acquire", Qualified: "(example.com/pool.Pool).Acquire"}, -1},
		{"Wildcard", name("openFile"), 3},
		{"None", name("Unlock"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := r.Opener(tt.call)

			switch {
			case tt.wantID < 0 && p != nil:
				t.Errorf("Opener(%s) = %s, want none", tt.call, p)

			case tt.wantID >= 0 && (p == nil || p.ID != tt.wantID):
				t.Errorf("Opener(%s) = %v, want pair %d", tt.call, p, tt.wantID)
			}
		})
	}
}

func TestClosers(t *testing.T) {
	t.Parallel()

	r := New(testPairs)

	tests := []struct {
		name    string
		call    tracker.CallName
		wantIDs []int
	}{
		{"Single", name("Unlock"), []int{0}},
		{"Alternative", name("rollback"), []int{1}},
		{"Shared", name("Release"), []int{2, 3}},
		{"None", name("Lock"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Closers(tt.call)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Closers(%s) = %v, want ids %v", tt.call, got, tt.wantIDs)
			}

			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("Closers(%s)[%d] = pair %d, want %d", tt.call, i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestIsYieldTrigger(t *testing.T) {
	t.Parallel()

	r := New(testPairs)
	begin := r.Opener(name("begin"))
	lock := r.Opener(name("Lock"))

	if !r.IsYieldTrigger(name("yieldNow"), begin) {
		t.Error("Expected yieldNow to trigger auto-close of begin")
	}

	if r.IsYieldTrigger(name("yieldNow"), lock) {
		t.Error("Expected yieldNow not to trigger auto-close of Lock")
	}

	if r.IsYieldTrigger(name("doYield"), begin) {
		t.Error("Expected doYield not to match yield*")
	}
}
