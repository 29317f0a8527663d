// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/callpair/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tx := Pair{
		Opener:            "Begin",
		Closers:           []string{"Commit", "Rollback"},
		RequireSync:       true,
		AutoCloseTriggers: []string{"Yield*"},
	}

	mutex := Pair{Opener: "Lock", Closers: []string{"Unlock"}, Platform: "sync"}

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "./basic",
		},
		{
			name:    "Pairs",
			dir:     "./pairs",
			options: Options{WithPairs(tx, mutex), WithPlatform("db")},
		},
		{
			name:    "Nesting",
			dir:     "./nesting",
			options: Options{WithPairs(tx), WithMaxNesting(1), WithMultipleOpeners(false)},
		},
		{
			name:    "ConfigFile",
			dir:     "./config",
			options: WithConfigFile(filepath.Join(testdata, "config", "callpair.yaml")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			analysistest.Run(t, testdata, a, tt.dir)
		})
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithGenerated(true),
		nil,
		Options{WithMaxNesting(2), WithPlatform("db")},
		WithPairs(Pair{Opener: "Begin", Closers: []string{"End"}}),
	}

	const want = "[generated=true nil=<nil> max-nesting=2 platform=db pairs=[Begin/End]]"
	if got := opts.LogValue().String(); got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}
}
