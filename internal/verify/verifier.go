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

// Package verify checks that opener and closer calls are balanced on every path
// through a function body.
package verify

import (
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/config"
	"fillmore-labs.com/callpair/internal/flow"
	"fillmore-labs.com/callpair/internal/obligation"
	"fillmore-labs.com/callpair/internal/pairs"
	"fillmore-labs.com/callpair/internal/tracker"
)

// Verifier checks function bodies against a pair registry.
// A Verifier is not safe for concurrent use, use one per analysis pass.
type Verifier struct {
	registry         *pairs.Registry
	tracker          tracker.Tracker
	branches         *flow.Branches
	limits           obligation.Limits
	allowConditional bool
}

// New creates a [Verifier] for the given pairs and behavior.
func New(registry *pairs.Registry, tr tracker.Tracker, behavior config.Behaviors, maxNesting int) *Verifier {
	return &Verifier{
		registry: registry,
		tracker:  tr,
		branches: flow.NewBranches(),
		limits: obligation.Limits{
			MaxDepth:      maxNesting,
			AllowMultiple: behavior.Enabled(config.AllowMultipleOpeners),
		},
		allowConditional: behavior.Enabled(config.AllowConditionalClosers),
	}
}

// Verify checks the function declaration or function literal at c, including nested function literals.
// Diagnostics are returned in traversal order, those of nested functions before the scope exit
// diagnostics of the enclosing function.
func (v *Verifier) Verify(c inspector.Cursor) []Diagnostic {
	v.branches.Reset()

	w := walker{Verifier: v}

	switch n := c.Node().(type) {
	case *ast.FuncDecl:
		if n.Body == nil {
			return nil
		}

		w.function(c.Child(n.Body))

	case *ast.FuncLit:
		w.function(c.Child(n.Body))

	default:
		return nil
	}

	return w.diagnostics
}
