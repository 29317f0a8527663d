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

package tracker

import (
	"go/ast"
	"go/types"
)

// Tracker classifies call expressions using optional type information.
type Tracker struct {
	info *types.Info // nil for syntax-only analysis
}

// New creates and returns a new Tracker.
func New(info *types.Info) Tracker {
	return Tracker{
		info: info,
	}
}

// CantReturn determines if the given function call expression represents a function that cannot return.
func (t Tracker) CantReturn(call *ast.CallExpr) bool {
	return CantReturn(t.info, call)
}

// Name returns the names the call can be matched by.
func (t Tracker) Name(call *ast.CallExpr) (CallName, bool) {
	return NameOf(t.info, call)
}

// IsChan reports whether the expression has a channel type.
func (t Tracker) IsChan(x ast.Expr) bool {
	if t.info == nil {
		return false
	}

	typ := t.info.TypeOf(x)
	if typ == nil {
		return false
	}

	_, ok := typ.Underlying().(*types.Chan)

	return ok
}
