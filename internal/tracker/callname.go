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

// CallName holds the names a call can be matched by.
type CallName struct {
	Short     string // "Lock"
	Text      string // "mu.Lock"
	Qualified string // "(sync.Mutex).Lock", empty without type information
}

// String returns the source text of the callee.
func (n CallName) String() string { return n.Text }

// All yields the non-empty names, most specific first.
func (n CallName) All() []string {
	names := make([]string, 0, 3)
	for _, name := range [...]string{n.Qualified, n.Text, n.Short} {
		if name == "" || (len(names) > 0 && names[len(names)-1] == name) {
			continue
		}

		names = append(names, name)
	}

	return names
}

// NameOf returns the names of the function called.
// It returns false for conversions and calls of computed functions.
func NameOf(info *types.Info, call *ast.CallExpr) (CallName, bool) {
	if info != nil {
		if tv, ok := info.Types[call.Fun]; ok && tv.IsType() {
			return CallName{}, false // conversion
		}
	}

	fun := unwrapFun(call.Fun)

	var id *ast.Ident
	switch f := fun.(type) {
	case *ast.Ident:
		id = f

	case *ast.SelectorExpr:
		id = f.Sel

	default: // function literal, call result, ...
		return CallName{}, false
	}

	name := CallName{Short: id.Name, Text: types.ExprString(fun)}

	if info != nil {
		if fn, ok := info.Uses[id].(*types.Func); ok {
			name.Qualified = FuncNameOf(fn).String()
		}
	}

	return name, true
}

// calleeIdent returns the identifier naming the called function, if any.
func calleeIdent(call *ast.CallExpr) *ast.Ident {
	switch f := unwrapFun(call.Fun).(type) {
	case *ast.Ident:
		return f

	case *ast.SelectorExpr:
		return f.Sel

	default: // Pointer dereference or another function reference.
		return nil
	}
}

// unwrapFun removes parentheses and generic instantiations from a callee expression.
func unwrapFun(ex ast.Expr) ast.Expr {
	for {
		switch e := ex.(type) {
		case *ast.IndexExpr: // Generic function instantiation with a type parameter ("myFunc[T]").
			ex = e.X

		case *ast.IndexListExpr: // Generic function instantiation with multiple type parameters ("myFunc[T, U]").
			ex = e.X

		case *ast.ParenExpr: // Parenthesized expression ("(myFunc)")
			ex = e.X

		default:
			return ex
		}
	}
}
