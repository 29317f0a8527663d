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
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/flow"
	"fillmore-labs.com/callpair/internal/obligation"
)

// walker visits the statements of a function body in source order, updating
// the obligation stack of the current scope.
type walker struct {
	*Verifier
	diagnostics []Diagnostic
	seq         obligation.Sequence
	scope       *scope
	quiet       int // > 0 while walking select communications
}

// scope is the analysis state of one function body.
type scope struct {
	caller     *scope
	stack      obligation.Stack
	frame      *flow.Frame
	targets    flow.Targets
	parked     []parkedCloser // Closers running on exit of this function
	autoClosed bool           // An auto-close trigger cleared the stack, suppress the next failed close
	terminated bool           // The current position is unreachable
}

// function analyzes a function body as a new scope.
func (w *walker) function(body inspector.Cursor, flags ...flow.FrameFlag) {
	caller := w.scope

	var frame *flow.Frame
	if caller != nil {
		frame = caller.frame
	}

	w.scope = &scope{
		caller:  caller,
		stack:   obligation.NewStack(w.limits, &w.seq),
		frame:   frame.Enter(astutil.NodeIndexOf(body.Parent()), append(flags, flow.Function)...),
		targets: flow.NewTargets(),
	}

	w.walkList(body, edge.BlockStmt_List)

	if !w.scope.terminated {
		path := "before function exit"
		if w.scope.frame.Async() {
			path = "before goroutine exit"
		}

		w.leftover(w.scope.stack.All(), path, astutil.NodeIndexOf(body))
	}

	w.unclaimed()

	w.scope = caller
}

// walkList walks the statements of c on edge k. Statements after a terminating statement are skipped
// up to the next labeled statement.
func (w *walker) walkList(c inspector.Cursor, k edge.Kind) {
	for stmt := range c.Children() {
		if e, _ := stmt.ParentEdge(); e != k {
			continue
		}

		if _, ok := stmt.Node().(*ast.LabeledStmt); w.scope.terminated && !ok {
			continue
		}

		w.walkStmt(stmt, "")
	}
}

// walkStmt walks a single statement. label is the name of an enclosing labeled statement.
func (w *walker) walkStmt(c inspector.Cursor, label string) {
	switch stmt := c.Node().(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt, *ast.DeclStmt, *ast.ExprStmt, *ast.IncDecStmt:
		w.walkExpr(c)

	case *ast.BadStmt, *ast.EmptyStmt:

	case *ast.BlockStmt:
		w.walkList(c, edge.BlockStmt_List)

	case *ast.BranchStmt:
		w.walkBranchStmt(c, stmt)

	case *ast.DeferStmt:
		w.walkDeferStmt(c, stmt)

	case *ast.ForStmt:
		w.walkForStmt(c, stmt, label)

	case *ast.GoStmt:
		w.walkGoStmt(c, stmt)

	case *ast.IfStmt:
		w.walkIfStmt(c, stmt)

	case *ast.LabeledStmt:
		w.scope.terminated = false // possible goto target
		w.walkStmt(c.Child(stmt.Stmt), stmt.Label.Name)

	case *ast.RangeStmt:
		w.walkRangeStmt(c, stmt, label)

	case *ast.ReturnStmt:
		w.walkExpr(c)
		w.exit(c, "before return")

	case *ast.SelectStmt:
		w.walkSelectStmt(c, stmt, label)

	case *ast.SendStmt:
		w.walkExpr(c)
		w.suspend(c, "channel send")

	case *ast.SwitchStmt:
		w.walkSwitchStmt(c, stmt, label)

	case *ast.TypeSwitchStmt:
		w.walkSwitchStmt(c, stmt, label)

	default: // *ast.CaseClause and *ast.CommClause
		msg := fmt.Errorf("unexpected statement type: %T", stmt)
		panic(msg)
		// keep-sorted end
	}
}

// walkOptional walks an optional child statement or expression.
func (w *walker) walkOptional(c inspector.Cursor, n ast.Node) {
	if n == nil || w.scope.terminated {
		return
	}

	if stmt, ok := n.(ast.Stmt); ok {
		w.walkStmt(c.Child(stmt), "")

		return
	}

	w.walkExpr(c.Child(n))
}

// walkBranchStmt handles break, continue, goto and fallthrough.
func (w *walker) walkBranchStmt(c inspector.Cursor, stmt *ast.BranchStmt) {
	var label string
	if stmt.Label != nil {
		label = stmt.Label.Name
	}

	switch stmt.Tok {
	case token.BREAK, token.CONTINUE:
		if target := w.scope.targets.Resolve(stmt.Tok, label); target != nil {
			w.jump(c, stmt.Tok, target)
		}

	case token.FALLTHROUGH:
		return // the arm outcome is recorded as usual

	default: // goto
	}

	w.scope.terminated = true
}

// walkIfStmt handles if statements. An if without else may be skipped.
func (w *walker) walkIfStmt(c inspector.Cursor, stmt *ast.IfStmt) {
	w.walkOptional(c, stmt.Init)
	w.walkExpr(c.Child(stmt.Cond))

	if w.scope.terminated {
		return
	}

	node := astutil.NodeIndexOf(c)
	w.enterBranch(node, "if", stmt.Else != nil)

	w.arm(node, c.Child(stmt.Body), func(arm inspector.Cursor) {
		w.walkList(arm, edge.BlockStmt_List)
	})

	if stmt.Else != nil {
		w.arm(node, c.Child(stmt.Else), func(arm inspector.Cursor) {
			w.walkStmt(arm, "")
		})
	}

	w.mergeBranch(c, node)
}

// walkSwitchStmt handles expression and type switch statements.
// A switch without default clause may be skipped.
func (w *walker) walkSwitchStmt(c inspector.Cursor, stmt ast.Stmt, label string) {
	var (
		name string
		body *ast.BlockStmt
	)

	switch stmt := stmt.(type) {
	case *ast.SwitchStmt:
		w.walkOptional(c, stmt.Init)
		w.walkOptional(c, stmt.Tag)
		name, body = "switch", stmt.Body

	case *ast.TypeSwitchStmt:
		w.walkOptional(c, stmt.Init)
		w.walkOptional(c, stmt.Assign)
		name, body = "type switch", stmt.Body
	}

	if w.scope.terminated || len(body.List) == 0 {
		return
	}

	clauses := c.Child(body)

	hasDefault := false

	for clause := range clauses.Children() {
		cc := clause.Node().(*ast.CaseClause)
		if cc.List == nil {
			hasDefault = true
		}

		// case expressions are evaluated in order before a clause is chosen
		for expr := range clause.Children() {
			if e, _ := expr.ParentEdge(); e == edge.CaseClause_List {
				w.walkExpr(expr)
			}
		}
	}

	node := astutil.NodeIndexOf(c)
	target := &flow.Target{Node: node}
	old := w.scope.targets.Enter(target, label)

	w.enterBranch(node, name, hasDefault)

	for clause := range clauses.Children() {
		w.arm(node, clause, func(arm inspector.Cursor) {
			w.walkList(arm, edge.CaseClause_Body)
		})
	}

	w.scope.targets.Leave(old)
	w.mergeBranch(c, node)
}

// walkSelectStmt handles select statements. Exactly one clause executes, and
// without a default clause the select statement blocks.
func (w *walker) walkSelectStmt(c inspector.Cursor, stmt *ast.SelectStmt, label string) {
	clauses := c.Child(stmt.Body)

	hasDefault := false

	// channel operands are evaluated first
	w.quiet++

	for clause := range clauses.Children() {
		cc := clause.Node().(*ast.CommClause)
		if cc.Comm == nil {
			hasDefault = true
			continue
		}

		w.walkExpr(clause.Child(cc.Comm))
	}

	w.quiet--

	if !hasDefault {
		w.suspend(c, "blocking select")
	}

	if len(stmt.Body.List) == 0 {
		w.scope.terminated = true // blocks forever

		return
	}

	node := astutil.NodeIndexOf(c)
	target := &flow.Target{Node: node}
	old := w.scope.targets.Enter(target, label)

	w.enterBranch(node, "select", true)

	for clause := range clauses.Children() {
		w.arm(node, clause, func(arm inspector.Cursor) {
			w.walkList(arm, edge.CommClause_Body)
		})
	}

	w.scope.targets.Leave(old)
	w.mergeBranch(c, node)
}

// walkForStmt handles for loops. The body is walked once.
func (w *walker) walkForStmt(c inspector.Cursor, stmt *ast.ForStmt, label string) {
	w.walkOptional(c, stmt.Init)
	w.walkOptional(c, stmt.Cond)

	if w.scope.terminated {
		return
	}

	// an endless loop is left by break statements only
	node := astutil.NodeIndexOf(c)
	target := &flow.Target{Node: node, Loop: true, Bounded: stmt.Cond != nil}

	w.enterBranch(node, "for", !target.Bounded)
	w.loop(c.Child(stmt.Body), target, label, func() { w.walkOptional(c, stmt.Post) })
	w.mergeBranch(c, node)
}

// walkRangeStmt handles range loops. Ranging over a channel receives on every iteration.
func (w *walker) walkRangeStmt(c inspector.Cursor, stmt *ast.RangeStmt, label string) {
	w.walkExpr(c.Child(stmt.X))
	w.walkOptional(c, stmt.Key)
	w.walkOptional(c, stmt.Value)

	if w.scope.terminated {
		return
	}

	if w.tracker.IsChan(stmt.X) {
		w.suspend(c, "range over channel")
	}

	node := astutil.NodeIndexOf(c)
	target := &flow.Target{Node: node, Loop: true, Bounded: true}

	w.enterBranch(node, "range", false)
	w.loop(c.Child(stmt.Body), target, label, nil)
	w.mergeBranch(c, node)
}

// loop walks a loop body once with target as the current break and continue target.
// The stack at the end of a bounded loop body is one of the states after the loop,
// the others are recorded by break and continue statements.
func (w *walker) loop(body inspector.Cursor, target *flow.Target, label string, post func()) {
	s := w.scope

	flags := []flow.FrameFlag{flow.Loop}
	if target.Bounded {
		flags = append(flags, flow.Conditional)
	}

	old := s.targets.Enter(target, label)
	s.frame = s.frame.Enter(target.Node, flags...)

	w.walkList(body, edge.BlockStmt_List)

	if post != nil {
		post()
	}

	if !s.terminated && target.Bounded {
		w.branches.RecordAll(target.Node, &s.stack)
	}

	s.frame = s.frame.Leave()
	s.targets.Leave(old)
}

// walkGoStmt handles go statements. The function value and arguments are evaluated
// in the current goroutine, a function literal is analyzed as asynchronous scope.
func (w *walker) walkGoStmt(c inspector.Cursor, stmt *ast.GoStmt) {
	w.walkDetached(c.Child(stmt.Call), stmt.Call, flow.Async)
}

// walkDeferStmt handles defer statements. A deferred closer closes its obligation at function exit.
func (w *walker) walkDeferStmt(c inspector.Cursor, stmt *ast.DeferStmt) {
	call := c.Child(stmt.Call)
	w.walkDetached(call, stmt.Call, flow.Deferred)

	if _, ok := stmt.Call.Fun.(*ast.FuncLit); ok {
		return
	}

	w.deferCall(call, stmt.Call)
}

// walkDetached walks the function value and arguments of a call executed later or elsewhere.
func (w *walker) walkDetached(c inspector.Cursor, call *ast.CallExpr, flag flow.FrameFlag) {
	for child := range c.Children() {
		if lit, ok := child.Node().(*ast.FuncLit); ok && child.Node() == call.Fun {
			w.function(child.Child(lit.Body), flag)
			continue
		}

		w.walkExpr(child)
	}
}

// walkExpr walks the calls and channel receives of an expression or simple statement
// in evaluation order.
func (w *walker) walkExpr(c inspector.Cursor) {
	if w.scope.terminated {
		return
	}

	switch n := c.Node().(type) {
	case *ast.FuncLit:
		w.function(c.Child(n.Body))

		return

	case *ast.CallExpr:
		for child := range c.Children() {
			w.walkExpr(child)
		}

		w.call(c, n)

		return

	case *ast.UnaryExpr:
		w.walkExpr(c.Child(n.X))

		if n.Op == token.ARROW {
			w.suspend(c, "channel receive")
		}

		return
	}

	for child := range c.Children() {
		w.walkExpr(child)
	}
}
