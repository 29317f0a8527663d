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
	"fillmore-labs.com/callpair/internal/astutil"
	"fillmore-labs.com/callpair/internal/config"
)

// FrameFlag describes the lexical construct a [Frame] represents.
type FrameFlag uint8

const (
	// Function frames start a new analysis scope.
	Function FrameFlag = 1 << iota

	// Conditional frames are arms of if, switch and select statements.
	Conditional

	// Loop frames are bodies of for and range statements.
	Loop

	// Deferred frames are function literals called by a defer statement.
	Deferred

	// Async frames are function literals started by a go statement.
	Async
)

// Frame is one level of the control flow context, linked to its lexical parent.
// The nil *Frame is the empty context.
type Frame struct {
	parent *Frame
	node   astutil.NodeIndex
	flags  config.BitMask[FrameFlag]
}

// Enter returns a new frame for node nested in f.
func (f *Frame) Enter(node astutil.NodeIndex, flags ...FrameFlag) *Frame {
	return &Frame{parent: f, node: node, flags: config.NewBitMask(flags...)}
}

// Leave returns the parent frame.
func (f *Frame) Leave() *Frame {
	return f.parent
}

// Has reports whether the frame itself has the flag.
func (f *Frame) Has(flag FrameFlag) bool {
	return f != nil && f.flags.Enabled(flag)
}

// Function returns the innermost function frame.
func (f *Frame) Function() *Frame {
	for ; f != nil; f = f.parent {
		if f.flags.Enabled(Function) {
			return f
		}
	}

	return nil
}

// InFinally reports whether the current function runs deferred.
func (f *Frame) InFinally() bool {
	return f.Function().Has(Deferred)
}

// Async reports whether the current function runs in its own goroutine.
func (f *Frame) Async() bool {
	return f.Function().Has(Async)
}

// Conditional reports whether the current position is inside a branch arm of the current function.
func (f *Frame) Conditional() bool {
	return f.within(Conditional)
}

func (f *Frame) within(flag FrameFlag) bool {
	for ; f != nil && !f.flags.Enabled(Function); f = f.parent {
		if f.flags.Enabled(flag) {
			return true
		}
	}

	return false
}
