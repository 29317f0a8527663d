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

import "fillmore-labs.com/callpair/internal/astutil"

// Node returns the statement or expression this frame was entered for.
func (f *Frame) Node() astutil.NodeIndex {
	if f == nil {
		return astutil.InvalidNode
	}

	return f.node
}

// Active reports whether node is a branching statement currently being walked.
func (b *Branches) Active(node astutil.NodeIndex) bool {
	_, ok := b.active[node]

	return ok
}
