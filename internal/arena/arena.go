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

// Package arena provides slab allocation for short-lived analysis state.
package arena

// Slab allocates values of type T in a [slab list] and hands out stable pointers.
// Memory is retained over [Slab.Reset], so a Slab can be reused for every analyzed function.
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Slab[T any] struct {
	start, current *chunk[T]
	count, total   int
}

// chunk is a linked list of fixed-size arrays of T.
type chunk[T any] struct {
	items [chunkSize]T
	next  *chunk[T]
}

// chunkSize defines the number of items stored in a single chunk.
const chunkSize = 32

// New returns a pointer to a zero T, valid until the next [Slab.Reset].
func (s *Slab[T]) New() *T {
	switch {
	case s.current == nil:
		s.current = new(chunk[T])
		s.start = s.current

	case s.count == chunkSize:
		if s.current.next == nil {
			s.current.next = new(chunk[T])
		}

		s.current = s.current.next
		s.count = 0
		s.total += chunkSize
	}

	s.count++

	item := &s.current.items[s.count-1]

	var zero T
	*item = zero

	return item
}

// Reset releases all items while keeping the allocated chunks.
func (s *Slab[T]) Reset() {
	s.current = s.start
	s.count, s.total = 0, 0
}
