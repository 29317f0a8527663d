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

import "fillmore-labs.com/callpair/internal/astutil"

// Kind classifies a [Diagnostic].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// UnpairedOpener is an opener not closed on some path.
	UnpairedOpener Kind = iota // unpaired-opener
	// UnpairedCloser is a closer called while nothing is open.
	UnpairedCloser // unpaired-closer
	// UnexpectedCloser is a closer not matching any open opener.
	UnexpectedCloser // unexpected-closer
	// WrongOrder is a closer matching an opener that is not the innermost.
	WrongOrder // wrong-order
	// MultipleOpeners is an opener called while the innermost obligation has the same opener.
	MultipleOpeners // multiple-openers
	// MaxNestingExceeded is an opener exceeding the configured nesting depth.
	MaxNestingExceeded // max-nesting-exceeded
	// AsyncViolation is a suspension point while a synchronous pair is open.
	AsyncViolation // async-violation
	// YieldViolation is an auto-close trigger implicitly closing open obligations.
	YieldViolation // yield-violation
)

// Data describes the obligations and calls involved in a [Diagnostic].
type Data struct {
	Opener   string            // Source text of the opener
	Closer   string            // Source text of the closer
	Expected []string          // Closers of the innermost open obligation
	Actual   string            // Source text of the innermost opener, or the triggering call
	Openers  []string          // Obligations closed by an auto-close trigger
	Pair     string            // The configured pair
	Path     string            // The unmet path, like "before return"
	Limit    int               // Configured maximum nesting depth
	Exit     astutil.NodeIndex // The statement or block ending the path
	Related  astutil.NodeIndex // The opener or innermost open call
}

// Diagnostic is a problem found in a function body.
type Diagnostic struct {
	Kind Kind
	Node astutil.NodeIndex // The reported call or statement
	Data Data
}
