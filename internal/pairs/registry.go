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

// Package pairs holds the normalized opener/closer pair configuration.
package pairs

import (
	"slices"
	"strings"

	"fillmore-labs.com/callpair/internal/config"
	"fillmore-labs.com/callpair/internal/tracker"
)

// Pair is a registered opener/closer pair.
type Pair struct {
	config.Pair

	// ID is the position of the pair in the configuration.
	ID int
}

// Registry maps call names to pairs. It is immutable after [New].
type Registry struct {
	openers  map[string]*Pair   // exact opener names, first configured wins
	closers  map[string][]*Pair // exact closer names in configuration order
	wildcard []*Pair            // pairs with prefix patterns in opener or closer names
}

// New builds a registry from validated pair configurations.
func New(configs []config.Pair) *Registry {
	r := &Registry{
		openers: make(map[string]*Pair),
		closers: make(map[string][]*Pair),
	}

	for i, c := range configs {
		p := &Pair{Pair: c, ID: i}

		hasWildcard := false

		for _, name := range p.openerNames() {
			if isPattern(name) {
				hasWildcard = true
				continue
			}

			if _, ok := r.openers[name]; !ok {
				r.openers[name] = p
			}
		}

		for _, name := range p.Closers {
			if isPattern(name) {
				hasWildcard = true
				continue
			}

			r.closers[name] = append(r.closers[name], p)
		}

		if hasWildcard {
			r.wildcard = append(r.wildcard, p)
		}
	}

	return r
}

// Opener returns the first pair opened by a call with the given name.
func (r *Registry) Opener(name tracker.CallName) *Pair {
	var found *Pair

	for _, n := range name.All() {
		if p, ok := r.openers[n]; ok && (found == nil || p.ID < found.ID) {
			found = p
		}
	}

	for _, p := range r.wildcard {
		if found != nil && p.ID > found.ID {
			break
		}

		if matchAny(p.openerNames(), name) {
			found = p

			break
		}
	}

	return found
}

// Closers returns all pairs closed by a call with the given name, in configuration order.
func (r *Registry) Closers(name tracker.CallName) []*Pair {
	var found []*Pair

	for _, n := range name.All() {
		for _, p := range r.closers[n] {
			if !slices.Contains(found, p) {
				found = append(found, p)
			}
		}
	}

	for _, p := range r.wildcard {
		if !slices.Contains(found, p) && matchAny(p.Closers, name) {
			found = append(found, p)
		}
	}

	slices.SortFunc(found, func(a, b *Pair) int { return a.ID - b.ID })

	return found
}

// IsYieldTrigger reports whether a call with the given name implicitly closes obligations of the pair.
func (r *Registry) IsYieldTrigger(name tracker.CallName, p *Pair) bool {
	return matchAny(p.AutoCloseTriggers, name)
}

func (p *Pair) openerNames() []string {
	return append([]string{p.Opener}, p.OpenerAliases...)
}

// matchAny reports whether one of the patterns matches one of the call names.
func matchAny(patterns []string, name tracker.CallName) bool {
	names := name.All()

	for _, pattern := range patterns {
		for _, n := range names {
			if match(pattern, n) {
				return true
			}
		}
	}

	return false
}

// match matches a name exactly, or by prefix when the pattern ends with "*".
func match(pattern, name string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}

	return pattern == name
}

func isPattern(name string) bool {
	return strings.HasSuffix(name, "*")
}
