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

package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPair is returned for malformed pair configurations.
var ErrInvalidPair = errors.New("invalid pair")

// Pair configures an opener call and its matching closer calls.
//
// Names match a call by its short name ("Unlock"), its source text ("mu.Unlock")
// or its qualified name ("(sync.Mutex).Unlock", "os.Open"). A trailing "*"
// matches any name with the given prefix.
type Pair struct {
	// Opener is the name of the opening call.
	Opener string `json:"opener" yaml:"opener"`

	// OpenerAliases are alternative names of the opening call.
	OpenerAliases []string `json:"opener-aliases,omitzero" yaml:"opener-aliases,omitempty"`

	// Closers are the alternative names of calls closing the opener.
	Closers []string `json:"closers" yaml:"closers"`

	// RequireSync forbids suspension points between opener and closer.
	RequireSync bool `json:"require-sync,omitzero" yaml:"require-sync,omitempty"`

	// AutoCloseTriggers are calls that implicitly close all open obligations.
	AutoCloseTriggers []string `json:"auto-close,omitzero" yaml:"auto-close,omitempty"`

	// Platform is a free-form tag used to select pairs.
	Platform string `json:"platform,omitzero" yaml:"platform,omitempty"`
}

// String returns a short description like "Lock/Unlock".
func (p Pair) String() string {
	return p.Opener + "/" + strings.Join(p.Closers, "|")
}

// Validate checks that the pair has an opener and at least one closer, and no empty names.
func (p Pair) Validate() error {
	if p.Opener == "" {
		return fmt.Errorf("%w: missing opener", ErrInvalidPair)
	}

	if len(p.Closers) == 0 {
		return fmt.Errorf("%w %s: missing closer", ErrInvalidPair, p.Opener)
	}

	for _, names := range [...][]string{p.OpenerAliases, p.Closers, p.AutoCloseTriggers} {
		for _, name := range names {
			if strings.TrimSpace(name) == "" || name == "*" {
				return fmt.Errorf("%w %s: invalid name %q", ErrInvalidPair, p.Opener, name)
			}
		}
	}

	return nil
}

// ValidatePairs validates all pairs, returning the first error.
func ValidatePairs(pairs []Pair) error {
	for i, p := range pairs {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pair %d: %w", i+1, err)
		}
	}

	return nil
}

// DefaultPairs returns the pairs checked when nothing else is configured.
func DefaultPairs() []Pair {
	return []Pair{
		{Opener: "Lock", Closers: []string{"Unlock"}, Platform: "sync"},
		{Opener: "RLock", Closers: []string{"RUnlock"}, Platform: "sync"},
	}
}

// FilterPlatform returns the pairs without platform tag or with the given platform.
// An empty platform selects all pairs.
func FilterPlatform(pairs []Pair, platform string) []Pair {
	if platform == "" {
		return pairs
	}

	filtered := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if p.Platform == "" || p.Platform == platform {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
