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

package run

import "fillmore-labs.com/callpair/internal/config"

// Options represent configuration options for the callpair analyzer.
type Options struct {
	// Pairs are the opener/closer pairs to check. Empty selects [config.DefaultPairs].
	Pairs []config.Pair

	// Behavior holds behavioral options.
	Behavior config.Behaviors

	// MaxNesting is the maximum number of simultaneously open obligations, 0 for unlimited.
	MaxNesting int

	// Platform selects pairs by platform tag. Empty selects all pairs.
	Platform string

	// ConfigFile is the path of a YAML configuration file. Settings in the file take precedence.
	ConfigFile string
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior: config.DefaultBehavior(),
	}
}

// settings are the effective options of an analysis run.
type settings struct {
	pairs      []config.Pair
	behavior   config.Behaviors
	maxNesting int
}

// resolve merges the options with the configuration file and selects the pairs to check.
func (r *Options) resolve() (settings, error) {
	s := settings{pairs: r.Pairs, behavior: r.Behavior, maxNesting: r.MaxNesting}
	platform := r.Platform

	if r.ConfigFile != "" {
		f, err := config.LoadFile(r.ConfigFile)
		if err != nil {
			return settings{}, err
		}

		f.Apply(&s.pairs, &s.behavior, &s.maxNesting, &platform)
	}

	if len(s.pairs) == 0 {
		s.pairs = config.DefaultPairs()
	}

	s.pairs = config.FilterPlatform(s.pairs, platform)

	if err := config.ValidatePairs(s.pairs); err != nil {
		return settings{}, err
	}

	return s, nil
}
