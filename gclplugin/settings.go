// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
package gclplugin

import "fillmore-labs.com/callpair/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Pairs replaces the default opener/closer pairs.
	Pairs []analyzer.Pair `json:"pairs,omitzero"`
	// ConditionalClosers accepts obligations closed on only some branches.
	ConditionalClosers *bool `json:"conditional-closers,omitzero"`
	// MultipleOpeners accepts the same opener twice in a row.
	MultipleOpeners *bool `json:"multiple-openers,omitzero"`
	// MaxNesting limits the number of simultaneously open obligations.
	MaxNesting *int `json:"max-nesting,omitzero"`
	// Platform selects pairs by their platform tag.
	Platform *string `json:"platform,omitzero"`
	// Config is the path of a YAML file with additional settings.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [analyzer.Option] for the callpair analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	if len(s.Pairs) > 0 {
		opts = append(opts, analyzer.WithPairs(s.Pairs...))
	}

	opts = appendOption(opts, s.ConditionalClosers, analyzer.WithConditionalClosers)
	opts = appendOption(opts, s.MultipleOpeners, analyzer.WithMultipleOpeners)
	opts = appendOption(opts, s.MaxNesting, analyzer.WithMaxNesting)
	opts = appendOption(opts, s.Platform, analyzer.WithPlatform)
	opts = appendOption(opts, s.Config, analyzer.WithConfigFile)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
