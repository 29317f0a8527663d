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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/callpair/internal/config"
	"fillmore-labs.com/callpair/internal/run"
)

// Pair configures an opener call and its matching closer calls.
type Pair = config.Pair

// Option configures specific behavior of a [New] callpair analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithPairs is an [Option] to replace the checked opener/closer pairs.
func WithPairs(pairs ...Pair) Option { return pairsOption{pairs: slices.Clone(pairs)} }

type pairsOption struct{ pairs []Pair }

func (o pairsOption) apply(r *run.Options) {
	r.Pairs = o.pairs
}

func (o pairsOption) LogAttr() slog.Attr {
	names := make([]string, 0, len(o.pairs))
	for _, p := range o.pairs {
		names = append(names, p.String())
	}

	return slog.Any("pairs", names)
}

// WithConfigFile is an [Option] to read settings from a YAML file. Settings in the file take precedence.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *run.Options) {
	r.ConfigFile = o.path
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}

// WithConditionalClosers is an [Option] to accept obligations closed on only some branches.
func WithConditionalClosers(allow bool) Option { return conditionalClosersOption{allow: allow} }

type conditionalClosersOption struct{ allow bool }

func (o conditionalClosersOption) apply(r *run.Options) {
	r.Behavior.Set(config.AllowConditionalClosers, o.allow)
}

func (o conditionalClosersOption) LogAttr() slog.Attr {
	return slog.Bool("conditional-closers", o.allow)
}

// WithMultipleOpeners is an [Option] to accept the same opener twice in a row.
func WithMultipleOpeners(allow bool) Option { return multipleOpenersOption{allow: allow} }

type multipleOpenersOption struct{ allow bool }

func (o multipleOpenersOption) apply(r *run.Options) {
	r.Behavior.Set(config.AllowMultipleOpeners, o.allow)
}

func (o multipleOpenersOption) LogAttr() slog.Attr {
	return slog.Bool("multiple-openers", o.allow)
}

// WithMaxNesting is an [Option] to limit the number of simultaneously open obligations, 0 for unlimited.
func WithMaxNesting(maxNesting int) Option { return maxNestingOption{maxNesting: maxNesting} }

type maxNestingOption struct{ maxNesting int }

func (o maxNestingOption) apply(r *run.Options) {
	r.MaxNesting = o.maxNesting
}

func (o maxNestingOption) LogAttr() slog.Attr {
	return slog.Int("max-nesting", o.maxNesting)
}

// WithPlatform is an [Option] to check only pairs without platform tag or with the given tag.
func WithPlatform(platform string) Option { return platformOption{platform: platform} }

type platformOption struct{ platform string }

func (o platformOption) apply(r *run.Options) {
	r.Platform = o.platform
}

func (o platformOption) LogAttr() slog.Attr {
	return slog.String("platform", o.platform)
}
