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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the content of a callpair configuration file.
//
//	pairs:
//	  - opener: Begin
//	    closers: [Commit, Rollback]
//	allow-conditional-closers: false
//	max-nesting-depth: 2
type File struct {
	Pairs                   []Pair  `yaml:"pairs"`
	AllowConditionalClosers *bool   `yaml:"allow-conditional-closers"`
	AllowMultipleOpeners    *bool   `yaml:"allow-multiple-openers"`
	MaxNestingDepth         *int    `yaml:"max-nesting-depth"`
	Platform                *string `yaml:"platform"`
}

// LoadFile reads and validates a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read configuration: %w", err)
	}

	return ParseFile(data)
}

// ParseFile parses and validates YAML configuration data.
func ParseFile(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("can't parse configuration: %w", err)
	}

	if err := ValidatePairs(f.Pairs); err != nil {
		return nil, err
	}

	return &f, nil
}

// Apply overrides settings present in the file.
func (f *File) Apply(pairs *[]Pair, behavior *Behaviors, maxNesting *int, platform *string) {
	if len(f.Pairs) > 0 {
		*pairs = f.Pairs
	}

	if f.AllowConditionalClosers != nil {
		behavior.Set(AllowConditionalClosers, *f.AllowConditionalClosers)
	}

	if f.AllowMultipleOpeners != nil {
		behavior.Set(AllowMultipleOpeners, *f.AllowMultipleOpeners)
	}

	if f.MaxNestingDepth != nil {
		*maxNesting = *f.MaxNestingDepth
	}

	if f.Platform != nil {
		*platform = *f.Platform
	}
}
