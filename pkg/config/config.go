// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidConfig is returned when a plan fails validation. It wraps
// tree.ErrInvalidInput.
var ErrInvalidConfig = errors.BaseWrap(tree.ErrInvalidInput, "invalid config")

// 🔧 Op names accepted in a transform.
const (
	OpRenameEntity    = "rename_entity"
	OpRenameAttribute = "rename_attribute"
	OpRemoveEntity    = "remove_entity"
	OpRemoveEntities  = "remove_entities"
	OpRemoveAttribute = "remove_attribute"
	OpAddAttribute    = "add_attribute"
)

// requiredFields lists, per op, the transform fields that must be set.
var requiredFields = map[string][]string{
	OpRenameEntity:    {"entity", "to"},
	OpRenameAttribute: {"entity", "attribute", "to"},
	OpRemoveEntity:    {"entity"},
	OpRemoveEntities:  {"entity"},
	OpRemoveAttribute: {"entity", "attribute"},
	OpAddAttribute:    {"entity", "attribute"},
}

// 🔌 Parser is the interface for plan parsers
type Parser interface {
	// 📝 Parse decodes a plan without validating it
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🧩 Format is a Parser made of a decode function and the file extensions it
// claims. Extensions are matched case-insensitively, dot included.
type Format struct {
	Name       string
	Extensions []string
	Decode     func(data []byte, cfg *Config) error
}

func (f *Format) CanParse(filename string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range f.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (f *Format) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	if err := f.Decode(data, &cfg); err != nil {
		return nil, errors.Errorf("parsing %s: %w", f.Name, err)
	}
	zerolog.Ctx(ctx).Trace().Str("format", f.Name).Int("transforms", len(cfg.Transforms)).Msg("decoded plan")
	return &cfg, nil
}

// 🔄 Transform is one step of a plan.
type Transform struct {
	Op        string `json:"op" yaml:"op" hcl:"op,label"`
	Entity    string `json:"entity,omitempty" yaml:"entity,omitempty" hcl:"entity,optional"`
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty" hcl:"attribute,optional"`
	To        string `json:"to,omitempty" yaml:"to,omitempty" hcl:"to,optional"`
	Value     string `json:"value,omitempty" yaml:"value,omitempty" hcl:"value,optional"`
}

// 📚 Config is a complete transform plan. Empty Version and Encoding keep the
// document's own header; an empty Output means the result is not written.
type Config struct {
	Version    string      `json:"version,omitempty" yaml:"version,omitempty" hcl:"version,optional"`
	Encoding   string      `json:"encoding,omitempty" yaml:"encoding,omitempty" hcl:"encoding,optional"`
	Output     string      `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`
	Transforms []Transform `json:"transforms,omitempty" yaml:"transforms,omitempty" hcl:"transform,block"`
}

// 🎯 Load reads, parses and validates the plan at path
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading plan")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading plan file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing plan: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating plan: %w", err)
	}

	logger.Debug().Int("transforms", len(cfg.Transforms)).Str("output", cfg.Output).Msg("loaded plan")
	return cfg, nil
}

// 🔍 Validate checks every transform and normalizes the output path
func (cfg *Config) Validate() error {
	for i, t := range cfg.Transforms {
		if err := t.Validate(); err != nil {
			return errors.Errorf("transform %d: %w", i, err)
		}
	}

	if cfg.Output != "" {
		cfg.Output = filepath.Clean(cfg.Output)
	}

	return nil
}

// 🔍 Validate checks that the op is known and its required fields are set.
// New names given in To must be valid entity names.
func (t Transform) Validate() error {
	required, ok := requiredFields[t.Op]
	if !ok {
		return errors.Errorf("%w: unknown op %q", ErrInvalidConfig, t.Op)
	}

	for _, field := range required {
		if t.field(field) == "" {
			return errors.Errorf("%w: %s requires %s", ErrInvalidConfig, t.Op, field)
		}
	}

	if t.To != "" && !tree.ValidName(t.To) {
		return errors.Errorf("%w: %s: %q is not a valid name", ErrInvalidConfig, t.Op, t.To)
	}
	if t.Op == OpAddAttribute && !tree.ValidName(t.Attribute) {
		return errors.Errorf("%w: %s: %q is not a valid name", ErrInvalidConfig, t.Op, t.Attribute)
	}

	return nil
}

func (t Transform) field(name string) string {
	switch name {
	case "entity":
		return t.Entity
	case "attribute":
		return t.Attribute
	case "to":
		return t.To
	case "value":
		return t.Value
	default:
		return ""
	}
}

// 📝 String returns a one-line summary of the plan
func (cfg *Config) String() string {
	ops := make([]string, 0, len(cfg.Transforms))
	for _, t := range cfg.Transforms {
		ops = append(ops, t.Op)
	}
	out := cfg.Output
	if out == "" {
		out = "(no output)"
	}
	return fmt.Sprintf("[%s] -> %s", strings.Join(ops, ", "), out)
}
