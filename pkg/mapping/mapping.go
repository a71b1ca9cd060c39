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

package mapping

import (
	"context"
	"sync"

	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidMapping is returned when a value or its metadata cannot be mapped.
// It wraps tree.ErrInvalidInput.
var ErrInvalidMapping = errors.BaseWrap(tree.ErrInvalidInput, "invalid mapping")

// 🔤 Transformer produces the text of a field value.
type Transformer interface {
	Transform(value any) string
}

// TransformerFunc adapts a function to Transformer.
type TransformerFunc func(value any) string

func (f TransformerFunc) Transform(value any) string { return f(value) }

// 🏭 TransformerFactory builds a fresh Transformer for one field mapping.
type TransformerFactory func() (Transformer, error)

// 🛠️ PostProcessor edits a freshly mapped element in place.
type PostProcessor interface {
	Process(e *tree.Element)
}

// PostProcessorFunc adapts a function to PostProcessor.
type PostProcessorFunc func(e *tree.Element)

func (f PostProcessorFunc) Process(e *tree.Element) { f(e) }

// 🏷️ EntityNamer is implemented by types that choose their own element name.
type EntityNamer interface {
	EntityName() string
}

// 🪝 PostProcessorProvider is implemented by types whose element is
// post-processed. NewPostProcessor is called once per mapped value.
type PostProcessorProvider interface {
	NewPostProcessor() (PostProcessor, error)
}

// 🗺️ Mapper converts structs into elements. The zero value is ready to use.
type Mapper struct {
	mu           sync.RWMutex
	transformers map[string]TransformerFactory
}

// 🏭 New creates a Mapper with no transformers registered.
func New() *Mapper {
	return &Mapper{transformers: make(map[string]TransformerFactory)}
}

// 📝 RegisterTransformer makes factory available to `transform=key` tags.
// Registering a key again replaces the previous factory.
func (m *Mapper) RegisterTransformer(key string, factory TransformerFactory) error {
	if key == "" {
		return errors.Errorf("%w: empty transformer key", tree.ErrInvalidInput)
	}
	if factory == nil {
		return errors.Errorf("%w: nil factory for transformer %q", tree.ErrInvalidInput, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.transformers == nil {
		m.transformers = make(map[string]TransformerFactory)
	}
	m.transformers[key] = factory
	return nil
}

func (m *Mapper) transformer(key string) (TransformerFactory, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.transformers[key]
	return f, ok
}

// 📚 MapDocument maps every value and adds the results as document roots.
func (m *Mapper) MapDocument(ctx context.Context, values []any, opts ...tree.Option) (*tree.Document, error) {
	doc := tree.NewDocument(opts...)
	for i, v := range values {
		e, err := m.Map(ctx, v)
		if err != nil {
			return nil, errors.Errorf("mapping value %d: %w", i, err)
		}
		if err := doc.AddEntity(e); err != nil {
			return nil, errors.Errorf("adding value %d: %w", i, err)
		}
	}
	return doc, nil
}

var defaultMapper = New()

// Default returns the package-level Mapper used by Map and RegisterTransformer.
func Default() *Mapper { return defaultMapper }

// RegisterTransformer registers a transformer on the default Mapper.
func RegisterTransformer(key string, factory TransformerFactory) error {
	return defaultMapper.RegisterTransformer(key, factory)
}

// Map converts v with the default Mapper.
func Map(ctx context.Context, v any) (*tree.Element, error) {
	return defaultMapper.Map(ctx, v)
}
