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

package operation

import (
	"fmt"

	"github.com/walteh/xmlentity/pkg/config"
	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Operation is one named change to a document.
type Operation interface {
	// Name is the op name used in plans
	Name() string
	// Target describes what the operation acts on
	Target() string
	// Apply changes doc in place
	Apply(doc *tree.Document) error
}

// 🔄 RenameEntity renames every element called From.
type RenameEntity struct {
	From string
	To   string
}

func (o RenameEntity) Name() string   { return config.OpRenameEntity }
func (o RenameEntity) Target() string { return fmt.Sprintf("%s -> %s", o.From, o.To) }

func (o RenameEntity) Apply(doc *tree.Document) error {
	doc.RenameEntity(o.From, o.To)
	return nil
}

// 🔄 RenameAttribute renames attribute From to To on every element called
// Entity.
type RenameAttribute struct {
	Entity string
	From   string
	To     string
}

func (o RenameAttribute) Name() string { return config.OpRenameAttribute }
func (o RenameAttribute) Target() string {
	return fmt.Sprintf("%s.%s -> %s", o.Entity, o.From, o.To)
}

func (o RenameAttribute) Apply(doc *tree.Document) error {
	doc.RenameAttribute(o.Entity, o.From, o.To)
	return nil
}

// ➖ RemoveEntity removes the first root element called Entity.
type RemoveEntity struct {
	Entity string
}

func (o RemoveEntity) Name() string   { return config.OpRemoveEntity }
func (o RemoveEntity) Target() string { return o.Entity }

func (o RemoveEntity) Apply(doc *tree.Document) error {
	doc.RemoveEntityGlobally(o.Entity)
	return nil
}

// ➖ RemoveEntities removes every root element called Entity.
type RemoveEntities struct {
	Entity string
}

func (o RemoveEntities) Name() string   { return config.OpRemoveEntities }
func (o RemoveEntities) Target() string { return o.Entity + " (roots)" }

func (o RemoveEntities) Apply(doc *tree.Document) error {
	return doc.RemoveEntity(o.Entity)
}

// ➖ RemoveAttribute removes, on every element called Entity, the first
// attribute called Attribute.
type RemoveAttribute struct {
	Entity    string
	Attribute string
}

func (o RemoveAttribute) Name() string   { return config.OpRemoveAttribute }
func (o RemoveAttribute) Target() string { return o.Entity + "." + o.Attribute }

func (o RemoveAttribute) Apply(doc *tree.Document) error {
	doc.RemoveAttributeGlobally(o.Entity, o.Attribute)
	return nil
}

// ➕ AddAttribute adds an attribute to every root element called Entity.
type AddAttribute struct {
	Entity    string
	Attribute string
	Value     string
}

func (o AddAttribute) Name() string { return config.OpAddAttribute }
func (o AddAttribute) Target() string {
	return fmt.Sprintf("%s.%s=%q", o.Entity, o.Attribute, o.Value)
}

func (o AddAttribute) Apply(doc *tree.Document) error {
	return doc.AddAttributeToEntity(o.Entity, o.Attribute, o.Value)
}

// 🏭 New builds the operation for one validated transform.
func New(t config.Transform) (Operation, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	switch t.Op {
	case config.OpRenameEntity:
		return RenameEntity{From: t.Entity, To: t.To}, nil
	case config.OpRenameAttribute:
		return RenameAttribute{Entity: t.Entity, From: t.Attribute, To: t.To}, nil
	case config.OpRemoveEntity:
		return RemoveEntity{Entity: t.Entity}, nil
	case config.OpRemoveEntities:
		return RemoveEntities{Entity: t.Entity}, nil
	case config.OpRemoveAttribute:
		return RemoveAttribute{Entity: t.Entity, Attribute: t.Attribute}, nil
	case config.OpAddAttribute:
		return AddAttribute{Entity: t.Entity, Attribute: t.Attribute, Value: t.Value}, nil
	default:
		return nil, errors.Errorf("%w: unknown op %q", config.ErrInvalidConfig, t.Op)
	}
}

// 📋 FromConfig builds the operations of a plan, in order.
func FromConfig(cfg *config.Config) ([]Operation, error) {
	if cfg == nil {
		return nil, errors.Errorf("%w: nil plan", config.ErrInvalidConfig)
	}

	ops := make([]Operation, 0, len(cfg.Transforms))
	for i, t := range cfg.Transforms {
		op, err := New(t)
		if err != nil {
			return nil, errors.Errorf("transform %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
