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

package tree

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	DefaultVersion  = "1.0"
	DefaultEncoding = "UTF-8"
)

// 📚 Document holds an ordered list of root elements plus the header fields.
type Document struct {
	version  string
	encoding string
	entities []*Element
}

// 🔧 Option configures a Document.
type Option func(*Document)

// WithVersion sets the header version.
func WithVersion(version string) Option {
	return func(d *Document) { d.version = version }
}

// WithEncoding sets the header encoding.
func WithEncoding(encoding string) Option {
	return func(d *Document) { d.encoding = encoding }
}

// 🏭 NewDocument creates an empty document with version 1.0 and UTF-8 encoding
// unless overridden.
func NewDocument(opts ...Option) *Document {
	d := &Document{version: DefaultVersion, encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Version returns the header version.
func (d *Document) Version() string { return d.version }

// SetVersion replaces the header version.
func (d *Document) SetVersion(version string) { d.version = version }

// Encoding returns the header encoding.
func (d *Document) Encoding() string { return d.encoding }

// SetEncoding replaces the header encoding.
func (d *Document) SetEncoding(encoding string) { d.encoding = encoding }

// Entities returns the root elements in order.
func (d *Document) Entities() []*Element { return d.entities }

// ➕ AddEntity appends a root element. Names need not be unique.
func (d *Document) AddEntity(e *Element) error {
	if e == nil {
		return errors.Errorf("%w: nil entity", ErrInvalidInput)
	}
	d.entities = append(d.entities, e)
	return nil
}

// ➖ RemoveEntity removes every root element called name. Daughters are not
// searched.
func (d *Document) RemoveEntity(name string) error {
	kept := make([]*Element, 0, len(d.entities))
	for _, e := range d.entities {
		if e.name != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(d.entities) {
		return errors.Errorf("%w: entity %q", ErrNotFound, name)
	}
	d.entities = kept
	return nil
}

// 🏷️ AddAttributeToEntity adds the attribute to every root element called
// motherName.
func (d *Document) AddAttributeToEntity(motherName, attrName, attrValue string) error {
	var targets []*Element
	for _, e := range d.entities {
		if e.name == motherName {
			targets = append(targets, e)
		}
	}
	if len(targets) == 0 {
		return errors.Errorf("%w: mother entity %q", ErrNotFound, motherName)
	}
	for _, e := range targets {
		e.AddAttribute(attrName, attrValue)
	}
	return nil
}

// Accept dispatches to v.VisitDocument.
func (d *Document) Accept(v Visitor) {
	v.VisitDocument(d)
}

// 🔄 RenameEntity renames every element called oldName anywhere in the tree.
// newName is not validated. Nothing happens when there is no match.
func (d *Document) RenameEntity(oldName, newName string) {
	d.Accept(&entityRenamer{oldName: oldName, newName: newName})
}

// 🔄 RenameAttribute renames, on every element called ownerName anywhere in the
// tree, each attribute called oldName.
func (d *Document) RenameAttribute(ownerName, oldName, newName string) {
	d.Accept(&attributeRenamer{ownerName: ownerName, oldName: oldName, newName: newName})
}

// 🗑️ RemoveEntityGlobally removes the first root element called name. It does
// not look below the roots.
func (d *Document) RemoveEntityGlobally(name string) {
	d.Accept(&entityRemover{name: name})
}

// 🗑️ RemoveAttributeGlobally removes, on every element called ownerName anywhere
// in the tree, the first attribute called attrName.
func (d *Document) RemoveAttributeGlobally(ownerName, attrName string) {
	d.Accept(&attributeRemover{ownerName: ownerName, attrName: attrName})
}

// 🔍 QueryPath runs a path query. See pathQuery for the matching rules.
func (d *Document) QueryPath(expr string) []*Element {
	q := newPathQuery(expr)
	if len(q.segments) == 0 {
		return []*Element{}
	}
	d.Accept(q)
	return q.matches
}

// 🔍 QueryGlob returns every element whose slash-joined ancestry path matches
// the doublestar pattern.
func (d *Document) QueryGlob(pattern string) ([]*Element, error) {
	q := &globQuery{pattern: pattern, matches: []*Element{}}
	d.Accept(q)
	if q.err != nil {
		return nil, q.err
	}
	return q.matches, nil
}

// 📝 ToText renders the whole document.
func (d *Document) ToText() string {
	r := &renderer{}
	d.Accept(r)
	return r.String()
}

// TextSink receives rendered text.
type TextSink interface {
	WriteText(ctx context.Context, location, text string) error
}

// 💾 Export renders the document and, when s is not nil, writes the text to
// location. The rendered text is returned either way.
func (d *Document) Export(ctx context.Context, s TextSink, location string) (string, error) {
	text := d.ToText()
	if s == nil {
		return text, nil
	}

	zerolog.Ctx(ctx).Debug().Str("location", location).Int("bytes", len(text)).Msg("exporting document")

	if err := s.WriteText(ctx, location, text); err != nil {
		return "", errors.Errorf("writing document to %s: %w", location, err)
	}
	return text, nil
}
