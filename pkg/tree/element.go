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
	"gitlab.com/tozd/go/errors"
)

// 🌳 Element is a named node with attributes, optional text and daughters.
//
// Daughters are owned by their mother; the mother link is a plain back-reference
// kept for depth and navigation and is never used to rebuild the daughter list.
type Element struct {
	name       string
	text       string
	attributes []*Attribute
	daughters  []*Element
	mother     *Element
}

// 🏭 NewElement creates an element with no text.
func NewElement(name string) (*Element, error) {
	return NewTextElement(name, "")
}

// 🏭 NewTextElement creates an element carrying text content.
func NewTextElement(name, text string) (*Element, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Element{name: name, text: text}, nil
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// SetName renames the element. The new name is not validated.
func (e *Element) SetName(name string) { e.name = name }

// Text returns the text content, empty when there is none.
func (e *Element) Text() string { return e.text }

// SetText replaces the text content.
func (e *Element) SetText(text string) { e.text = text }

// Attributes returns the attribute list in insertion order.
func (e *Element) Attributes() []*Attribute { return e.attributes }

// Attribute returns the first attribute called name.
func (e *Element) Attribute(name string) (*Attribute, bool) {
	for _, a := range e.attributes {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

// ➕ AddAttribute appends an attribute. Duplicate names are allowed.
func (e *Element) AddAttribute(name, value string) {
	e.attributes = append(e.attributes, newAttribute(name, value, e))
}

// ➖ RemoveAttribute removes every attribute called name.
func (e *Element) RemoveAttribute(name string) error {
	kept := make([]*Attribute, 0, len(e.attributes))
	for _, a := range e.attributes {
		if a.name != name {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(e.attributes) {
		return errors.Errorf("%w: attribute %q on %q", ErrNotFound, name, e.name)
	}
	e.attributes = kept
	return nil
}

// ✏️ EditAttribute replaces every attribute called oldName with a new
// attribute, keeping its position in the list.
func (e *Element) EditAttribute(oldName, newName, newValue string) error {
	found := false
	for i, a := range e.attributes {
		if a.name == oldName {
			e.attributes[i] = newAttribute(newName, newValue, e)
			found = true
		}
	}
	if !found {
		return errors.Errorf("%w: attribute %q on %q", ErrNotFound, oldName, e.name)
	}
	return nil
}

// 👶 AddDaughter appends d to the daughter list and points d back at e.
//
// d is not detached from a previous mother. Attaching e under itself or under one
// of its own descendants would create a cycle and is rejected.
func (e *Element) AddDaughter(d *Element) error {
	if d == nil {
		return errors.Errorf("%w: nil daughter for %q", ErrInvalidInput, e.name)
	}
	for m := e; m != nil; m = m.mother {
		if m == d {
			return errors.Errorf("%w: attaching %q under %q would create a cycle", ErrInvalidInput, d.name, e.name)
		}
	}
	e.daughters = append(e.daughters, d)
	d.mother = e
	return nil
}

// Mother returns the mother element, or ErrNotFound for a root.
func (e *Element) Mother() (*Element, error) {
	if e.mother == nil {
		return nil, errors.Errorf("%w: %q has no mother", ErrNotFound, e.name)
	}
	return e.mother, nil
}

// Daughters returns the live daughter slice. Writes to its indices are visible
// to the tree; new daughters must go through AddDaughter.
func (e *Element) Daughters() []*Element { return e.daughters }

// Depth is 0 for an element without a mother, else one more than its mother.
func (e *Element) Depth() int {
	depth := 0
	for m := e.mother; m != nil; m = m.mother {
		depth++
	}
	return depth
}

// Accept dispatches to v.VisitElement.
func (e *Element) Accept(v Visitor) {
	v.VisitElement(e)
}

// 📝 ToText renders this element and its subtree. Indentation uses the
// element's real depth, so a nested element keeps its nesting.
func (e *Element) ToText() string {
	r := &renderer{}
	e.Accept(r)
	return r.String()
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return e.ToText()
}
