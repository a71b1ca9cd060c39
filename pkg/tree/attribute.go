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

// 🏷️ Attribute is a name/value pair owned by a single Element.
//
// The name may change through renaming; the value never does. Editing an
// attribute replaces it with a new Attribute.
type Attribute struct {
	name  string
	value string
	owner *Element // not owning; only used for depth
}

func newAttribute(name, value string, owner *Element) *Attribute {
	return &Attribute{name: name, value: value, owner: owner}
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Value returns the attribute value.
func (a *Attribute) Value() string { return a.value }

// Owner returns the Element the attribute belongs to.
func (a *Attribute) Owner() *Element { return a.owner }

// Depth is the depth of the owning Element, or 0 for an unowned attribute.
func (a *Attribute) Depth() int {
	if a.owner == nil {
		return 0
	}
	return a.owner.Depth()
}

// Accept dispatches to v.VisitAttribute.
func (a *Attribute) Accept(v Visitor) {
	v.VisitAttribute(a)
}
