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

import "slices"

// entityRemover drops the first root called name. It has no element visit of
// its own, so the walk over the remaining roots stops there.
type entityRemover struct {
	BaseVisitor
	name string
}

func (v *entityRemover) VisitDocument(d *Document) {
	if i := slices.IndexFunc(d.entities, func(e *Element) bool { return e.name == v.name }); i >= 0 {
		d.entities = slices.Delete(d.entities, i, i+1)
	}
	for _, e := range d.entities {
		e.Accept(v)
	}
}

// attributeRemover walks the whole tree and removes the first attribute called
// attrName from each element called ownerName.
type attributeRemover struct {
	BaseVisitor
	ownerName string
	attrName  string
}

func (v *attributeRemover) VisitDocument(d *Document) {
	for _, e := range d.entities {
		e.Accept(v)
	}
}

func (v *attributeRemover) VisitElement(e *Element) {
	if e.name == v.ownerName {
		if i := slices.IndexFunc(e.attributes, func(a *Attribute) bool { return a.name == v.attrName }); i >= 0 {
			e.attributes = slices.Delete(e.attributes, i, i+1)
		}
	}
	for _, daughter := range e.daughters {
		daughter.Accept(v)
	}
}
