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

// entityRenamer walks the whole tree pre-order and renames every match.
type entityRenamer struct {
	BaseVisitor
	oldName string
	newName string
}

func (v *entityRenamer) VisitDocument(d *Document) {
	for _, e := range d.entities {
		e.Accept(v)
	}
}

func (v *entityRenamer) VisitElement(e *Element) {
	if e.name == v.oldName {
		e.name = v.newName
	}
	for _, daughter := range e.daughters {
		daughter.Accept(v)
	}
}

// attributeRenamer walks the whole tree and, on each element named ownerName,
// renames every attribute named oldName.
type attributeRenamer struct {
	BaseVisitor
	ownerName string
	oldName   string
	newName   string
}

func (v *attributeRenamer) VisitDocument(d *Document) {
	for _, e := range d.entities {
		e.Accept(v)
	}
}

func (v *attributeRenamer) VisitElement(e *Element) {
	if e.name == v.ownerName {
		for _, a := range e.attributes {
			a.Accept(v)
		}
	}
	for _, daughter := range e.daughters {
		daughter.Accept(v)
	}
}

func (v *attributeRenamer) VisitAttribute(a *Attribute) {
	if a.name == v.oldName {
		a.name = v.newName
	}
}
