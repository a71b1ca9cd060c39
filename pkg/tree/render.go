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
	"strings"
)

// renderer writes the markup text. Output is not escaped.
type renderer struct {
	sb strings.Builder
}

func (r *renderer) String() string {
	return r.sb.String()
}

func (r *renderer) VisitDocument(d *Document) {
	r.sb.WriteString(`<?xml version="`)
	r.sb.WriteString(d.version)
	r.sb.WriteString(`" encoding="`)
	r.sb.WriteString(d.encoding)
	r.sb.WriteString("\"?>\n")
	for _, e := range d.entities {
		e.Accept(r)
	}
}

func (r *renderer) VisitElement(e *Element) {
	depth := e.Depth()
	indent := strings.Repeat("\t", depth)

	r.sb.WriteString(indent)
	r.sb.WriteByte('<')
	r.sb.WriteString(e.name)
	for _, a := range e.attributes {
		a.Accept(r)
	}

	// whitespace-only text counts as no text
	if strings.TrimSpace(e.text) == "" && len(e.daughters) == 0 {
		r.sb.WriteString("/>\n")
		return
	}

	r.sb.WriteByte('>')
	r.sb.WriteString(e.text)
	if len(e.daughters) > 0 {
		r.sb.WriteByte('\n')
		for _, daughter := range e.daughters {
			daughter.Accept(r)
		}
		r.sb.WriteString(indent)
	}
	r.sb.WriteString("</")
	r.sb.WriteString(e.name)
	r.sb.WriteByte('>')
	if depth > 0 {
		r.sb.WriteByte('\n')
	}
}

func (r *renderer) VisitAttribute(a *Attribute) {
	r.sb.WriteByte(' ')
	r.sb.WriteString(a.name)
	r.sb.WriteString(`="`)
	r.sb.WriteString(a.value)
	r.sb.WriteByte('"')
}
