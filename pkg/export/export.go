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

package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"
	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 🔁 ToEtree converts doc into an etree document with an xml declaration
// carrying the document's version and encoding.
func ToEtree(doc *tree.Document) *etree.Document {
	b := &builder{out: etree.NewDocument()}
	doc.Accept(b)
	return b.out
}

// 📝 RenderEscaped renders doc through etree, escaped and tab indented.
func RenderEscaped(doc *tree.Document) (string, error) {
	out := ToEtree(doc)
	out.IndentTabs()
	text, err := out.WriteToString()
	if err != nil {
		return "", errors.Errorf("serializing document: %w", err)
	}
	return text, nil
}

// 💾 ExportEscaped renders doc with RenderEscaped and writes it to location.
func ExportEscaped(ctx context.Context, doc *tree.Document, s tree.TextSink, location string) (string, error) {
	text, err := RenderEscaped(doc)
	if err != nil {
		return "", err
	}
	if s == nil {
		return text, nil
	}

	zerolog.Ctx(ctx).Debug().Str("location", location).Int("bytes", len(text)).Msg("exporting escaped document")

	if err := s.WriteText(ctx, location, text); err != nil {
		return "", errors.Errorf("writing document to %s: %w", location, err)
	}
	return text, nil
}

// builder walks a tree document and mirrors it into an etree document.
type builder struct {
	out     *etree.Document
	parent  *etree.Element
	current *etree.Element
}

func (b *builder) VisitDocument(d *tree.Document) {
	b.out.CreateProcInst("xml", fmt.Sprintf(`version="%s" encoding="%s"`, d.Version(), d.Encoding()))
	b.parent = &b.out.Element
	for _, e := range d.Entities() {
		e.Accept(b)
	}
}

func (b *builder) VisitElement(e *tree.Element) {
	el := b.parent.CreateElement(e.Name())

	b.current = el
	for _, a := range e.Attributes() {
		a.Accept(b)
	}

	if strings.TrimSpace(e.Text()) != "" {
		el.SetText(e.Text())
	}

	prev := b.parent
	b.parent = el
	for _, d := range e.Daughters() {
		d.Accept(b)
	}
	b.parent = prev
}

func (b *builder) VisitAttribute(a *tree.Attribute) {
	b.current.CreateAttr(a.Name(), a.Value())
}

var _ tree.Visitor = (*builder)(nil)
