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
	"testing"

	"github.com/stretchr/testify/require"
)

// planoText is the rendering of newPlanoDocument.
const planoText = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
	"<plano>\n" +
	"\t<curso>Mestrado em Engenharia Informática</curso>\n" +
	"\t<fuc codigo=\"M4310\">\n" +
	"\t\t<nome>Programação Avançada</nome>\n" +
	"\t\t<ects>6.0</ects>\n" +
	"\t\t<avaliacao>\n" +
	"\t\t\t<componente nome=\"Quizzes\" peso=\"20%\"/>\n" +
	"\t\t\t<componente nome=\"Projeto\" peso=\"80%\"/>\n" +
	"\t\t</avaliacao>\n" +
	"\t</fuc>\n" +
	"</plano>"

type planoFixture struct {
	doc        *Document
	plano      *Element
	curso      *Element
	fuc        *Element
	nome       *Element
	ects       *Element
	avaliacao  *Element
	componente [2]*Element
}

func mustElement(t *testing.T, name, text string) *Element {
	t.Helper()
	e, err := NewTextElement(name, text)
	require.NoError(t, err)
	return e
}

func mustAttach(t *testing.T, mother *Element, daughters ...*Element) {
	t.Helper()
	for _, d := range daughters {
		require.NoError(t, mother.AddDaughter(d))
	}
}

func newPlanoDocument(t *testing.T) *planoFixture {
	t.Helper()

	f := &planoFixture{doc: NewDocument(WithVersion("1.0"), WithEncoding("UTF-8"))}

	f.plano = mustElement(t, "plano", "")
	require.NoError(t, f.doc.AddEntity(f.plano))

	f.curso = mustElement(t, "curso", "Mestrado em Engenharia Informática")
	f.fuc = mustElement(t, "fuc", "")
	f.fuc.AddAttribute("codigo", "M4310")
	mustAttach(t, f.plano, f.curso, f.fuc)

	f.nome = mustElement(t, "nome", "Programação Avançada")
	f.ects = mustElement(t, "ects", "6.0")
	f.avaliacao = mustElement(t, "avaliacao", "")
	mustAttach(t, f.fuc, f.nome, f.ects, f.avaliacao)

	f.componente[0] = mustElement(t, "componente", "")
	f.componente[0].AddAttribute("nome", "Quizzes")
	f.componente[0].AddAttribute("peso", "20%")
	f.componente[1] = mustElement(t, "componente", "")
	f.componente[1].AddAttribute("nome", "Projeto")
	f.componente[1].AddAttribute("peso", "80%")
	mustAttach(t, f.avaliacao, f.componente[0], f.componente[1])

	return f
}

func names(elements []*Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		out = append(out, e.Name())
	}
	return out
}

func attrPairs(e *Element) [][2]string {
	out := make([][2]string, 0, len(e.Attributes()))
	for _, a := range e.Attributes() {
		out = append(out, [2]string{a.Name(), a.Value()})
	}
	return out
}
