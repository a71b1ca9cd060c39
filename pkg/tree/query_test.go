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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_QueryPath(t *testing.T) {
	f := newPlanoDocument(t)

	tests := []struct {
		name string
		expr string
		want []*Element
	}{
		{
			name: "full_path_collects_descendants",
			expr: "plano/fuc/avaliacao",
			want: []*Element{f.avaliacao, f.componente[0], f.componente[1]},
		},
		{
			name: "first_segment_found_below_root",
			expr: "fuc/avaliacao",
			want: []*Element{f.avaliacao, f.componente[0], f.componente[1]},
		},
		{
			name: "leaf_segment",
			expr: "fuc/avaliacao/componente",
			want: []*Element{f.componente[0], f.componente[1]},
		},
		{
			name: "empty_segments_dropped",
			expr: "//fuc//nome/",
			want: []*Element{f.nome},
		},
		{
			name: "root_collects_everything",
			expr: "plano",
			want: []*Element{f.plano, f.curso, f.fuc, f.nome, f.ects, f.avaliacao, f.componente[0], f.componente[1]},
		},
		{
			name: "mismatch_keeps_current_segment",
			expr: "plano/avaliacao",
			want: []*Element{f.avaliacao, f.componente[0], f.componente[1]},
		},
		{
			name: "no_match",
			expr: "fuc/missing",
			want: []*Element{},
		},
		{
			name: "empty_expression",
			expr: "",
			want: []*Element{},
		},
		{
			name: "only_slashes",
			expr: "///",
			want: []*Element{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.doc.QueryPath(tt.expr)
			require.NotNil(t, got)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Same(t, tt.want[i], got[i], "index %d", i)
			}
		})
	}
}

func TestDocument_QueryPathDuplicatesAcrossBranches(t *testing.T) {
	d := NewDocument()
	a := mustElement(t, "a", "")
	inner := mustElement(t, "a", "")
	b := mustElement(t, "b", "")
	mustAttach(t, a, inner)
	mustAttach(t, inner, b)
	require.NoError(t, d.AddEntity(a))
	require.NoError(t, d.AddEntity(a))

	got := d.QueryPath("a/b")
	assert.Equal(t, []*Element{b, b}, got)
}

func TestDocument_QueryGlob(t *testing.T) {
	f := newPlanoDocument(t)

	tests := []struct {
		name    string
		pattern string
		want    []*Element
	}{
		{name: "exact", pattern: "plano/fuc", want: []*Element{f.fuc}},
		{name: "single_star", pattern: "plano/*", want: []*Element{f.curso, f.fuc}},
		{name: "double_star", pattern: "plano/**/componente", want: []*Element{f.componente[0], f.componente[1]}},
		{name: "alternatives", pattern: "**/{nome,ects}", want: []*Element{f.nome, f.ects}},
		{name: "no_match", pattern: "plano/missing", want: []*Element{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.doc.QueryGlob(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_QueryGlobBadPattern(t *testing.T) {
	f := newPlanoDocument(t)
	_, err := f.doc.QueryGlob("plano/[fuc")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
