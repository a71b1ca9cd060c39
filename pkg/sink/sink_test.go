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

package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/xmlentity/pkg/tree"
)

func TestFileSink_WriteText(t *testing.T) {
	tests := []struct {
		name     string
		location string
		existing string
		text     string
	}{
		{
			name:     "new_file",
			location: "out.xml",
			text:     "<a/>\n",
		},
		{
			name:     "creates_parent_directories",
			location: filepath.Join("nested", "deeper", "out.xml"),
			text:     "<b/>\n",
		},
		{
			name:     "overwrites_existing",
			location: "out.xml",
			existing: "<old>much longer previous content</old>",
			text:     "<new/>\n",
		},
		{
			name:     "empty_text",
			location: "empty.xml",
			existing: "something",
			text:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			s := NewFileSink(root)
			path := filepath.Join(root, tt.location)

			if tt.existing != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0644))
			}

			require.NoError(t, s.WriteText(context.Background(), tt.location, tt.text))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(got))
		})
	}
}

func TestFileSink_Path(t *testing.T) {
	s := NewFileSink("/base")
	assert.Equal(t, filepath.Join("/base", "a", "b.xml"), s.Path("a/b.xml"))
	assert.Equal(t, filepath.Clean("/abs/c.xml"), s.Path("/abs/c.xml"))
	assert.Equal(t, "d.xml", NewFileSink("").Path("d.xml"))
}

func TestFileSink_FileMode(t *testing.T) {
	root := t.TempDir()
	s := NewFileSink(root, WithFileMode(0600))
	require.NoError(t, s.WriteText(context.Background(), "private.xml", "<p/>"))

	info, err := os.Stat(filepath.Join(root, "private.xml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileSink_Errors(t *testing.T) {
	root := t.TempDir()
	s := NewFileSink(root)

	err := s.WriteText(context.Background(), "", "x")
	assert.ErrorIs(t, err, tree.ErrInvalidInput)

	// a regular file where a directory is needed
	require.NoError(t, os.WriteFile(filepath.Join(root, "blocker"), []byte("x"), 0644))
	err = s.WriteText(context.Background(), filepath.Join("blocker", "out.xml"), "<a/>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating parent directories")
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	_, ok := s.Text("a.xml")
	assert.False(t, ok)

	require.NoError(t, s.WriteText(ctx, "a.xml", "first"))
	require.NoError(t, s.WriteText(ctx, "b.xml", "other"))
	require.NoError(t, s.WriteText(ctx, "a.xml", "second"))
	assert.ErrorIs(t, s.WriteText(ctx, "", "x"), tree.ErrInvalidInput)

	text, ok := s.Text("a.xml")
	require.True(t, ok)
	assert.Equal(t, "second", text)

	assert.Equal(t, []Write{
		{Location: "a.xml", Text: "first"},
		{Location: "b.xml", Text: "other"},
		{Location: "a.xml", Text: "second"},
	}, s.Writes())
}

func TestDocumentExportToFile(t *testing.T) {
	root := t.TempDir()
	doc := tree.NewDocument()
	e, err := tree.NewTextElement("nota", "ok")
	require.NoError(t, err)
	require.NoError(t, doc.AddEntity(e))

	text, err := doc.Export(context.Background(), NewFileSink(root), "docs/nota.xml")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "docs", "nota.xml"))
	require.NoError(t, err)
	assert.Equal(t, text, string(got))
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<nota>ok</nota>", string(got))
}

func TestMemorySink_ZeroValue(t *testing.T) {
	var s MemorySink
	_, ok := s.Text("a.xml")
	assert.False(t, ok)

	require.NoError(t, s.WriteText(context.Background(), "a.xml", "first"))
	text, ok := s.Text("a.xml")
	require.True(t, ok)
	assert.Equal(t, "first", text)
	assert.Equal(t, []Write{{Location: "a.xml", Text: "first"}}, s.Writes())
}
