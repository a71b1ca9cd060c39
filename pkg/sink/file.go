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

	"github.com/rs/zerolog"
	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileSink writes text to files under a root directory.
type FileSink struct {
	root string
	perm os.FileMode
}

// FileOption configures a FileSink.
type FileOption func(*FileSink)

// WithFileMode sets the permissions of written files. The default is 0644.
func WithFileMode(perm os.FileMode) FileOption {
	return func(s *FileSink) {
		s.perm = perm
	}
}

// 🏭 NewFileSink creates a sink rooted at root. An empty root means the
// working directory.
func NewFileSink(root string, opts ...FileOption) *FileSink {
	s := &FileSink{root: root, perm: 0644}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file a location resolves to.
func (s *FileSink) Path(location string) string {
	if filepath.IsAbs(location) || s.root == "" {
		return filepath.Clean(location)
	}
	return filepath.Join(s.root, location)
}

// 📝 WriteText creates the parent directories of location and overwrites it
// with text.
func (s *FileSink) WriteText(ctx context.Context, location, text string) error {
	if location == "" {
		return errors.Errorf("%w: empty location", tree.ErrInvalidInput)
	}

	path := s.Path(location)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	if err := os.WriteFile(path, []byte(text), s.perm); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(text)).Msg("wrote file")
	return nil
}
