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
	"sync"

	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// Write is one recorded call to MemorySink.WriteText.
type Write struct {
	Location string
	Text     string
}

// 🧪 MemorySink keeps written text in memory. The zero value is ready to use.
type MemorySink struct {
	mu     sync.Mutex
	writes []Write
	latest map[string]string
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{latest: make(map[string]string)}
}

func (s *MemorySink) WriteText(_ context.Context, location, text string) error {
	if location == "" {
		return errors.Errorf("%w: empty location", tree.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		s.latest = make(map[string]string)
	}
	s.writes = append(s.writes, Write{Location: location, Text: text})
	s.latest[location] = text
	return nil
}

// Text returns the last text written to location.
func (s *MemorySink) Text(location string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.latest[location]
	return text, ok
}

// Writes returns every recorded write in order.
func (s *MemorySink) Writes() []Write {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Write, len(s.writes))
	copy(out, s.writes)
	return out
}
