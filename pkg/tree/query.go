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

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// pathQuery implements the simplified path query.
//
// Starting from every root with the first segment, an element that does not
// match the current segment passes the same segment on to its daughters. An
// element that matches passes the next segment on to its daughters. Matching
// the last segment collects the element and all of its descendants, pre-order,
// and stops that branch. The same element can be collected more than once when
// it is reached through different branches.
type pathQuery struct {
	BaseVisitor
	segments []string
	matches  []*Element
}

func newPathQuery(expr string) *pathQuery {
	var segments []string
	for _, s := range strings.Split(expr, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return &pathQuery{segments: segments, matches: []*Element{}}
}

func (q *pathQuery) VisitDocument(d *Document) {
	for _, e := range d.entities {
		q.search(e, 0)
	}
}

func (q *pathQuery) search(e *Element, i int) {
	if i >= len(q.segments) {
		return
	}

	if e.name != q.segments[i] {
		for _, daughter := range e.daughters {
			q.search(daughter, i)
		}
		return
	}

	if i == len(q.segments)-1 {
		q.collect(e)
		return
	}

	for _, daughter := range e.daughters {
		q.search(daughter, i+1)
	}
}

func (q *pathQuery) collect(e *Element) {
	q.matches = append(q.matches, e)
	for _, daughter := range e.daughters {
		q.collect(daughter)
	}
}

// globQuery matches each element's ancestry path ("plano/fuc/nome") against a
// doublestar pattern.
type globQuery struct {
	BaseVisitor
	pattern string
	path    []string
	matches []*Element
	err     error
}

func (q *globQuery) VisitDocument(d *Document) {
	if !doublestar.ValidatePattern(q.pattern) {
		q.err = errors.Errorf("%w: bad glob pattern %q", ErrInvalidInput, q.pattern)
		return
	}
	for _, e := range d.entities {
		e.Accept(q)
	}
}

func (q *globQuery) VisitElement(e *Element) {
	q.path = append(q.path, e.name)
	defer func() { q.path = q.path[:len(q.path)-1] }()

	ok, err := doublestar.Match(q.pattern, strings.Join(q.path, "/"))
	if err != nil {
		q.err = errors.Errorf("%w: matching %q: %s", ErrInvalidInput, q.pattern, err.Error())
		return
	}
	if ok {
		q.matches = append(q.matches, e)
	}
	for _, daughter := range e.daughters {
		daughter.Accept(q)
	}
}
