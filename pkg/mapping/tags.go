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

package mapping

import (
	"reflect"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// TagKey is the struct tag read by the mapper.
const TagKey = "entity"

// fieldKind is the explicit classification of a field.
type fieldKind int

const (
	kindDefault fieldKind = iota
	kindAttribute
	kindNested
)

// fieldMeta is the parsed metadata of one struct field.
type fieldMeta struct {
	name      string
	kind      fieldKind
	transform string
	ignored   bool
	tagged    bool
}

func parseField(sf reflect.StructField) (fieldMeta, error) {
	meta := fieldMeta{name: sf.Name}

	tag, ok := sf.Tag.Lookup(TagKey)
	if !ok {
		return meta, nil
	}
	meta.tagged = true

	if tag == "-" {
		meta.ignored = true
		return meta, nil
	}

	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		meta.name = parts[0]
	}

	for _, opt := range parts[1:] {
		switch {
		case opt == "attribute":
			meta.kind = kindAttribute
		case opt == "nested":
			if meta.kind != kindAttribute {
				meta.kind = kindNested
			}
		case strings.HasPrefix(opt, "transform="):
			meta.transform = strings.TrimPrefix(opt, "transform=")
			if meta.transform == "" {
				return meta, errors.Errorf("%w: field %s has an empty transform key", ErrInvalidMapping, sf.Name)
			}
		case opt == "":
		default:
			return meta, errors.Errorf("%w: field %s has unknown tag option %q", ErrInvalidMapping, sf.Name, opt)
		}
	}

	return meta, nil
}

// isSequence reports whether t is a slice or array. Byte slices and arrays are
// text, not sequences.
func isSequence(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}
