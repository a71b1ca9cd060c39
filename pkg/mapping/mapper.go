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
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/xmlentity/pkg/tree"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ Map converts a struct, or a non-nil pointer to one, into an element.
func (m *Mapper) Map(ctx context.Context, v any) (*tree.Element, error) {
	if v == nil {
		return nil, errors.Errorf("%w: nil value", ErrInvalidMapping)
	}
	return m.mapValue(ctx, reflect.ValueOf(v))
}

func (m *Mapper) mapValue(ctx context.Context, rv reflect.Value) (*tree.Element, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, errors.Errorf("%w: nil %s", ErrInvalidMapping, rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Errorf("%w: cannot map %s, only structs", ErrInvalidMapping, rv.Type())
	}

	// addressable copy so pointer-receiver methods are found
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	self := ptr.Interface()

	name, err := entityName(rv.Type(), self)
	if err != nil {
		return nil, err
	}

	entity, err := tree.NewElement(name)
	if err != nil {
		return nil, errors.Errorf("%w: entity name of %s: %w", ErrInvalidMapping, rv.Type(), err)
	}

	logger := zerolog.Ctx(ctx)
	logger.Trace().Str("type", rv.Type().String()).Str("entity", name).Msg("mapping value")

	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if err := m.mapField(ctx, entity, sf, rv.Field(i)); err != nil {
			return nil, errors.Errorf("mapping %s.%s: %w", t.Name(), sf.Name, err)
		}
	}

	if provider, ok := self.(PostProcessorProvider); ok {
		pp, err := provider.NewPostProcessor()
		if err != nil {
			return nil, errors.Errorf("%w: constructing post-processor for %s: %w", ErrInvalidMapping, t, err)
		}
		if pp != nil {
			pp.Process(entity)
			logger.Trace().Str("entity", entity.Name()).Msg("post-processed")
		}
	}

	return entity, nil
}

func entityName(t reflect.Type, self any) (string, error) {
	if namer, ok := self.(EntityNamer); ok {
		if name := namer.EntityName(); name != "" {
			return name, nil
		}
	}
	if t.Name() == "" {
		return "", errors.Errorf("%w: %s has no type name and no EntityName", ErrInvalidMapping, t)
	}
	return strings.ToLower(t.Name()), nil
}

func (m *Mapper) mapField(ctx context.Context, entity *tree.Element, sf reflect.StructField, fv reflect.Value) error {
	meta, err := parseField(sf)
	if err != nil {
		return err
	}
	if meta.ignored {
		return nil
	}
	if !sf.IsExported() {
		if meta.tagged {
			return errors.Errorf("%w: field %s is tagged but not exported", ErrInvalidMapping, sf.Name)
		}
		return nil
	}

	var transformer Transformer
	if meta.transform != "" {
		factory, ok := m.transformer(meta.transform)
		if !ok {
			return errors.Errorf("%w: no transformer registered as %q", ErrInvalidMapping, meta.transform)
		}
		transformer, err = factory()
		if err != nil {
			return errors.Errorf("%w: constructing transformer %q: %w", ErrInvalidMapping, meta.transform, err)
		}
	}

	text := textOf(fv, transformer)

	switch {
	case meta.kind == kindAttribute:
		entity.AddAttribute(meta.name, text)
		return nil

	case meta.kind == kindNested || isSequence(sf.Type):
		if seq, ok := sequenceOf(fv); ok {
			return m.mapSequence(ctx, entity, meta.name, seq)
		}
		return addTextDaughter(entity, meta.name, text)

	default:
		return addTextDaughter(entity, meta.name, text)
	}
}

func (m *Mapper) mapSequence(ctx context.Context, entity *tree.Element, name string, seq reflect.Value) error {
	wrapper, err := tree.NewElement(name)
	if err != nil {
		return errors.Errorf("%w: wrapper element: %w", ErrInvalidMapping, err)
	}
	for i := 0; i < seq.Len(); i++ {
		item := seq.Index(i)
		if isNil(item) {
			continue
		}
		daughter, err := m.mapValue(ctx, item)
		if err != nil {
			return errors.Errorf("item %d: %w", i, err)
		}
		if err := wrapper.AddDaughter(daughter); err != nil {
			return errors.Errorf("item %d: %w", i, err)
		}
	}
	return entity.AddDaughter(wrapper)
}

func addTextDaughter(entity *tree.Element, name, text string) error {
	daughter, err := tree.NewTextElement(name, text)
	if err != nil {
		return errors.Errorf("%w: daughter element: %w", ErrInvalidMapping, err)
	}
	return entity.AddDaughter(daughter)
}

// sequenceOf unwraps pointers and interfaces and reports whether the runtime
// value is a sequence.
func sequenceOf(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, isSequence(v.Type())
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// textOf renders a field value. nil pointers and interfaces, including an
// interface holding a typed nil, render as empty text and never reach the
// transformer or a String/Error method.
func textOf(v reflect.Value, transformer Transformer) string {
	iv := indirect(v)
	if (iv.Kind() == reflect.Pointer || iv.Kind() == reflect.Interface) && iv.IsNil() {
		return ""
	}

	if transformer != nil {
		return transformer.Transform(iv.Interface())
	}

	switch s := v.Interface().(type) {
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}
	if iv.Kind() == reflect.Slice && iv.Type().Elem().Kind() == reflect.Uint8 {
		return string(iv.Bytes())
	}
	return fmt.Sprint(iv.Interface())
}

func indirect(v reflect.Value) reflect.Value {
	for (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
