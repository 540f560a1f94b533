/**
 * Copyright (c) 2026, The UnlimitedFocus Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package executor

import (
	"context"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/unlimitedfocus/graphql/graphql"
)

// defaultFieldResolver is used for fields declared without a resolver. It
// takes the field value from the source object: a map entry keyed by the
// field name, or a struct field matched by `graphql` tag or by the field name
// in CamelCase. A source value of function type is invoked to produce the
// field value; a field that cannot be matched resolves to null.
type defaultFieldResolver struct{}

var theDefaultFieldResolver = defaultFieldResolver{}

var _ graphql.FieldResolver = defaultFieldResolver{}

// DefaultFieldResolver returns the resolver applied to fields declared
// without one.
func DefaultFieldResolver() graphql.FieldResolver {
	return theDefaultFieldResolver
}

// Resolve implements graphql.FieldResolver.
func (resolver defaultFieldResolver) Resolve(
	ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {

	value := reflect.ValueOf(source)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if !value.IsValid() {
		return nil, nil
	}

	fieldName := info.Field().Name()

	switch value.Kind() {
	case reflect.Map:
		entry := value.MapIndex(reflect.ValueOf(fieldName))
		if !entry.IsValid() {
			return nil, nil
		}
		return resolveFromValue(ctx, source, entry, info)

	case reflect.Struct:
		return resolveFromStruct(ctx, source, value, fieldName, info)
	}

	return nil, nil
}

func resolveFromStruct(
	ctx context.Context,
	source interface{},
	sourceValue reflect.Value,
	fieldName string,
	info graphql.ResolveInfo) (interface{}, error) {

	sourceType := sourceValue.Type()
	for i := 0; i < sourceType.NumField(); i++ {
		tag := sourceType.Field(i).Tag.Get("graphql")
		if name := strings.SplitN(tag, ",", 2)[0]; name == fieldName {
			return resolveFromValue(ctx, source, sourceValue.Field(i), info)
		}
	}

	if field := sourceValue.FieldByName(pascalCase(fieldName)); field.IsValid() {
		return resolveFromValue(ctx, source, field, info)
	}

	return nil, nil
}

// resolveFromValue unwraps a matched source member: plain values are returned
// as is, function values are invoked to produce the field value.
func resolveFromValue(
	ctx context.Context, source interface{}, value reflect.Value, info graphql.ResolveInfo) (interface{}, error) {

	if value.Kind() != reflect.Func {
		return value.Interface(), nil
	}

	switch f := value.Interface().(type) {
	case func() (interface{}, error):
		return f()
	case func(ctx context.Context) (interface{}, error):
		return f(ctx)
	case func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error):
		return f(ctx, source, info)
	}
	return nil, graphql.NewExecutionError(
		`Cannot resolve "%s.%s": source member has unsupported function type.`,
		info.ParentType().Name(), info.Field().Name())
}

func pascalCase(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
