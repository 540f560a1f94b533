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

package graphql

import (
	"context"
)

// Names of the implicit fields resolved by the executor itself. They never
// appear in any type's field map.
const (
	// SchemaMetaFieldName requests the schema introspection. Only valid on the
	// query root.
	SchemaMetaFieldName = "__schema"

	// TypeMetaFieldName requests a named type's introspection. Only valid on
	// the query root.
	TypeMetaFieldName = "__type"

	// TypenameMetaFieldName requests the concrete type name of the enclosing
	// object. Valid on any selection set.
	TypenameMetaFieldName = "__typename"
)

var (
	schemaMetaField   = mustNewMetaField(schemaMetaFieldConfig())
	typeMetaField     = mustNewMetaField(typeMetaFieldConfig())
	typenameMetaField = mustNewMetaField(typenameMetaFieldConfig())
)

func mustNewMetaField(config *FieldConfig) *Field {
	field, err := newField("(meta)", config)
	if err != nil {
		panic(err)
	}
	return field
}

// SchemaMetaField returns the definition of the "__schema" field.
func SchemaMetaField() *Field {
	return schemaMetaField
}

// TypeMetaField returns the definition of the "__type" field.
func TypeMetaField() *Field {
	return typeMetaField
}

// TypenameMetaField returns the definition of the "__typename" field.
func TypenameMetaField() *Field {
	return typenameMetaField
}

func schemaMetaFieldConfig() *FieldConfig {
	return &FieldConfig{
		Name:        SchemaMetaFieldName,
		Description: "Access the current type schema of this server.",
		Type:        MustNewNonNullOfType(introspectionData.schema),
		Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
			return info.Schema(), nil
		}),
	}
}

func typeMetaFieldConfig() *FieldConfig {
	return &FieldConfig{
		Name:        TypeMetaFieldName,
		Description: "Request the type information of a single type.",
		Type:        introspectionData.typ,
		Args: ArgumentConfigMap{
			"name": {
				Type: MustNewNonNullOfType(String()),
			},
		},
		Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
			name, _ := info.Args().Get("name").(string)
			if t := info.Schema().TypeMap().Lookup(name); t != nil {
				return t, nil
			}
			return nil, nil
		}),
	}
}

func typenameMetaFieldConfig() *FieldConfig {
	return &FieldConfig{
		Name:        TypenameMetaFieldName,
		Description: "The name of the current Object type at runtime.",
		Type:        MustNewNonNullOfType(String()),
		Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
			return info.ParentType().Name(), nil
		}),
	}
}
