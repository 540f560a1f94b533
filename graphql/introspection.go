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
	"fmt"
	"strconv"
)

// This file defines the introspection meta-types as a read-only view over
// the frozen post-build type map.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Schema-Introspection

// introspectionMeta bundles the meta-type definitions. The definitions form
// reference cycles (e.g. __Type.ofType), hence the FieldsFn thunks, which the
// schema build materializes.
type introspectionMeta struct {
	typeKind          *Enum
	directiveLocation *Enum
	typ               *Object
	field             *Object
	inputValue        *Object
	enumValue         *Object
	directive         *Object
	schema            *Object
}

var introspectionData = newIntrospectionMeta()

// introspectionTypes returns the meta-types added to every schema's type
// map.
func introspectionTypes() []Type {
	meta := introspectionData
	return []Type{
		meta.typeKind,
		meta.directiveLocation,
		meta.typ,
		meta.field,
		meta.inputValue,
		meta.enumValue,
		meta.directive,
		meta.schema,
	}
}

// IntrospectionSchemaType returns the "__Schema" meta-type definition.
func IntrospectionSchemaType() *Object {
	return introspectionData.schema
}

// IntrospectionTypeType returns the "__Type" meta-type definition.
func IntrospectionTypeType() *Object {
	return introspectionData.typ
}

func newIntrospectionMeta() *introspectionMeta {
	meta := &introspectionMeta{}

	meta.typeKind = MustNewEnum(&EnumConfig{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: EnumValues{
			{Name: "SCALAR", Description: "Indicates this type is a scalar."},
			{Name: "OBJECT", Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields."},
			{Name: "INTERFACE", Description: "Indicates this type is an interface. `fields` and `possibleTypes` are valid fields."},
			{Name: "UNION", Description: "Indicates this type is a union. `possibleTypes` is a valid field."},
			{Name: "ENUM", Description: "Indicates this type is an enum. `enumValues` is a valid field."},
			{Name: "INPUT_OBJECT", Description: "Indicates this type is an input object. `inputFields` is a valid field."},
			{Name: "LIST", Description: "Indicates this type is a list. `ofType` is a valid field."},
			{Name: "NON_NULL", Description: "Indicates this type is a non-null. `ofType` is a valid field."},
		},
	})

	meta.directiveLocation = MustNewEnum(&EnumConfig{
		Name: "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the GraphQL language, a " +
			"__DirectiveLocation describes one such possible adjacencies.",
		Values: EnumValues{
			{Name: "QUERY", Value: DirectiveLocationQuery},
			{Name: "MUTATION", Value: DirectiveLocationMutation},
			{Name: "SUBSCRIPTION", Value: DirectiveLocationSubscription},
			{Name: "FIELD", Value: DirectiveLocationField},
			{Name: "FRAGMENT_DEFINITION", Value: DirectiveLocationFragmentDefinition},
			{Name: "FRAGMENT_SPREAD", Value: DirectiveLocationFragmentSpread},
			{Name: "INLINE_FRAGMENT", Value: DirectiveLocationInlineFragment},
			{Name: "SCHEMA", Value: DirectiveLocationSchema},
			{Name: "SCALAR", Value: DirectiveLocationScalar},
			{Name: "OBJECT", Value: DirectiveLocationObject},
			{Name: "FIELD_DEFINITION", Value: DirectiveLocationFieldDefinition},
			{Name: "ARGUMENT_DEFINITION", Value: DirectiveLocationArgumentDefinition},
			{Name: "INTERFACE", Value: DirectiveLocationInterface},
			{Name: "UNION", Value: DirectiveLocationUnion},
			{Name: "ENUM", Value: DirectiveLocationEnum},
			{Name: "ENUM_VALUE", Value: DirectiveLocationEnumValue},
			{Name: "INPUT_OBJECT", Value: DirectiveLocationInputObject},
			{Name: "INPUT_FIELD_DEFINITION", Value: DirectiveLocationInputFieldDefinition},
		},
	})

	meta.typ = MustNewObject(&ObjectConfig{
		Name: "__Type",
		Description: "The fundamental unit of any GraphQL Schema is the type. There are many " +
			"kinds of types in GraphQL. Depending on the kind of a type, certain fields describe " +
			"information about that type.",
		FieldsFn: func() Fields { return typeMetaFields(meta) },
	})

	meta.field = MustNewObject(&ObjectConfig{
		Name: "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of " +
			"which has a name, potentially a list of arguments, and a return type.",
		FieldsFn: func() Fields { return fieldMetaFields(meta) },
	})

	meta.inputValue = MustNewObject(&ObjectConfig{
		Name: "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an " +
			"InputObject are represented as Input Values which describe their type and " +
			"optionally a default value.",
		FieldsFn: func() Fields { return inputValueMetaFields(meta) },
	})

	meta.enumValue = MustNewObject(&ObjectConfig{
		Name: "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not " +
			"a placeholder for a string or numeric value.",
		FieldsFn: func() Fields { return enumValueMetaFields(meta) },
	})

	meta.directive = MustNewObject(&ObjectConfig{
		Name: "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and " +
			"type validation behavior in a GraphQL document.",
		FieldsFn: func() Fields { return directiveMetaFields(meta) },
	})

	meta.schema = MustNewObject(&ObjectConfig{
		Name: "__Schema",
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes " +
			"all available types and directives on the server, as well as the entry points for " +
			"query, mutation, and subscription operations.",
		FieldsFn: func() Fields { return schemaMetaFields(meta) },
	})

	return meta
}

//===----------------------------------------------------------------------------------------====//
// __Schema
//===----------------------------------------------------------------------------------------====//

func schemaMetaFields(meta *introspectionMeta) Fields {
	return Fields{
		{
			Name:        "types",
			Description: "A list of all types supported by this server.",
			Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(meta.typ))),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				schema := source.(*Schema)
				typeMap := schema.TypeMap()
				types := make([]Type, 0, typeMap.Size())
				for _, name := range typeMap.TypeNames() {
					types = append(types, typeMap.Lookup(name))
				}
				return types, nil
			}),
		},
		{
			Name:        "queryType",
			Description: "The type that query operations will be rooted at.",
			Type:        MustNewNonNullOfType(meta.typ),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Schema).Query(), nil
			}),
		},
		{
			Name:        "mutationType",
			Description: "If this server supports mutation, the type that mutation operations will be rooted at.",
			Type:        meta.typ,
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if mutation := source.(*Schema).Mutation(); mutation != nil {
					return mutation, nil
				}
				return nil, nil
			}),
		},
		{
			Name:        "subscriptionType",
			Description: "If this server support subscription, the type that subscription operations will be rooted at.",
			Type:        meta.typ,
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if subscription := source.(*Schema).Subscription(); subscription != nil {
					return subscription, nil
				}
				return nil, nil
			}),
		},
		{
			Name:        "directives",
			Description: "A list of all directives supported by this server.",
			Type:        MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(meta.directive))),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Schema).Directives(), nil
			}),
		},
	}
}

//===----------------------------------------------------------------------------------------====//
// __Type
//===----------------------------------------------------------------------------------------====//

func typeMetaFields(meta *introspectionMeta) Fields {
	return Fields{
		{
			Name: "kind",
			Type: MustNewNonNullOfType(meta.typeKind),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				switch source.(type) {
				case *Scalar:
					return "SCALAR", nil
				case *Object:
					return "OBJECT", nil
				case *Interface:
					return "INTERFACE", nil
				case *Union:
					return "UNION", nil
				case *Enum:
					return "ENUM", nil
				case *InputObject:
					return "INPUT_OBJECT", nil
				case *List:
					return "LIST", nil
				case *NonNull:
					return "NON_NULL", nil
				}
				return nil, NewInternalError("Unexpected type in introspection: %T", source)
			}),
		},
		{
			Name: "name",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if named, ok := source.(TypeWithName); ok {
					return named.Name(), nil
				}
				return nil, nil
			}),
		},
		{
			Name: "description",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if described, ok := source.(TypeWithDescription); ok && described.Description() != "" {
					return described.Description(), nil
				}
				return nil, nil
			}),
		},
		{
			Name: "fields",
			Type: MustNewListOfType(MustNewNonNullOfType(meta.field)),
			Args: ArgumentConfigMap{
				"includeDeprecated": {
					Type:         Boolean(),
					DefaultValue: false,
				},
			},
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				var fieldMap FieldMap
				switch t := source.(type) {
				case *Object:
					fieldMap = t.Fields()
				case *Interface:
					fieldMap = t.Fields()
				default:
					return nil, nil
				}
				includeDeprecated, _ := info.Args().Get("includeDeprecated").(bool)
				fields := make([]*Field, 0, fieldMap.Len())
				for _, name := range fieldMap.FieldNames() {
					field := fieldMap.Lookup(name)
					if !includeDeprecated && field.Deprecation().Defined() {
						continue
					}
					fields = append(fields, field)
				}
				return fields, nil
			}),
		},
		{
			Name: "interfaces",
			Type: MustNewListOfType(MustNewNonNullOfType(meta.typ)),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if t, ok := source.(*Object); ok {
					return t.Interfaces(), nil
				}
				return nil, nil
			}),
		},
		{
			Name: "possibleTypes",
			Type: MustNewListOfType(MustNewNonNullOfType(meta.typ)),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if t, ok := source.(AbstractType); ok {
					return info.Schema().PossibleTypes(t), nil
				}
				return nil, nil
			}),
		},
		{
			Name: "enumValues",
			Type: MustNewListOfType(MustNewNonNullOfType(meta.enumValue)),
			Args: ArgumentConfigMap{
				"includeDeprecated": {
					Type:         Boolean(),
					DefaultValue: false,
				},
			},
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				t, ok := source.(*Enum)
				if !ok {
					return nil, nil
				}
				includeDeprecated, _ := info.Args().Get("includeDeprecated").(bool)
				values := make([]*EnumValue, 0, len(t.Values()))
				for _, value := range t.Values() {
					if !includeDeprecated && value.Deprecation().Defined() {
						continue
					}
					values = append(values, value)
				}
				return values, nil
			}),
		},
		{
			Name: "inputFields",
			Type: MustNewListOfType(MustNewNonNullOfType(meta.inputValue)),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if t, ok := source.(*InputObject); ok {
					return t.Fields(), nil
				}
				return nil, nil
			}),
		},
		{
			Name: "ofType",
			Type: meta.typ,
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if t, ok := source.(WrappingType); ok {
					return t.UnwrappedType(), nil
				}
				return nil, nil
			}),
		},
	}
}

//===----------------------------------------------------------------------------------------====//
// __Field
//===----------------------------------------------------------------------------------------====//

func fieldMetaFields(meta *introspectionMeta) Fields {
	return Fields{
		{
			Name: "name",
			Type: MustNewNonNullOfType(String()),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Field).Name(), nil
			}),
		},
		{
			Name: "description",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if description := source.(*Field).Description(); description != "" {
					return description, nil
				}
				return nil, nil
			}),
		},
		{
			Name: "args",
			Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(meta.inputValue))),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Field).Args(), nil
			}),
		},
		{
			Name: "type",
			Type: MustNewNonNullOfType(meta.typ),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Field).Type(), nil
			}),
		},
		{
			Name: "isDeprecated",
			Type: MustNewNonNullOfType(Boolean()),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Field).Deprecation().Defined(), nil
			}),
		},
		{
			Name: "deprecationReason",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if deprecation := source.(*Field).Deprecation(); deprecation.Defined() {
					return deprecation.Reason, nil
				}
				return nil, nil
			}),
		},
	}
}

//===----------------------------------------------------------------------------------------====//
// __InputValue
//===----------------------------------------------------------------------------------------====//

// inputValueData adapts the two input value flavors (field arguments and
// input object fields) onto one shape.
type inputValueData struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
	hasDefault   bool
}

func inputValueOf(source interface{}) (inputValueData, error) {
	switch v := source.(type) {
	case Argument:
		return inputValueData{v.Name(), v.Description(), v.Type(), v.DefaultValue(), v.HasDefaultValue()}, nil
	case *Argument:
		return inputValueData{v.Name(), v.Description(), v.Type(), v.DefaultValue(), v.HasDefaultValue()}, nil
	case *InputField:
		return inputValueData{v.Name(), v.Description(), v.Type(), v.DefaultValue(), v.HasDefaultValue()}, nil
	}
	return inputValueData{}, NewInternalError("Unexpected input value in introspection: %T", source)
}

func inputValueMetaFields(meta *introspectionMeta) Fields {
	return Fields{
		{
			Name: "name",
			Type: MustNewNonNullOfType(String()),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				v, err := inputValueOf(source)
				if err != nil {
					return nil, err
				}
				return v.name, nil
			}),
		},
		{
			Name: "description",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				v, err := inputValueOf(source)
				if err != nil || v.description == "" {
					return nil, err
				}
				return v.description, nil
			}),
		},
		{
			Name: "type",
			Type: MustNewNonNullOfType(meta.typ),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				v, err := inputValueOf(source)
				if err != nil {
					return nil, err
				}
				return v.ttype, nil
			}),
		},
		{
			Name:        "defaultValue",
			Description: "A GraphQL-formatted string representing the default value for this input value.",
			Type:        String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				v, err := inputValueOf(source)
				if err != nil {
					return nil, err
				}
				if !v.hasDefault {
					return nil, nil
				}
				return renderInputValue(v.ttype, v.defaultValue), nil
			}),
		},
	}
}

// renderInputValue formats a Go default value as a GraphQL literal string.
func renderInputValue(t Type, value interface{}) string {
	switch t := NamedTypeOf(t).(type) {
	case *Enum:
		if name, err := t.CoerceResultValue(value); err == nil {
			return fmt.Sprintf("%v", name)
		}
	case *Scalar:
		if s, ok := value.(string); ok {
			return strconv.Quote(s)
		}
	}
	return fmt.Sprintf("%v", value)
}

//===----------------------------------------------------------------------------------------====//
// __EnumValue
//===----------------------------------------------------------------------------------------====//

func enumValueMetaFields(meta *introspectionMeta) Fields {
	return Fields{
		{
			Name: "name",
			Type: MustNewNonNullOfType(String()),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*EnumValue).Name(), nil
			}),
		},
		{
			Name: "description",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if description := source.(*EnumValue).Description(); description != "" {
					return description, nil
				}
				return nil, nil
			}),
		},
		{
			Name: "isDeprecated",
			Type: MustNewNonNullOfType(Boolean()),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*EnumValue).Deprecation().Defined(), nil
			}),
		},
		{
			Name: "deprecationReason",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if deprecation := source.(*EnumValue).Deprecation(); deprecation.Defined() {
					return deprecation.Reason, nil
				}
				return nil, nil
			}),
		},
	}
}

//===----------------------------------------------------------------------------------------====//
// __Directive
//===----------------------------------------------------------------------------------------====//

func directiveMetaFields(meta *introspectionMeta) Fields {
	return Fields{
		{
			Name: "name",
			Type: MustNewNonNullOfType(String()),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Directive).Name(), nil
			}),
		},
		{
			Name: "description",
			Type: String(),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				if description := source.(*Directive).Description(); description != "" {
					return description, nil
				}
				return nil, nil
			}),
		},
		{
			Name: "locations",
			Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(meta.directiveLocation))),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Directive).Locations(), nil
			}),
		},
		{
			Name: "args",
			Type: MustNewNonNullOfType(MustNewListOfType(MustNewNonNullOfType(meta.inputValue))),
			Resolver: FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return source.(*Directive).Args(), nil
			}),
		},
	}
}
