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

import "fmt"

// Type is implemented by all GraphQL type definitions.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// graphqlType is a special mark to ensure that only type definitions
	// provided by this package can be assigned to a Type.
	graphqlType()
}

// TypeWithName is implemented by the definition of a named type.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by type definitions that carry
// documentation.
type TypeWithDescription interface {
	// Description provides documentation for the type.
	Description() string
}

// NamedType is a type definition that carries a name unique within one
// schema. All types except the List and NonNull wrappers are named.
type NamedType interface {
	Type
	TypeWithName
	TypeWithDescription
}

// LeafType can represent a leaf value where execution of the hierarchical
// query terminates. Only Scalar and Enum are valid leaf types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type LeafType interface {
	NamedType

	// CoerceResultValue coerces a value resolved for a field of this type into
	// the value to be returned in the result tree.
	CoerceResultValue(value interface{}) (interface{}, error)

	graphqlLeafType()
}

// AbstractType indicates a GraphQL abstract type, namely interfaces and
// unions. The concrete Object type behind a value of an abstract type is
// determined at execution time through the schema's TypeResolver.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Types
type AbstractType interface {
	NamedType

	graphqlAbstractType()
}

// WrappingType is a type that wraps another type. There are two wrapping
// types in GraphQL: List and NonNull.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Wrapping-Types
type WrappingType interface {
	Type

	// UnwrappedType returns the type that is wrapped by this type.
	UnwrappedType() Type

	graphqlWrappingType()
}

// NamedTypeOf unwraps any List and NonNull wrappers from t and returns the
// underlying named type.
func NamedTypeOf(t Type) NamedType {
	for {
		switch ttype := t.(type) {
		case WrappingType:
			t = ttype.UnwrappedType()
		case NamedType:
			return ttype
		default:
			return nil
		}
	}
}

// NullableTypeOf strips one level of NonNull wrapper, if any.
func NullableTypeOf(t Type) Type {
	if nonNull, ok := t.(*NonNull); ok {
		return nonNull.InnerType()
	}
	return t
}

// IsNonNullType returns true if t is wrapped in a NonNull.
func IsNonNullType(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}

// IsLeafType returns true if t (after unwrapping) terminates query recursion,
// i.e. is a Scalar or an Enum.
func IsLeafType(t Type) bool {
	_, ok := t.(LeafType)
	return ok
}

// IsAbstractType returns true if t is an Interface or a Union.
func IsAbstractType(t Type) bool {
	_, ok := t.(AbstractType)
	return ok
}

// IsCompositeType returns true if t is an Object, Interface or Union, i.e. a
// type that must be queried with a sub-selection.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	}
	return false
}

// IsInputType returns true if t can be used as the type of a field argument,
// an input object field or a variable.
//
// Reference: https://facebook.github.io/graphql/June2018/#IsInputType()
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType returns true if t can be used as the declared type of a field.
//
// Reference: https://facebook.github.io/graphql/June2018/#IsOutputType()
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	}
	return false
}

// Deprecation contains information about deprecation for a field or an enum
// value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Deprecation
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}
