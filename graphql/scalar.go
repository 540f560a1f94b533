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

// ScalarResultCoercer coerces a result value into a value representable in
// the Scalar type. Please read "Result Coercion" in [0] to provide an
// appropriate implementation.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for the field to return. It is
	// called during value completion.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions
// as a ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces an input value (a field or directive argument
// value, or a query variable) into a value representable in the Scalar type.
// Argument literals are converted from their AST form into plain Go values
// before being handed to the coercer. Please read "Input Coercion" in [0] to
// provide an appropriate implementation.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarInputCoercer interface {
	// CoerceInputValue coerces a scalar value appearing in a query variable or
	// in a field argument.
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoerceScalarInputFunc is an adapter to allow the use of ordinary functions
// as a ScalarInputCoercer.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// CoerceInputValue calls f(value).
func (f CoerceScalarInputFunc) CoerceInputValue(value interface{}) (interface{}, error) {
	return f(value)
}

var _ ScalarInputCoercer = (CoerceScalarInputFunc)(nil)

// ScalarConfig provides the specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string

	// ResultCoercer serializes resolved field values of this scalar type.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values of this scalar type. When omitted,
	// input values are passed through unmodified.
	InputCoercer ScalarInputCoercer
}

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars
// (or Enums) and are defined with a name and a pair of functions used to
// coerce input values and field results.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var (
	_ Type     = (*Scalar)(nil)
	_ LeafType = (*Scalar)(nil)
)

// NewScalar defines a Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Scalar.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	if config.ResultCoercer == nil {
		return nil, NewError(`Scalar "` + config.Name + `" must provide ResultCoercer.`)
	}
	return &Scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: config.ResultCoercer,
		inputCoercer:  config.InputCoercer,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics
// on failure instead of returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// String implements fmt.Stringer.
func (s *Scalar) String() string {
	return s.name
}

// CoerceResultValue implements LeafType.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceInputValue coerces an input value into the scalar's native
// representation.
func (s *Scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	if s.inputCoercer == nil {
		return value, nil
	}
	return s.inputCoercer.CoerceInputValue(value)
}
