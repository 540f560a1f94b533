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

// EnumValueConfig provides the specification of one value of an Enum type.
type EnumValueConfig struct {
	// Name of the enum value as it appears in queries and results
	Name string

	// Description for the enum value
	Description string

	// Value is the internal Go value the enum value maps to. When nil, the
	// name itself is used.
	Value interface{}

	// Deprecation marks the enum value as deprecated when non-nil.
	Deprecation *Deprecation
}

// EnumValues lists enum value specifications in declaration order.
type EnumValues []EnumValueConfig

// EnumConfig provides the specification to define an Enum type.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values of the Enum, in declaration order
	Values EnumValues
}

// EnumValue is one defined value of an Enum.
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
}

// Name of the enum value
func (v *EnumValue) Name() string {
	return v.name
}

// Description of the enum value
func (v *EnumValue) Description() string {
	return v.description
}

// Value returns the internal value behind the enum value.
func (v *EnumValue) Value() interface{} {
	return v.value
}

// Deprecation is non-nil when the enum value is tagged as deprecated.
func (v *EnumValue) Deprecation() *Deprecation {
	return v.deprecation
}

// Enum Type Definition
//
// Enum types, like Scalar types, also represent leaf values in a GraphQL type
// system. However Enum types describe the set of possible values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name        string
	description string
	values      []*EnumValue
	valueMap    map[string]*EnumValue
}

var (
	_ Type     = (*Enum)(nil)
	_ LeafType = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Enum.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}
	if len(config.Values) == 0 {
		return nil, NewError(`Enum "` + config.Name + `" must declare one or more values.`)
	}

	e := &Enum{
		name:        config.Name,
		description: config.Description,
		values:      make([]*EnumValue, 0, len(config.Values)),
		valueMap:    make(map[string]*EnumValue, len(config.Values)),
	}
	for _, valueConfig := range config.Values {
		if len(valueConfig.Name) == 0 {
			return nil, NewError(`Must provide name for value of Enum "` + config.Name + `".`)
		}
		if _, exists := e.valueMap[valueConfig.Name]; exists {
			return nil, NewError(
				`Enum "` + config.Name + `" declares value "` + valueConfig.Name + `" more than once.`)
		}
		internal := valueConfig.Value
		if internal == nil {
			internal = valueConfig.Name
		}
		value := &EnumValue{
			name:        valueConfig.Name,
			description: valueConfig.Description,
			value:       internal,
			deprecation: valueConfig.Deprecation,
		}
		e.values = append(e.values, value)
		e.valueMap[valueConfig.Name] = value
	}
	return e, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on
// failure instead of returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// String implements fmt.Stringer.
func (e *Enum) String() string {
	return e.name
}

// Values returns the declared enum values in declaration order.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the enum value with the given name, or nil.
func (e *Enum) Value(name string) *EnumValue {
	return e.valueMap[name]
}

// CoerceResultValue implements LeafType. The resolved internal value is
// mapped back to the name of the matching enum value.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	// Fast path: the resolver returned the enum value name.
	if name, ok := value.(string); ok {
		if _, exists := e.valueMap[name]; exists {
			return name, nil
		}
	}
	for _, v := range e.values {
		if v.value == value {
			return v.name, nil
		}
	}
	return nil, NewCoercionError(`Enum "%s" cannot represent value: %v`, e.name, value)
}

// CoerceInputValue coerces an input value (an enum value name) into the
// internal value behind it.
func (e *Enum) CoerceInputValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, NewCoercionError(`Enum "%s" cannot represent non-string value: %v`, e.name, value)
	}
	v := e.valueMap[name]
	if v == nil {
		return nil, NewCoercionError(`Value "%s" does not exist in "%s" enum.`, name, e.name)
	}
	return v.value, nil
}
