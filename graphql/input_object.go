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

// InputFieldConfig provides the specification of one field of an InputObject
// type.
type InputFieldConfig struct {
	// Name of the input field
	Name string

	// Description for the input field
	Description string

	// Type of the input field; must be an input type.
	Type Type

	// DefaultValue to be applied when the field is not provided. A nil
	// DefaultValue means the field has no default.
	DefaultValue interface{}
}

// InputFields lists input field specifications in declaration order.
type InputFields []InputFieldConfig

// InputObjectConfig provides the specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields in the InputObject, in declaration order
	Fields InputFields
}

// InputField is a field of an InputObject type.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the input field
func (f *InputField) Name() string {
	return f.name
}

// Description of the input field
func (f *InputField) Description() string {
	return f.description
}

// Type of the input field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the input field declares a default.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// DefaultValue returns the default applied when the field is omitted.
func (f *InputField) DefaultValue() interface{} {
	return f.defaultValue
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be
// supplied to a field argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      []*InputField
	fieldMap    map[string]*InputField
}

var (
	_ Type      = (*InputObject)(nil)
	_ NamedType = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for InputObject.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}

	o := &InputObject{
		name:        config.Name,
		description: config.Description,
		fields:      make([]*InputField, 0, len(config.Fields)),
		fieldMap:    make(map[string]*InputField, len(config.Fields)),
	}
	for _, fieldConfig := range config.Fields {
		if len(fieldConfig.Name) == 0 {
			return nil, NewError(`Must provide name for field of InputObject "` + config.Name + `".`)
		}
		if fieldConfig.Type == nil {
			return nil, NewError(
				`Must provide type for field "` + config.Name + `.` + fieldConfig.Name + `".`)
		}
		if !IsInputType(fieldConfig.Type) {
			return nil, NewError(
				`Field "` + config.Name + `.` + fieldConfig.Name + `" must have input type, got "` +
					fieldConfig.Type.String() + `".`)
		}
		if _, exists := o.fieldMap[fieldConfig.Name]; exists {
			return nil, NewError(
				`Field "` + fieldConfig.Name + `" is declared more than once on "` + config.Name + `".`)
		}
		field := &InputField{
			name:         fieldConfig.Name,
			description:  fieldConfig.Description,
			ttype:        fieldConfig.Type,
			defaultValue: fieldConfig.DefaultValue,
		}
		o.fields = append(o.fields, field)
		o.fieldMap[fieldConfig.Name] = field
	}
	return o, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject
// but panics on failure instead of returning an error.
func MustNewInputObject(config *InputObjectConfig) *InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// String implements fmt.Stringer.
func (o *InputObject) String() string {
	return o.name
}

// Fields returns the input fields in declaration order.
func (o *InputObject) Fields() []*InputField {
	return o.fields
}

// Field finds the input field with the given name, or nil.
func (o *InputObject) Field(name string) *InputField {
	return o.fieldMap[name]
}
