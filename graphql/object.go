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

import "sync"

// ObjectConfig provides the specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces implemented by the defining Object
	Interfaces []*Interface

	// Fields in the Object, in declaration order
	Fields Fields

	// FieldsFn supplies the fields lazily; it is invoked at most once, on
	// first access. Use this instead of Fields when field types form a cycle
	// through the Object being defined.
	FieldsFn func() Fields
}

// Object Type Definition
//
// Almost all of the GraphQL types you define will be object types. Object
// types have a name, and most importantly describe their fields. Objects are
// immutable once constructed; fields supplied through a thunk are bound on
// first access and then frozen.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	interfaces  []*Interface

	fieldsOnce sync.Once
	fieldsFn   func() Fields
	fields     FieldMap
	fieldsErr  error
}

var (
	_ Type      = (*Object)(nil)
	_ NamedType = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config *ObjectConfig) (*Object, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Object.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}
	if config.Fields != nil && config.FieldsFn != nil {
		return nil, NewError(`Object "` + config.Name + `" must provide either Fields or FieldsFn, not both.`)
	}

	o := &Object{
		name:        config.Name,
		description: config.Description,
		interfaces:  config.Interfaces,
		fieldsFn:    config.FieldsFn,
	}

	if config.FieldsFn == nil {
		// Bind fields eagerly so configuration errors surface from NewObject.
		fields := config.Fields
		o.fieldsFn = func() Fields { return fields }
		if err := o.bindFields(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics
// on failure instead of returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// String implements fmt.Stringer.
func (o *Object) String() string {
	return o.name
}

// Interfaces returns the interfaces implemented by the Object.
func (o *Object) Interfaces() []*Interface {
	return o.interfaces
}

// Implements returns true if the Object declares the given interface.
func (o *Object) Implements(iface *Interface) bool {
	for _, i := range o.interfaces {
		if i == iface {
			return true
		}
	}
	return false
}

// bindFields materializes the field thunk. It is invoked by the schema's type
// map traversal so that late field errors surface during schema build.
func (o *Object) bindFields() error {
	o.fieldsOnce.Do(func() {
		o.fields, o.fieldsErr = buildFieldMap(o.name, o.fieldsFn())
	})
	return o.fieldsErr
}

// Fields returns the fields of the Object in declaration order. The fields of
// an Object constructed with FieldsFn are bound on first access.
func (o *Object) Fields() FieldMap {
	// An error here resurfaces during schema build.
	_ = o.bindFields()
	return o.fields
}
