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

// InterfaceConfig provides the specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields in the Interface, in declaration order
	Fields Fields

	// FieldsFn supplies the fields lazily; see ObjectConfig.FieldsFn.
	FieldsFn func() Fields
}

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface
// type is used to describe what types are possible, and what fields are in
// common across all types. The concrete Object types satisfying an Interface
// are not stored on the Interface itself; they are computed by the schema
// from the reduced type map (see Schema.PossibleTypes).
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name        string
	description string

	fieldsOnce sync.Once
	fieldsFn   func() Fields
	fields     FieldMap
	fieldsErr  error
}

var (
	_ Type         = (*Interface)(nil)
	_ AbstractType = (*Interface)(nil)
)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config *InterfaceConfig) (*Interface, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Interface.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}
	if config.Fields != nil && config.FieldsFn != nil {
		return nil, NewError(`Interface "` + config.Name + `" must provide either Fields or FieldsFn, not both.`)
	}

	iface := &Interface{
		name:        config.Name,
		description: config.Description,
		fieldsFn:    config.FieldsFn,
	}

	if config.FieldsFn == nil {
		fields := config.Fields
		iface.fieldsFn = func() Fields { return fields }
		if err := iface.bindFields(); err != nil {
			return nil, err
		}
	}

	return iface, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but
// panics on failure instead of returning an error.
func MustNewInterface(config *InterfaceConfig) *Interface {
	iface, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return iface
}

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// Name implements TypeWithName.
func (iface *Interface) Name() string {
	return iface.name
}

// Description implements TypeWithDescription.
func (iface *Interface) Description() string {
	return iface.description
}

// String implements fmt.Stringer.
func (iface *Interface) String() string {
	return iface.name
}

func (iface *Interface) bindFields() error {
	iface.fieldsOnce.Do(func() {
		iface.fields, iface.fieldsErr = buildFieldMap(iface.name, iface.fieldsFn())
	})
	return iface.fieldsErr
}

// Fields returns the fields declared by the Interface in declaration order.
func (iface *Interface) Fields() FieldMap {
	// An error here resurfaces during schema build.
	_ = iface.bindFields()
	return iface.fields
}
