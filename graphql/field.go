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
	"sort"
)

//===----------------------------------------------------------------------------------------====//
// Field resolver
//===----------------------------------------------------------------------------------------====//

// FieldResolver produces the value of one field from the parent value, the
// coerced field arguments (available through info.Args()) and the request
// context.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as a
// FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error)

// Resolve calls f(ctx, source, info).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
	return f(ctx, source, info)
}

var _ FieldResolver = (FieldResolverFunc)(nil)

//===----------------------------------------------------------------------------------------====//
// Argument
//===----------------------------------------------------------------------------------------====//

// ArgumentConfig provides the specification of one field or directive
// argument.
type ArgumentConfig struct {
	// Type of the value that can be given to the argument; must be an input
	// type.
	Type Type

	// Description for the argument
	Description string

	// DefaultValue to be applied when no value is provided in the query. A nil
	// DefaultValue means the argument has no default.
	DefaultValue interface{}
}

// ArgumentConfigMap maps argument names to their specification.
type ArgumentConfigMap map[string]ArgumentConfig

// Argument is an argument taken by a Field or a Directive.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument declares a default.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue returns the default applied when the argument is omitted.
func (arg *Argument) DefaultValue() interface{} {
	return arg.defaultValue
}

// buildArguments materializes an ArgumentConfigMap into a list of Argument
// sorted by name (the map carries no declaration order).
func buildArguments(owner string, configMap ArgumentConfigMap) ([]Argument, error) {
	if len(configMap) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(configMap))
	for name := range configMap {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]Argument, len(names))
	for i, name := range names {
		config := configMap[name]
		if config.Type == nil {
			return nil, NewError(`Must provide type for argument "` + name + `" of "` + owner + `".`)
		}
		if !IsInputType(config.Type) {
			return nil, NewError(
				`Argument "` + name + `" of "` + owner + `" must have input type, got "` + config.Type.String() + `".`)
		}
		args[i] = Argument{
			name:         name,
			description:  config.Description,
			ttype:        config.Type,
			defaultValue: config.DefaultValue,
		}
	}
	return args, nil
}

// ArgumentValues holds the coerced argument values for one field resolution.
type ArgumentValues map[string]interface{}

// Get returns the value of the argument with the given name, or nil if the
// argument was not provided and has no default.
func (values ArgumentValues) Get(name string) interface{} {
	return values[name]
}

// Lookup returns the value of the argument with the given name and reports
// whether a value is present.
func (values ArgumentValues) Lookup(name string) (interface{}, bool) {
	value, ok := values[name]
	return value, ok
}

//===----------------------------------------------------------------------------------------====//
// Field
//===----------------------------------------------------------------------------------------====//

// FieldConfig provides the specification of one field of an Object or an
// Interface.
type FieldConfig struct {
	// Name of the field; must be unique within the declaring type.
	Name string

	// Description for the field
	Description string

	// Type of value yielded by the field; must be an output type.
	Type Type

	// Args taken by the field
	Args ArgumentConfigMap

	// Resolver computes the field value. When omitted, the executor's default
	// resolver reads the field from the source value.
	Resolver FieldResolver

	// Deprecation marks the field as deprecated when non-nil.
	Deprecation *Deprecation
}

// Fields lists field specifications in declaration order. The order is
// preserved for introspection; execution does not depend on it.
type Fields []FieldConfig

// Field is a field of an Object or Interface type. A Field is owned by
// exactly one declaring type and is immutable after construction; field
// instrumentation produces new Field values via WithResolver rather than
// mutating in place.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type Field struct {
	name        string
	description string
	ttype       Type
	args        []Argument
	resolver    FieldResolver
	deprecation *Deprecation
}

// newField builds a Field from its config. ownerName is used in error
// messages only.
func newField(ownerName string, config *FieldConfig) (*Field, error) {
	if len(config.Name) == 0 {
		return nil, NewError(`Must provide name for field of "` + ownerName + `".`)
	}
	if config.Type == nil {
		return nil, NewError(`Must provide type for field "` + ownerName + `.` + config.Name + `".`)
	}
	if !IsOutputType(config.Type) {
		return nil, NewError(
			`Field "` + ownerName + `.` + config.Name + `" must have output type, got "` + config.Type.String() + `".`)
	}

	args, err := buildArguments(ownerName+"."+config.Name, config.Args)
	if err != nil {
		return nil, err
	}

	return &Field{
		name:        config.Name,
		description: config.Description,
		ttype:       config.Type,
		args:        args,
		resolver:    config.Resolver,
		deprecation: config.Deprecation,
	}, nil
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.description
}

// Type of value yielded by the field
func (f *Field) Type() Type {
	return f.ttype
}

// Args taken by the field, sorted by argument name
func (f *Field) Args() []Argument {
	return f.args
}

// Arg finds the declared argument with the given name.
func (f *Field) Arg(name string) *Argument {
	for i := range f.args {
		if f.args[i].name == name {
			return &f.args[i]
		}
	}
	return nil
}

// Resolver returns the resolver bound to the field; nil means the executor's
// default resolver applies.
func (f *Field) Resolver() FieldResolver {
	return f.resolver
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.deprecation
}

// WithResolver returns a copy of the field bound to the given resolver. The
// receiver is unchanged; this is the primitive that field instrumenters use
// to wrap resolution behavior.
func (f *Field) WithResolver(resolver FieldResolver) *Field {
	wrapped := *f
	wrapped.resolver = resolver
	return &wrapped
}

//===----------------------------------------------------------------------------------------====//
// FieldMap
//===----------------------------------------------------------------------------------------====//

// FieldMap is the materialized field collection of an Object or Interface
// type. It preserves declaration order and offers name lookup.
type FieldMap struct {
	names  []string
	fields map[string]*Field
}

// buildFieldMap materializes an ordered Fields specification.
func buildFieldMap(ownerName string, configs Fields) (FieldMap, error) {
	m := FieldMap{
		names:  make([]string, 0, len(configs)),
		fields: make(map[string]*Field, len(configs)),
	}
	for i := range configs {
		config := &configs[i]
		if _, exists := m.fields[config.Name]; exists {
			return FieldMap{}, NewError(
				`Field "` + config.Name + `" is declared more than once on "` + ownerName + `".`)
		}
		field, err := newField(ownerName, config)
		if err != nil {
			return FieldMap{}, err
		}
		m.names = append(m.names, config.Name)
		m.fields[config.Name] = field
	}
	return m, nil
}

// Len returns the number of fields in the map.
func (m FieldMap) Len() int {
	return len(m.names)
}

// FieldNames returns the field names in declaration order.
func (m FieldMap) FieldNames() []string {
	return m.names
}

// Lookup finds the field with the given name, or nil.
func (m FieldMap) Lookup(name string) *Field {
	return m.fields[name]
}
