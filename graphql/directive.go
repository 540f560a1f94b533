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

// DirectiveLocation describes one place in a query document or schema where
// a directive may appear.
type DirectiveLocation string

// Enumeration of DirectiveLocation
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
const (
	// Executable directive locations
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"

	// Type system directive locations
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DirectiveConfig provides the specification to define a Directive.
type DirectiveConfig struct {
	// Name of the defining Directive
	Name string

	// Description for the Directive
	Description string

	// Locations where the Directive may appear
	Locations []DirectiveLocation

	// Args taken by the Directive
	Args ArgumentConfigMap
}

// Directive Definition
//
// A GraphQL schema describes directives which are used to annotate various
// parts of a GraphQL document as an indicator that they should be evaluated
// differently by a validator, executor, or client tool.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Directives
type Directive struct {
	name        string
	description string
	locations   []DirectiveLocation
	args        []Argument
}

// NewDirective defines a Directive from a DirectiveConfig.
func NewDirective(config *DirectiveConfig) (*Directive, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Directive.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Directive.")
	}
	if len(config.Locations) == 0 {
		return nil, NewError(`Directive "@` + config.Name + `" must declare one or more locations.`)
	}

	args, err := buildArguments("@"+config.Name, config.Args)
	if err != nil {
		return nil, err
	}

	return &Directive{
		name:        config.Name,
		description: config.Description,
		locations:   config.Locations,
		args:        args,
	}, nil
}

// MustNewDirective is a convenience function equivalent to NewDirective but
// panics on failure instead of returning an error.
func MustNewDirective(config *DirectiveConfig) *Directive {
	d, err := NewDirective(config)
	if err != nil {
		panic(err)
	}
	return d
}

// Name of the directive
func (d *Directive) Name() string {
	return d.name
}

// Description of the directive
func (d *Directive) Description() string {
	return d.description
}

// Locations where the directive may appear
func (d *Directive) Locations() []DirectiveLocation {
	return d.locations
}

// Args taken by the directive, sorted by argument name
func (d *Directive) Args() []Argument {
	return d.args
}

// DirectiveList is a list of Directive.
type DirectiveList []*Directive

// Lookup finds a directive with the given name in the list, or nil.
func (directiveList DirectiveList) Lookup(name string) *Directive {
	for _, directive := range directiveList {
		if directive.Name() == name {
			return directive
		}
	}
	return nil
}
