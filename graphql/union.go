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

// UnionConfig provides the specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// MemberTypes lists the Object types the Union may represent.
	MemberTypes []*Object
}

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type
// is used to describe what types are possible. The possible types of a Union
// are exactly its declared member types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	name        string
	description string
	memberTypes []*Object
}

var (
	_ Type         = (*Union)(nil)
	_ AbstractType = (*Union)(nil)
)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config *UnionConfig) (*Union, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Union.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}
	if len(config.MemberTypes) == 0 {
		return nil, NewError(`Union "` + config.Name + `" must declare one or more member types.`)
	}
	for _, member := range config.MemberTypes {
		if member == nil {
			return nil, NewError(`Union "` + config.Name + `" must not declare a nil member type.`)
		}
	}
	return &Union{
		name:        config.Name,
		description: config.Description,
		memberTypes: config.MemberTypes,
	}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on
// failure instead of returning an error.
func MustNewUnion(config *UnionConfig) *Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// String implements fmt.Stringer.
func (u *Union) String() string {
	return u.name
}

// MemberTypes returns the declared member types of the Union.
func (u *Union) MemberTypes() []*Object {
	return u.memberTypes
}
