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

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types
// enforce that their values are never null and can ensure an error is raised
// if this ever occurs during a request. A failed non-null field propagates
// the failure to its nearest nullable ancestor in the result tree.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	innerType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOfType creates a NonNull wrapping the given inner type. The inner
// type must itself be nullable.
func NewNonNullOfType(innerType Type) (*NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide an non-nil inner type for NonNull.")
	}
	if _, ok := innerType.(*NonNull); ok {
		return nil, NewError("Cannot wrap a NonNull type within another NonNull.")
	}
	return &NonNull{innerType: innerType}, nil
}

// MustNewNonNullOfType is a convenience function equivalent to
// NewNonNullOfType but panics on failure instead of returning an error.
func MustNewNonNullOfType(innerType Type) *NonNull {
	n, err := NewNonNullOfType(innerType)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// InnerType returns the type wrapped by the NonNull.
func (n *NonNull) InnerType() Type {
	return n.innerType
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.innerType
}

// String implements fmt.Stringer.
func (n *NonNull) String() string {
	return n.innerType.String() + "!"
}
