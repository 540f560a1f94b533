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
	"fmt"
	"sort"
)

// TypeMap keeps track of all named types reachable within a schema. It is
// populated once during schema build and is read-only afterwards.
type TypeMap struct {
	types map[string]Type
}

// add records t and every type transitively reachable from it: field return
// types, field argument types, implemented interfaces, union member lists and
// input object field types. List and NonNull wrappers are unwrapped to their
// inner type before recording. Encountering a name twice bound to a different
// definition is a fatal error. Re-running add over already recorded types is
// a no-op, so the reduction is idempotent.
func (typeMap TypeMap) add(t Type) error {
	// stack contains types to be added to the map.
	stack := []Type{t}

	for len(stack) > 0 {
		// Pop a type from stack.
		t, stack = stack[len(stack)-1], stack[:len(stack)-1]

		if t == nil || isNilType(t) {
			continue
		}

		// Map type name to the corresponding definition.
		if namedType, ok := t.(NamedType); ok {
			name := namedType.Name()
			prev, exists := typeMap.types[name]
			if !exists {
				typeMap.types[name] = t
			} else {
				if prev != t {
					return NewError(fmt.Sprintf(
						"Schema must contain unique named types but contains multiple types named %q.", name))
				}
				// Skip t which has been processed.
				continue
			}
		}

		// Push types referenced by t.
		switch t := t.(type) {
		case *Scalar, *Enum:
			// Leaf types reference nothing.

		case *Object:
			if err := t.bindFields(); err != nil {
				return err
			}
			for _, iface := range t.Interfaces() {
				stack = append(stack, iface)
			}
			stack = appendFieldTypes(stack, t.Fields())

		case *Interface:
			if err := t.bindFields(); err != nil {
				return err
			}
			stack = appendFieldTypes(stack, t.Fields())

		case *Union:
			for _, member := range t.MemberTypes() {
				stack = append(stack, member)
			}

		case *InputObject:
			for _, field := range t.Fields() {
				stack = append(stack, field.Type())
			}

		case *List:
			stack = append(stack, t.ElementType())

		case *NonNull:
			stack = append(stack, t.InnerType())

		default:
			return NewError(fmt.Sprintf("Cannot add %s to schema: unsupported type %T", t, t))
		}
	}

	return nil
}

func appendFieldTypes(stack []Type, fields FieldMap) []Type {
	for _, name := range fields.FieldNames() {
		field := fields.Lookup(name)
		stack = append(stack, field.Type())
		args := field.Args()
		for i := range args {
			stack = append(stack, args[i].Type())
		}
	}
	return stack
}

// isNilType detects a non-nil Type interface holding a nil definition
// pointer, which can sneak in through an unassigned config field.
func isNilType(t Type) bool {
	switch t := t.(type) {
	case *Scalar:
		return t == nil
	case *Object:
		return t == nil
	case *Interface:
		return t == nil
	case *Union:
		return t == nil
	case *Enum:
		return t == nil
	case *InputObject:
		return t == nil
	case *List:
		return t == nil
	case *NonNull:
		return t == nil
	}
	return false
}

// Lookup finds a type with the given name, or nil.
func (typeMap TypeMap) Lookup(name string) Type {
	return typeMap.types[name]
}

// Size returns the number of named types in the map.
func (typeMap TypeMap) Size() int {
	return len(typeMap.types)
}

// TypeNames returns the names of all types in the map, sorted.
func (typeMap TypeMap) TypeNames() []string {
	names := make([]string, 0, len(typeMap.types))
	for name := range typeMap.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
