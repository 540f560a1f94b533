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
	"unicode"
	"unicode/utf8"
)

// ClientMutationIDFieldName is the name of the correlation-token field added
// to every derived mutation input type and payload type. The client supplies
// an opaque value on the input and receives exactly that value back on the
// payload.
const ClientMutationIDFieldName = "clientMutationId"

// MutationResolver performs one declared mutation. inputs holds the coerced
// fields of the derived input type (including clientMutationId). The result
// mapping's keys must be exactly the declared return field names; a missing
// or extra key fails the field at resolution time.
type MutationResolver interface {
	ResolveMutation(ctx context.Context, inputs map[string]interface{}, info ResolveInfo) (map[string]interface{}, error)
}

// MutationResolverFunc is an adapter to allow the use of ordinary functions
// as a MutationResolver.
type MutationResolverFunc func(ctx context.Context, inputs map[string]interface{}, info ResolveInfo) (map[string]interface{}, error)

// ResolveMutation calls f(ctx, inputs, info).
func (f MutationResolverFunc) ResolveMutation(
	ctx context.Context, inputs map[string]interface{}, info ResolveInfo) (map[string]interface{}, error) {
	return f(ctx, inputs, info)
}

var _ MutationResolver = (MutationResolverFunc)(nil)

// RelayMutationConfig is the single declarative description from which the
// three linked mutation artifacts are derived.
type RelayMutationConfig struct {
	// Name of the mutation in UpperCamelCase, e.g. "AddStar". The derived
	// field on the mutation root is named with the leading letter lowered.
	Name string

	// Description for the derived field
	Description string

	// InputFields declares the fields of the derived input type, in order.
	// An optional clientMutationId string field is always appended.
	InputFields InputFields

	// ReturnFields declares the fields of the derived payload type, in
	// order. A clientMutationId field echoing the input value is always
	// appended. Mutually exclusive with ReturnType.
	ReturnFields Fields

	// ReturnType, when set, is used verbatim as the field's return type. The
	// description author is then responsible for that type independently
	// satisfying the client-correlation contract.
	ReturnType Type

	// Resolver performs the mutation.
	Resolver MutationResolver
}

// RelayMutation is a declarative mutation description expanded into three
// linked schema artifacts: an input type ("<Name>Input"), an output shape
// ("<Name>Payload" unless an explicit ReturnType is supplied) and a
// resolver-bound field for the mutation root. The derived artifacts keep a
// back-reference to their originating description through the schema's
// lookup index only; the description owns the derivation, never the other
// way around.
type RelayMutation struct {
	name        string
	fieldName   string
	inputType   *InputObject
	payloadType Type

	// returnFieldNames is the exact key set the resolver must produce; nil
	// when an explicit ReturnType was supplied.
	returnFieldNames []string

	field FieldConfig
}

// NewRelayMutation derives the schema artifacts for one mutation
// description.
func NewRelayMutation(config *RelayMutationConfig) (*RelayMutation, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for RelayMutation.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for RelayMutation.")
	}
	if config.Resolver == nil {
		return nil, NewError(`RelayMutation "` + config.Name + `" must provide Resolver.`)
	}
	if config.ReturnType != nil && config.ReturnFields != nil {
		return nil, NewError(
			`RelayMutation "` + config.Name + `" must provide either ReturnFields or ReturnType, not both.`)
	}

	m := &RelayMutation{
		name:      config.Name,
		fieldName: lowerCamelCase(config.Name),
	}

	// Derived input type: declared input fields plus the implicit optional
	// correlation token.
	inputFields := make(InputFields, 0, len(config.InputFields)+1)
	inputFields = append(inputFields, config.InputFields...)
	for i := range config.InputFields {
		if config.InputFields[i].Name == ClientMutationIDFieldName {
			return nil, NewError(
				`RelayMutation "` + config.Name + `" must not declare the implicit "` +
					ClientMutationIDFieldName + `" input field.`)
		}
	}
	inputFields = append(inputFields, InputFieldConfig{
		Name:        ClientMutationIDFieldName,
		Description: "A unique identifier for the client performing the mutation.",
		Type:        String(),
	})
	inputType, err := NewInputObject(&InputObjectConfig{
		Name:   config.Name + "Input",
		Fields: inputFields,
	})
	if err != nil {
		return nil, err
	}
	m.inputType = inputType

	// Derived output shape.
	if config.ReturnType != nil {
		m.payloadType = config.ReturnType
	} else {
		m.returnFieldNames = make([]string, 0, len(config.ReturnFields))
		payloadFields := make(Fields, 0, len(config.ReturnFields)+1)
		for i := range config.ReturnFields {
			if config.ReturnFields[i].Name == ClientMutationIDFieldName {
				return nil, NewError(
					`RelayMutation "` + config.Name + `" must not declare the implicit "` +
						ClientMutationIDFieldName + `" return field.`)
			}
			m.returnFieldNames = append(m.returnFieldNames, config.ReturnFields[i].Name)
			payloadFields = append(payloadFields, config.ReturnFields[i])
		}
		payloadFields = append(payloadFields, FieldConfig{
			Name:        ClientMutationIDFieldName,
			Description: "The identifier supplied by the client on the matching input.",
			Type:        String(),
		})
		payloadType, err := NewObject(&ObjectConfig{
			Name:   config.Name + "Payload",
			Fields: payloadFields,
		})
		if err != nil {
			return nil, err
		}
		m.payloadType = payloadType
	}

	// Derived field for the mutation root.
	m.field = FieldConfig{
		Name:        m.fieldName,
		Description: config.Description,
		Type:        m.payloadType,
		Args: ArgumentConfigMap{
			"input": {
				Type: MustNewNonNullOfType(inputType),
			},
		},
		Resolver: m.fieldResolver(config.Resolver),
	}

	return m, nil
}

// MustNewRelayMutation is a convenience function equivalent to
// NewRelayMutation but panics on failure instead of returning an error.
func MustNewRelayMutation(config *RelayMutationConfig) *RelayMutation {
	m, err := NewRelayMutation(config)
	if err != nil {
		panic(err)
	}
	return m
}

// fieldResolver wraps the description's resolver with the payload-shape
// check and the correlation-token echo.
func (m *RelayMutation) fieldResolver(resolver MutationResolver) FieldResolver {
	return FieldResolverFunc(func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
		inputs, _ := info.Args().Get("input").(map[string]interface{})

		result, err := resolver.ResolveMutation(ctx, inputs, info)
		if err != nil {
			return nil, err
		}

		if m.returnFieldNames == nil {
			// An explicit ReturnType owns its own contract; pass the result
			// through untouched.
			return result, nil
		}

		for _, name := range m.returnFieldNames {
			if _, ok := result[name]; !ok {
				return nil, NewExecutionError(
					`Mutation "%s" resolved without required return field "%s".`, m.name, name)
			}
		}
		if len(result) != len(m.returnFieldNames) {
			for key := range result {
				if !m.declaresReturnField(key) {
					return nil, NewExecutionError(
						`Mutation "%s" resolved with undeclared return field "%s".`, m.name, key)
				}
			}
		}

		payload := make(map[string]interface{}, len(result)+1)
		for key, value := range result {
			payload[key] = value
		}
		// The token always reflects the input, never the resolver.
		payload[ClientMutationIDFieldName] = inputs[ClientMutationIDFieldName]
		return payload, nil
	})
}

func (m *RelayMutation) declaresReturnField(name string) bool {
	for _, declared := range m.returnFieldNames {
		if declared == name {
			return true
		}
	}
	return false
}

// Name returns the UpperCamelCase mutation name.
func (m *RelayMutation) Name() string {
	return m.name
}

// FieldName returns the name of the derived field on the mutation root.
func (m *RelayMutation) FieldName() string {
	return m.fieldName
}

// InputType returns the derived input type.
func (m *RelayMutation) InputType() *InputObject {
	return m.inputType
}

// PayloadType returns the derived output shape, or the explicit ReturnType
// when one was supplied.
func (m *RelayMutation) PayloadType() Type {
	return m.payloadType
}

// Field returns the specification of the derived field, ready to be placed
// on the mutation root type.
func (m *RelayMutation) Field() FieldConfig {
	return m.field
}

// derivedTypeNames lists the names of types derived by this description, for
// the schema's back-reference index.
func (m *RelayMutation) derivedTypeNames() []string {
	names := []string{m.inputType.Name()}
	if payload, ok := m.payloadType.(NamedType); ok && m.returnFieldNames != nil {
		names = append(names, payload.Name())
	}
	return names
}

func lowerCamelCase(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
