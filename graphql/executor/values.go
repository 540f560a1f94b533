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

package executor

import (
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/unlimitedfocus/graphql/graphql"
)

// coerceVariableValues converts the request's raw variable bindings into
// their schema-typed representation, applying declared defaults and
// rejecting missing non-null variables.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Coercing-Variable-Values
func coerceVariableValues(
	schema *graphql.Schema,
	operation *ast.OperationDefinition,
	rawVariables map[string]interface{}) (map[string]interface{}, graphql.Errors) {

	var errs graphql.Errors
	coerced := make(map[string]interface{}, len(operation.VariableDefinitions))

	for _, def := range operation.VariableDefinitions {
		varType := schema.TypeFromAST(def.Type)
		if varType == nil || !graphql.IsInputType(varType) {
			errs.Append(graphql.NewValidationError(
				`Variable "$%s" expected value of type "%s" which cannot be used as an input type.`,
				def.Variable, def.Type.String()))
			continue
		}

		raw, provided := rawVariables[def.Variable]
		if !provided {
			if def.DefaultValue != nil {
				value, err := def.DefaultValue.Value(nil)
				if err != nil {
					errs.Append(graphql.NewValidationError(
						`Variable "$%s" has an invalid default value: %s.`, def.Variable, err.Error()))
					continue
				}
				coerced[def.Variable] = value
				continue
			}
			if graphql.IsNonNullType(varType) {
				errs.Append(graphql.NewValidationError(
					`Variable "$%s" of required type "%s" was not provided.`,
					def.Variable, varType.String()))
			}
			continue
		}

		value, err := coerceInputValue(varType, raw)
		if err != nil {
			errs.Append(graphql.NewValidationError(
				`Variable "$%s" got invalid value: %s.`, def.Variable, err.Error()))
			continue
		}
		coerced[def.Variable] = value
	}

	return coerced, errs
}

// coerceArgumentValues converts one field node's AST arguments into the
// values handed to the resolver: literals and substituted variables coerced
// against the field's declared argument types, with defaults applied.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Coercing-Field-Arguments
func coerceArgumentValues(
	schema *graphql.Schema,
	field *graphql.Field,
	fieldNode *ast.Field,
	variables map[string]interface{}) (graphql.ArgumentValues, error) {

	declared := field.Args()
	if len(declared) == 0 {
		return nil, nil
	}

	coerced := make(graphql.ArgumentValues, len(declared))
	for i := range declared {
		arg := &declared[i]

		argNode := fieldNode.Arguments.ForName(arg.Name())
		if argNode == nil {
			if arg.HasDefaultValue() {
				coerced[arg.Name()] = arg.DefaultValue()
			} else if graphql.IsNonNullType(arg.Type()) {
				return nil, graphql.NewValidationError(
					`Argument "%s" of required type "%s" was not provided.`,
					arg.Name(), arg.Type().String())
			}
			continue
		}

		// An unbound variable falls back to the argument's default.
		if argNode.Value.Kind == ast.Variable {
			if _, bound := variables[argNode.Value.Raw]; !bound {
				if arg.HasDefaultValue() {
					coerced[arg.Name()] = arg.DefaultValue()
				} else if graphql.IsNonNullType(arg.Type()) {
					return nil, graphql.NewValidationError(
						`Argument "%s" of required type "%s" was provided the variable "$%s" which was not provided.`,
						arg.Name(), arg.Type().String(), argNode.Value.Raw)
				}
				continue
			}
		}

		raw, err := argNode.Value.Value(variables)
		if err != nil {
			return nil, graphql.NewValidationError(
				`Argument "%s" got invalid value: %s.`, arg.Name(), err.Error())
		}

		value, err := coerceInputValue(arg.Type(), raw)
		if err != nil {
			return nil, graphql.NewValidationError(
				`Argument "%s" got invalid value: %s.`, arg.Name(), err.Error())
		}
		coerced[arg.Name()] = value
	}

	return coerced, nil
}

// coerceInputValue converts a raw input value (from a literal or a variable
// binding) into the representation declared by an input type.
func coerceInputValue(t graphql.Type, value interface{}) (interface{}, error) {
	if nonNull, ok := t.(*graphql.NonNull); ok {
		if value == nil {
			return nil, graphql.NewCoercionError(
				`Expected non-null value of type "%s", found null`, t.String())
		}
		return coerceInputValue(nonNull.InnerType(), value)
	}

	if value == nil {
		return nil, nil
	}

	switch t := t.(type) {
	case *graphql.Scalar:
		return t.CoerceInputValue(value)

	case *graphql.Enum:
		return t.CoerceInputValue(value)

	case *graphql.List:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			// A non-list value coerces to a single-element list.
			coerced, err := coerceInputValue(t.ElementType(), value)
			if err != nil {
				return nil, err
			}
			return []interface{}{coerced}, nil
		}
		result := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			coerced, err := coerceInputValue(t.ElementType(), v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = coerced
		}
		return result, nil

	case *graphql.InputObject:
		fields, ok := value.(map[string]interface{})
		if !ok {
			return nil, graphql.NewCoercionError(
				`Expected object value of type "%s", found %v`, t.Name(), value)
		}
		for name := range fields {
			if t.Field(name) == nil {
				return nil, graphql.NewCoercionError(
					`Field "%s" is not defined by type "%s"`, name, t.Name())
			}
		}
		result := make(map[string]interface{}, len(t.Fields()))
		for _, field := range t.Fields() {
			raw, provided := fields[field.Name()]
			if !provided {
				if field.HasDefaultValue() {
					result[field.Name()] = field.DefaultValue()
				} else if graphql.IsNonNullType(field.Type()) {
					return nil, graphql.NewCoercionError(
						`Field "%s" of required type "%s" was not provided`,
						field.Name(), field.Type().String())
				}
				continue
			}
			coerced, err := coerceInputValue(field.Type(), raw)
			if err != nil {
				return nil, err
			}
			result[field.Name()] = coerced
		}
		return result, nil
	}

	return nil, graphql.NewCoercionError(`Type "%s" cannot be used as an input type`, t.String())
}
