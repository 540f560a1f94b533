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
	"math"
	"strconv"
)

// This file defines the built-in scalar types required by the specification.
// The Go types behind the interface{} values produced by input and result
// coercion are fixed:
//
//	+--------------+-------------+
//	| GraphQL Type | Go Type     |
//	+--------------+-------------+
//	| Int          | int         |
//	| Float        | float64     |
//	| String       | string      |
//	| Boolean      | bool        |
//	| ID           | string      |
//	+--------------+-------------+

//===----------------------------------------------------------------------------------------====//
// Int
//===----------------------------------------------------------------------------------------====//
// The Int scalar type represents a signed 32-bit numeric non-fractional value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int

func coerceIntValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return checkIntRange(int64(v))
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return checkIntRange(v)
	case uint:
		return checkIntRange(int64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return checkIntRange(int64(v))
	case uint64:
		if v > math.MaxInt32 {
			return nil, NewCoercionError("Int cannot represent %d: value too large for 32-bit signed integer", v)
		}
		return int(v), nil
	case float32:
		return coerceIntFromFloat(float64(v))
	case float64:
		return coerceIntFromFloat(v)
	}
	return nil, NewCoercionError("Int cannot represent %v: not an integer", value)
}

func checkIntRange(v int64) (interface{}, error) {
	if v > math.MaxInt32 {
		return nil, NewCoercionError("Int cannot represent %d: value too large for 32-bit signed integer", v)
	}
	if v < math.MinInt32 {
		return nil, NewCoercionError("Int cannot represent %d: value too small for 32-bit signed integer", v)
	}
	return int(v), nil
}

func coerceIntFromFloat(v float64) (interface{}, error) {
	if math.Trunc(v) != v || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, NewCoercionError("Int cannot represent %v: not an integer", v)
	}
	return checkIntRange(int64(v))
}

var intType = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: CoerceScalarResultFunc(coerceIntValue),
	InputCoercer:  CoerceScalarInputFunc(coerceIntValue),
})

// Int returns the GraphQL builtin Int type definition.
func Int() *Scalar {
	return intType
}

//===----------------------------------------------------------------------------------------====//
// Float
//===----------------------------------------------------------------------------------------====//
// The Float scalar type represents signed double-precision finite values as
// specified by IEEE 754.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float

func coerceFloatValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, NewCoercionError("Float cannot represent %v: not a finite value", v)
		}
		return v, nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	}
	return nil, NewCoercionError("Float cannot represent %v: not a numeric value", value)
}

var floatType = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values " +
		"as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	ResultCoercer: CoerceScalarResultFunc(coerceFloatValue),
	InputCoercer:  CoerceScalarInputFunc(coerceFloatValue),
})

// Float returns the GraphQL builtin Float type definition.
func Float() *Scalar {
	return floatType
}

//===----------------------------------------------------------------------------------------====//
// String
//===----------------------------------------------------------------------------------------====//
// The String scalar type represents textual data represented as UTF-8
// character sequences.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String

func coerceStringResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprintf("%v", v), nil
	}
	return nil, NewCoercionError("String cannot represent value of type %T", value)
}

func coerceStringInputValue(value interface{}) (interface{}, error) {
	// Input coercion accepts strings only. See "Input Coercion" in the String
	// section of the specification.
	if v, ok := value.(string); ok {
		return v, nil
	}
	return nil, NewCoercionError("String cannot represent a non-string value: %v", value)
}

var stringType = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to represent " +
		"free-form human-readable text.",
	ResultCoercer: CoerceScalarResultFunc(coerceStringResultValue),
	InputCoercer:  CoerceScalarInputFunc(coerceStringInputValue),
})

// String returns the GraphQL builtin String type definition.
func String() *Scalar {
	return stringType
}

//===----------------------------------------------------------------------------------------====//
// Boolean
//===----------------------------------------------------------------------------------------====//
// The Boolean scalar type represents true or false.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean

func coerceBooleanResultValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	}
	return nil, NewCoercionError("Boolean cannot represent %v: not a boolean value", value)
}

func coerceBooleanInputValue(value interface{}) (interface{}, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, NewCoercionError("Boolean cannot represent %v: not a boolean value", value)
}

var booleanType = MustNewScalar(&ScalarConfig{
	Name:          "Boolean",
	Description:   "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: CoerceScalarResultFunc(coerceBooleanResultValue),
	InputCoercer:  CoerceScalarInputFunc(coerceBooleanInputValue),
})

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() *Scalar {
	return booleanType
}

//===----------------------------------------------------------------------------------------====//
// ID
//===----------------------------------------------------------------------------------------====//
// The ID scalar type represents a unique identifier, serialized as a string.
// It accepts both string and integer input values.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID

func coerceIDValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return nil, NewCoercionError("ID cannot represent value of type %T", value)
}

var idType = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; " +
		"however, it is not intended to be human-readable. When expected as an input type, any " +
		"string (such as `\"4\"`) or integer (such as `4`) input value will be accepted as an ID.",
	ResultCoercer: CoerceScalarResultFunc(coerceIDValue),
	InputCoercer:  CoerceScalarInputFunc(coerceIDValue),
})

// ID returns the GraphQL builtin ID type definition.
func ID() *Scalar {
	return idType
}
