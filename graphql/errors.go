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
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ErrKind classifies an Error.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther         ErrKind = iota // Unclassified error
	ErrKindCoercion                     // Failed to coerce input or result values for the desired GraphQL type
	ErrKindValidation                   // The request is invalid against the schema
	ErrKindExecution                    // An error occurred while executing a query
	ErrKindInternal                     // Invariant violation inside the library or a callback contract
	ErrKindConfiguration                // The schema or request is misconfigured, independent of request data
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindExecution:
		return "execution error"
	case ErrKindInternal:
		return "internal error"
	case ErrKindConfiguration:
		return "configuration error"
	}
	return "unknown error kind"
}

// ErrorExtensions provides an additional entry to a GraphQL error with key
// "extensions". It is useful for attaching vendor-specific error data such as
// an error code.
type ErrorExtensions map[string]interface{}

// ErrorLocation contains a line number and a column number pointing at the
// beginning of an associated syntax element. Both are positive numbers
// starting from 1.
type ErrorLocation struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

//===----------------------------------------------------------------------------------------====//
// ResponsePath
//===----------------------------------------------------------------------------------------====//

// ResponsePath is a list of keys addressing a position in the result tree.
// Each key is either a string (a response field name) or an int (an index
// into a list value).
type ResponsePath struct {
	keys []interface{}
}

// Empty returns true if the path doesn't contain any keys.
func (path ResponsePath) Empty() bool {
	return len(path.keys) == 0
}

// Keys returns the path keys from the root to the addressed position.
func (path ResponsePath) Keys() []interface{} {
	return path.keys
}

// WithFieldName returns a copy of the path extended with a response field
// name. The receiver is not modified, so sibling fields resolved from the
// same parent path never share key storage.
func (path ResponsePath) WithFieldName(name string) ResponsePath {
	return path.with(name)
}

// WithIndex returns a copy of the path extended with a list index.
func (path ResponsePath) WithIndex(index int) ResponsePath {
	return path.with(index)
}

func (path ResponsePath) with(key interface{}) ResponsePath {
	keys := make([]interface{}, len(path.keys), len(path.keys)+1)
	copy(keys, path.keys)
	return ResponsePath{keys: append(keys, key)}
}

// String serializes a ResponsePath into a readable form, e.g. "hero.friends[1].name".
func (path ResponsePath) String() string {
	var b strings.Builder
	for _, key := range path.keys {
		switch key := key.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(key)
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(key))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// MarshalJSON implements json.Marshaler to serialize a ResponsePath into the
// "path" entry of a GraphQL response error.
func (path ResponsePath) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(path.keys)
}

//===----------------------------------------------------------------------------------------====//
// Error
//===----------------------------------------------------------------------------------------====//

// Error is the structured error value used throughout the library. It
// captures the response-visible parts of a GraphQL error (message, locations,
// path) along with classification and the underlying cause.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Errors
type Error struct {
	// Message describes the error for human consumption.
	Message string

	// Kind classifies the error.
	Kind ErrKind

	// Locations point at the syntax elements in the query document associated
	// with the error.
	Locations []ErrorLocation

	// Path addresses the response field which experienced the error.
	Path ResponsePath

	// Extensions carries vendor-specific error data.
	Extensions ErrorExtensions

	// Underlying is the wrapped cause, if any.
	Underlying error
}

var _ error = (*Error)(nil)

// NewError creates an Error with the given message and an unclassified kind.
func NewError(message string) *Error {
	return &Error{Message: message}
}

// NewCoercionError creates an Error indicating an input or result value could
// not be coerced into the desired type.
func NewCoercionError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...), Kind: ErrKindCoercion}
}

// NewValidationError creates an Error indicating a request that is invalid
// against the schema.
func NewValidationError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...), Kind: ErrKindValidation}
}

// NewExecutionError creates an Error raised while resolving a field.
func NewExecutionError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...), Kind: ErrKindExecution}
}

// NewInternalError creates an Error indicating an invariant violation inside
// the library or a violated callback contract. These are bugs in schema
// wiring, not problems with resolved data.
func NewInternalError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...), Kind: ErrKindInternal}
}

// NewConfigurationError creates an Error indicating a fatal,
// request-independent misconfiguration such as an unregistered required
// callback or a duplicate type name.
func NewConfigurationError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...), Kind: ErrKindConfiguration}
}

// WrapError creates an Error carrying err as its underlying cause. The
// message of the wrapped error is appended to the given message.
func WrapError(err error, message string) *Error {
	return &Error{
		Message:    message + ": " + err.Error(),
		Underlying: err,
	}
}

// Error implements the Go error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As inspection.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// WithLocations returns e with the given locations attached.
func (e *Error) WithLocations(locations ...ErrorLocation) *Error {
	e.Locations = append(e.Locations, locations...)
	return e
}

// WithPath returns e with the given response path attached.
func (e *Error) WithPath(path ResponsePath) *Error {
	e.Path = path
	return e
}

// WithExtensions returns e with the given extensions attached.
func (e *Error) WithExtensions(extensions ErrorExtensions) *Error {
	e.Extensions = extensions
	return e
}

// MarshalJSON implements json.Marshaler to serialize an Error into the shape
// required for the "errors" entry of a GraphQL response.
func (e *Error) MarshalJSON() ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField("message")
	stream.WriteString(e.Message)

	if len(e.Locations) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteVal(e.Locations)
	}

	if !e.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(e.Path.keys)
	}

	if len(e.Extensions) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteVal(e.Extensions)
	}

	stream.WriteObjectEnd()
	if err := stream.Error; err != nil {
		return nil, err
	}

	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// Errors is a list of Error values collected during one execution.
type Errors []*Error

// HaveOccurred returns true if the list contains any error.
func (errs Errors) HaveOccurred() bool {
	return len(errs) > 0
}

// Append adds an error to the list. Non-*Error values are wrapped into an
// Error with execution kind.
func (errs *Errors) Append(err error) {
	if err == nil {
		return
	}
	if e, ok := err.(*Error); ok {
		*errs = append(*errs, e)
		return
	}
	*errs = append(*errs, &Error{
		Message:    err.Error(),
		Kind:       ErrKindExecution,
		Underlying: err,
	})
}

//===----------------------------------------------------------------------------------------====//
// UnresolvedTypeError
//===----------------------------------------------------------------------------------------====//

// UnresolvedTypeError describes a failed polymorphic dispatch: the schema's
// TypeResolver returned a concrete Object type which is not within the
// possible-type set of the abstract type declared by the field. This is a
// data mismatch (the resolved value does not belong under the declared
// type), as opposed to the contract violation of returning a type that is
// not part of the schema at all, which is reported as an internal error.
type UnresolvedTypeError struct {
	// Value is the resolved field value whose type could not be placed.
	Value interface{}

	// Field is the field being resolved.
	Field *Field

	// ParentType is the Object type declaring Field.
	ParentType *Object

	// AbstractType is the Interface or Union declared as the field type.
	AbstractType AbstractType

	// ResolvedType is the concrete type the TypeResolver (wrongly) returned.
	ResolvedType *Object

	// PossibleTypes lists the concrete types that would have been valid.
	PossibleTypes []*Object
}

var _ error = (*UnresolvedTypeError)(nil)

// Error implements the Go error interface with an actionable diagnostic.
func (e *UnresolvedTypeError) Error() string {
	names := make([]string, len(e.PossibleTypes))
	for i, t := range e.PossibleTypes {
		names[i] = t.Name()
	}
	return fmt.Sprintf(
		`Value resolved for "%s.%s" was reported as type "%s" which is not a possible type for "%s" (possible types: %s).`,
		e.ParentType.Name(), e.Field.Name(), e.ResolvedType.Name(), e.AbstractType.Name(),
		strings.Join(names, ", "))
}
