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

import "github.com/vektah/gqlparser/v2/ast"

// ResolveInfo exposes a collection of information about the current execution
// state to field resolvers, middleware and instrumentation. Implemented by
// the executor.
type ResolveInfo interface {
	// Schema being executed against
	Schema() *Schema

	// ParentType is the Object type declaring the field being resolved. For
	// fields declared on an interface this is the concrete type selected for
	// the parent value.
	ParentType() *Object

	// Field being resolved
	Field() *Field

	// Path addresses the field in the response tree.
	Path() ResponsePath

	// Args returns the coerced argument values for this field invocation.
	Args() ArgumentValues

	// RootValue is the value passed to execute for resolving root fields.
	RootValue() interface{}

	// Operation is the definition of the operation being executed.
	Operation() *ast.OperationDefinition

	// VariableValues returns the coerced variable values for the operation.
	VariableValues() map[string]interface{}
}
