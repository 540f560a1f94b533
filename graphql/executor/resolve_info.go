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
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/unlimitedfocus/graphql/graphql"
)

// resolveInfo is the execution-state view handed to resolvers, middleware
// and rescue handlers for one field invocation.
type resolveInfo struct {
	schema     *graphql.Schema
	parentType *graphql.Object
	field      *graphql.Field
	path       graphql.ResponsePath
	args       graphql.ArgumentValues
	rootValue  interface{}
	operation  *ast.OperationDefinition
	variables  map[string]interface{}
}

var _ graphql.ResolveInfo = (*resolveInfo)(nil)

func (info *resolveInfo) Schema() *graphql.Schema {
	return info.schema
}

func (info *resolveInfo) ParentType() *graphql.Object {
	return info.parentType
}

func (info *resolveInfo) Field() *graphql.Field {
	return info.field
}

func (info *resolveInfo) Path() graphql.ResponsePath {
	return info.path
}

func (info *resolveInfo) Args() graphql.ArgumentValues {
	return info.args
}

func (info *resolveInfo) RootValue() interface{} {
	return info.rootValue
}

func (info *resolveInfo) Operation() *ast.OperationDefinition {
	return info.operation
}

func (info *resolveInfo) VariableValues() map[string]interface{} {
	return info.variables
}
