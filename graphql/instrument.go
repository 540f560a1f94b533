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

	"github.com/vektah/gqlparser/v2/ast"
)

// FieldInstrumenter is a build-time, structural extension point: it maps a
// declared field to a replacement field, typically one whose resolver wraps
// the original (see Field.WithResolver). Instrumenters run exactly once per
// declared field during schema build, in registration order; the final field
// is stored in the schema's instrumented field table and reused for every
// request. An instrumenter must be a pure transformation and hold no
// per-request state.
type FieldInstrumenter interface {
	Instrument(parentType *Object, field *Field) *Field
}

// FieldInstrumenterFunc is an adapter to allow the use of ordinary functions
// as a FieldInstrumenter.
type FieldInstrumenterFunc func(parentType *Object, field *Field) *Field

// Instrument calls f(parentType, field).
func (f FieldInstrumenterFunc) Instrument(parentType *Object, field *Field) *Field {
	return f(parentType, field)
}

var _ FieldInstrumenter = (FieldInstrumenterFunc)(nil)

// instrumentField folds one declared field through every registered
// instrumenter in registration order.
func instrumentField(instrumenters []FieldInstrumenter, parentType *Object, field *Field) *Field {
	for _, instrumenter := range instrumenters {
		if instrumented := instrumenter.Instrument(parentType, field); instrumented != nil {
			field = instrumented
		}
	}
	return field
}

// QueryInstrumenter observes whole-operation execution. BeforeQuery runs
// after admission checks and before any resolver; AfterQuery runs once the
// result tree is assembled, with the errors gathered along the way.
type QueryInstrumenter interface {
	BeforeQuery(ctx context.Context, schema *Schema, operation *ast.OperationDefinition)
	AfterQuery(ctx context.Context, schema *Schema, operation *ast.OperationDefinition, errs Errors)
}
