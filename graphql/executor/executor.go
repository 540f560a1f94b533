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

// Package executor walks a parsed query document against a frozen schema and
// assembles the result tree. It consumes the AST produced by gqlparser; static
// validation of the document is assumed to have already been performed by the
// caller.
package executor

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/unlimitedfocus/graphql/graphql"
)

// Params specifies one execution request.
type Params struct {
	// Schema to execute the request against
	Schema *graphql.Schema

	// Document is the parsed query document containing the operation to
	// execute.
	Document *ast.QueryDocument

	// OperationName selects the operation in a document defining more than
	// one. It may be empty when the document defines exactly one operation.
	OperationName string

	// RootValue is the value passed to resolvers of root fields.
	RootValue interface{}

	// VariableValues carries the request's variable bindings, keyed by
	// variable name without the "$" prefix.
	VariableValues map[string]interface{}
}

// Result is the outcome of one execution request.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Response-Format
type Result struct {
	// Data is the result tree mirroring the operation's selection shape. It
	// is nil when a non-null root field failed or when the request was
	// rejected before execution began.
	Data interface{}

	// Errors lists the field errors gathered during execution, or the errors
	// that rejected the request.
	Errors graphql.Errors

	// started is true once execution began; it controls the presence of the
	// "data" key in the serialized response.
	started bool
}

// MarshalJSON serializes the result into a response payload. The "data" key
// is present whenever execution started, even if the tree degenerated to
// null; a request rejected before execution serializes its errors alone.
func (r Result) MarshalJSON() ([]byte, error) {
	response := make(map[string]interface{}, 2)
	if r.started {
		response["data"] = r.Data
	}
	if r.Errors.HaveOccurred() {
		response["errors"] = r.Errors
	}
	return jsoniter.Marshal(response)
}

// Execute runs one operation from params.Document and returns the assembled
// result. Request-level failures (unknown operation, invalid variables, an
// admission analyzer rejection, a violated extension-point contract) produce
// a Result carrying only errors; field-level failures produce a partial tree
// alongside the errors.
func Execute(ctx context.Context, params Params) Result {
	schema := params.Schema
	if schema == nil {
		return rejected(graphql.NewConfigurationError("Must provide a schema to execute against."))
	}
	if params.Document == nil {
		return rejected(graphql.NewValidationError("Must provide a query document."))
	}

	operation, err := selectOperation(params.Document, params.OperationName)
	if err != nil {
		return rejected(err)
	}

	variables, errs := coerceVariableValues(schema, operation, params.VariableValues)
	if errs.HaveOccurred() {
		return Result{Errors: errs}
	}

	// Admission checks reject the request before any resolver runs.
	for _, analyzer := range schema.QueryAnalyzers() {
		if err := analyzer.AnalyzeOperation(schema, params.Document, operation); err != nil {
			return rejected(err)
		}
	}

	rootType, err := schema.RootTypeForOperation(graphql.OperationType(operation.Operation))
	if err != nil {
		return rejected(err)
	}
	strategy, err := schema.ExecutionStrategyForOperation(graphql.OperationType(operation.Operation))
	if err != nil {
		return rejected(err)
	}

	ec := &executionContext{
		schema:    schema,
		document:  params.Document,
		operation: operation,
		rootValue: params.RootValue,
		variables: variables,
		serial:    strategy == graphql.SerialExecution,
	}

	for _, instrumenter := range schema.QueryInstrumenters() {
		instrumenter.BeforeQuery(ctx, schema, operation)
	}

	data, execErr := ec.executeSelectionSet(
		ctx, rootType, params.RootValue, operation.SelectionSet, graphql.ResponsePath{})

	result := Result{started: true}
	switch {
	case execErr == nil:
		result.Data = data
	case isAbort(execErr):
		// A violated extension-point contract aborts the request outright:
		// no partial tree is produced.
		result.started = false
		ec.errors.Append(abortCause(execErr))
	default:
		// A non-null root field failed; the whole tree degenerates to null.
		result.Data = nil
	}
	result.Errors = ec.errors

	for _, instrumenter := range schema.QueryInstrumenters() {
		instrumenter.AfterQuery(ctx, schema, operation, result.Errors)
	}

	return result
}

func rejected(err error) Result {
	var errs graphql.Errors
	errs.Append(err)
	return Result{Errors: errs}
}

// selectOperation picks the operation to execute from the document.
func selectOperation(document *ast.QueryDocument, operationName string) (*ast.OperationDefinition, error) {
	if operationName == "" {
		if len(document.Operations) != 1 {
			return nil, graphql.NewValidationError(
				"Must provide operation name if query contains multiple operations.")
		}
		return document.Operations[0], nil
	}

	operation := document.Operations.ForName(operationName)
	if operation == nil {
		return nil, graphql.NewValidationError("Unknown operation named %q.", operationName)
	}
	return operation, nil
}
