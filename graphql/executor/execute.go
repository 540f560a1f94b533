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
	"context"
	"errors"
	"reflect"
	"sync"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/unlimitedfocus/graphql/graphql"
)

// executionContext is the per-request state: the frozen schema being read,
// the operation and its coerced variables, and the error list assembled along
// the way. It is private to one execution and never shared across requests.
type executionContext struct {
	schema    *graphql.Schema
	document  *ast.QueryDocument
	operation *ast.OperationDefinition
	rootValue interface{}
	variables map[string]interface{}

	// serial forces sibling fields to resolve one after another in request
	// order.
	serial bool

	// mu guards errors during concurrent sibling resolution.
	mu     sync.Mutex
	errors graphql.Errors
}

func (ec *executionContext) addError(err *graphql.Error) {
	ec.mu.Lock()
	ec.errors = append(ec.errors, err)
	ec.mu.Unlock()
}

// errNullBubble signals that a failure at a non-null position must travel
// upward to the nearest nullable ancestor. The underlying error has already
// been recorded at the point of failure.
var errNullBubble = errors.New("graphql: non-null field resolved to null")

// abortError aborts the whole request: the failure is request-independent
// (a violated extension-point contract) and must not be absorbed by null
// propagation.
type abortError struct {
	err error
}

func (e *abortError) Error() string { return e.err.Error() }
func (e *abortError) Unwrap() error { return e.err }

func isAbort(err error) bool {
	var abort *abortError
	return errors.As(err, &abort)
}

func abortCause(err error) error {
	var abort *abortError
	if errors.As(err, &abort) {
		return abort.err
	}
	return err
}

//===----------------------------------------------------------------------------------------====//
// Field collection
//===----------------------------------------------------------------------------------------====//

// collectedField groups the field nodes selected under one response key, in
// request order. Multiple nodes for one key arise from fragment merging;
// their sub-selections execute together.
type collectedField struct {
	ResponseKey string
	Fields      []*ast.Field
}

// collectFields flattens a selection set against a concrete object type:
// fragments are expanded when their type condition applies, @skip/@include
// are evaluated against the request variables, and fields sharing a response
// key are merged in request order.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Field-Collection
func (ec *executionContext) collectFields(
	objectType *graphql.Object,
	selections ast.SelectionSet,
	visitedFragments map[string]bool) ([]*collectedField, error) {

	var grouped []*collectedField
	index := map[string]*collectedField{}

	var visit func(selections ast.SelectionSet) error
	visit = func(selections ast.SelectionSet) error {
		for _, selection := range selections {
			switch selection := selection.(type) {
			case *ast.Field:
				included, err := ec.shouldInclude(selection.Directives)
				if err != nil {
					return err
				}
				if !included {
					continue
				}
				key := selection.Alias
				if key == "" {
					key = selection.Name
				}
				group := index[key]
				if group == nil {
					group = &collectedField{ResponseKey: key}
					index[key] = group
					grouped = append(grouped, group)
				}
				group.Fields = append(group.Fields, selection)

			case *ast.InlineFragment:
				included, err := ec.shouldInclude(selection.Directives)
				if err != nil {
					return err
				}
				if !included || !ec.typeConditionApplies(objectType, selection.TypeCondition) {
					continue
				}
				if err := visit(selection.SelectionSet); err != nil {
					return err
				}

			case *ast.FragmentSpread:
				included, err := ec.shouldInclude(selection.Directives)
				if err != nil {
					return err
				}
				if !included || visitedFragments[selection.Name] {
					continue
				}
				fragment := ec.document.Fragments.ForName(selection.Name)
				if fragment == nil {
					return graphql.NewValidationError("Unknown fragment %q.", selection.Name)
				}
				if !ec.typeConditionApplies(objectType, fragment.TypeCondition) {
					continue
				}
				visitedFragments[selection.Name] = true
				err = visit(fragment.SelectionSet)
				delete(visitedFragments, selection.Name)
				if err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := visit(selections); err != nil {
		return nil, err
	}
	return grouped, nil
}

// shouldInclude evaluates the @skip and @include directives on one selection
// against the request variables.
func (ec *executionContext) shouldInclude(directives ast.DirectiveList) (bool, error) {
	for _, directive := range directives {
		var skipOn bool
		switch directive.Name {
		case "skip":
			skipOn = true
		case "include":
			skipOn = false
		default:
			continue
		}

		arg := directive.Arguments.ForName("if")
		if arg == nil {
			return false, graphql.NewValidationError(`Directive "@%s" requires an "if" argument.`, directive.Name)
		}
		value, err := arg.Value.Value(ec.variables)
		if err != nil {
			return false, graphql.NewValidationError(
				`Invalid "if" argument for directive "@%s": %s.`, directive.Name, err.Error())
		}
		condition, ok := value.(bool)
		if !ok {
			return false, graphql.NewValidationError(
				`Directive "@%s" requires a Boolean "if" argument.`, directive.Name)
		}
		if condition == skipOn {
			return false, nil
		}
	}
	return true, nil
}

// typeConditionApplies reports whether a fragment with the given type
// condition selects fields of the concrete object type.
func (ec *executionContext) typeConditionApplies(objectType *graphql.Object, condition string) bool {
	if condition == "" || condition == objectType.Name() {
		return true
	}
	conditionType, ok := ec.schema.TypeMap().Lookup(condition).(graphql.AbstractType)
	if !ok {
		return false
	}
	return ec.schema.IsPossibleType(conditionType, objectType)
}

//===----------------------------------------------------------------------------------------====//
// Selection set execution
//===----------------------------------------------------------------------------------------====//

// executeSelectionSet resolves every field selected on objectType from the
// source value and assembles the sub-tree. A returned error is either a
// bubbling non-null failure or a request abort; plain field failures are
// recorded and absorbed into null values.
func (ec *executionContext) executeSelectionSet(
	ctx context.Context,
	objectType *graphql.Object,
	source interface{},
	selections ast.SelectionSet,
	path graphql.ResponsePath) (map[string]interface{}, error) {

	grouped, err := ec.collectFields(objectType, selections, map[string]bool{})
	if err != nil {
		return nil, &abortError{err: err}
	}

	result := make(map[string]interface{}, len(grouped))

	if ec.serial {
		for _, group := range grouped {
			value, err := ec.executeField(ctx, objectType, source, group, path.WithFieldName(group.ResponseKey))
			if err != nil {
				return nil, err
			}
			result[group.ResponseKey] = value
		}
		return result, nil
	}

	// Sibling fields are independent; resolve them in parallel and keep the
	// first propagating failure.
	var (
		wg       sync.WaitGroup
		resultMu sync.Mutex
		firstErr error
	)
	for _, group := range grouped {
		group := group
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := ec.executeField(ctx, objectType, source, group, path.WithFieldName(group.ResponseKey))
			resultMu.Lock()
			defer resultMu.Unlock()
			if err != nil {
				if firstErr == nil || (isAbort(err) && !isAbort(firstErr)) {
					firstErr = err
				}
				return
			}
			result[group.ResponseKey] = value
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// executeField resolves one response key: look up the instrumented field (or
// one of the fixed meta fields), coerce its arguments, run the middleware
// chain with the resolver innermost, and complete the produced value against
// the declared type.
func (ec *executionContext) executeField(
	ctx context.Context,
	parentType *graphql.Object,
	source interface{},
	group *collectedField,
	path graphql.ResponsePath) (interface{}, error) {

	fieldNode := group.Fields[0]

	field := ec.lookupField(parentType, fieldNode.Name)
	if field == nil {
		// The external validator rejects unknown fields before execution;
		// reaching one here fails the field, not the request.
		ec.addError(fieldError(
			graphql.NewValidationError(`Cannot query field "%s" on type "%s".`, fieldNode.Name, parentType.Name()),
			path, fieldNode))
		return nil, nil
	}

	args, err := coerceArgumentValues(ec.schema, field, fieldNode, ec.variables)
	if err != nil {
		return ec.failField(field.Type(), err, path, fieldNode)
	}

	info := &resolveInfo{
		schema:     ec.schema,
		parentType: parentType,
		field:      field,
		path:       path,
		args:       args,
		rootValue:  ec.rootValue,
		operation:  ec.operation,
		variables:  ec.variables,
	}

	resolver := field.Resolver()
	if resolver == nil {
		resolver = DefaultFieldResolver()
	}
	value, resolveErr := graphql.WrapResolver(resolver, ec.schema.Middleware()).Resolve(ctx, source, info)
	if resolveErr != nil {
		if configErr := asContractViolation(resolveErr); configErr != nil {
			return nil, &abortError{err: configErr}
		}
		return ec.failField(field.Type(), resolveErr, path, fieldNode)
	}

	completed, err := ec.completeValue(ctx, field.Type(), field, parentType, group, value, path)
	if err != nil {
		if isAbort(err) {
			return nil, err
		}
		// A bubbling descendant failure stops here when this field's own
		// position is nullable.
		if graphql.IsNonNullType(field.Type()) {
			return nil, err
		}
		return nil, nil
	}
	return completed, nil
}

// lookupField finds the instrumented field declared by parentType, falling
// back to the fixed meta fields. The schema introspection entry points are
// only served from the query root.
func (ec *executionContext) lookupField(parentType *graphql.Object, name string) *graphql.Field {
	switch name {
	case graphql.TypenameMetaFieldName:
		return graphql.TypenameMetaField()
	case graphql.SchemaMetaFieldName:
		if parentType == ec.schema.Query() {
			return graphql.SchemaMetaField()
		}
		return nil
	case graphql.TypeMetaFieldName:
		if parentType == ec.schema.Query() {
			return graphql.TypeMetaField()
		}
		return nil
	}
	return ec.schema.Field(parentType.Name(), name)
}

// failField records a field failure and reports whether it must bubble. The
// value at the field's position becomes null when the declared type permits
// it.
func (ec *executionContext) failField(
	fieldType graphql.Type, err error, path graphql.ResponsePath, node *ast.Field) (interface{}, error) {

	ec.addError(fieldError(err, path, node))
	if graphql.IsNonNullType(fieldType) {
		return nil, errNullBubble
	}
	return nil, nil
}

// asContractViolation returns the request-aborting cause behind a resolver
// error, or nil for ordinary field failures. Configuration errors mean a
// required extension point is miswired; they are never absorbed into the
// result tree.
func asContractViolation(err error) error {
	var e *graphql.Error
	if errors.As(err, &e) && e.Kind == graphql.ErrKindConfiguration {
		return e
	}
	return nil
}

// fieldError shapes an error for the response's errors list, attaching the
// response path and the source location of the field node.
func fieldError(err error, path graphql.ResponsePath, node *ast.Field) *graphql.Error {
	e, ok := err.(*graphql.Error)
	if !ok {
		e = graphql.WrapError(err, err.Error())
	}
	if e.Path.Empty() {
		e = e.WithPath(path)
	}
	if len(e.Locations) == 0 && node != nil && node.Position != nil {
		e = e.WithLocations(graphql.ErrorLocation{
			Line:   node.Position.Line,
			Column: node.Position.Column,
		})
	}
	return e
}

//===----------------------------------------------------------------------------------------====//
// Value completion
//===----------------------------------------------------------------------------------------====//

// completeValue converts a resolver-produced value into its place in the
// result tree, per the declared type. A returned error is either a request
// abort or errNullBubble after the underlying failure has been recorded; the
// caller decides whether its own position absorbs the bubble.
func (ec *executionContext) completeValue(
	ctx context.Context,
	returnType graphql.Type,
	field *graphql.Field,
	parentType *graphql.Object,
	group *collectedField,
	value interface{},
	path graphql.ResponsePath) (interface{}, error) {

	if nonNull, ok := returnType.(*graphql.NonNull); ok {
		completed, err := ec.completeValue(ctx, nonNull.InnerType(), field, parentType, group, value, path)
		if err != nil {
			return nil, err
		}
		if completed == nil {
			ec.addError(fieldError(
				graphql.NewExecutionError(`Cannot return null for non-nullable field "%s.%s".`,
					parentType.Name(), field.Name()),
				path, group.Fields[0]))
			return nil, errNullBubble
		}
		return completed, nil
	}

	if isNilValue(value) {
		return nil, nil
	}

	switch returnType := returnType.(type) {
	case *graphql.List:
		return ec.completeListValue(ctx, returnType, field, parentType, group, value, path)

	case *graphql.Scalar:
		coerced, err := returnType.CoerceResultValue(value)
		if err != nil {
			ec.addError(fieldError(err, path, group.Fields[0]))
			return nil, errNullBubble
		}
		return coerced, nil

	case *graphql.Enum:
		coerced, err := returnType.CoerceResultValue(value)
		if err != nil {
			ec.addError(fieldError(err, path, group.Fields[0]))
			return nil, errNullBubble
		}
		return coerced, nil

	case *graphql.Object:
		return ec.completeSubSelections(ctx, returnType, group, value, path)

	case *graphql.Interface:
		return ec.completeAbstractValue(ctx, returnType, field, parentType, group, value, path)

	case *graphql.Union:
		return ec.completeAbstractValue(ctx, returnType, field, parentType, group, value, path)
	}

	return nil, &abortError{
		err: graphql.NewInternalError(`Cannot complete value of unexpected type "%s".`, returnType.String()),
	}
}

// completeListValue maps completion over the elements of a resolved list,
// preserving order. A bubbling non-null element failure nulls the list.
func (ec *executionContext) completeListValue(
	ctx context.Context,
	listType *graphql.List,
	field *graphql.Field,
	parentType *graphql.Object,
	group *collectedField,
	value interface{},
	path graphql.ResponsePath) (interface{}, error) {

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		ec.addError(fieldError(
			graphql.NewExecutionError(`Field "%s.%s" must resolve a list, got "%T".`,
				parentType.Name(), field.Name(), value),
			path, group.Fields[0]))
		return nil, errNullBubble
	}

	elementType := listType.ElementType()
	elementNonNull := graphql.IsNonNullType(elementType)

	result := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		element := v.Index(i).Interface()
		completed, err := ec.completeValue(ctx, elementType, field, parentType, group, element, path.WithIndex(i))
		if err != nil {
			if isAbort(err) {
				return nil, err
			}
			if elementNonNull {
				return nil, errNullBubble
			}
			completed = nil
		}
		result[i] = completed
	}
	return result, nil
}

// completeAbstractValue performs the polymorphic dispatch for a value
// resolved under an interface or union declaration: the schema's type
// resolver names the concrete type, which must exist in the type map (a
// contract violation otherwise) and belong to the declared type's possible
// set (an unresolved-type failure otherwise).
func (ec *executionContext) completeAbstractValue(
	ctx context.Context,
	abstractType graphql.AbstractType,
	field *graphql.Field,
	parentType *graphql.Object,
	group *collectedField,
	value interface{},
	path graphql.ResponsePath) (interface{}, error) {

	concreteType, err := ec.schema.ResolveType(ctx, value)
	if err != nil {
		if configErr := asContractViolation(err); configErr != nil {
			return nil, &abortError{err: configErr}
		}
		ec.addError(fieldError(err, path, group.Fields[0]))
		return nil, errNullBubble
	}

	// A type resolver may abstain: the value has no place under the declared
	// type and the field resolves to null.
	if concreteType == nil {
		return nil, nil
	}

	if ec.schema.TypeMap().Lookup(concreteType.Name()) != graphql.Type(concreteType) {
		return nil, &abortError{
			err: graphql.NewInternalError(
				`Type "%s" resolved for value of abstract type "%s" is not defined by the schema.`,
				concreteType.Name(), abstractType.Name()),
		}
	}

	if !ec.schema.IsPossibleType(abstractType, concreteType) {
		unresolved := &graphql.UnresolvedTypeError{
			Value:         value,
			Field:         field,
			ParentType:    parentType,
			AbstractType:  abstractType,
			ResolvedType:  concreteType,
			PossibleTypes: ec.schema.PossibleTypes(abstractType),
		}
		ec.addError(fieldError(
			graphql.WrapError(unresolved, unresolved.Error()), path, group.Fields[0]))
		return nil, errNullBubble
	}

	return ec.completeSubSelections(ctx, concreteType, group, value, path)
}

// completeSubSelections recurses into the sub-selections of every merged
// field node against the now-concrete object type.
func (ec *executionContext) completeSubSelections(
	ctx context.Context,
	objectType *graphql.Object,
	group *collectedField,
	value interface{},
	path graphql.ResponsePath) (interface{}, error) {

	selections := make(ast.SelectionSet, 0, len(group.Fields))
	for _, node := range group.Fields {
		selections = append(selections, node.SelectionSet...)
	}
	return ec.executeSelectionSet(ctx, objectType, value, selections, path)
}

// isNilValue reports whether value is nil, including a typed nil inside a
// non-nil interface.
func isNilValue(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
