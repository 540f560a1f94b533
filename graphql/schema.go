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

//===----------------------------------------------------------------------------------------====//
// Operations and execution strategies
//===----------------------------------------------------------------------------------------====//

// OperationType identifies one of the three GraphQL root operation kinds.
// The values match the operation names used by the query language and by
// gqlparser's AST.
type OperationType string

// Enumeration of OperationType
const (
	OperationQuery        OperationType = "query"
	OperationMutation     OperationType = "mutation"
	OperationSubscription OperationType = "subscription"
)

// ExecutionStrategy selects how the executor schedules sibling fields within
// one selection set.
type ExecutionStrategy uint8

// Enumeration of ExecutionStrategy
const (
	// DefaultExecution resolves to ConcurrentExecution for queries and
	// subscriptions and SerialExecution for mutations.
	DefaultExecution ExecutionStrategy = iota

	// SerialExecution resolves sibling fields one after another in the order
	// requested.
	SerialExecution

	// ConcurrentExecution allows sibling fields to be resolved in parallel.
	// Parent fields still fully resolve before their children begin.
	ConcurrentExecution
)

//===----------------------------------------------------------------------------------------====//
// Required extension points
//===----------------------------------------------------------------------------------------====//

// TypeResolver determines the concrete Object type behind a value resolved
// for a field of an abstract (Interface or Union) type. Returning a nil type
// with a nil error resolves the field to null; returning a type that is not
// part of the schema is a contract violation reported as an internal error.
type TypeResolver interface {
	ResolveType(ctx context.Context, value interface{}) (*Object, error)
}

// TypeResolverFunc is an adapter to allow the use of ordinary functions as a
// TypeResolver.
type TypeResolverFunc func(ctx context.Context, value interface{}) (*Object, error)

// ResolveType calls f(ctx, value).
func (f TypeResolverFunc) ResolveType(ctx context.Context, value interface{}) (*Object, error) {
	return f(ctx, value)
}

var _ TypeResolver = (TypeResolverFunc)(nil)

// IDFromObjectFunc derives the globally unique identifier for an object of
// the given type.
type IDFromObjectFunc func(ctx context.Context, object interface{}, objectType *Object) (string, error)

// ObjectFromIDFunc refetches the object behind a globally unique identifier.
type ObjectFromIDFunc func(ctx context.Context, id string) (interface{}, error)

//===----------------------------------------------------------------------------------------====//
// SchemaConfig
//===----------------------------------------------------------------------------------------====//

// SchemaConfig carries all configuration for defining a schema. A config is
// mutable up until it is handed to NewSchema, which consumes it: building a
// second schema from the same config value is rejected.
type SchemaConfig struct {
	// Query, Mutation and Subscription are the GraphQL root operation types
	// defined by the schema. Query is required.
	Query        *Object
	Mutation     *Object
	Subscription *Object

	// Types lists object types that are reachable only through interface
	// declarations (orphan types), so the type reduction can find them.
	Types []Type

	// Directives declares the schema's directives. When the list declares a
	// directive sharing a name with one of the standard directives, the list
	// is taken verbatim; otherwise the standard directives are appended.
	Directives DirectiveList

	// RelayMutations lists declarative mutation descriptions. When Mutation
	// is nil and descriptions are present, a "Mutation" root type is derived
	// from their fields.
	RelayMutations []*RelayMutation

	// Execution strategy per root operation
	QueryExecutionStrategy        ExecutionStrategy
	MutationExecutionStrategy     ExecutionStrategy
	SubscriptionExecutionStrategy ExecutionStrategy

	// MaxDepth and MaxComplexity, when positive, install admission analyzers
	// rejecting operations exceeding the limit before any resolver runs.
	MaxDepth      int
	MaxComplexity int

	// FieldInstrumenters are folded once over every declared field at build
	// time, in registration order.
	FieldInstrumenters []FieldInstrumenter

	// QueryInstrumenters observe whole-operation execution, in registration
	// order.
	QueryInstrumenters []QueryInstrumenter

	// Middleware wraps every field resolution invocation; the first entry is
	// outermost.
	Middleware []FieldMiddleware

	// QueryAnalyzers run against each operation before execution, after the
	// built-in limit analyzers.
	QueryAnalyzers []QueryAnalyzer

	// RescueHandlers turn matched resolver errors into field values. The
	// rescue middleware is installed only when handlers are present.
	RescueHandlers []RescueHandler

	// TypeResolver disambiguates values of abstract types. Required for any
	// schema exposing interfaces or unions.
	TypeResolver TypeResolver

	// IDFromObject and ObjectFromID expose global object identity. Required
	// for any schema using globally unique IDs.
	IDFromObject IDFromObjectFunc
	ObjectFromID ObjectFromIDFunc

	// built flags a config that has already been consumed by NewSchema.
	built bool
}

//===----------------------------------------------------------------------------------------====//
// Schema
//===----------------------------------------------------------------------------------------====//

// fieldTableKey addresses one declared field in the instrumented field table.
type fieldTableKey struct {
	typeName  string
	fieldName string
}

// Schema is the frozen result of one schema build: the root operation types,
// the reduced type map, the possible-type sets for abstract types, the
// instrumented field table and the registered extension points. All state is
// immutable after NewSchema returns and safe for unsynchronized concurrent
// reads from any number of simultaneous query executions.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Schema
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object

	typeMap    TypeMap
	directives DirectiveList

	// possibleTypes maps an abstract type name to the concrete Object types
	// satisfying it. Computed once at build; never invalidated.
	possibleTypes map[string][]*Object

	// fieldTable is the instrumented field lookup table: every declared
	// field folded through the registered field instrumenters.
	fieldTable map[fieldTableKey]*Field

	// mutationIndex maps a derived type name to its originating mutation
	// description, for tooling lookup only.
	mutationIndex map[string]*RelayMutation

	strategies map[OperationType]ExecutionStrategy

	queryInstrumenters []QueryInstrumenter
	middleware         []FieldMiddleware
	analyzers          []QueryAnalyzer

	typeResolver TypeResolver
	idFromObject IDFromObjectFunc
	objectFromID ObjectFromIDFunc
}

// NewSchema builds a frozen Schema from the given config. The build computes
// the type map, derives the possible-type sets, folds the instrumented field
// table and validates internal consistency. The config is consumed: a second
// NewSchema call with the same config value is rejected.
func NewSchema(config *SchemaConfig) (*Schema, error) {
	if config == nil {
		return nil, NewConfigurationError("Must provide configuration for Schema.")
	}
	if config.built {
		return nil, NewConfigurationError("Schema config was already used to build a schema.")
	}
	config.built = true

	schema := &Schema{
		query:              config.Query,
		mutation:           config.Mutation,
		subscription:       config.Subscription,
		typeMap:            TypeMap{types: map[string]Type{}},
		possibleTypes:      map[string][]*Object{},
		fieldTable:         map[fieldTableKey]*Field{},
		mutationIndex:      map[string]*RelayMutation{},
		queryInstrumenters: config.QueryInstrumenters,
		typeResolver:       config.TypeResolver,
		idFromObject:       config.IDFromObject,
		objectFromID:       config.ObjectFromID,
	}

	// Derive the mutation root from declared mutation descriptions when none
	// was configured, and index every description by its derived type names.
	if len(config.RelayMutations) > 0 {
		for _, m := range config.RelayMutations {
			if m == nil {
				return nil, NewConfigurationError("Schema must not declare a nil RelayMutation.")
			}
			for _, name := range m.derivedTypeNames() {
				if prev, exists := schema.mutationIndex[name]; exists && prev != m {
					return nil, NewConfigurationError(
						"Mutations %q and %q both derive a type named %q.", prev.Name(), m.Name(), name)
				}
				schema.mutationIndex[name] = m
			}
		}
		if schema.mutation == nil {
			fields := make(Fields, 0, len(config.RelayMutations))
			for _, m := range config.RelayMutations {
				fields = append(fields, m.Field())
			}
			mutationRoot, err := NewObject(&ObjectConfig{
				Name:        "Mutation",
				Description: "The root type for state-changing operations.",
				Fields:      fields,
			})
			if err != nil {
				return nil, err
			}
			schema.mutation = mutationRoot
		}
	}

	if schema.query == nil {
		return nil, NewConfigurationError("Schema must provide a Query root Object type.")
	}

	// Assemble the directive list. Declaring any built-in directive by name
	// suppresses auto-inclusion of the rest of the built-in set: the schema
	// author takes full ownership of the directive list.
	declaresBuiltin := false
	for _, directive := range config.Directives {
		if directive == nil {
			return nil, NewConfigurationError("Schema must not declare a nil directive.")
		}
		if StandardDirectives().Lookup(directive.Name()) != nil {
			declaresBuiltin = true
		}
	}
	schema.directives = make(DirectiveList, len(config.Directives))
	copy(schema.directives, config.Directives)
	if !declaresBuiltin {
		schema.directives = append(schema.directives, StandardDirectives()...)
	}
	seenDirectives := make(map[string]bool, len(schema.directives))
	for _, directive := range schema.directives {
		if seenDirectives[directive.Name()] {
			return nil, NewConfigurationError("Schema must contain uniquely named directives; %q is declared more than once.", directive.Name())
		}
		seenDirectives[directive.Name()] = true
	}

	// Reduce the reachable type graph into the type map.
	roots := []Type{schema.query, schema.mutation, schema.subscription}
	for _, t := range roots {
		if err := schema.typeMap.add(t); err != nil {
			return nil, err
		}
	}
	for _, scalar := range []Type{Int(), Float(), String(), Boolean(), ID()} {
		if err := schema.typeMap.add(scalar); err != nil {
			return nil, err
		}
	}
	for _, t := range introspectionTypes() {
		if err := schema.typeMap.add(t); err != nil {
			return nil, err
		}
	}
	for _, t := range config.Types {
		if err := schema.typeMap.add(t); err != nil {
			return nil, err
		}
	}
	for _, m := range config.RelayMutations {
		if err := schema.typeMap.add(m.InputType()); err != nil {
			return nil, err
		}
		if err := schema.typeMap.add(m.PayloadType()); err != nil {
			return nil, err
		}
	}
	for _, directive := range schema.directives {
		args := directive.Args()
		for i := range args {
			if err := schema.typeMap.add(args[i].Type()); err != nil {
				return nil, err
			}
		}
	}

	// Derive the possible-type sets for abstract types from the reduced map.
	for _, name := range schema.typeMap.TypeNames() {
		switch t := schema.typeMap.Lookup(name).(type) {
		case *Union:
			schema.possibleTypes[name] = t.MemberTypes()
		case *Object:
			for _, iface := range t.Interfaces() {
				schema.possibleTypes[iface.Name()] = append(schema.possibleTypes[iface.Name()], t)
			}
		}
	}

	// Fold the instrumented field table: every declared field through every
	// registered field instrumenter, in registration order, exactly once.
	for _, name := range schema.typeMap.TypeNames() {
		objectType, ok := schema.typeMap.Lookup(name).(*Object)
		if !ok {
			continue
		}
		fields := objectType.Fields()
		for _, fieldName := range fields.FieldNames() {
			field := instrumentField(config.FieldInstrumenters, objectType, fields.Lookup(fieldName))
			schema.fieldTable[fieldTableKey{typeName: name, fieldName: fieldName}] = field
		}
	}

	// The rescue middleware is installed lazily, and outermost, so that it
	// observes errors raised anywhere later in the chain.
	middleware := config.Middleware
	if len(config.RescueHandlers) > 0 {
		middleware = append(
			[]FieldMiddleware{&rescueMiddleware{handlers: config.RescueHandlers}},
			middleware...)
	}
	schema.middleware = middleware

	// Built-in admission analyzers run before registered ones.
	var analyzers []QueryAnalyzer
	if config.MaxDepth > 0 {
		analyzers = append(analyzers, maxDepthAnalyzer{maxDepth: config.MaxDepth})
	}
	if config.MaxComplexity > 0 {
		analyzers = append(analyzers, maxComplexityAnalyzer{maxComplexity: config.MaxComplexity})
	}
	schema.analyzers = append(analyzers, config.QueryAnalyzers...)

	schema.strategies = map[OperationType]ExecutionStrategy{
		OperationQuery:        resolveStrategy(config.QueryExecutionStrategy, ConcurrentExecution),
		OperationMutation:     resolveStrategy(config.MutationExecutionStrategy, SerialExecution),
		OperationSubscription: resolveStrategy(config.SubscriptionExecutionStrategy, ConcurrentExecution),
	}

	return schema, nil
}

// MustNewSchema is a convenience function equivalent to NewSchema but panics
// on failure instead of returning an error.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, err := NewSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

func resolveStrategy(configured ExecutionStrategy, fallback ExecutionStrategy) ExecutionStrategy {
	if configured == DefaultExecution {
		return fallback
	}
	return configured
}

// Query returns the root type for query operations.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation returns the root type for mutation operations, or nil.
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription returns the root type for subscription operations, or nil.
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// TypeMap returns the map of all named types reachable within the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// Directives returns all directives defined by the schema.
func (schema *Schema) Directives() DirectiveList {
	return schema.directives
}

// RootTypeForOperation maps an operation kind to the corresponding root
// type. An unknown kind and an operation kind the schema is not configured
// for are both configuration errors.
func (schema *Schema) RootTypeForOperation(operation OperationType) (*Object, error) {
	var root *Object
	switch operation {
	case OperationQuery:
		root = schema.query
	case OperationMutation:
		root = schema.mutation
	case OperationSubscription:
		root = schema.subscription
	default:
		return nil, NewConfigurationError("Unknown operation type %q.", string(operation))
	}
	if root == nil {
		return nil, NewConfigurationError("Schema is not configured for %s operations.", string(operation))
	}
	return root, nil
}

// ExecutionStrategyForOperation maps an operation kind to the execution
// strategy configured for it.
func (schema *Schema) ExecutionStrategyForOperation(operation OperationType) (ExecutionStrategy, error) {
	strategy, ok := schema.strategies[operation]
	if !ok {
		return DefaultExecution, NewConfigurationError("Unknown operation type %q.", string(operation))
	}
	return strategy, nil
}

// PossibleTypes returns the concrete Object types satisfying an abstract
// type: for an Interface, the object types in the type map declaring it; for
// a Union, its member list. The result is computed once at build time.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	return schema.possibleTypes[t.Name()]
}

// IsPossibleType returns true if object is among the possible types of the
// given abstract type.
func (schema *Schema) IsPossibleType(t AbstractType, object *Object) bool {
	for _, possible := range schema.possibleTypes[t.Name()] {
		if possible == object {
			return true
		}
	}
	return false
}

// Field looks up the instrumented field declared by the named type. Meta
// fields (__typename, __schema, __type) are not part of the table; the
// executor handles them separately.
func (schema *Schema) Field(typeName string, fieldName string) *Field {
	return schema.fieldTable[fieldTableKey{typeName: typeName, fieldName: fieldName}]
}

// Middleware returns the field middleware chain, including the lazily
// installed rescue middleware at the outermost position.
func (schema *Schema) Middleware() []FieldMiddleware {
	return schema.middleware
}

// QueryInstrumenters returns the registered whole-operation instrumenters.
func (schema *Schema) QueryInstrumenters() []QueryInstrumenter {
	return schema.queryInstrumenters
}

// QueryAnalyzers returns the admission analyzers for this schema: the
// analyzers synthesized from MaxDepth/MaxComplexity followed by the
// registered ones.
func (schema *Schema) QueryAnalyzers() []QueryAnalyzer {
	return schema.analyzers
}

// MutationForType returns the mutation description that derived the type
// with the given name, or nil. This is a lookup-only relation for tooling;
// execution never consults it.
func (schema *Schema) MutationForType(typeName string) *RelayMutation {
	return schema.mutationIndex[typeName]
}

// ResolveType invokes the schema's TypeResolver to determine the concrete
// Object type of a value resolved for an abstract-typed field. It fails with
// a configuration error when no TypeResolver was registered.
func (schema *Schema) ResolveType(ctx context.Context, value interface{}) (*Object, error) {
	if schema.typeResolver == nil {
		return nil, NewConfigurationError(
			"Schema must register a TypeResolver to resolve values of abstract types.")
	}
	return schema.typeResolver.ResolveType(ctx, value)
}

// IDFromObject derives the globally unique ID for an object. It fails with a
// configuration error when no IDFromObject callback was registered.
func (schema *Schema) IDFromObject(ctx context.Context, object interface{}, objectType *Object) (string, error) {
	if schema.idFromObject == nil {
		return "", NewConfigurationError(
			"Schema must register an IDFromObject callback to derive object identifiers.")
	}
	return schema.idFromObject(ctx, object, objectType)
}

// ObjectFromID refetches the object behind a globally unique ID. It fails
// with a configuration error when no ObjectFromID callback was registered.
func (schema *Schema) ObjectFromID(ctx context.Context, id string) (interface{}, error) {
	if schema.objectFromID == nil {
		return nil, NewConfigurationError(
			"Schema must register an ObjectFromID callback to fetch objects by identifier.")
	}
	return schema.objectFromID(ctx, id)
}

// TypeFromAST returns the schema type that the given AST type reference
// applies to. For example, provided the AST for "[User!]", a List wrapping
// the NonNull of the type named "User" in the schema is returned. When the
// named type does not exist in the schema, nil is returned.
func (schema *Schema) TypeFromAST(t *ast.Type) Type {
	if t == nil {
		return nil
	}

	var result Type
	if t.NamedType != "" {
		result = schema.typeMap.Lookup(t.NamedType)
	} else if inner := schema.TypeFromAST(t.Elem); inner != nil {
		result = MustNewListOfType(inner)
	}
	if result == nil {
		return nil
	}

	if t.NonNull {
		result = MustNewNonNullOfType(result)
	}
	return result
}
