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

package executor_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/unlimitedfocus/graphql/graphql"
	"github.com/unlimitedfocus/graphql/graphql/executor"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Execute", func() {
	Describe("Basic resolution", func() {
		It("resolves a root field from its argument", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name: "echo",
							Type: graphql.String(),
							Args: graphql.ArgumentConfigMap{
								"text": {Type: graphql.String()},
							},
							Resolver: graphql.FieldResolverFunc(
								func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
									return info.Args().Get("text"), nil
								}),
						},
					},
				}),
			})

			result := execute(schema, `{ echo(text: "hi") }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"echo": "hi"}))
		})

		It("resolves fields from a map source by default", func() {
			userType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "User",
				Fields: graphql.Fields{
					{Name: "name", Type: graphql.String()},
					{Name: "age", Type: graphql.Int()},
				},
			})
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name: "me",
							Type: userType,
							Resolver: resolveTo(map[string]interface{}{
								"name": "Alice",
								"age":  30,
							}),
						},
					},
				}),
			})

			result := execute(schema, `{ me { name age } }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{
				"me": map[string]interface{}{"name": "Alice", "age": 30},
			}))
		})

		It("honors field aliases", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "greeting", Type: graphql.String(), Resolver: resolveTo("hello")},
					},
				}),
			})

			result := execute(schema, `{ hi: greeting }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{"hi": "hello"}))
		})

		It("applies argument defaults", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name: "repeat",
							Type: graphql.Int(),
							Args: graphql.ArgumentConfigMap{
								"times": {Type: graphql.Int(), DefaultValue: 2},
							},
							Resolver: graphql.FieldResolverFunc(
								func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
									return info.Args().Get("times"), nil
								}),
						},
					},
				}),
			})

			result := execute(schema, `{ repeat }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"repeat": 2}))
		})

		It("maps list completion over elements in order", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name:     "numbers",
							Type:     graphql.MustNewListOfType(graphql.Int()),
							Resolver: resolveTo([]int{3, 1, 2}),
						},
					},
				}),
			})

			result := execute(schema, `{ numbers }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{
				"numbers": []interface{}{3, 1, 2},
			}))
		})
	})

	Describe("Operation selection", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{Name: "a", Type: graphql.String(), Resolver: resolveTo("a")},
				},
			}),
		})

		It("requires an operation name for multi-operation documents", func() {
			result := executor.Execute(context.Background(), executor.Params{
				Schema:   schema,
				Document: parseQuery(`query One { a } query Two { a }`),
			})
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring("operation name"))

			serialized, err := result.MarshalJSON()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(serialized)).ShouldNot(ContainSubstring(`"data"`))
		})

		It("rejects an unknown operation name", func() {
			result := executor.Execute(context.Background(), executor.Params{
				Schema:        schema,
				Document:      parseQuery(`query One { a }`),
				OperationName: "Two",
			})
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring(`Unknown operation named "Two"`))
		})

		It("rejects operation kinds the schema is not configured for", func() {
			result := execute(schema, `mutation { a }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring("not configured for mutation"))
		})
	})

	Describe("Variables", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{
						Name: "echo",
						Type: graphql.String(),
						Args: graphql.ArgumentConfigMap{
							"text": {Type: graphql.String()},
						},
						Resolver: graphql.FieldResolverFunc(
							func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
								return info.Args().Get("text"), nil
							}),
					},
				},
			}),
		})

		It("substitutes bound variables into arguments", func() {
			result := executeWithVariables(schema,
				`query Echo($text: String) { echo(text: $text) }`,
				map[string]interface{}{"text": "bonjour"})
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"echo": "bonjour"}))
		})

		It("applies variable defaults when unbound", func() {
			result := execute(schema, `query Echo($text: String = "fallback") { echo(text: $text) }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"echo": "fallback"}))
		})

		It("rejects a missing non-null variable before execution", func() {
			result := execute(schema, `query Echo($text: String!) { echo(text: $text) }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring(`Variable "$text" of required type`))
		})
	})

	Describe("Skip and include directives", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{Name: "a", Type: graphql.String(), Resolver: resolveTo("a")},
					{Name: "b", Type: graphql.String(), Resolver: resolveTo("b")},
				},
			}),
		})

		It("omits skipped and non-included fields", func() {
			result := execute(schema, `{ a @skip(if: true) b @include(if: true) }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"b": "b"}))
		})

		It("evaluates directive conditions from variables", func() {
			result := executeWithVariables(schema,
				`query Q($with: Boolean!) { a @include(if: $with) b }`,
				map[string]interface{}{"with": false})
			Expect(result.Data).Should(Equal(map[string]interface{}{"b": "b"}))
		})
	})

	Describe("Null propagation", func() {
		// leaf sits two non-null levels below the nullable outer field, so a
		// leaf failure must null outer, not just its parent.
		newChainSchema := func(leafResolver graphql.FieldResolver) *graphql.Schema {
			innerType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Inner",
				Fields: graphql.Fields{
					{
						Name:     "leaf",
						Type:     graphql.MustNewNonNullOfType(graphql.String()),
						Resolver: leafResolver,
					},
				},
			})
			outerType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Outer",
				Fields: graphql.Fields{
					{
						Name:     "inner",
						Type:     graphql.MustNewNonNullOfType(innerType),
						Resolver: resolveTo(map[string]interface{}{}),
					},
				},
			})
			return graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name:     "outer",
							Type:     outerType,
							Resolver: resolveTo(map[string]interface{}{}),
						},
					},
				}),
			})
		}

		It("nulls the nearest nullable ancestor of a failed non-null field", func() {
			schema := newChainSchema(resolveError(errors.New("leaf blew up")))

			result := execute(schema, `{ outer { inner { leaf } } }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{"outer": nil}))
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(Equal("leaf blew up"))
			Expect(result.Errors[0].Path.String()).Should(Equal("outer.inner.leaf"))
		})

		It("records a non-null violation when a resolver returns nil", func() {
			schema := newChainSchema(resolveTo(nil))

			result := execute(schema, `{ outer { inner { leaf } } }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{"outer": nil}))
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring(
				`Cannot return null for non-nullable field "Inner.leaf"`))
		})

		It("keeps sibling fields when a nullable field fails", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "good", Type: graphql.String(), Resolver: resolveTo("ok")},
						{Name: "bad", Type: graphql.String(), Resolver: resolveError(errors.New("boom"))},
					},
				}),
			})

			result := execute(schema, `{ good bad }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{
				"good": "ok",
				"bad":  nil,
			}))
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Path.String()).Should(Equal("bad"))
		})

		It("nulls a list when a non-null element fails", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name:     "tags",
							Type:     graphql.MustNewListOfType(graphql.MustNewNonNullOfType(graphql.Int())),
							Resolver: resolveTo([]interface{}{1, nil, 3}),
						},
					},
				}),
			})

			result := execute(schema, `{ tags }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{"tags": nil}))
			Expect(result.Errors).Should(HaveLen(1))
		})
	})

	Describe("Polymorphic dispatch", func() {
		var (
			petInterface *graphql.Interface
			dogType      *graphql.Object
			strayType    *graphql.Object
		)

		BeforeEach(func() {
			petInterface = graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name:   "Pet",
				Fields: graphql.Fields{{Name: "name", Type: graphql.String()}},
			})
			dogType = graphql.MustNewObject(&graphql.ObjectConfig{
				Name:       "Dog",
				Interfaces: []*graphql.Interface{petInterface},
				Fields:     graphql.Fields{{Name: "name", Type: graphql.String()}},
			})
			strayType = graphql.MustNewObject(&graphql.ObjectConfig{
				Name:   "Stray",
				Fields: graphql.Fields{{Name: "name", Type: graphql.String()}},
			})
		})

		newPetSchema := func(resolver graphql.TypeResolver) *graphql.Schema {
			return graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name:     "pet",
							Type:     petInterface,
							Resolver: resolveTo(map[string]interface{}{"name": "Rex"}),
						},
					},
				}),
				Types:        []graphql.Type{dogType, strayType},
				TypeResolver: resolver,
			})
		}

		It("dispatches to the concrete type named by the resolver", func() {
			schema := newPetSchema(graphql.TypeResolverFunc(
				func(ctx context.Context, value interface{}) (*graphql.Object, error) {
					return dogType, nil
				}))

			result := execute(schema, `{ pet { name __typename } }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{
				"pet": map[string]interface{}{"name": "Rex", "__typename": "Dog"},
			}))
		})

		It("resolves to null when the type resolver abstains", func() {
			schema := newPetSchema(graphql.TypeResolverFunc(
				func(ctx context.Context, value interface{}) (*graphql.Object, error) {
					return nil, nil
				}))

			result := execute(schema, `{ pet { name } }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"pet": nil}))
		})

		It("fails the field with an unresolved-type error outside the possible set", func() {
			schema := newPetSchema(graphql.TypeResolverFunc(
				func(ctx context.Context, value interface{}) (*graphql.Object, error) {
					return strayType, nil
				}))

			result := execute(schema, `{ pet { name } }`)
			Expect(result.Data).Should(Equal(map[string]interface{}{"pet": nil}))
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring(
				`type "Stray" which is not a possible type for "Pet"`))

			var unresolved *graphql.UnresolvedTypeError
			Expect(errors.As(result.Errors[0], &unresolved)).Should(BeTrue())
			Expect(unresolved.ResolvedType).Should(Equal(strayType))
			Expect(unresolved.PossibleTypes).Should(ConsistOf(dogType))
		})

		It("aborts the request when the resolved type is outside the schema", func() {
			foreignType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:   "Foreign",
				Fields: graphql.Fields{{Name: "name", Type: graphql.String()}},
			})
			schema := newPetSchema(graphql.TypeResolverFunc(
				func(ctx context.Context, value interface{}) (*graphql.Object, error) {
					return foreignType, nil
				}))

			result := execute(schema, `{ pet { name } }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring("not defined by the schema"))

			serialized, err := result.MarshalJSON()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(serialized)).ShouldNot(ContainSubstring(`"data"`))
		})

		It("aborts the request when no type resolver was registered", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "pet", Type: petInterface, Resolver: resolveTo("anything")},
					},
				}),
				Types: []graphql.Type{dogType},
			})

			result := execute(schema, `{ pet { name } }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring("TypeResolver"))
		})
	})

	Describe("Middleware and rescue", func() {
		It("runs middleware outermost-first around the resolver", func() {
			var order []string
			tag := func(label string) graphql.FieldMiddleware {
				return graphql.FieldMiddlewareFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo, next graphql.FieldResolver) (interface{}, error) {
						order = append(order, label)
						return next.Resolve(ctx, source, info)
					})
			}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "a", Type: graphql.String(), Resolver: resolveTo("a")},
					},
				}),
				Middleware: []graphql.FieldMiddleware{tag("first"), tag("second")},
				// Serial keeps the recorded order deterministic.
				QueryExecutionStrategy: graphql.SerialExecution,
			})

			result := execute(schema, `{ a }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(order).Should(Equal([]string{"first", "second"}))
		})

		It("substitutes a rescued error with the handler's value", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name:     "flaky",
							Type:     graphql.String(),
							Resolver: resolveError(graphql.NewExecutionError("transient failure")),
						},
					},
				}),
				RescueHandlers: []graphql.RescueHandler{
					{
						Match: graphql.MatchErrorKind(graphql.ErrKindExecution),
						Rescue: func(ctx context.Context, err error, info graphql.ResolveInfo) (interface{}, error) {
							return "rescued", nil
						},
					},
				},
			})

			result := execute(schema, `{ flaky }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{"flaky": "rescued"}))
		})

		It("records unrescued errors with path and location", func() {
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "bad", Type: graphql.String(), Resolver: resolveError(errors.New("boom"))},
					},
				}),
			})

			result := execute(schema, `{ bad }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Path.String()).Should(Equal("bad"))
			Expect(result.Errors[0].Locations).Should(HaveLen(1))
			Expect(result.Errors[0].Locations[0].Line).Should(Equal(1))
		})
	})

	Describe("Admission analysis", func() {
		newNestedSchema := func(maxDepth, maxComplexity int) *graphql.Schema {
			var nodeType *graphql.Object
			nodeType = graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Node",
				FieldsFn: func() graphql.Fields {
					return graphql.Fields{
						{Name: "value", Type: graphql.String(), Resolver: resolveTo("v")},
						{Name: "child", Type: nodeType, Resolver: resolveTo(map[string]interface{}{})},
					}
				},
			})
			return graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "root", Type: nodeType, Resolver: resolveTo(map[string]interface{}{})},
					},
				}),
				MaxDepth:      maxDepth,
				MaxComplexity: maxComplexity,
			})
		}

		It("rejects operations exceeding the depth limit before any resolver runs", func() {
			schema := newNestedSchema(2, 0)

			result := execute(schema, `{ root { child { value } } }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring("exceeds the maximum operation depth"))

			serialized, err := result.MarshalJSON()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(string(serialized)).ShouldNot(ContainSubstring(`"data"`))
		})

		It("rejects operations exceeding the complexity limit", func() {
			schema := newNestedSchema(0, 2)

			result := execute(schema, `{ root { value child { value } } }`)
			Expect(result.Errors).Should(HaveLen(1))
			Expect(result.Errors[0].Message).Should(ContainSubstring("exceeds the maximum complexity"))
		})

		It("admits operations within both limits", func() {
			schema := newNestedSchema(3, 10)

			result := execute(schema, `{ root { value } }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
		})
	})

	Describe("Query instrumentation", func() {
		It("invokes BeforeQuery and AfterQuery around execution", func() {
			var calls []string
			instrumenter := &recordingInstrumenter{calls: &calls}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "a", Type: graphql.String(), Resolver: resolveTo("a")},
					},
				}),
				QueryInstrumenters: []graphql.QueryInstrumenter{instrumenter},
			})

			result := execute(schema, `{ a }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(calls).Should(Equal([]string{"before", "after:0"}))
		})
	})

	Describe("Mutations", func() {
		newStarSchema := func() *graphql.Schema {
			addStar := graphql.MustNewRelayMutation(&graphql.RelayMutationConfig{
				Name: "AddStar",
				InputFields: graphql.InputFields{
					{Name: "starrableId", Type: graphql.MustNewNonNullOfType(graphql.ID())},
				},
				ReturnFields: graphql.Fields{
					{Name: "totalCount", Type: graphql.Int()},
				},
				Resolver: graphql.MutationResolverFunc(
					func(ctx context.Context, inputs map[string]interface{}, info graphql.ResolveInfo) (map[string]interface{}, error) {
						return map[string]interface{}{"totalCount": 42}, nil
					}),
			})
			return graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "ok", Type: graphql.Boolean(), Resolver: resolveTo(true)},
					},
				}),
				RelayMutations: []*graphql.RelayMutation{addStar},
			})
		}

		It("round-trips the client correlation token", func() {
			result := execute(newStarSchema(), `
				mutation {
					addStar(input: { starrableId: "repo-7", clientMutationId: "abc123" }) {
						totalCount
						clientMutationId
					}
				}`)

			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{
				"addStar": map[string]interface{}{
					"totalCount":       42,
					"clientMutationId": "abc123",
				},
			}))
		})

		It("resolves mutation root fields serially in request order", func() {
			var order []string
			recording := func(label string) graphql.FieldResolver {
				return graphql.FieldResolverFunc(
					func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
						order = append(order, label)
						return label, nil
					})
			}

			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{Name: "ok", Type: graphql.Boolean(), Resolver: resolveTo(true)},
					},
				}),
				Mutation: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Mutation",
					Fields: graphql.Fields{
						{Name: "first", Type: graphql.String(), Resolver: recording("first")},
						{Name: "second", Type: graphql.String(), Resolver: recording("second")},
						{Name: "third", Type: graphql.String(), Resolver: recording("third")},
					},
				}),
			})

			result := execute(schema, `mutation { third: third first second }`)
			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(order).Should(Equal([]string{"third", "first", "second"}))
		})
	})

	Describe("Fragments", func() {
		It("expands named fragments against matching type conditions", func() {
			petInterface := graphql.MustNewInterface(&graphql.InterfaceConfig{
				Name:   "Pet",
				Fields: graphql.Fields{{Name: "name", Type: graphql.String()}},
			})
			dogType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:       "Dog",
				Interfaces: []*graphql.Interface{petInterface},
				Fields: graphql.Fields{
					{Name: "name", Type: graphql.String()},
					{Name: "barks", Type: graphql.Boolean(), Resolver: resolveTo(true)},
				},
			})
			catType := graphql.MustNewObject(&graphql.ObjectConfig{
				Name:       "Cat",
				Interfaces: []*graphql.Interface{petInterface},
				Fields: graphql.Fields{
					{Name: "name", Type: graphql.String()},
					{Name: "purrs", Type: graphql.Boolean(), Resolver: resolveTo(true)},
				},
			})
			schema := graphql.MustNewSchema(&graphql.SchemaConfig{
				Query: graphql.MustNewObject(&graphql.ObjectConfig{
					Name: "Query",
					Fields: graphql.Fields{
						{
							Name:     "pet",
							Type:     petInterface,
							Resolver: resolveTo(map[string]interface{}{"name": "Rex"}),
						},
					},
				}),
				Types: []graphql.Type{dogType, catType},
				TypeResolver: graphql.TypeResolverFunc(
					func(ctx context.Context, value interface{}) (*graphql.Object, error) {
						return dogType, nil
					}),
			})

			result := execute(schema, `
				{
					pet {
						name
						... on Dog { barks }
						...catFields
					}
				}
				fragment catFields on Cat { purrs }`)

			Expect(result.Errors.HaveOccurred()).Should(BeFalse())
			Expect(result.Data).Should(Equal(map[string]interface{}{
				"pet": map[string]interface{}{"name": "Rex", "barks": true},
			}))
		})
	})
})

// recordingInstrumenter notes the order and error count of its hooks.
type recordingInstrumenter struct {
	calls *[]string
}

var _ graphql.QueryInstrumenter = (*recordingInstrumenter)(nil)

func (i *recordingInstrumenter) BeforeQuery(
	ctx context.Context, schema *graphql.Schema, operation *ast.OperationDefinition) {
	*i.calls = append(*i.calls, "before")
}

func (i *recordingInstrumenter) AfterQuery(
	ctx context.Context, schema *graphql.Schema, operation *ast.OperationDefinition, errs graphql.Errors) {
	*i.calls = append(*i.calls, fmt.Sprintf("after:%d", len(errs)))
}
