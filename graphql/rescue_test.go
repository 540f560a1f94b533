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

package graphql_test

import (
	"context"
	"errors"

	"github.com/unlimitedfocus/graphql/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// recordNotFoundError is a broad failure kind raised by test resolvers.
type recordNotFoundError struct {
	record string
}

func (e *recordNotFoundError) Error() string {
	return "record not found: " + e.record
}

// staleRecordError wraps recordNotFoundError, acting as the more specific
// kind in the error ancestry chain.
type staleRecordError struct {
	inner *recordNotFoundError
}

func (e *staleRecordError) Error() string {
	return "stale: " + e.inner.Error()
}

func (e *staleRecordError) Unwrap() error {
	return e.inner
}

var _ = Describe("Rescue Handlers", func() {
	failingResolver := func(err error) graphql.FieldResolver {
		return graphql.FieldResolverFunc(
			func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
				return nil, err
			})
	}

	rescueWith := func(value interface{}) graphql.RescueFunc {
		return func(ctx context.Context, err error, info graphql.ResolveInfo) (interface{}, error) {
			return value, nil
		}
	}

	// resolveThrough runs a resolver through the middleware chain of a schema
	// configured with the given handlers.
	resolveThrough := func(handlers []graphql.RescueHandler, resolver graphql.FieldResolver) (interface{}, error) {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query:          simpleQueryType(),
			RescueHandlers: handlers,
		})
		return graphql.WrapResolver(resolver, schema.Middleware()).Resolve(context.Background(), nil, nil)
	}

	It("substitutes a matched handler's return value for the field result", func() {
		value, err := resolveThrough(
			[]graphql.RescueHandler{
				{
					Match:  graphql.MatchErrorType[*recordNotFoundError](),
					Rescue: rescueWith("fallback"),
				},
			},
			failingResolver(&recordNotFoundError{record: "user-1"}))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("fallback"))
	})

	It("prefers the handler for the more specific kind over the base kind", func() {
		// The base handler is registered first; the raised error's outermost
		// link is the specific kind, which must win.
		value, err := resolveThrough(
			[]graphql.RescueHandler{
				{
					Match:  graphql.MatchErrorType[*recordNotFoundError](),
					Rescue: rescueWith("base"),
				},
				{
					Match:  graphql.MatchErrorType[*staleRecordError](),
					Rescue: rescueWith("specific"),
				},
			},
			failingResolver(&staleRecordError{inner: &recordNotFoundError{record: "user-1"}}))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("specific"))
	})

	It("falls back to a base-kind handler when no specific one matches", func() {
		value, err := resolveThrough(
			[]graphql.RescueHandler{
				{
					Match:  graphql.MatchErrorType[*recordNotFoundError](),
					Rescue: rescueWith("base"),
				},
			},
			failingResolver(&staleRecordError{inner: &recordNotFoundError{record: "user-1"}}))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("base"))
	})

	It("breaks ties at one chain link by registration order", func() {
		matchAll := graphql.ErrorMatcher(func(err error) bool { return true })

		value, err := resolveThrough(
			[]graphql.RescueHandler{
				{Match: matchAll, Rescue: rescueWith("first")},
				{Match: matchAll, Rescue: rescueWith("second")},
			},
			failingResolver(errors.New("anything")))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("first"))
	})

	It("propagates unmatched errors unchanged", func() {
		raised := errors.New("unhandled failure")

		_, err := resolveThrough(
			[]graphql.RescueHandler{
				{
					Match:  graphql.MatchErrorType[*recordNotFoundError](),
					Rescue: rescueWith("fallback"),
				},
			},
			failingResolver(raised))

		Expect(err).Should(MatchError(raised))
	})

	It("matches error kinds through MatchErrorKind", func() {
		value, err := resolveThrough(
			[]graphql.RescueHandler{
				{
					Match:  graphql.MatchErrorKind(graphql.ErrKindExecution),
					Rescue: rescueWith("rescued"),
				},
			},
			failingResolver(graphql.NewExecutionError("boom")))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("rescued"))
	})

	It("installs no rescue middleware when no handler is registered", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{Query: simpleQueryType()})
		Expect(schema.Middleware()).Should(BeEmpty())
	})
})
