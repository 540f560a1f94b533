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

import "context"

// FieldMiddleware is the request-time, behavioral extension point: an
// ordered chain wrapping every field resolution invocation. A middleware may
// inspect or replace the source value, short-circuit by not calling next, or
// transform the value and error produced further down the chain. The
// innermost position of the chain is the field's resolver.
type FieldMiddleware interface {
	ResolveField(ctx context.Context, source interface{}, info ResolveInfo, next FieldResolver) (interface{}, error)
}

// FieldMiddlewareFunc is an adapter to allow the use of ordinary functions as
// a FieldMiddleware.
type FieldMiddlewareFunc func(ctx context.Context, source interface{}, info ResolveInfo, next FieldResolver) (interface{}, error)

// ResolveField calls f(ctx, source, info, next).
func (f FieldMiddlewareFunc) ResolveField(ctx context.Context, source interface{}, info ResolveInfo, next FieldResolver) (interface{}, error) {
	return f(ctx, source, info, next)
}

var _ FieldMiddleware = (FieldMiddlewareFunc)(nil)

// WrapResolver builds the call chain for one field resolution: the first
// middleware in the list is outermost and resolver sits at the innermost
// position.
func WrapResolver(resolver FieldResolver, middleware []FieldMiddleware) FieldResolver {
	for i := len(middleware) - 1; i >= 0; i-- {
		m := middleware[i]
		next := resolver
		resolver = FieldResolverFunc(
			func(ctx context.Context, source interface{}, info ResolveInfo) (interface{}, error) {
				return m.ResolveField(ctx, source, info, next)
			})
	}
	return resolver
}

// rescueMiddleware catches errors raised anywhere later in the chain and
// offers them to the registered rescue handlers. It is installed at the
// outermost position of the chain, and only when the schema registered at
// least one handler.
type rescueMiddleware struct {
	handlers []RescueHandler
}

var _ FieldMiddleware = (*rescueMiddleware)(nil)

// ResolveField implements FieldMiddleware. A matched handler's return value
// substitutes the field's result; an unmatched error propagates to the
// executor as a failure of the field.
func (m *rescueMiddleware) ResolveField(
	ctx context.Context, source interface{}, info ResolveInfo, next FieldResolver) (interface{}, error) {

	value, err := next.Resolve(ctx, source, info)
	if err == nil {
		return value, nil
	}

	handler, matched, ok := matchRescueHandler(m.handlers, err)
	if !ok {
		return nil, err
	}
	return handler.Rescue(ctx, matched, info)
}
