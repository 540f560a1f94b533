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
	"errors"
)

// ErrorMatcher is a structural predicate over one link of an error chain. A
// matcher must test the link it is given directly (e.g. with a type
// assertion) rather than unwrapping it itself; walking the chain is the
// matching algorithm's job.
type ErrorMatcher func(err error) bool

// MatchErrorType matches a chain link whose dynamic type is exactly T. An
// error type that wraps another (by implementing Unwrap) forms an ancestry
// chain, with the wrapping type acting as the more specific kind.
func MatchErrorType[T error]() ErrorMatcher {
	return func(err error) bool {
		_, ok := err.(T)
		return ok
	}
}

// MatchErrorKind matches a chain link that is an *Error with the given kind.
func MatchErrorKind(kind ErrKind) ErrorMatcher {
	return func(err error) bool {
		e, ok := err.(*Error)
		return ok && e.Kind == kind
	}
}

// RescueFunc turns a matched error into a substitute field value. err is the
// chain link the handler matched, which may be an inner link of the error
// originally raised.
type RescueFunc func(ctx context.Context, err error, info ResolveInfo) (interface{}, error)

// RescueHandler pairs an error matcher with the handler invoked when it
// matches. Handlers are registered as an ordered list on the schema.
type RescueHandler struct {
	Match  ErrorMatcher
	Rescue RescueFunc
}

// matchRescueHandler selects the handler for err. The error's chain is
// walked from the outermost (most specific) link inward; at each link every
// handler is tried in registration order and the first structural match
// wins. A handler registered for a more specific (outer) error type
// therefore takes precedence over one registered for a kind it wraps,
// regardless of registration order; ties at the same link go to the earliest
// registration.
func matchRescueHandler(handlers []RescueHandler, err error) (RescueHandler, error, bool) {
	for link := err; link != nil; link = errors.Unwrap(link) {
		for _, handler := range handlers {
			if handler.Match != nil && handler.Match(link) {
				return handler, link, true
			}
		}
	}
	return RescueHandler{}, nil, false
}
