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

// Package graphql provides the type system and schema definition core for a
// GraphQL server: scalar, object, interface, union, enum, input object, list
// and non-null types, directives, the schema type map, possible-type
// resolution for abstract types, field instrumentation and middleware
// extension points, and relay-style mutation derivation.
//
// Queries are executed against a Schema by the executor package, which
// consumes query documents parsed by github.com/vektah/gqlparser/v2. Static
// query validation is an external collaborator and is expected to have run
// before execution.
package graphql
