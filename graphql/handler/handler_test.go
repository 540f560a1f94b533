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

package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/unlimitedfocus/graphql/graphql"
	"github.com/unlimitedfocus/graphql/graphql/handler"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newEchoSchema() *graphql.Schema {
	return graphql.MustNewSchema(&graphql.SchemaConfig{
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
}

func decodeResponse(recorder *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	Expect(jsoniter.Unmarshal(recorder.Body.Bytes(), &response)).Should(Succeed())
	return response
}

var _ = Describe("HTTP Handler", func() {
	var h *handler.Handler

	BeforeEach(func() {
		h = handler.MustNew(&handler.Config{Schema: newEchoSchema()})
	})

	It("requires a schema", func() {
		_, err := handler.New(&handler.Config{})
		Expect(err).Should(MatchError(ContainSubstring("schema")))
	})

	It("serves a JSON POST request", func() {
		request := httptest.NewRequest(http.MethodPost, "/graphql",
			strings.NewReader(`{"query": "{ echo(text: \"hi\") }"}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		Expect(recorder.Code).Should(Equal(http.StatusOK))
		response := decodeResponse(recorder)
		Expect(response).Should(HaveKeyWithValue("data",
			map[string]interface{}{"echo": "hi"}))
		Expect(response).ShouldNot(HaveKey("errors"))
	})

	It("serves a raw application/graphql POST request", func() {
		request := httptest.NewRequest(http.MethodPost, "/graphql",
			strings.NewReader(`{ echo(text: "raw") }`))
		request.Header.Set("Content-Type", "application/graphql")
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		Expect(recorder.Code).Should(Equal(http.StatusOK))
		Expect(decodeResponse(recorder)).Should(HaveKeyWithValue("data",
			map[string]interface{}{"echo": "raw"}))
	})

	It("serves a GET request with query parameters", func() {
		query := url.Values{}
		query.Set("query", `query Echo($text: String) { echo(text: $text) }`)
		query.Set("variables", `{"text": "from-get"}`)
		request := httptest.NewRequest(http.MethodGet, "/graphql?"+query.Encode(), nil)
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		Expect(recorder.Code).Should(Equal(http.StatusOK))
		Expect(decodeResponse(recorder)).Should(HaveKeyWithValue("data",
			map[string]interface{}{"echo": "from-get"}))
	})

	It("selects the named operation", func() {
		request := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(
			`{"query": "query A { echo(text: \"a\") } query B { echo(text: \"b\") }", "operationName": "B"}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		Expect(decodeResponse(recorder)).Should(HaveKeyWithValue("data",
			map[string]interface{}{"echo": "b"}))
	})

	It("rejects requests without a query", func() {
		request := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		Expect(recorder.Code).Should(Equal(http.StatusBadRequest))
		Expect(decodeResponse(recorder)).Should(HaveKey("errors"))
	})

	It("rejects unsupported methods", func() {
		request := httptest.NewRequest(http.MethodDelete, "/graphql", nil)
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		Expect(recorder.Code).Should(Equal(http.StatusMethodNotAllowed))
	})

	It("reports parse failures as response errors", func() {
		request := httptest.NewRequest(http.MethodPost, "/graphql",
			strings.NewReader(`{"query": "{ echo(text: "}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		h.ServeHTTP(recorder, request)

		response := decodeResponse(recorder)
		Expect(response).Should(HaveKey("errors"))
		Expect(response).ShouldNot(HaveKey("data"))
	})

	It("runs the validator between parse and execute", func() {
		rejectAll := func(schema *graphql.Schema, document *ast.QueryDocument) graphql.Errors {
			var errs graphql.Errors
			errs.Append(graphql.NewValidationError("rejected by validator"))
			return errs
		}
		validated := handler.MustNew(&handler.Config{
			Schema:    newEchoSchema(),
			Validator: rejectAll,
		})

		request := httptest.NewRequest(http.MethodPost, "/graphql",
			strings.NewReader(`{"query": "{ echo(text: \"hi\") }"}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		validated.ServeHTTP(recorder, request)

		response := decodeResponse(recorder)
		Expect(response).ShouldNot(HaveKey("data"))
		Expect(response["errors"]).Should(HaveLen(1))
	})

	It("returns execution errors alongside partial data", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Query: graphql.MustNewObject(&graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					{
						Name: "bad",
						Type: graphql.String(),
						Resolver: graphql.FieldResolverFunc(
							func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
								return nil, graphql.NewExecutionError("boom")
							}),
					},
				},
			}),
		})
		failing := handler.MustNew(&handler.Config{Schema: schema})

		request := httptest.NewRequest(http.MethodPost, "/graphql",
			strings.NewReader(`{"query": "{ bad }"}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		failing.ServeHTTP(recorder, request)

		response := decodeResponse(recorder)
		Expect(response).Should(HaveKeyWithValue("data", map[string]interface{}{"bad": nil}))
		Expect(response["errors"]).Should(HaveLen(1))
	})
})
