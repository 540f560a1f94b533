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

// Package handler serves queries over HTTP: parse the request into a query
// document, run the optional static validator, execute against the schema and
// encode the result.
package handler

import (
	"io"
	"log"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/unlimitedfocus/graphql/graphql"
	"github.com/unlimitedfocus/graphql/graphql/executor"
)

// DefaultMaxBodySize bounds the request body read by the handler when the
// configuration does not set one.
const DefaultMaxBodySize int64 = 1 << 20

// Validator is the static validation collaborator: it checks a parsed
// document against the schema before execution. A non-empty error list
// rejects the request without running any resolver.
type Validator func(schema *graphql.Schema, document *ast.QueryDocument) graphql.Errors

// ErrorLogger reports transport-level failures (unreadable bodies, encoding
// errors). Execution errors never pass through it; they belong to the
// response payload.
type ErrorLogger func(format string, args ...interface{})

// Config specifies a Handler.
type Config struct {
	// Schema to execute incoming queries against (required)
	Schema *graphql.Schema

	// Validator runs between parse and execute. When nil, documents are
	// executed unvalidated.
	Validator Validator

	// RootValue passed to root field resolvers
	RootValue interface{}

	// MaxBodySize bounds the request body in bytes. Zero means
	// DefaultMaxBodySize.
	MaxBodySize int64

	// ErrorLogger for transport-level failures. Nil means stdlib log.Printf.
	ErrorLogger ErrorLogger
}

// Handler is a net/http.Handler serving queries against one schema.
type Handler struct {
	schema      *graphql.Schema
	validator   Validator
	rootValue   interface{}
	maxBodySize int64
	logError    ErrorLogger
}

var _ http.Handler = (*Handler)(nil)

// New creates a Handler from the given config.
func New(config *Config) (*Handler, error) {
	if config == nil || config.Schema == nil {
		return nil, graphql.NewConfigurationError("Must provide a schema to serve queries against.")
	}

	maxBodySize := config.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	logError := config.ErrorLogger
	if logError == nil {
		logError = log.Printf
	}

	return &Handler{
		schema:      config.Schema,
		validator:   config.Validator,
		rootValue:   config.RootValue,
		maxBodySize: maxBodySize,
		logError:    logError,
	}, nil
}

// MustNew is a convenience function equivalent to New but panics on failure
// instead of returning an error.
func MustNew(config *Config) *Handler {
	h, err := New(config)
	if err != nil {
		panic(err)
	}
	return h
}

// request is the transport-level shape of one query request.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ServeHTTP implements http.Handler. Queries are accepted as GET query
// parameters, as an application/json POST body, or as a raw
// application/graphql POST body.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, status, err := h.parseRequest(r)
	if err != nil {
		h.writeErrors(w, status, err)
		return
	}

	document, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		h.writeErrors(w, http.StatusOK, graphql.WrapError(err, err.Error()))
		return
	}

	if h.validator != nil {
		if errs := h.validator(h.schema, document); errs.HaveOccurred() {
			h.writeResult(w, executor.Result{Errors: errs})
			return
		}
	}

	result := executor.Execute(r.Context(), executor.Params{
		Schema:         h.schema,
		Document:       document,
		OperationName:  req.OperationName,
		RootValue:      h.rootValue,
		VariableValues: req.Variables,
	})
	h.writeResult(w, result)
}

func (h *Handler) parseRequest(r *http.Request) (*request, int, error) {
	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		req := &request{
			Query:         query.Get("query"),
			OperationName: query.Get("operationName"),
		}
		if variables := query.Get("variables"); variables != "" {
			if err := jsoniter.UnmarshalFromString(variables, &req.Variables); err != nil {
				return nil, http.StatusBadRequest, graphql.WrapError(err, "Invalid variables parameter.")
			}
		}
		if req.Query == "" {
			return nil, http.StatusBadRequest, graphql.NewError("Must provide a query parameter.")
		}
		return req, 0, nil

	case http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodySize))
		if err != nil {
			h.logError("handler: reading request body: %v", err)
			return nil, http.StatusBadRequest, graphql.NewError("Unable to read request body.")
		}

		contentType := r.Header.Get("Content-Type")
		if i := strings.IndexByte(contentType, ';'); i >= 0 {
			contentType = contentType[:i]
		}
		switch strings.TrimSpace(contentType) {
		case "application/graphql":
			return &request{Query: string(body)}, 0, nil
		default:
			req := &request{}
			if err := jsoniter.Unmarshal(body, req); err != nil {
				return nil, http.StatusBadRequest, graphql.WrapError(err, "Invalid request body.")
			}
			if req.Query == "" {
				return nil, http.StatusBadRequest, graphql.NewError("Must provide a query in the request body.")
			}
			return req, 0, nil
		}
	}

	return nil, http.StatusMethodNotAllowed, graphql.NewError("GraphQL only supports GET and POST requests.")
}

func (h *Handler) writeResult(w http.ResponseWriter, result executor.Result) {
	w.Header().Set("Content-Type", "application/json")
	if err := jsoniter.NewEncoder(w).Encode(result); err != nil {
		h.logError("handler: encoding response: %v", err)
	}
}

func (h *Handler) writeErrors(w http.ResponseWriter, status int, err error) {
	var errs graphql.Errors
	errs.Append(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsoniter.NewEncoder(w).Encode(map[string]interface{}{"errors": errs}); err != nil {
		h.logError("handler: encoding response: %v", err)
	}
}
