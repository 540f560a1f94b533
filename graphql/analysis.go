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

import "github.com/vektah/gqlparser/v2/ast"

// QueryAnalyzer inspects an operation before execution begins. A non-nil
// error rejects the request outright, before any resolver runs.
type QueryAnalyzer interface {
	AnalyzeOperation(schema *Schema, document *ast.QueryDocument, operation *ast.OperationDefinition) error
}

// QueryAnalyzerFunc is an adapter to allow the use of ordinary functions as
// a QueryAnalyzer.
type QueryAnalyzerFunc func(schema *Schema, document *ast.QueryDocument, operation *ast.OperationDefinition) error

// AnalyzeOperation calls f(schema, document, operation).
func (f QueryAnalyzerFunc) AnalyzeOperation(schema *Schema, document *ast.QueryDocument, operation *ast.OperationDefinition) error {
	return f(schema, document, operation)
}

var _ QueryAnalyzer = (QueryAnalyzerFunc)(nil)

//===----------------------------------------------------------------------------------------====//
// Built-in admission analyzers
//===----------------------------------------------------------------------------------------====//

// maxDepthAnalyzer rejects operations whose selection nesting exceeds a
// configured limit. Fragment spreads are measured at their expansion depth.
type maxDepthAnalyzer struct {
	maxDepth int
}

var _ QueryAnalyzer = maxDepthAnalyzer{}

// AnalyzeOperation implements QueryAnalyzer.
func (a maxDepthAnalyzer) AnalyzeOperation(
	schema *Schema, document *ast.QueryDocument, operation *ast.OperationDefinition) error {

	depth := selectionDepth(document, operation.SelectionSet, map[string]bool{})
	if depth > a.maxDepth {
		return NewValidationError(
			"Operation has depth %d, which exceeds the maximum operation depth of %d.",
			depth, a.maxDepth)
	}
	return nil
}

func selectionDepth(document *ast.QueryDocument, selections ast.SelectionSet, visitedFragments map[string]bool) int {
	depth := 0
	for _, selection := range selections {
		var d int
		switch selection := selection.(type) {
		case *ast.Field:
			d = 1 + selectionDepth(document, selection.SelectionSet, visitedFragments)
		case *ast.InlineFragment:
			d = selectionDepth(document, selection.SelectionSet, visitedFragments)
		case *ast.FragmentSpread:
			// Fragment cycles are a validation concern; guard to stay total.
			if visitedFragments[selection.Name] {
				continue
			}
			visitedFragments[selection.Name] = true
			if fragment := document.Fragments.ForName(selection.Name); fragment != nil {
				d = selectionDepth(document, fragment.SelectionSet, visitedFragments)
			}
			delete(visitedFragments, selection.Name)
		}
		if d > depth {
			depth = d
		}
	}
	return depth
}

// maxComplexityAnalyzer rejects operations requesting more fields than a
// configured limit. Every field node costs 1; fragments cost their expanded
// field count.
type maxComplexityAnalyzer struct {
	maxComplexity int
}

var _ QueryAnalyzer = maxComplexityAnalyzer{}

// AnalyzeOperation implements QueryAnalyzer.
func (a maxComplexityAnalyzer) AnalyzeOperation(
	schema *Schema, document *ast.QueryDocument, operation *ast.OperationDefinition) error {

	complexity := selectionComplexity(document, operation.SelectionSet, map[string]bool{})
	if complexity > a.maxComplexity {
		return NewValidationError(
			"Operation has complexity %d, which exceeds the maximum complexity of %d.",
			complexity, a.maxComplexity)
	}
	return nil
}

func selectionComplexity(document *ast.QueryDocument, selections ast.SelectionSet, visitedFragments map[string]bool) int {
	complexity := 0
	for _, selection := range selections {
		switch selection := selection.(type) {
		case *ast.Field:
			complexity += 1 + selectionComplexity(document, selection.SelectionSet, visitedFragments)
		case *ast.InlineFragment:
			complexity += selectionComplexity(document, selection.SelectionSet, visitedFragments)
		case *ast.FragmentSpread:
			if visitedFragments[selection.Name] {
				continue
			}
			visitedFragments[selection.Name] = true
			if fragment := document.Fragments.ForName(selection.Name); fragment != nil {
				complexity += selectionComplexity(document, fragment.SelectionSet, visitedFragments)
			}
			delete(visitedFragments, selection.Name)
		}
	}
	return complexity
}
