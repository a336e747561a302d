package graph

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// validateDepth walks every root field of the operation and rejects
// the ones whose selection nesting goes past limit. A field carrying a
// selection set counts one level, leaves count nothing, so
// `user { profile { id } }` has depth 2. All offending root fields are
// reported together and nothing executes.
func validateDepth(op *ast.OperationDefinition, limit int) gqlerror.List {
	var errs gqlerror.List
	for _, field := range flattenFields(op.SelectionSet) {
		if depth := selectionDepth(field); depth > limit {
			errs = append(errs, gqlerror.Errorf(
				"'%s' exceeds maximum operation depth of %d", field.Name, limit))
		}
	}

	return errs
}

func selectionDepth(field *ast.Field) int {
	if len(field.SelectionSet) == 0 {
		return 0
	}

	deepest := 0
	for _, child := range flattenFields(field.SelectionSet) {
		if depth := selectionDepth(child); depth > deepest {
			deepest = depth
		}
	}

	return deepest + 1
}
