package graph

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"socialgraph/database"
)

func errUnknownField(name string) error {
	return fmt.Errorf("no resolver for %q", name)
}

// argumentValues coerces the field's arguments against the supplied
// variables
func argumentValues(field *ast.Field, vars map[string]any) (map[string]any, error) {
	args := map[string]any{}
	for _, arg := range field.Arguments {
		value, err := arg.Value.Value(vars)
		if err != nil {
			return nil, err
		}
		args[arg.Name] = value
	}

	return args, nil
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}

// stringList reads a JSON-decoded list of ids off a document field
func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			ids = append(ids, s)
		}
	}

	return ids
}

func asDoc(v any) database.Document {
	if doc, ok := v.(map[string]any); ok {
		return doc
	}

	return database.Document{}
}

func containsID(ids []string, id string) bool {
	for _, item := range ids {
		if item == id {
			return true
		}
	}

	return false
}

func withoutID(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, item := range ids {
		if item != id {
			kept = append(kept, item)
		}
	}

	return kept
}
