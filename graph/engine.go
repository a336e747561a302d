package graph

import (
	"context"
	"errors"
	"sync"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"

	"socialgraph/database"
)

// MaxDepth is the deepest field nesting a single operation may select.
// It is checked before any resolver runs, so recursive selections
// through userSubscribedTo cannot fan out without bound.
const MaxDepth = 6

// Engine resolves query documents and runs mutations against the
// store. Mutations take the engine mutex so integrity checks and their
// write happen without another writer in between.
type Engine struct {
	schema *ast.Schema
	store  *database.Store
	mu     sync.Mutex
}

// Request is the body of a POST to the graphql endpoint
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Response is what every graphql request answers with
type Response struct {
	Data   any           `json:"data"`
	Errors gqlerror.List `json:"errors,omitempty"`
}

// New creates an engine over the given store
func New(store *database.Store) *Engine {
	return &Engine{
		schema: loadSchema(),
		store:  store,
	}
}

// Do parses, validates and executes one request. Parse, validation and
// depth failures come back with a nil data member and no execution;
// execution failures null the offending field and carry the error in
// the errors list.
func (e *Engine) Do(ctx context.Context, req Request) *Response {
	doc, err := parser.ParseQuery(&ast.Source{Input: req.Query})
	if err != nil {
		return &Response{Errors: asGqlErrors(err)}
	}

	if listErr := validator.Validate(e.schema, doc); len(listErr) != 0 {
		return &Response{Errors: listErr}
	}

	if len(doc.Operations) > 1 && req.OperationName == "" {
		return &Response{Errors: gqlerror.List{
			gqlerror.Errorf("operation name must be supplied when the query has more than 1 operation"),
		}}
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		return &Response{Errors: gqlerror.List{
			gqlerror.Errorf("operation %q is not present in the request", req.OperationName),
		}}
	}

	vars, err := validator.VariableValues(e.schema, op, req.Variables)
	if err != nil {
		return &Response{Errors: asGqlErrors(err)}
	}

	if errs := validateDepth(op, MaxDepth); len(errs) != 0 {
		return &Response{Errors: errs}
	}

	data := map[string]any{}
	var errs gqlerror.List
	for _, field := range flattenFields(op.SelectionSet) {
		var (
			value any
			err   error
		)

		switch op.Operation {
		case ast.Query:
			value, err = e.resolveRootQuery(ctx, field, vars)
		case ast.Mutation:
			value, err = e.resolveMutation(ctx, field, vars)
		default:
			err = errors.New("subscriptions are not supported")
		}

		if err != nil {
			errs = append(errs, gqlerror.WrapPath(ast.Path{ast.PathName(field.Alias)}, err))
			data[field.Alias] = nil
			continue
		}
		data[field.Alias] = value
	}

	return &Response{Data: data, Errors: errs}
}

// flattenFields expands fragment spreads and inline fragments into the
// plain field list of a selection set
func flattenFields(set ast.SelectionSet) []*ast.Field {
	var fields []*ast.Field
	for _, selection := range set {
		switch sel := selection.(type) {
		case *ast.Field:
			fields = append(fields, sel)
		case *ast.FragmentSpread:
			fields = append(fields, flattenFields(sel.Definition.SelectionSet)...)
		case *ast.InlineFragment:
			fields = append(fields, flattenFields(sel.SelectionSet)...)
		}
	}

	return fields
}

func asGqlErrors(err error) gqlerror.List {
	var list gqlerror.List
	if errors.As(err, &list) {
		return list
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return gqlerror.List{gqlErr}
	}

	return gqlerror.List{gqlerror.Errorf("%s", err.Error())}
}
