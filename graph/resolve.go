package graph

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"

	"socialgraph/database"
)

type relKind int

const (
	// relOneToOne looks a single target entity up by one key
	relOneToOne relKind = iota
	// relOneToMany collects every target entity matching one key
	relOneToMany
	// relIDList expands a list of ids on the source into entities,
	// preserving list order
	relIDList
	// relMembership collects every target entity whose list field
	// contains the source value
	relMembership
)

// relation describes how one relation field is materialized: which
// collection to look in, which target field to match (key) and which
// source field supplies the value. A non-nil via is resolved first and
// its result becomes the source for this lookup.
type relation struct {
	kind        relKind
	collection  string
	key         string
	sourceField string
	via         *relation
}

// relations maps entity type name and field name to the lookup
// performed for it. Fields not listed here are plain projections of
// stored attributes.
var relations = map[string]map[string]relation{
	"User": {
		"profile": {kind: relOneToOne, collection: database.Profiles, key: "userId", sourceField: "id"},
		"posts":   {kind: relOneToMany, collection: database.Posts, key: "userId", sourceField: "id"},
		"memberType": {
			kind: relOneToOne, collection: database.MemberTypes, key: "id", sourceField: "memberTypeId",
			via: &relation{kind: relOneToOne, collection: database.Profiles, key: "userId", sourceField: "id"},
		},
		"subscribedToUser": {kind: relIDList, collection: database.Users, sourceField: "subscribedToUserIds"},
		"userSubscribedTo": {kind: relMembership, collection: database.Users, key: "subscribedToUserIds", sourceField: "id"},
	},
}

var rootQueries = map[string]struct {
	collection string
	singular   bool
}{
	"users":       {database.Users, false},
	"user":        {database.Users, true},
	"profiles":    {database.Profiles, false},
	"profile":     {database.Profiles, true},
	"posts":       {database.Posts, false},
	"post":        {database.Posts, true},
	"memberTypes": {database.MemberTypes, false},
	"memberType":  {database.MemberTypes, true},
}

func (e *Engine) resolveRootQuery(ctx context.Context, field *ast.Field, vars map[string]any) (any, error) {
	root, ok := rootQueries[field.Name]
	if !ok {
		return nil, errUnknownField(field.Name)
	}

	typeName := field.Definition.Type.Name()

	if root.singular {
		args, err := argumentValues(field, vars)
		if err != nil {
			return nil, err
		}

		doc, err := e.store.FindOne(root.collection, database.Predicate{Key: "id", Equals: str(args["id"])})
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, nil
		}

		return e.resolveEntity(ctx, typeName, doc, field.SelectionSet)
	}

	docs, err := e.store.FindMany(root.collection, nil)
	if err != nil {
		return nil, err
	}

	return e.resolveEntities(ctx, typeName, docs, field.SelectionSet)
}

// resolveEntity materializes one selection set over a stored document.
// Relation fields issue their own store lookups and recurse; every
// other field is read straight off the document.
func (e *Engine) resolveEntity(ctx context.Context, typeName string, src database.Document, set ast.SelectionSet) (map[string]any, error) {
	out := map[string]any{}
	for _, field := range flattenFields(set) {
		if field.Name == "__typename" {
			out[field.Alias] = typeName
			continue
		}

		rel, ok := relations[typeName][field.Name]
		if !ok {
			out[field.Alias] = src[field.Name]
			continue
		}

		childType := field.Definition.Type.Name()
		if rel.kind == relOneToOne {
			doc, err := e.resolveOne(rel, src)
			if err != nil {
				return nil, err
			}
			if doc == nil {
				out[field.Alias] = nil
				continue
			}

			child, err := e.resolveEntity(ctx, childType, doc, field.SelectionSet)
			if err != nil {
				return nil, err
			}
			out[field.Alias] = child
			continue
		}

		docs, err := e.resolveMany(rel, src)
		if err != nil {
			return nil, err
		}

		children, err := e.resolveEntities(ctx, childType, docs, field.SelectionSet)
		if err != nil {
			return nil, err
		}
		out[field.Alias] = children
	}

	return out, nil
}

func (e *Engine) resolveEntities(ctx context.Context, typeName string, docs []database.Document, set ast.SelectionSet) ([]any, error) {
	list := make([]any, 0, len(docs))
	for _, doc := range docs {
		child, err := e.resolveEntity(ctx, typeName, doc, set)
		if err != nil {
			return nil, err
		}
		list = append(list, child)
	}

	return list, nil
}

func (e *Engine) resolveOne(rel relation, src database.Document) (database.Document, error) {
	if rel.via != nil {
		through, err := e.resolveOne(*rel.via, src)
		if err != nil || through == nil {
			return nil, err
		}
		src = through
	}

	return e.store.FindOne(rel.collection, database.Predicate{Key: rel.key, Equals: str(src[rel.sourceField])})
}

func (e *Engine) resolveMany(rel relation, src database.Document) ([]database.Document, error) {
	switch rel.kind {
	case relOneToMany:
		return e.store.FindMany(rel.collection, &database.Predicate{Key: rel.key, Equals: str(src[rel.sourceField])})
	case relMembership:
		return e.store.FindMany(rel.collection, &database.Predicate{Key: rel.key, InArray: str(src[rel.sourceField])})
	case relIDList:
		var docs []database.Document
		for _, id := range stringList(src[rel.sourceField]) {
			doc, err := e.store.FindOne(rel.collection, database.Predicate{Key: "id", Equals: id})
			if err != nil {
				return nil, err
			}
			if doc != nil {
				docs = append(docs, doc)
			}
		}
		return docs, nil
	}

	return nil, errUnknownField(rel.collection)
}
