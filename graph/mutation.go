package graph

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"

	"socialgraph/database"
)

// resolveMutation dispatches one mutation field, then projects the
// requested selection over the written entity
func (e *Engine) resolveMutation(ctx context.Context, field *ast.Field, vars map[string]any) (any, error) {
	args, err := argumentValues(field, vars)
	if err != nil {
		return nil, err
	}
	data := asDoc(args["data"])

	var doc database.Document
	switch field.Name {
	case "createUser":
		doc, err = e.CreateUser(data)
	case "createProfile":
		doc, err = e.CreateProfile(data)
	case "createPost":
		doc, err = e.CreatePost(data)
	case "updateUser":
		doc, err = e.UpdateUser(str(args["userId"]), data)
	case "updateProfile":
		doc, err = e.UpdateProfile(str(args["profileId"]), data)
	case "updatePost":
		doc, err = e.UpdatePost(str(args["postId"]), data)
	case "updateMemberType":
		doc, err = e.UpdateMemberType(str(args["memberTypeId"]), data)
	case "subscribeToUser":
		doc, err = e.Subscribe(str(data["currentUserId"]), str(data["subscribeToUserId"]))
	case "unsubscribeFromUser":
		doc, err = e.Unsubscribe(str(data["currentUserId"]), str(data["unsubscribeFromUserId"]))
	default:
		return nil, errUnknownField(field.Name)
	}
	if err != nil {
		return nil, err
	}

	return e.resolveEntity(ctx, field.Definition.Type.Name(), doc, field.SelectionSet)
}

// CreateUser writes a new user. No referential checks apply; an empty
// subscriber list is filled in when the payload has none.
func (e *Engine) CreateUser(data database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := database.Document{}
	for name, value := range data {
		doc[name] = value
	}
	if _, ok := doc["subscribedToUserIds"]; !ok {
		doc["subscribedToUserIds"] = []any{}
	}

	return e.store.Create(database.Users, doc)
}

// CreateProfile writes a new profile once its user exists, no other
// profile claims that user, and the member type exists
func (e *Engine) CreateProfile(data database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	userID := str(data["userId"])
	user, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: userID})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("No user")
	}

	existing, err := e.store.FindOne(database.Profiles, database.Predicate{Key: "userId", Equals: userID})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, conflict("Profile exists")
	}

	memberType, err := e.store.FindOne(database.MemberTypes, database.Predicate{Key: "id", Equals: str(data["memberTypeId"])})
	if err != nil {
		return nil, err
	}
	if memberType == nil {
		return nil, notFound("No member type")
	}

	return e.store.Create(database.Profiles, data)
}

// CreatePost writes a new post once its author exists
func (e *Engine) CreatePost(data database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: str(data["userId"])})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("No User")
	}

	return e.store.Create(database.Posts, data)
}

// UpdateUser merges the provided fields into an existing user
func (e *Engine) UpdateUser(id string, fields database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("No User")
	}

	return e.store.Change(database.Users, id, fields)
}

// UpdateProfile rewrites the provided fields of an existing profile.
// The user named by the payload must exist.
func (e *Engine) UpdateProfile(id string, fields database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: str(fields["userId"])})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("No User with such user ID")
	}

	profile, err := e.store.FindOne(database.Profiles, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, notFound("No Profile")
	}

	return e.store.Change(database.Profiles, id, fields)
}

// UpdatePost rewrites the provided fields of an existing post. The
// user named by the payload must exist.
func (e *Engine) UpdatePost(id string, fields database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: str(fields["userId"])})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("No User with such user ID")
	}

	post, err := e.store.FindOne(database.Posts, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, notFound("No Post")
	}

	return e.store.Change(database.Posts, id, fields)
}

// UpdateMemberType merges discount and monthPostsLimit into an
// existing member type
func (e *Engine) UpdateMemberType(id string, fields database.Document) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	memberType, err := e.store.FindOne(database.MemberTypes, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		return nil, err
	}
	if memberType == nil {
		return nil, notFound("No Member type")
	}

	return e.store.Change(database.MemberTypes, id, fields)
}

// Subscribe records that currentUserID follows targetID by appending
// the current user's id to the target's subscriber list. Subscribing
// to yourself or twice to the same user is rejected.
func (e *Engine) Subscribe(currentUserID string, targetID string) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if currentUserID == targetID {
		return nil, conflict("Cannot subscribe to self")
	}

	current, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: currentUserID})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, notFound("No current user")
	}

	target, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: targetID})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, notFound("No User to subscribe")
	}

	ids := stringList(target["subscribedToUserIds"])
	if containsID(ids, currentUserID) {
		return nil, conflict("User already subscribed")
	}

	return e.store.Change(database.Users, targetID, database.Document{
		"subscribedToUserIds": append(ids, currentUserID),
	})
}

// Unsubscribe removes currentUserID from the target's subscriber list
func (e *Engine) Unsubscribe(currentUserID string, targetID string) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	target, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: targetID})
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, notFound("No User to unsubscribe")
	}

	current, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: currentUserID})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, notFound("No current user")
	}

	ids := stringList(target["subscribedToUserIds"])
	if !containsID(ids, currentUserID) {
		return nil, conflict("User not subscribed")
	}

	return e.store.Change(database.Users, targetID, database.Document{
		"subscribedToUserIds": withoutID(ids, currentUserID),
	})
}

// DeleteUser removes a user and then cleans up everything that still
// points at it
func (e *Engine) DeleteUser(ctx context.Context, id string) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.store.Delete(database.Users, id)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, notFound("No User")
	}

	if err := e.cascade(ctx, id); err != nil {
		return nil, err
	}

	return removed, nil
}

// DeleteProfile removes one profile
func (e *Engine) DeleteProfile(id string) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.store.Delete(database.Profiles, id)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, notFound("No Profile")
	}

	return removed, nil
}

// DeletePost removes one post
func (e *Engine) DeletePost(id string) (database.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	removed, err := e.store.Delete(database.Posts, id)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, notFound("No Post")
	}

	return removed, nil
}
