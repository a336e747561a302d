package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"socialgraph/database"
)

func TestDeleteUserCascades(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")
	c := createUser(t, e, "Joan")

	_, err := e.CreateProfile(database.Document{
		"avatar": "a.png", "sex": "female", "birthday": 1000,
		"country": "UK", "street": "s", "city": "London",
		"memberTypeId": "basic", "userId": a,
	})
	require.NoError(t, err)

	for _, title := range []string{"one", "two"} {
		_, err := e.CreatePost(database.Document{"title": title, "content": "c", "userId": a})
		require.NoError(t, err)
	}

	// a follows c, so c's subscriber list carries a's id
	_, err = e.Subscribe(a, c)
	require.NoError(t, err)

	removed, err := e.DeleteUser(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, a, removed["id"])

	profile, err := e.store.FindOne(database.Profiles, database.Predicate{Key: "userId", Equals: a})
	require.NoError(t, err)
	require.Nil(t, profile)

	posts, err := e.store.FindMany(database.Posts, &database.Predicate{Key: "userId", Equals: a})
	require.NoError(t, err)
	require.Empty(t, posts)

	follower, err := e.store.FindOne(database.Users, database.Predicate{Key: "id", Equals: c})
	require.NoError(t, err)
	require.Empty(t, follower["subscribedToUserIds"])
}

func TestDeleteUserWithoutDependents(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")

	removed, err := e.DeleteUser(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, a, removed["id"])

	_, err = e.DeleteUser(context.Background(), a)
	require.EqualError(t, err, "No User")
}

func TestDeleteUserLeavesOthersAlone(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")
	b := createUser(t, e, "Grace")

	_, err := e.CreatePost(database.Document{"title": "keep", "content": "c", "userId": b})
	require.NoError(t, err)
	_, err = e.CreatePost(database.Document{"title": "drop", "content": "c", "userId": a})
	require.NoError(t, err)

	_, err = e.DeleteUser(context.Background(), a)
	require.NoError(t, err)

	posts, err := e.store.FindMany(database.Posts, nil)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "keep", posts[0]["title"])
}
