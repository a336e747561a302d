package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"socialgraph/database"
)

func TestCreateProfileChecks(t *testing.T) {
	e := newTestEngine(t)
	userID := createUser(t, e, "Ada")

	profileData := func(userID, memberTypeID string) database.Document {
		return database.Document{
			"avatar": "a.png", "sex": "female", "birthday": 1000,
			"country": "UK", "street": "s", "city": "London",
			"memberTypeId": memberTypeID, "userId": userID,
		}
	}

	_, err := e.CreateProfile(profileData("nope", "basic"))
	require.EqualError(t, err, "No user")
	require.IsType(t, &NotFoundError{}, err)

	_, err = e.CreateProfile(profileData(userID, "nonexistent"))
	require.EqualError(t, err, "No member type")

	// the failed attempts must not have written anything
	profiles, err := e.store.FindMany(database.Profiles, nil)
	require.NoError(t, err)
	require.Empty(t, profiles)

	profile, err := e.CreateProfile(profileData(userID, "basic"))
	require.NoError(t, err)
	require.Equal(t, userID, profile["userId"])

	stored, err := e.store.FindOne(database.Profiles, database.Predicate{Key: "userId", Equals: userID})
	require.NoError(t, err)
	require.Equal(t, profile["id"], stored["id"])

	_, err = e.CreateProfile(profileData(userID, "basic"))
	require.EqualError(t, err, "Profile exists")
	require.IsType(t, &ConflictError{}, err)
}

func TestCreatePostRequiresUser(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.CreatePost(database.Document{"title": "t", "content": "c", "userId": "nope"})
	require.EqualError(t, err, "No User")

	userID := createUser(t, e, "Ada")
	post, err := e.CreatePost(database.Document{"title": "t", "content": "c", "userId": userID})
	require.NoError(t, err)
	require.NotEmpty(t, post["id"])
}

func TestUpdateUserMergesProvidedFields(t *testing.T) {
	e := newTestEngine(t)
	userID := createUser(t, e, "Ada")

	updated, err := e.UpdateUser(userID, database.Document{"firstName": "Augusta"})
	require.NoError(t, err)
	require.Equal(t, "Augusta", updated["firstName"])
	require.Equal(t, "L", updated["lastName"])
	require.Equal(t, "ada@x", updated["email"])

	_, err = e.UpdateUser("nope", database.Document{"firstName": "x"})
	require.EqualError(t, err, "No User")
}

func TestUpdateProfileChecks(t *testing.T) {
	e := newTestEngine(t)
	userID := createUser(t, e, "Ada")

	profile, err := e.CreateProfile(database.Document{
		"avatar": "a.png", "sex": "female", "birthday": 1000,
		"country": "UK", "street": "s", "city": "London",
		"memberTypeId": "basic", "userId": userID,
	})
	require.NoError(t, err)
	profileID := profile["id"].(string)

	_, err = e.UpdateProfile(profileID, database.Document{"city": "Paris", "userId": "nope"})
	require.EqualError(t, err, "No User with such user ID")

	_, err = e.UpdateProfile("nope", database.Document{"city": "Paris", "userId": userID})
	require.EqualError(t, err, "No Profile")

	updated, err := e.UpdateProfile(profileID, database.Document{"city": "Paris", "userId": userID})
	require.NoError(t, err)
	require.Equal(t, "Paris", updated["city"])
	require.Equal(t, "a.png", updated["avatar"])
}

func TestUpdateMemberType(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.UpdateMemberType("nope", database.Document{"discount": 1})
	require.EqualError(t, err, "No Member type")

	updated, err := e.UpdateMemberType("basic", database.Document{"discount": 3})
	require.NoError(t, err)
	require.EqualValues(t, 3, updated["discount"])
	require.EqualValues(t, 20, updated["monthPostsLimit"])
}

func TestSubscribeFlow(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")
	b := createUser(t, e, "Grace")

	_, err := e.Subscribe("nope", b)
	require.EqualError(t, err, "No current user")

	_, err = e.Subscribe(a, "nope")
	require.EqualError(t, err, "No User to subscribe")

	target, err := e.Subscribe(a, b)
	require.NoError(t, err)
	require.Equal(t, []any{a}, target["subscribedToUserIds"].([]any))

	_, err = e.Subscribe(a, b)
	require.EqualError(t, err, "User already subscribed")
	require.IsType(t, &ConflictError{}, err)
}

func TestSubscribeToSelfRejected(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")

	_, err := e.Subscribe(a, a)
	require.EqualError(t, err, "Cannot subscribe to self")
	require.IsType(t, &ConflictError{}, err)
}

func TestUnsubscribeIdempotence(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")
	b := createUser(t, e, "Grace")

	_, err := e.Subscribe(a, b)
	require.NoError(t, err)

	target, err := e.Unsubscribe(a, b)
	require.NoError(t, err)
	require.Empty(t, target["subscribedToUserIds"])

	// second unsubscribe with the same arguments is a conflict
	_, err = e.Unsubscribe(a, b)
	require.EqualError(t, err, "User not subscribed")
	require.IsType(t, &ConflictError{}, err)

	_, err = e.Unsubscribe(a, "nope")
	require.EqualError(t, err, "No User to unsubscribe")
}

func TestMutationsThroughDocument(t *testing.T) {
	e := newTestEngine(t)

	resp := do(t, e, `mutation($data: CreateUserInput!) { createUser(data: $data) { id firstName subscribedToUserIds } }`,
		testVariables(t, `{"data": {"firstName": "Ada", "lastName": "Lovelace", "email": "ada@x"}}`))
	created := dataField(t, resp, "createUser").(map[string]any)
	require.Equal(t, "Ada", created["firstName"])
	require.NotEmpty(t, created["id"])
	userID := created["id"].(string)

	resp = do(t, e, `mutation($data: CreateProfileInput!) { createProfile(data: $data) { id userId memberTypeId } }`,
		testVariables(t, `{"data": {"avatar": "a.png", "sex": "female", "birthday": 1000,
			"country": "UK", "street": "s", "city": "London",
			"memberTypeId": "basic", "userId": "`+userID+`"}}`))
	profile := dataField(t, resp, "createProfile").(map[string]any)
	require.Equal(t, userID, profile["userId"])

	resp = do(t, e, `mutation { updateUser(userId: "`+userID+`", data: {firstName: "Augusta"}) { firstName lastName } }`, nil)
	updated := dataField(t, resp, "updateUser").(map[string]any)
	require.Equal(t, "Augusta", updated["firstName"])
	require.Equal(t, "Lovelace", updated["lastName"])
}

func TestMutationErrorNullsFieldAndReportsMessage(t *testing.T) {
	e := newTestEngine(t)
	a := createUser(t, e, "Ada")
	b := createUser(t, e, "Grace")

	subscribe := `mutation { subscribeToUser(data: {currentUserId: "` + a + `", subscribeToUserId: "` + b + `"}) { id subscribedToUserIds } }`

	resp := do(t, e, subscribe, nil)
	target := dataField(t, resp, "subscribeToUser").(map[string]any)
	require.Equal(t, []any{a}, target["subscribedToUserIds"].([]any))

	// repeating the exact same call must fail with a conflict
	resp = do(t, e, subscribe, nil)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "User already subscribed", resp.Errors[0].Message)

	data := resp.Data.(map[string]any)
	require.Nil(t, data["subscribeToUser"])
}
