package graph

import (
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// schemaSDL declares the whole request surface. Relation fields on
// User (profile, posts, memberType, userSubscribedTo, subscribedToUser)
// are the ones needing secondary store lookups; everything else is a
// stored scalar.
const schemaSDL = `
type Query {
  users: [User]
  user(id: ID!): User
  profiles: [Profile]
  profile(id: ID!): Profile
  posts: [Post]
  post(id: ID!): Post
  memberTypes: [MemberType]
  memberType(id: ID!): MemberType
}

type Mutation {
  createUser(data: CreateUserInput!): User
  createProfile(data: CreateProfileInput!): Profile
  createPost(data: CreatePostInput!): Post
  updateUser(userId: ID!, data: UpdateUserInput!): User
  updateProfile(profileId: ID!, data: UpdateProfileInput!): Profile
  updatePost(postId: ID!, data: UpdatePostInput!): Post
  updateMemberType(memberTypeId: ID!, data: UpdateMemberTypeInput!): MemberType
  subscribeToUser(data: SubscribeToUserInput!): User
  unsubscribeFromUser(data: UnsubscribeFromUserInput!): User
}

type User {
  id: ID!
  firstName: String
  lastName: String
  email: String
  subscribedToUserIds: [String]
  userSubscribedTo: [User]
  subscribedToUser: [User]
  profile: Profile
  posts: [Post]
  memberType: MemberType
}

type Profile {
  id: ID!
  avatar: String
  sex: String
  birthday: Int
  country: String
  street: String
  city: String
  memberTypeId: String
  userId: ID
}

type Post {
  id: ID!
  title: String
  content: String
  userId: ID
}

type MemberType {
  id: ID!
  discount: Int
  monthPostsLimit: Int
}

input CreateUserInput {
  firstName: String!
  lastName: String!
  email: String!
}

input CreateProfileInput {
  avatar: String!
  sex: String!
  birthday: Int!
  country: String!
  street: String!
  city: String!
  memberTypeId: ID!
  userId: ID!
}

input CreatePostInput {
  title: String!
  content: String!
  userId: ID!
}

input UpdateUserInput {
  firstName: String
  lastName: String
  email: String
}

input UpdateProfileInput {
  avatar: String
  sex: String
  birthday: Int
  country: String
  street: String
  city: String
  memberTypeId: ID
  userId: ID
}

input UpdatePostInput {
  title: String
  content: String
  userId: ID
}

input UpdateMemberTypeInput {
  discount: Int
  monthPostsLimit: Int
}

input SubscribeToUserInput {
  currentUserId: ID!
  subscribeToUserId: ID!
}

input UnsubscribeFromUserInput {
  currentUserId: ID!
  unsubscribeFromUserId: ID!
}
`

func loadSchema() *ast.Schema {
	return gqlparser.MustLoadSchema(&ast.Source{
		Name:  "socialgraph.graphql",
		Input: schemaSDL,
	})
}
