package model

// User struct defines how a stored user must be
type User struct {
	Id                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	SubscribedToUserIds []string `json:"subscribedToUserIds"`
}

// CreateUserBody defines the body when creating a new user
type CreateUserBody struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SubscribeBody defines the body of the subscribeTo
// and unsubscribeFrom routes
type SubscribeBody struct {
	UserId string `json:"userId"`
}
