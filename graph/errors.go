package graph

// NotFoundError means an entity the operation requires does not exist
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError means a uniqueness or state invariant would be
// violated (duplicate profile, duplicate subscription, unsubscribe
// while not subscribed)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func notFound(message string) error {
	return &NotFoundError{Message: message}
}

func conflict(message string) error {
	return &ConflictError{Message: message}
}
