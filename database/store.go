package database

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Collection names of the four entity kinds
const (
	Users       = "users"
	Profiles    = "profiles"
	Posts       = "posts"
	MemberTypes = "memberTypes"
)

// Document is one stored entity, decoded from JSON
type Document = map[string]any

// Predicate selects documents inside a collection. Key names the
// document field; exactly one of Equals (scalar equality) or InArray
// (membership in a list field) must be set.
type Predicate struct {
	Key     string
	Equals  string
	InArray string
}

// ErrNoSuchEntity is returned by Change when the id does not exist.
// Callers are expected to have checked existence beforehand, so
// hitting it means the store and the caller disagree.
var ErrNoSuchEntity = errors.New("no such entity")

// Match reports whether the document satisfies the predicate
func (p Predicate) Match(doc Document) bool {
	value, ok := doc[p.Key]
	if !ok {
		return false
	}

	if p.InArray != "" {
		list, ok := value.([]any)
		if !ok {
			return false
		}
		for _, item := range list {
			if s, ok := item.(string); ok && s == p.InArray {
				return true
			}
		}
		return false
	}

	s, ok := value.(string)
	return ok && s == p.Equals
}

// ToDocument converts any JSON-taggable value into a stored document
func ToDocument(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}

	return doc, nil
}
