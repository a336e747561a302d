package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"socialgraph/database"
	"socialgraph/graph"
	"socialgraph/model"
)

// Every possible error list
const (
	ErrorInvalidBody         = "Invalid body"
	ErrorInvalidQuery        = "Invalid query"
	ErrorMethodNotAllowed    = "Method not allowed"
	ErrorNotFound            = "Not found"
	ErrorUnableReadBody      = "Unable to read body"
	ErrorInternalServerError = "Internal server error"
)

// Handler carries the store and the resolution engine every route
// talks to
type Handler struct {
	Store  *database.Store
	Engine *graph.Engine
}

// New creates the route handler
func New(store *database.Store, engine *graph.Engine) *Handler {
	return &Handler{Store: store, Engine: engine}
}

// Index is the health route
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "OK")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.RequestError{
		Error:   status >= http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the engine's error taxonomy onto status codes:
// missing entities are 404, broken invariants are 400, anything else
// is a store fault
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var notFoundErr *graph.NotFoundError
	var conflictErr *graph.ConflictError
	if errors.As(err, &notFoundErr) {
		status = http.StatusNotFound
	} else if errors.As(err, &conflictErr) {
		status = http.StatusBadRequest
	}

	writeMessage(w, status, err.Error())
}

// decodeBody reads a JSON request body into out
func decodeBody(req *http.Request, out any) error {
	defer req.Body.Close()
	return json.NewDecoder(req.Body).Decode(out)
}

// decodeFields reads a JSON request body keeping only the allowed
// keys, so PATCH bodies merge exactly the fields the client sent
func decodeFields(req *http.Request, allowed ...string) (database.Document, error) {
	var body database.Document
	if err := decodeBody(req, &body); err != nil {
		return nil, err
	}

	fields := database.Document{}
	for _, name := range allowed {
		if value, ok := body[name]; ok {
			fields[name] = value
		}
	}

	return fields, nil
}
