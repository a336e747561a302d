package router

import (
	"net/http"
	"strings"

	"socialgraph/database"
	"socialgraph/model"
)

// Users routes /users/* onto the right operation: collection GET/POST,
// single-user GET/PATCH/DELETE, and the subscribeTo/unsubscribeFrom
// sub-routes
func (h *Handler) Users(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(strings.TrimPrefix(req.URL.Path, "/users"), "/")
	parts := strings.Split(path, "/")

	switch {
	case path == "" && req.Method == http.MethodGet:
		h.list(w, database.Users)
	case path == "" && req.Method == http.MethodPost:
		h.createUser(w, req)
	case len(parts) == 1 && req.Method == http.MethodGet:
		h.getOne(w, database.Users, parts[0])
	case len(parts) == 1 && req.Method == http.MethodPatch:
		h.updateUser(w, req, parts[0])
	case len(parts) == 1 && req.Method == http.MethodDelete:
		h.deleteUser(w, req, parts[0])
	case len(parts) == 2 && parts[1] == "subscribeTo" && req.Method == http.MethodPost:
		h.subscribe(w, req, parts[0])
	case len(parts) == 2 && parts[1] == "unsubscribeFrom" && req.Method == http.MethodPost:
		h.unsubscribe(w, req, parts[0])
	default:
		writeMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (h *Handler) createUser(w http.ResponseWriter, req *http.Request) {
	var body model.CreateUserBody
	if err := decodeBody(req, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if body.FirstName == "" || body.LastName == "" || body.Email == "" {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	doc, err := database.ToDocument(body)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.Engine.CreateUser(doc)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, req *http.Request, id string) {
	fields, err := decodeFields(req, "firstName", "lastName", "email")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	user, err := h.Engine.UpdateUser(id, fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, req *http.Request, id string) {
	user, err := h.Engine.DeleteUser(req.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) subscribe(w http.ResponseWriter, req *http.Request, id string) {
	var body model.SubscribeBody
	if err := decodeBody(req, &body); err != nil || body.UserId == "" {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	user, err := h.Engine.Subscribe(id, body.UserId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) unsubscribe(w http.ResponseWriter, req *http.Request, id string) {
	var body model.SubscribeBody
	if err := decodeBody(req, &body); err != nil || body.UserId == "" {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	user, err := h.Engine.Unsubscribe(id, body.UserId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
