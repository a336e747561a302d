package router

import (
	"net/http"
	"strings"

	"socialgraph/database"
	"socialgraph/model"
)

var profileFields = []string{"avatar", "sex", "birthday", "country", "street", "city", "memberTypeId", "userId"}

// Profiles routes /profiles/* onto collection GET/POST and
// single-profile GET/PATCH/DELETE
func (h *Handler) Profiles(w http.ResponseWriter, req *http.Request) {
	id := strings.Trim(strings.TrimPrefix(req.URL.Path, "/profiles"), "/")

	switch {
	case id == "" && req.Method == http.MethodGet:
		h.list(w, database.Profiles)
	case id == "" && req.Method == http.MethodPost:
		h.createProfile(w, req)
	case id != "" && req.Method == http.MethodGet:
		h.getOne(w, database.Profiles, id)
	case id != "" && req.Method == http.MethodPatch:
		h.updateProfile(w, req, id)
	case id != "" && req.Method == http.MethodDelete:
		h.deleteProfile(w, id)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (h *Handler) list(w http.ResponseWriter, collection string) {
	docs, err := h.Store.FindMany(collection, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) getOne(w http.ResponseWriter, collection string, id string) {
	doc, err := h.Store.FindOne(collection, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		writeError(w, err)
		return
	}
	if doc == nil {
		writeMessage(w, http.StatusNotFound, ErrorNotFound)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) createProfile(w http.ResponseWriter, req *http.Request) {
	var body model.CreateProfileBody
	if err := decodeBody(req, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if body.UserId == "" || body.MemberTypeId == "" {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	doc, err := database.ToDocument(body)
	if err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.Engine.CreateProfile(doc)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// updateProfile merges the provided fields into an existing profile.
// PATCH bodies are partial, so only the profile itself is checked here;
// the payload-user check belongs to the graphql mutation.
func (h *Handler) updateProfile(w http.ResponseWriter, req *http.Request, id string) {
	fields, err := decodeFields(req, profileFields...)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	profile, err := h.Store.FindOne(database.Profiles, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		writeMessage(w, http.StatusNotFound, ErrorNotFound)
		return
	}

	updated, err := h.Store.Change(database.Profiles, id, fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, id string) {
	profile, err := h.Engine.DeleteProfile(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
