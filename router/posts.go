package router

import (
	"net/http"
	"strings"

	"socialgraph/database"
	"socialgraph/model"
)

// Posts routes /posts/* onto collection GET/POST and single-post
// GET/PATCH/DELETE
func (h *Handler) Posts(w http.ResponseWriter, req *http.Request) {
	id := strings.Trim(strings.TrimPrefix(req.URL.Path, "/posts"), "/")

	switch {
	case id == "" && req.Method == http.MethodGet:
		h.list(w, database.Posts)
	case id == "" && req.Method == http.MethodPost:
		h.createPost(w, req)
	case id != "" && req.Method == http.MethodGet:
		h.getOne(w, database.Posts, id)
	case id != "" && req.Method == http.MethodPatch:
		h.updatePost(w, req, id)
	case id != "" && req.Method == http.MethodDelete:
		h.deletePost(w, id)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (h *Handler) createPost(w http.ResponseWriter, req *http.Request) {
	var body model.CreatePostBody
	if err := decodeBody(req, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if body.Title == "" || body.UserId == "" {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	doc, err := database.ToDocument(body)
	if err != nil {
		writeError(w, err)
		return
	}

	post, err := h.Engine.CreatePost(doc)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// updatePost merges the provided fields into an existing post. PATCH
// bodies are partial, so only the post itself is checked here; the
// payload-user check belongs to the graphql mutation.
func (h *Handler) updatePost(w http.ResponseWriter, req *http.Request, id string) {
	fields, err := decodeFields(req, "title", "content", "userId")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	post, err := h.Store.FindOne(database.Posts, database.Predicate{Key: "id", Equals: id})
	if err != nil {
		writeError(w, err)
		return
	}
	if post == nil {
		writeMessage(w, http.StatusNotFound, ErrorNotFound)
		return
	}

	updated, err := h.Store.Change(database.Posts, id, fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deletePost(w http.ResponseWriter, id string) {
	post, err := h.Engine.DeletePost(id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}
