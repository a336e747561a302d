package router

import (
	"net/http"
	"strings"

	"socialgraph/database"
)

// MemberTypes routes /member-types/* onto collection GET,
// single-member-type GET and PATCH. Member types are seeded, never
// created or deleted over the wire.
func (h *Handler) MemberTypes(w http.ResponseWriter, req *http.Request) {
	id := strings.Trim(strings.TrimPrefix(req.URL.Path, "/member-types"), "/")

	switch {
	case id == "" && req.Method == http.MethodGet:
		h.list(w, database.MemberTypes)
	case id != "" && req.Method == http.MethodGet:
		h.getOne(w, database.MemberTypes, id)
	case id != "" && req.Method == http.MethodPatch:
		h.updateMemberType(w, req, id)
	default:
		writeMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
	}
}

func (h *Handler) updateMemberType(w http.ResponseWriter, req *http.Request, id string) {
	fields, err := decodeFields(req, "discount", "monthPostsLimit")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorUnableReadBody)
		return
	}
	if len(fields) == 0 {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}

	memberType, err := h.Engine.UpdateMemberType(id, fields)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, memberType)
}
