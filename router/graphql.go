package router

import (
	"encoding/json"
	"net/http"

	"socialgraph/graph"
)

// GraphQL is the single query/mutation endpoint. Whatever the engine
// answers goes back with status 200; validation findings travel inside
// the response's errors list, the way graphql clients expect.
func (h *Handler) GraphQL(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeMessage(w, http.StatusMethodNotAllowed, ErrorMethodNotAllowed)
		return
	}

	defer req.Body.Close()
	decoder := json.NewDecoder(req.Body)
	// keep Int variables as json.Number so coercion can tell them
	// apart from floats
	decoder.UseNumber()

	var gqlReq graph.Request
	if err := decoder.Decode(&gqlReq); err != nil {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidBody)
		return
	}
	if gqlReq.Query == "" {
		writeMessage(w, http.StatusBadRequest, ErrorInvalidQuery)
		return
	}

	writeJSON(w, http.StatusOK, h.Engine.Do(req.Context(), gqlReq))
}
