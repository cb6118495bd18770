package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

type chatRequest struct {
	Message      string `json:"message"`
	DocumentID   string `json:"document_id,omitempty"`
	DocumentText string `json:"document_text,omitempty"`
}

// handleChat answers a follow-up question about a document. The
// document is referenced either by the ID of a prior upload or by
// inline text. A missing message or document is the only rejection;
// provider failures degrade to a passage dump, never an error.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		jsonError(w, "message is required", http.StatusBadRequest)
		return
	}

	documentText := req.DocumentText
	if req.DocumentID != "" {
		doc := s.store.Get(req.DocumentID)
		if doc == nil {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		documentText = doc.Text
	}
	if req.DocumentID == "" && req.DocumentText == "" {
		jsonError(w, "document_id or document_text is required", http.StatusBadRequest)
		return
	}

	response, model := s.assistant.Chat(r.Context(), req.Message, documentText)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"response": response,
		"model":    model,
	})
}
