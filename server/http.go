// Package server exposes coaching sessions over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gambol/config"
	"gambol/conversation"
	"gambol/storage"
)

const (
	errorKindSolve = "solve_failed"
	errorKindLLM   = "llm_failed"

	pingTimeout = 5 * time.Second
)

type HTTPHandler struct {
	orchestrator *conversation.Orchestrator
	registry     *Registry
	exports      *storage.ExportStorage
}

type messageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type sessionResponse struct {
	ID         string            `json:"id"`
	State      string            `json:"state"`
	Transcript []messageResponse `json:"transcript"`
}

type turnRequest struct {
	UserText string `json:"userText"`
	Reset    bool   `json:"reset"`
}

type turnResponse struct {
	Reply      string            `json:"reply"`
	Error      string            `json:"error,omitempty"`
	State      string            `json:"state"`
	Transcript []messageResponse `json:"transcript"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model"`
	Sessions int    `json:"sessions"`
	Error    string `json:"error,omitempty"`
}

type exportSavedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type exportListResponse struct {
	Exports []storage.ExportMetadata `json:"exports"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPHandler serves sessions from registry. exports may be nil, which leaves
// the export routes unregistered.
func NewHTTPHandler(orchestrator *conversation.Orchestrator, registry *Registry, exports *storage.ExportStorage) *HTTPHandler {
	return &HTTPHandler{orchestrator: orchestrator, registry: registry, exports: exports}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sessions", h.handleCreate)
	mux.HandleFunc("GET /api/sessions/{id}/transcript", h.handleTranscript)
	mux.HandleFunc("POST /api/sessions/{id}/turns", h.handleTurn)
	mux.HandleFunc("DELETE /api/sessions/{id}", h.handleDelete)
	mux.HandleFunc("GET /health", h.handleHealth)

	if h.exports != nil {
		mux.HandleFunc("POST /api/sessions/{id}/exports", h.handleExport)
		mux.HandleFunc("GET /api/exports", h.handleListExports)
		mux.HandleFunc("GET /api/exports/{id}", h.handleGetExport)
	}
}

func (h *HTTPHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, s := h.registry.Create()
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Server] Created session %s", id)
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(id, s))
}

func (h *HTTPHandler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s, ok := h.registry.Snapshot(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(id, s))
}

func (h *HTTPHandler) handleTurn(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	e, ok := h.registry.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req turnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, ok := e.begin()
	if !ok {
		writeError(w, http.StatusConflict, "a turn is already in progress for this session")
		return
	}

	reply, err := h.orchestrator.HandleTurn(r.Context(), s, conversation.Submission{Text: req.UserText, Reset: req.Reset})
	e.finish(s)

	if err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("[Server] Session %s turn failed: %v", id, err)
	}

	resp := turnResponse{
		Reply:      reply.Content,
		State:      s.State.String(),
		Transcript: toMessages(s),
	}

	switch {
	case err == nil:
	case conversation.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, conversation.ErrSolve):
		resp.Error = errorKindSolve
	case errors.Is(err, conversation.ErrLLM):
		resp.Error = errorKindLLM
	default:
		writeError(w, http.StatusInternalServerError, "turn failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.registry.Delete(id) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Server] Deleted session %s", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s, ok := h.registry.Snapshot(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	export := storage.FromSession(s, h.orchestrator.Provider().GetDisplayName())
	path, err := h.exports.Save(export)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Server] Export of session %s failed: %v", id, err)
		}
		writeError(w, http.StatusInternalServerError, "failed to save export")
		return
	}
	writeJSON(w, http.StatusCreated, exportSavedResponse{ID: export.ID, Name: export.Name, Path: path})
}

func (h *HTTPHandler) handleListExports(w http.ResponseWriter, r *http.Request) {
	exports, err := h.exports.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list exports")
		return
	}
	if exports == nil {
		exports = []storage.ExportMetadata{}
	}
	writeJSON(w, http.StatusOK, exportListResponse{Exports: exports})
}

func (h *HTTPHandler) handleGetExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.exports.Load(r.PathValue("id"))
	switch {
	case errors.Is(err, storage.ErrExportNotFound):
		writeError(w, http.StatusNotFound, "export not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to load export")
		return
	}
	writeJSON(w, http.StatusOK, export)
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	p := h.orchestrator.Provider()
	resp := healthResponse{
		Status:   "ok",
		Model:    p.GetDisplayName(),
		Sessions: h.registry.Len(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Error = err.Error()
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func toMessages(s *conversation.Session) []messageResponse {
	out := make([]messageResponse, 0, len(s.Transcript))
	for _, m := range s.Transcript {
		out = append(out, messageResponse{Role: m.Role, Content: m.Content, Timestamp: m.Timestamp})
	}
	return out
}

func toSessionResponse(id string, s *conversation.Session) sessionResponse {
	return sessionResponse{
		ID:         id,
		State:      s.State.String(),
		Transcript: toMessages(s),
	}
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
