package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"leadboard-engine/internal/approval"
	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/sheet"
	"leadboard-engine/internal/store"
)

type ApprovalHandler struct {
	DB           *sql.DB
	Updater      *approval.Updater
	LoadMessages func(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error)
}

// List serves the message queue from a fresh fetch.
func (h ApprovalHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, _, err := h.LoadMessages(r.Context())
	if err != nil {
		// Same taxonomy as dashboard tabs: a broken fetch is an empty queue,
		// not a user-facing error.
		writeJSON(w, map[string]any{"messages": []domain.MessageEntry{}, "fetchError": err.Error()})
		return
	}
	if entries == nil {
		entries = []domain.MessageEntry{}
	}
	writeJSON(w, map[string]any{"messages": entries})
}

type approvalResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// Update is the single write path. The response always carries an unambiguous
// success flag so the UI knows whether to keep or revert its optimistic state.
func (h ApprovalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req approval.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, approvalResponse{Error: "invalid json: " + err.Error()})
		return
	}
	if req.Ordinal <= 0 {
		WriteJSON(w, http.StatusBadRequest, approvalResponse{Error: "ordinal must be >= 1"})
		return
	}
	if err := approval.ValidTarget(req.Target); err != nil {
		WriteJSON(w, http.StatusBadRequest, approvalResponse{Error: "invalid_target", Details: err.Error()})
		return
	}

	// Success-side audit and the SSE event come out of the updater's
	// OnApplied hook, which knows the resolved sheet row; the handler only
	// records failures.
	err := h.Updater.Apply(r.Context(), req)

	if err != nil {
		h.auditFailure(r.Context(), req, err)
		status, code := classifyUpdateError(err)
		resp := approvalResponse{Error: code, Details: err.Error()}
		WriteJSON(w, status, resp)
		return
	}

	WriteJSON(w, http.StatusOK, approvalResponse{
		Success: true,
		Message: "approval updated",
	})
}

func (h ApprovalHandler) auditFailure(ctx context.Context, req approval.Request, err error) {
	if h.DB == nil {
		return
	}
	_ = store.RecordApproval(ctx, h.DB, store.ApprovalRecord{
		At:           time.Now().UTC(),
		Ordinal:      req.Ordinal,
		Target:       string(req.Target),
		DisplayValue: approval.DisplayValue(req.Target),
		OK:           false,
		Message:      err.Error(),
	})
}

// Audit lists recent write-path attempts.
func (h ApprovalHandler) Audit(w http.ResponseWriter, r *http.Request) {
	recs, err := store.ListApprovals(r.Context(), h.DB, 100)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if recs == nil {
		recs = []store.ApprovalRecord{}
	}
	writeJSON(w, recs)
}

func classifyUpdateError(err error) (int, string) {
	switch {
	case errors.Is(err, approval.ErrNotConfigured):
		return http.StatusServiceUnavailable, "sink_not_configured"
	case errors.Is(err, approval.ErrRowNotFound):
		return http.StatusConflict, "row_not_found"
	case errors.Is(err, approval.ErrTerminalState):
		return http.StatusConflict, "message_already_sent"
	case errors.Is(err, approval.ErrInFlight):
		return http.StatusConflict, "update_in_flight"
	default:
		return http.StatusBadGateway, "sink_error"
	}
}
