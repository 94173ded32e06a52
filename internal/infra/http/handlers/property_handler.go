package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/infra/http/middleware"
	"github.com/brickmate/leadbook/internal/usecase"
)

type PropertyHandler struct {
	Leads *usecase.ManageLeadsUseCase
}

func NewPropertyHandler(leads *usecase.ManageLeadsUseCase) *PropertyHandler {
	return &PropertyHandler{Leads: leads}
}

type leadListResponse struct {
	Active   []entity.Property `json:"active"`
	Archived []entity.Property `json:"archived"`
}

func (h *PropertyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	active, archived, err := h.Leads.ListLeads(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load leads")
		return
	}

	respondJSON(w, http.StatusOK, leadListResponse{Active: active, Archived: archived})
}

func (h *PropertyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	p, err := h.Leads.FindLead(r.Context(), user.ID, id)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *PropertyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())

	var input usecase.PropertyFormInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	patch, errs := usecase.ParsePropertyForm(input)
	if len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	p, err := h.Leads.AddProperty(r.Context(), user.ID, patch)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCreated("manual")
	respondJSON(w, http.StatusCreated, p)
}

func (h *PropertyHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var input usecase.PropertyFormInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	patch, errs := usecase.ParsePropertyForm(input)
	if len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	p, err := h.Leads.EditProperty(r.Context(), user.ID, id, patch)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Delete, restore and purge are idempotent: repeating them (or aiming at an
// id in the wrong collection) responds 204 without touching anything.
func (h *PropertyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "archive", h.Leads.DeleteProperty)
}

func (h *PropertyHandler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "restore", h.Leads.RestoreProperty)
}

func (h *PropertyHandler) HandlePurge(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "purge", h.Leads.PurgeProperty)
}

func (h *PropertyHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fn func(ctx context.Context, userID, id string) (*entity.Property, error),
) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	p, err := fn(r.Context(), user.ID, id)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p != nil {
		middleware.RecordLeadTransition(name)
	}
	w.WriteHeader(http.StatusNoContent)
}

type offerStatusRequest struct {
	Status string `json:"status"`
}

func (h *PropertyHandler) HandleOfferStatus(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req offerStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	p, err := h.Leads.SetOfferStatus(r.Context(), user.ID, id, entity.OfferStatus(req.Status))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type contactedRequest struct {
	Contacted bool `json:"contacted"`
}

func (h *PropertyHandler) HandleContacted(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req contactedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	p, err := h.Leads.SetContacted(r.Context(), user.ID, id, req.Contacted)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type createdAtRequest struct {
	CreatedAt string `json:"created_at"`
}

func (h *PropertyHandler) HandleCreatedAt(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req createdAtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	createdAt, err := time.Parse(time.RFC3339, req.CreatedAt)
	if err != nil {
		if createdAt, err = time.Parse("2006-01-02", req.CreatedAt); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_payload", "created_at must be an ISO-8601 date or datetime")
			return
		}
	}

	p, err := h.Leads.SetCreatedAt(r.Context(), user.ID, id, createdAt)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *PropertyHandler) HandleNotes(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req notesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	p, err := h.Leads.UpdateNotes(r.Context(), user.ID, id, req.Notes)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type lineBreakRequest struct {
	Notes  string `json:"notes"`
	Cursor int    `json:"cursor"`
}

type lineBreakResponse struct {
	Notes  string `json:"notes"`
	Cursor int    `json:"cursor"`
}

// HandleNotesLineBreak applies the enter-key rule of the notes outline and
// hands the UI back both the new text and where to put the caret.
func (h *PropertyHandler) HandleNotesLineBreak(w http.ResponseWriter, r *http.Request) {
	var req lineBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payload", "invalid JSON")
		return
	}

	notes, cursor := usecase.InsertLineBreak(req.Notes, req.Cursor)
	respondJSON(w, http.StatusOK, lineBreakResponse{Notes: notes, Cursor: cursor})
}

func (h *PropertyHandler) HandleRefreshFinancing(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	p, err := h.Leads.RefreshFinancing(r.Context(), user.ID, id)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "not_found", "property not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func respondUseCaseError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		respondError(w, http.StatusBadRequest, de.Code, de.Message)
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
}
