package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/almanac-api/internal/api/shared"
	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/service"
)

// EntryHandler handles entry-level API requests against the session's
// current calendar, plus the date selection endpoints.
type EntryHandler struct {
	controller *service.Controller
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewEntryHandler creates a new EntryHandler with the given dependencies.
func NewEntryHandler(controller *service.Controller, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		controller: controller,
		validator:  validator.New(),
		logger:     logger.With("component", "entry_handler"),
	}
}

// decodeEntryInput parses and validates an EntryRequest body into a
// service.EntryInput. The date must be in YYYY-MM-DD form; per-type
// field requirements are left to domain validation.
func (h *EntryHandler) decodeEntryInput(r *http.Request) (service.EntryInput, error) {
	var req EntryRequest

	if err := DecodeJSON(r, &req); err != nil {
		return service.EntryInput{}, domain.NewValidationError("body", "invalid request format", domain.ErrValidation)
	}
	if err := h.validator.Struct(req); err != nil {
		return service.EntryInput{}, domain.NewValidationError("body", err.Error(), domain.ErrValidation)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return service.EntryInput{}, domain.NewValidationError("date", err.Error(), domain.ErrInvalidDate)
	}

	return service.EntryInput{
		Type:        domain.EntryType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Venue:       req.Venue,
		Organizer:   req.Organizer,
		StartTime:   domain.ClockTime(req.StartTime),
		EndTime:     domain.ClockTime(req.EndTime),
		Modality:    req.Modality,
		Link:        req.Link,
		Priority:    domain.TaskPriority(req.Priority),
	}, nil
}

// Add handles POST /entries.
func (h *EntryHandler) Add(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeEntryInput(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.controller.AddEntry(r.Context(), input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewEntryResponse(entry))
}

// Edit handles PUT /entries/{id}. The replacement keeps the old
// entry's ID and display position.
func (h *EntryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	input, err := h.decodeEntryInput(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.controller.EditEntry(r.Context(), id, input)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewEntryResponse(entry))
}

// Remove handles DELETE /entries/{id}.
func (h *EntryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.controller.RemoveEntry(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveByTitle handles DELETE /entries?title=...: it removes the first
// entry in display order whose title matches exactly.
func (h *EntryHandler) RemoveByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		HandleAPIError(w, r,
			domain.NewValidationError("title", "title query parameter is required", domain.ErrValidation), "")
		return
	}

	if err := h.controller.RemoveEntryByTitle(r.Context(), title); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Complete handles POST /entries/{id}/complete: it marks a pending
// task done, recording the session account as the finisher.
func (h *EntryHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.controller.CompleteTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewEntryResponse(entry))
}

// List handles GET /entries. With a date query parameter it returns
// the current calendar's entries on that exact date; without one it
// uses the session's selected date, which must form a real calendar
// day.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	var entries []*domain.Entry

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := domain.ParseDate(raw)
		if err != nil {
			HandleAPIError(w, r,
				domain.NewValidationError("date", err.Error(), domain.ErrInvalidDate), "")
			return
		}
		entries, err = h.controller.EntriesOn(r.Context(), date)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	} else {
		var err error
		entries, err = h.controller.EntriesOnSelectedDate(r.Context())
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewEntryResponse(entry))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// SetSelection handles PUT /selection: each present component is
// range-checked on its own, and a rejected component leaves the prior
// selection in place.
func (h *EntryHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest

	if err := DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if req.Year != nil {
		if err := h.controller.SetSelectedYear(*req.Year); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}
	if req.Month != nil {
		if err := h.controller.SetSelectedMonth(*req.Month); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}
	if req.Day != nil {
		if err := h.controller.SetSelectedDay(*req.Day); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
