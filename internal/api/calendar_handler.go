package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/almanac-api/internal/api/shared"
	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/service"
)

// CalendarHandler handles calendar-level API requests.
type CalendarHandler struct {
	controller *service.Controller
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewCalendarHandler creates a new CalendarHandler with the given dependencies.
func NewCalendarHandler(controller *service.Controller, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		controller: controller,
		validator:  validator.New(),
		logger:     logger.With("component", "calendar_handler"),
	}
}

// Create handles POST /calendars. The calendar is owned by the
// signed-in account; family calendars carry a numeric passcode and go
// through the same duplicate check as everything else.
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCalendarRequest

	if err := DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	account := h.controller.CurrentAccount()
	if account == nil {
		HandleAPIError(w, r, service.ErrNotAuthenticated, "")
		return
	}

	var calendar *domain.Calendar
	var err error
	if req.Family {
		calendar, err = h.controller.CreateFamilyCalendar(r.Context(), account.Username, req.Name, *req.Passcode)
	} else {
		calendar, err = h.controller.CreateCalendar(
			r.Context(), account.Username, req.Name, domain.Visibility(req.Visibility))
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCalendarResponse(calendar))
}

// Select handles POST /calendars/{id}/select. Family calendars need
// the passcode in the body; private calendars must be owned by the
// signed-in account.
func (h *CalendarHandler) Select(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// An empty body means a plain select without a passcode.
	var req SelectCalendarRequest
	if err := DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	var calendar *domain.Calendar
	if req.Passcode != nil {
		calendar, err = h.controller.SelectFamilyCalendar(r.Context(), id, *req.Passcode)
	} else {
		calendar, err = h.controller.SelectCalendar(r.Context(), id)
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCalendarResponse(calendar))
}

// Current handles GET /calendars/current.
func (h *CalendarHandler) Current(w http.ResponseWriter, r *http.Request) {
	calendar := h.controller.CurrentCalendar()
	if calendar == nil {
		HandleAPIError(w, r, service.ErrNoCalendarSelected, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewCalendarResponse(calendar))
}

// RemoveCurrent handles DELETE /calendars/current: it deletes the
// selected calendar, drops it from the owner's set, and clears the
// selection.
func (h *CalendarHandler) RemoveCurrent(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.RemoveCurrentCalendar(r.Context()); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Copy handles POST /calendars/copy: it duplicates a public calendar
// into a private copy owned by the signed-in account.
func (h *CalendarHandler) Copy(w http.ResponseWriter, r *http.Request) {
	var req CopyCalendarRequest

	if err := DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	clone, err := h.controller.CopyCalendar(r.Context(), req.SourceName, req.CopyName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewCalendarResponse(clone))
}

// ListPublic handles GET /calendars/public.
func (h *CalendarHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.controller.PublicCalendars(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respondWithCalendarList(w, r, calendars)
}

// ListPrivate handles GET /calendars/private: the private calendars
// owned by the signed-in account.
func (h *CalendarHandler) ListPrivate(w http.ResponseWriter, r *http.Request) {
	calendars, err := h.controller.PrivateCalendars(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respondWithCalendarList(w, r, calendars)
}

func (h *CalendarHandler) respondWithCalendarList(
	w http.ResponseWriter,
	r *http.Request,
	calendars []*domain.Calendar,
) {
	responses := make([]CalendarResponse, 0, len(calendars))
	for _, calendar := range calendars {
		responses = append(responses, NewCalendarResponse(calendar))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}
