package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/almanac-api/internal/api/shared"
	"github.com/phrazzld/almanac-api/internal/service"
)

// AccountHandler handles account and session API requests.
type AccountHandler struct {
	controller *service.Controller
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(controller *service.Controller, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		controller: controller,
		validator:  validator.New(),
		logger:     logger.With("component", "account_handler"),
	}
}

// SignUp handles the /accounts endpoint.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest

	if err := DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	account, err := h.controller.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewAccountResponse(account))
}

// Login handles the /session endpoint. A successful login makes the
// account the session's signed-in account.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation error: "+err.Error(), err)
		return
	}

	account, err := h.controller.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewAccountResponse(account))
}

// Logout handles DELETE /session: it clears the signed-in account and
// the selected calendar.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.controller.Logout()
	w.WriteHeader(http.StatusNoContent)
}

// Deactivate handles DELETE /session/account: it soft-deletes the
// signed-in account. The username stays reserved forever.
func (h *AccountHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Deactivate(r.Context()); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentAccount handles GET /session: it returns the signed-in
// account, or 401 when the session is empty.
func (h *AccountHandler) CurrentAccount(w http.ResponseWriter, r *http.Request) {
	account := h.controller.CurrentAccount()
	if account == nil {
		HandleAPIError(w, r, service.ErrNotAuthenticated, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewAccountResponse(account))
}
