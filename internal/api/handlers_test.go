package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/almanac-api/internal/api/middleware"
	"github.com/phrazzld/almanac-api/internal/domain"
	"github.com/phrazzld/almanac-api/internal/platform/memory"
	"github.com/phrazzld/almanac-api/internal/service"
)

// newTestServer wires a controller backed by a fresh in-memory
// registry into the same routes the server exposes.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := memory.NewRegistry()
	controller := service.NewController(registry, registry, logger)

	accounts := NewAccountHandler(controller, logger)
	calendars := NewCalendarHandler(controller, logger)
	entries := NewEntryHandler(controller, logger)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware)

	r.Post("/accounts", accounts.SignUp)
	r.Post("/session", accounts.Login)
	r.Get("/session", accounts.CurrentAccount)
	r.Delete("/session", accounts.Logout)
	r.Delete("/session/account", accounts.Deactivate)

	r.Post("/calendars", calendars.Create)
	r.Get("/calendars/public", calendars.ListPublic)
	r.Get("/calendars/private", calendars.ListPrivate)
	r.Get("/calendars/current", calendars.Current)
	r.Delete("/calendars/current", calendars.RemoveCurrent)
	r.Post("/calendars/copy", calendars.Copy)
	r.Post("/calendars/{id}/select", calendars.Select)

	r.Post("/entries", entries.Add)
	r.Get("/entries", entries.List)
	r.Delete("/entries", entries.RemoveByTitle)
	r.Put("/entries/{id}", entries.Edit)
	r.Delete("/entries/{id}", entries.Remove)
	r.Post("/entries/{id}/complete", entries.Complete)
	r.Put("/selection", entries.SetSelection)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func signUpAndLogin(t *testing.T, server *httptest.Server, username, password string) {
	t.Helper()

	resp := doJSON(t, server, http.MethodPost, "/accounts", SignUpRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/session", LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func createAndSelectCalendar(t *testing.T, server *httptest.Server, name string) CalendarResponse {
	t.Helper()

	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       name,
		Visibility: "private",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var calendar CalendarResponse
	decodeBody(t, resp, &calendar)

	resp = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/calendars/%s/select", calendar.ID), SelectCalendarRequest{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return calendar
}

func TestSignUpEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/accounts", SignUpRequest{
		Username: "alice",
		Password: "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var account AccountResponse
	decodeBody(t, resp, &account)
	assert.Equal(t, "alice", account.Username)
	assert.True(t, account.Active)

	// Duplicate usernames are refused even against deactivated accounts.
	resp = doJSON(t, server, http.MethodPost, "/accounts", SignUpRequest{
		Username: "alice",
		Password: "other",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSignUpValidation(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/accounts", SignUpRequest{
		Username: "",
		Password: "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/accounts", SignUpRequest{
		Username: "alice",
		Password: "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/session", LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/session", LoginRequest{
		Username: "alice",
		Password: "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var account AccountResponse
	decodeBody(t, resp, &account)
	assert.Equal(t, "alice", account.Username)
}

func TestLogoutClearsSession(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")

	resp := doJSON(t, server, http.MethodDelete, "/session", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeactivateEndpoint(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")

	resp := doJSON(t, server, http.MethodDelete, "/session/account", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The deactivated account can no longer sign in.
	resp = doJSON(t, server, http.MethodPost, "/session", LoginRequest{
		Username: "alice",
		Password: "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Its username stays taken.
	resp = doJSON(t, server, http.MethodPost, "/accounts", SignUpRequest{
		Username: "alice",
		Password: "secret",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateCalendarRequiresSession(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       "work",
		Visibility: "private",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCalendarDuplicateNames(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")

	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       "work",
		Visibility: "private",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same name and visibility is a conflict.
	resp = doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       "work",
		Visibility: "private",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Same name under the other visibility is fine.
	resp = doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       "work",
		Visibility: "public",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestFamilyCalendarSelect(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")

	passcode := 4321
	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:     "household",
		Family:   true,
		Passcode: &passcode,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var calendar CalendarResponse
	decodeBody(t, resp, &calendar)
	assert.True(t, calendar.Family)
	assert.Equal(t, "public", calendar.Visibility)

	// Selecting without a passcode is forbidden.
	resp = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/calendars/%s/select", calendar.ID), SelectCalendarRequest{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	wrong := 9999
	resp = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/calendars/%s/select", calendar.ID), SelectCalendarRequest{Passcode: &wrong})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/calendars/%s/select", calendar.ID), SelectCalendarRequest{Passcode: &passcode})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFamilyCalendarRequiresPasscode(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")

	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:   "household",
		Family: true,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPrivateCalendarOwnership(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")

	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       "diary",
		Visibility: "private",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var calendar CalendarResponse
	decodeBody(t, resp, &calendar)

	// Another account cannot open alice's private calendar.
	resp = doJSON(t, server, http.MethodDelete, "/session", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	signUpAndLogin(t, server, "bob", "hunter2")

	resp = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/calendars/%s/select", calendar.ID), SelectCalendarRequest{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCopyCalendarEndpoint(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	calendar := createAndSelectCalendarWithVisibility(t, server, "holidays", "public")

	resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:      "event",
		Title:     "new year",
		Date:      "2025-01-01",
		Venue:     "town square",
		StartTime: "00:00",
		EndTime:   "01:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/calendars/copy", CopyCalendarRequest{
		SourceName: calendar.Name,
		CopyName:   "my holidays",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var clone CalendarResponse
	decodeBody(t, resp, &clone)
	assert.Equal(t, "my holidays", clone.Name)
	assert.Equal(t, "private", clone.Visibility)
	require.Len(t, clone.Entries, 1)
	assert.Equal(t, "new year", clone.Entries[0].Title)
	assert.NotEqual(t, calendar.ID, clone.ID)
}

func createAndSelectCalendarWithVisibility(
	t *testing.T,
	server *httptest.Server,
	name, visibility string,
) CalendarResponse {
	t.Helper()

	resp := doJSON(t, server, http.MethodPost, "/calendars", CreateCalendarRequest{
		Name:       name,
		Visibility: visibility,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var calendar CalendarResponse
	decodeBody(t, resp, &calendar)

	resp = doJSON(t, server, http.MethodPost,
		fmt.Sprintf("/calendars/%s/select", calendar.ID), SelectCalendarRequest{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return calendar
}

func TestRemoveCurrentCalendar(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "scratch")

	resp := doJSON(t, server, http.MethodDelete, "/calendars/current", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/calendars/current", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/calendars/private", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var calendars []CalendarResponse
	decodeBody(t, resp, &calendars)
	assert.Empty(t, calendars)
}

func TestAddEntryEndpoint(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "work")

	resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:      "meeting",
		Title:     "standup",
		Date:      "2025-06-02",
		Venue:     "room 4",
		Organizer: "alice",
		StartTime: "09:00",
		EndTime:   "09:15",
		Modality:  "in-person",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry EntryResponse
	decodeBody(t, resp, &entry)
	assert.Equal(t, "meeting", entry.Type)
	assert.Equal(t, "standup", entry.Title)
	assert.NotEmpty(t, entry.Display)
}

func TestAddEntryRejectsBadDate(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "work")

	resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:  "journal",
		Title: "today",
		Date:  "2025-02-31",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJournalUniquePerDay(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "diary")

	resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:        "journal",
		Title:       "morning",
		Description: "coffee",
		Date:        "2025-06-02",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:        "journal",
		Title:       "evening",
		Description: "tea",
		Date:        "2025-06-02",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestEditEntryEndpoint(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "work")

	resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:      "event",
		Title:     "offsite",
		Date:      "2025-06-02",
		Venue:     "lake house",
		StartTime: "10:00",
		EndTime:   "16:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entry EntryResponse
	decodeBody(t, resp, &entry)

	resp = doJSON(t, server, http.MethodPut, "/entries/"+entry.ID.String(), EntryRequest{
		Type:      "event",
		Title:     "offsite (moved)",
		Date:      "2025-06-09",
		Venue:     "lake house",
		StartTime: "10:00",
		EndTime:   "16:00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var edited EntryResponse
	decodeBody(t, resp, &edited)
	assert.Equal(t, entry.ID, edited.ID)
	assert.Equal(t, "offsite (moved)", edited.Title)
	assert.Equal(t, "2025-06-09", edited.Date)
}

func TestRemoveEntryByTitle(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "work")

	for _, title := range []string{"dup", "dup"} {
		resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
			Type:      "event",
			Title:     title,
			Date:      "2025-06-02",
			Venue:     "here",
			StartTime: "12:00",
			EndTime:   "13:00",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, server, http.MethodDelete, "/entries?title=dup", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, server, http.MethodGet, "/entries?date=2025-06-02", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []EntryResponse
	decodeBody(t, resp, &entries)
	assert.Len(t, entries, 1)

	resp = doJSON(t, server, http.MethodDelete, "/entries?title=missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCompleteTaskEndpoint(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "chores")

	resp := doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:     "task",
		Title:    "mow the lawn",
		Date:     "2025-06-07",
		Priority: "low",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task EntryResponse
	decodeBody(t, resp, &task)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "alice", task.CreatedBy)

	resp = doJSON(t, server, http.MethodPost, "/entries/"+task.ID.String()+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var done EntryResponse
	decodeBody(t, resp, &done)
	assert.Equal(t, "done", done.Status)
	assert.Equal(t, "alice", done.FinishedBy)

	// Completing twice is a conflict.
	resp = doJSON(t, server, http.MethodPost, "/entries/"+task.ID.String()+"/complete", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSelectionEndpoint(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "work")

	year, month, day := 2025, 6, 2
	resp := doJSON(t, server, http.MethodPut, "/selection", SelectionRequest{
		Year:  &year,
		Month: &month,
		Day:   &day,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/entries", EntryRequest{
		Type:      "event",
		Title:     "kickoff",
		Date:      "2025-06-02",
		Venue:     "hq",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Without a date query the selected date drives the listing.
	resp = doJSON(t, server, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []EntryResponse
	decodeBody(t, resp, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "kickoff", entries[0].Title)

	badMonth := 13
	resp = doJSON(t, server, http.MethodPut, "/selection", SelectionRequest{Month: &badMonth})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The rejected component left the prior selection in place.
	resp = doJSON(t, server, http.MethodGet, "/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &entries)
	assert.Len(t, entries, 1)
}

// Rendering a response must never read the live calendar while a
// concurrent request appends entries to it. Run with the race detector
// enabled.
func TestConcurrentAddAndRenderCalendar(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := memory.NewRegistry()
	controller := service.NewController(registry, registry, logger)

	ctx := context.Background()
	_, err := controller.SignUp(ctx, "alice", "secret")
	require.NoError(t, err)
	_, err = controller.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	calendar, err := controller.CreateCalendar(ctx, "alice", "work", domain.VisibilityPrivate)
	require.NoError(t, err)
	_, err = controller.SelectCalendar(ctx, calendar.ID)
	require.NoError(t, err)

	date, err := domain.ParseDate("2025-06-01")
	require.NoError(t, err)

	const writes = 100
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < writes; i++ {
			_, err := controller.AddEntry(ctx, service.EntryInput{
				Type:      domain.EntryTypeEvent,
				Title:     "standup",
				Date:      date,
				Venue:     "room 4",
				StartTime: "09:00",
				EndTime:   "09:15",
			})
			if err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			resp := NewCalendarResponse(controller.CurrentCalendar())
			assert.Len(t, resp.Entries, writes)
			return
		default:
			if current := controller.CurrentCalendar(); current != nil {
				_ = NewCalendarResponse(current)
			}
		}
	}
}

func TestUUIDPathValidation(t *testing.T) {
	server := newTestServer(t)
	signUpAndLogin(t, server, "alice", "secret")
	createAndSelectCalendar(t, server, "work")

	resp := doJSON(t, server, http.MethodDelete, "/entries/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
