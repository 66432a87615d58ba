// Package api exposes HTTP handlers for the activities signup service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/activities/internal/domain"
)

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry domain.Registry
}

// NewHandler builds a Handler around the injected registry.
func NewHandler(registry domain.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	h.listActivities(w, r)
}

// activityAction routes /activities/{name}/signup and
// /activities/{name}/unregister. The mux hands the path over already
// URL-decoded, so names with spaces arrive intact.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx < 0 {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}

	name := rest[:idx]
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity name")
		return
	}

	switch rest[idx+1:] {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.unregister(w, r, name)
	default:
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.registry.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	err := h.registry.Signup(r.Context(), name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadySignedUp):
		writeError(w, http.StatusBadRequest, "conflict", "Student already signed up for this activity")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	default:
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Signed up %s for %s", email, name),
		})
	}
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email, ok := requireEmail(w, r)
	if !ok {
		return
	}

	err := h.registry.Unregister(r.Context(), name, email)
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "invalid_request", "Student not registered for this activity")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	default:
		writeJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("Unregistered %s from %s", email, name),
		})
	}
}

// requireEmail extracts the email query parameter, rejecting the request when
// it is missing or blank.
func requireEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "email is required")
		return "", false
	}
	return email, true
}

// ActivityView exposes one activity on the wire.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
