package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"corkboard/app/repositories"
	"corkboard/app/services"

	"github.com/sirupsen/logrus"
)

// wantsJSON reports whether the client asked for a JSON response
func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/json"
}

// isJSONBody reports whether the request body is JSON rather than a form
func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// statusForError maps the error taxonomy onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case services.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// refuse reports a failed operation without crashing the request flow. JSON
// clients get the mapped status; browser flows get a 404 page for missing
// resources and a redirect back to a sensible page for everything else.
// Unexpected errors are logged and surfaced as a generic failure.
func refuse(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("operation failed")
		message = "something went wrong"
	}

	if wantsJSON(r) {
		sendJSON(w, status, map[string]string{"error": message})
		return
	}

	if status == http.StatusNotFound {
		http.NotFound(w, r)
		return
	}
	if ref := r.Referer(); ref != "" {
		fallback = ref
	}
	http.Redirect(w, r, fallback, http.StatusSeeOther)
}

// decodeFields pulls named fields out of a JSON body or a posted form
func decodeFields(r *http.Request, names ...string) (map[string]string, error) {
	fields := make(map[string]string, len(names))

	if isJSONBody(r) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		for _, name := range names {
			fields[name] = body[name]
		}
		return fields, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for _, name := range names {
		fields[name] = r.FormValue(name)
	}
	return fields, nil
}
