package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/crimson-sun/errboard/internal/viewerr"
)

// Codes for failures outside the view taxonomy.
const (
	codeBadRequest        = "bad_request"
	codeUnauthorized      = "unauthorized"
	codeReloadFailed      = "reload_failed"
	codeReloadUnavailable = "reload_unavailable"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	View    string `json:"view,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	slog.Debug("api error", "status", status, "code", body.Code, "message", body.Message)
	writeJSON(w, status, body)
}

// viewErrorBody maps a selection failure to its wire form.
func viewErrorBody(err error, selected string) errorBody {
	if ve := viewerr.As(err); ve != nil {
		return errorBody{Code: ve.Code, Message: ve.Message, View: ve.View}
	}
	return errorBody{Code: viewerr.CodeInternal, Message: "failed to build chart", View: selected}
}

// statusFor maps view error codes to HTTP statuses.
func statusFor(code string) int {
	switch code {
	case viewerr.CodeUnsupportedView:
		return http.StatusBadRequest
	case viewerr.CodeNoData:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
