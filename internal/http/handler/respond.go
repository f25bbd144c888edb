package handler

import (
	"encoding/json"
	"net/http"

	"eduledger/internal/http/handler/middleware"

	"go.uber.org/zap"
)

// responder is the single place where responses and error envelopes are
// shaped. Error detail is only exposed outside production.
type responder struct {
	logs       *zap.SugaredLogger
	production bool
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h responder) respondError(w http.ResponseWriter, message string, err error, code int, requestId string) {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil && !h.production {
		resp.Error = err.Error()
	}

	h.respond(w, resp, code, requestId)
}

func requestID(r *http.Request) string {
	requestId, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestId
}
