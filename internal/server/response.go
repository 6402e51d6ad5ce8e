package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/derekprior/rrsched/internal/store"
)

// Response is the envelope wrapping every JSON reply.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Error     *APIError `json:"error"`
}

// APIError is the error body of a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	CodeInvalidParameters     = "invalid_parameters"
	CodeUnsupportedParameters = "unsupported_parameters"
	CodeBadRequest            = "bad_request"
	CodeNotFound              = "not_found"
	CodeInternal              = "internal_error"
)

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil)
}

func respondCreated(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusCreated, reqID, data, nil)
}

func respondError(w http.ResponseWriter, reqID string, status int, code, message string) {
	respondJSON(w, status, reqID, nil, &APIError{Code: code, Message: message})
}

// respondErr maps err onto a status code and error code.
func respondErr(w http.ResponseWriter, reqID string, err error) {
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		respondError(w, reqID, http.StatusBadRequest, CodeInvalidParameters, err.Error())
	case errors.Is(err, schedule.ErrUnsupportedParameters):
		respondError(w, reqID, http.StatusBadRequest, CodeUnsupportedParameters, err.Error())
	case errors.Is(err, store.ErrNotFound):
		respondError(w, reqID, http.StatusNotFound, CodeNotFound, err.Error())
	default:
		respondError(w, reqID, http.StatusInternalServerError, CodeInternal, err.Error())
	}
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, apiErr *APIError) {
	resp := Response{
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	} else {
		resp.Status = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
