package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"careerassign/internal/common"
)

// ErrorCollector receives every error code served, so the metrics endpoint can
// report failure counts without the response package depending on metrics.
type ErrorCollector interface {
	ObserveError(code common.Code)
}

var collector ErrorCollector

func SetErrorCollector(c ErrorCollector) {
	collector = c
}

type errorBody struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeInternal
	message := "internal error"
	var fields map[string]string

	var appErr *common.Error
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
		fields = appErr.Fields
	}
	if collector != nil {
		collector.ObserveError(code)
	}
	JSON(w, statusFor(code), errorBody{Error: message, Code: string(code), Fields: fields})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
