package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"careerassign/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath extracts the path segment at the given index as a UUID, counting
// from the first segment after the leading slash.
func idFromPath(r *http.Request, index int) (common.UUID, error) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index < 0 || index >= len(parts) {
		return "", common.NewError(common.CodeValidation, "missing id in path", nil)
	}
	id, err := common.ParseUUID(parts[index])
	if err != nil {
		return "", common.NewError(common.CodeValidation, "invalid id in path", err)
	}
	return id, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
