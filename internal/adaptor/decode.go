package adaptor

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"movie-catalog/pkg/apperror"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into a T. The body must be exactly one
// JSON object whose keys all belong to T; numbers must match the field types.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (*T, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, apperror.Validation("request body must not exceed %d bytes", maxErr.Limit)
		}
		return nil, apperror.Validation("read request body: %v", err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperror.Validation("request body must not be empty")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	var dst *T
	if err := dec.Decode(&dst); err != nil {
		return nil, apperror.Validation("invalid request body: %v", err)
	}
	if dst == nil {
		return nil, apperror.Validation("request body must be a JSON object")
	}
	if dec.More() {
		return nil, apperror.Validation("request body must contain a single JSON object")
	}

	return dst, nil
}

// pathID reads the {id} route parameter. Routes only match digits, so the
// remaining failure is an id outside the int64 range or zero.
func pathID(r *http.Request) (int64, error) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.Validation("%v", err)
	}
	return id, nil
}
