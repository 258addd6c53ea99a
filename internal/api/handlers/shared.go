package handlers

import (
	"encoding/json"
	"net/http"
)

// parseJSON decodes the request body into the given request type.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}
