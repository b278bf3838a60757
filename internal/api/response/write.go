package response

import (
	"encoding/json"
	"net/http"
)

const encodeFailureBody = `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`

// JSON marshals data and writes it with the given status. The body is
// marshaled before the header goes out, so an encoding failure can
// still surface as a 500 instead of a truncated response.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.WriteHeader(status)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(encodeFailureBody))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// NoContent writes an empty 204 response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
