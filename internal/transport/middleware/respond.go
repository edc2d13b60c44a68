package middleware

import (
	"encoding/json"
	"net/http"
)

// writeMessage writes the API's {"message": ...} error body.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message}) //nolint:errcheck
}
