package webutils

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSONError writes a JSON object with an error message and sets the HTTP status code.
func JSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	resp := jsonErrorMessage{
		Error: message,
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(&resp); err != nil {
		log.Printf("error writing JSON error body: %s", err)
	}
}

// JSON writes `v` encoded as JSON with the HTTP status code `statusCode`.
func JSON(w http.ResponseWriter, v interface{}, statusCode int) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

type jsonErrorMessage struct {
	Error string `json:"error"`
}
