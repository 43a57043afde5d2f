package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const contentTypeJSON = "application/json"

// WriteJSON encodes v before touching the response, so a value that cannot
// be marshalled turns into a bare 500 instead of a truncated body. Every JSON
// response is marked uncacheable.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		NoCache(w)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	body = append(body, '\n')

	NoCache(w)
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// NoCache forbids caching. Tokens and client records pass through here.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
