package http

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const maxBodyBytes = 64 << 10

// decodeBody reads a JSON body into v. Unknown fields are ignored.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// pathInt parses the named path wildcard as a base-10 int64.
func pathInt(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
