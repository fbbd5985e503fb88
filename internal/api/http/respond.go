package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON encodes v before writing the header so an encoding failure
// still yields a well-formed 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","error":"internal","detail":"encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

type errResp struct {
	Status string `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeErr(w http.ResponseWriter, status int, kind, detail string) {
	writeJSON(w, status, errResp{Status: "error", Error: kind, Detail: detail})
}
