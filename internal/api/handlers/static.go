package handlers

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"time"
)

type StaticHandler struct {
	assets fs.FS
}

func NewStaticHandler(assets fs.FS) *StaticHandler {
	return &StaticHandler{assets: assets}
}

// Home describes the API.
func (h *StaticHandler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Groq TTS API is running!",
		"endpoints": map[string]string{
			"/api/generate-speech": "POST - Generate speech from text",
			"/api/voices":          "GET - List available voices",
			"/api/models":          "GET - List available models",
			"/health":              "GET - Health check",
			"/index.html":          "GET - Web interface",
		},
	})
}

// Asset serves a single named file from the embedded page.
func (h *StaticHandler) Asset(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(h.assets, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				NotFound(w, r)
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to read asset")
			return
		}
		// /index.html must not redirect to /, which is the JSON description.
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}
