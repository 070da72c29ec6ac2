package handlers

import (
	"net/http"

	"github.com/nikhilbhutani/groqtts/internal/voices"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Voices returns the English and Arabic voice lists.
func (h *CatalogHandler) Voices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, voices.All())
}

// Models returns which voice group each model speaks with.
func (h *CatalogHandler) Models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": voices.Models()})
}
