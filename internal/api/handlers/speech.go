package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"io"
	"net/http"
	"strconv"

	"github.com/nikhilbhutani/groqtts/internal/speech"
)

const downloadName = "speech.wav"

type SpeechHandler struct {
	svc          *speech.Service
	maxBodyBytes int64
	logger       *slog.Logger
}

func NewSpeechHandler(svc *speech.Service, maxBodyBytes int64, logger *slog.Logger) *SpeechHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &SpeechHandler{svc: svc, maxBodyBytes: maxBodyBytes, logger: logger}
}

// Generate synthesizes the posted text and returns it as a WAV attachment.
// The staged file is removed once the response has been written.
func (h *SpeechHandler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req speech.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.writeSpeechError(w, err)
		return
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			h.logger.Error("failed to remove staged audio", "path", result.Path, "error", err)
		}
	}()

	f, err := result.Open()
	if err != nil {
		h.logger.Error("failed to open staged audio", "path", result.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read generated audio")
		return
	}
	defer f.Close()

	contentType := result.ContentType
	if contentType == "" {
		contentType = "audio/wav"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+downloadName)
	w.Header().Set("X-Generation-Time", result.GenerationTimeHeader())
	w.Header().Set("X-File-Size", result.FileSizeHeader())
	w.Header().Set("Content-Length", strconv.FormatInt(result.Size, 10))

	// Always the whole file with 200; Range and precondition headers are ignored.
	w.WriteHeader(http.StatusOK)
	n, err := io.Copy(w, f)
	if err != nil {
		h.logger.Warn("audio transfer interrupted", "path", result.Path, "written", n, "error", err)
		return
	}
	h.logger.Info("speech delivered",
		"model", result.Model,
		"voice", result.Voice,
		"bytes", n,
		"generation_time", result.GenerationTime.Seconds(),
	)
}

// writeSpeechError is the single place a speech failure becomes a response.
func (h *SpeechHandler) writeSpeechError(w http.ResponseWriter, err error) {
	var se *speech.Error
	if !errors.As(err, &se) {
		h.logger.Error("unexpected speech failure", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeError(w, se.Kind.Status(), se.Message)
}
