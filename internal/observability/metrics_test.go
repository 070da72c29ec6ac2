package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func gaugeValue(t *testing.T) float64 {
	t.Helper()
	var m dto.Metric
	if err := inFlight.Write(&m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func scrape(t *testing.T) string {
	t.Helper()
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	return string(body)
}

func TestRecordOutcome(t *testing.T) {
	RecordOutcome("MissingText")

	if !strings.Contains(scrape(t), `groq_tts_speech_requests_total{outcome="MissingText"}`) {
		t.Error("expected outcome series in exposition")
	}
}

func TestTrackInFlight(t *testing.T) {
	before := gaugeValue(t)
	done := TrackInFlight()
	if got := gaugeValue(t); got != before+1 {
		t.Errorf("expected gauge %v, got %v", before+1, got)
	}
	done()
	if got := gaugeValue(t); got != before {
		t.Errorf("expected gauge back at %v, got %v", before, got)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordProviderCall("playai-tts", 1500*time.Millisecond)
	RecordAudioBytes(2048)

	body := scrape(t)
	for _, name := range []string{"groq_tts_provider_latency_seconds", "groq_tts_audio_bytes_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in exposition", name)
		}
	}
}
