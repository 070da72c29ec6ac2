package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	speechRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groq_tts_speech_requests_total",
		Help: "Speech generation requests by outcome",
	}, []string{"outcome"})

	providerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "groq_tts_provider_latency_seconds",
		Help:    "Latency of speech synthesis calls to the provider",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"model"})

	audioBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groq_tts_audio_bytes_total",
		Help: "Total bytes of audio returned to callers",
	})

	inFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "groq_tts_provider_in_flight",
		Help: "Provider calls currently in progress",
	})
)

// RecordOutcome counts one finished speech request. outcome is "success" or
// an error kind name.
func RecordOutcome(outcome string) {
	speechRequests.WithLabelValues(outcome).Inc()
}

// RecordProviderCall observes one provider round trip.
func RecordProviderCall(model string, elapsed time.Duration) {
	providerLatency.WithLabelValues(model).Observe(elapsed.Seconds())
}

// RecordAudioBytes adds to the returned-audio counter.
func RecordAudioBytes(n int64) {
	audioBytes.Add(float64(n))
}

// TrackInFlight increments the in-flight gauge and returns its decrement.
func TrackInFlight() func() {
	inFlight.Inc()
	return inFlight.Dec
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
