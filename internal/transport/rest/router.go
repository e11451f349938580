package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wordcloud/internal/transport/middleware"
)

// NewRouter registers every endpoint. api wraps the word cloud routes;
// health and metrics endpoints bypass it.
func NewRouter(clouds *WordCloudHandler, health *HealthHandler, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /word-clouds/preview", api(http.HandlerFunc(clouds.Preview)))
	mux.Handle("POST /word-clouds/preview/batch", api(http.HandlerFunc(clouds.PreviewBatch)))
	mux.Handle("POST /word-clouds", api(http.HandlerFunc(clouds.Create)))
	mux.Handle("GET /word-clouds", api(http.HandlerFunc(clouds.List)))
	mux.Handle("GET /word-clouds/{id}", api(http.HandlerFunc(clouds.Get)))
	mux.Handle("DELETE /word-clouds/{id}", api(http.HandlerFunc(clouds.Delete)))

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
