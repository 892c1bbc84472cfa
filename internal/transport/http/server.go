package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/raymondjoseph02/news-today/pkg/config"
)

func NewHTTPServer(cfg *config.Config, h *Handler) *http.Server {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "OK")
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler())

	h.Register(r)

	return &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}
}
