package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/raymondjoseph02/news-today/internal/app"
	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/store"
	"github.com/raymondjoseph02/news-today/internal/uistate"
)

// Handler exposes the retrieval layer to the presentation tier: direct news
// queries, the article detail flow, and the session endpoints that drive
// the debounced controller.
type Handler struct {
	news       *app.NewsService
	detail     *app.DetailService
	controller *app.Controller
	session    *uistate.Session
	articles   *store.ArticleStore
	pageSize   int
}

func NewHandler(
	news *app.NewsService,
	detail *app.DetailService,
	controller *app.Controller,
	session *uistate.Session,
	articles *store.ArticleStore,
	pageSize int,
) *Handler {
	return &Handler{
		news:       news,
		detail:     detail,
		controller: controller,
		session:    session,
		articles:   articles,
		pageSize:   pageSize,
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/news", h.getNews).Methods("GET")
	r.HandleFunc("/api/articles", h.selectArticle).Methods("POST")
	r.HandleFunc("/api/articles/{slug}", h.getArticle).Methods("GET")
	r.HandleFunc("/api/articles/{slug}/related", h.getRelated).Methods("GET")
	r.HandleFunc("/api/session/news", h.getSessionNews).Methods("GET")
	r.HandleFunc("/api/session/tab", h.setTab).Methods("PUT")
	r.HandleFunc("/api/session/search", h.setSearch).Methods("PUT")
	r.HandleFunc("/api/session/refresh", h.refresh).Methods("POST")
}

func (h *Handler) getNews(w http.ResponseWriter, r *http.Request) {
	pageSize := h.pageSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		}
	}

	category := domain.MapTabToCategory(r.URL.Query().Get("tab"))
	query := domain.Normalize(category, r.URL.Query().Get("q"), pageSize)

	result, err := h.news.Get(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) selectArticle(w http.ResponseWriter, r *http.Request) {
	var article domain.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid article payload"})
		return
	}

	slug, err := h.articles.Put(article)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": slug})
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	article, err := h.detail.ArticleBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *Handler) getRelated(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	article, err := h.detail.ArticleBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}

	related := h.detail.Related(r.Context(), article)
	writeJSON(w, http.StatusOK, map[string][]domain.Article{"articles": related})
}

func (h *Handler) getSessionNews(w http.ResponseWriter, r *http.Request) {
	snap := h.controller.Snapshot()

	// Err serializes as null when absent, matching the published
	// {data, isLoading, error} contract.
	var errMsg *string
	if snap.Err != "" {
		errMsg = &snap.Err
	}
	writeJSON(w, http.StatusOK, struct {
		Data      *domain.NewsResult `json:"data"`
		IsLoading bool               `json:"isLoading"`
		Error     *string            `json:"error"`
	}{snap.Data, snap.IsLoading, errMsg})
}

func (h *Handler) setTab(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Tab == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing tab"})
		return
	}
	h.session.ActiveTab.Set(body.Tab)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setSearch(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Q string `json:"q"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid search payload"})
		return
	}
	h.session.SearchTerm.Set(body.Q)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	h.controller.Refetch()
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var (
		configErr   *domain.ConfigError
		authErr     *domain.AuthError
		httpErr     *domain.HTTPError
		providerErr *domain.ProviderError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &configErr):
		status = http.StatusServiceUnavailable
	case errors.As(err, &authErr), errors.As(err, &httpErr), errors.As(err, &providerErr):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
