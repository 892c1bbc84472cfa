package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Serves a NewsAPI-shaped payload for local development so the reader can
// run without a real credential (point NEWS_API_URL at :8081).
func main() {
	payload := func() map[string]interface{} {
		return map[string]interface{}{
			"status":       "ok",
			"totalResults": 2,
			"articles": []map[string]interface{}{
				{
					"source":      map[string]interface{}{"id": "mock", "name": "Mock Wire"},
					"author":      "Staff Writer",
					"title":       "Mock Headline One",
					"description": "A headline served by the mock provider.",
					"url":         "http://localhost:8081/articles/1",
					"urlToImage":  "http://localhost:8081/images/1.jpg",
					"publishedAt": time.Now().Format(time.RFC3339),
					"content":     "Full mock article body.",
				},
				{
					"source":      map[string]interface{}{"id": nil, "name": "Mock Wire"},
					"author":      "",
					"title":       "Mock Headline Two",
					"description": "Another mock headline.",
					"url":         "http://localhost:8081/articles/2",
					"urlToImage":  nil,
					"publishedAt": time.Now().Add(-1 * time.Hour).Format(time.RFC3339),
					"content":     nil,
				},
			},
		}
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload()); err != nil {
			slog.Error("Failed to encode response", "error", err)
		}
	}

	http.HandleFunc("/top-headlines", handler)
	http.HandleFunc("/everything", handler)

	slog.Info("Mock provider running on :8081")
	if err := http.ListenAndServe(":8081", nil); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
