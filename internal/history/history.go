package history

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/cybertube/BM11Model/internal/auth"
	"github.com/cybertube/BM11Model/internal/repo"
	"github.com/gorilla/mux"
)

type HistoryHandler struct {
	Repo repo.Repository
}

type Item struct {
	ID        string    `json:"id"`
	TotalCost float64   `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

type Detail struct {
	Item
	Input  json.RawMessage `json:"input"`
	Output json.RawMessage `json:"output"`
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	rows, err := h.Repo.ListEvaluations(r.Context(), userID, limit)
	if err != nil {
		log.Printf("ListEvaluations Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{ID: row.ID, TotalCost: row.TotalCost, CreatedAt: row.CreatedAt()})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	e, err := h.Repo.GetEvaluation(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Evaluation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("GetEvaluation Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Detail{
		Item:   Item{ID: e.ID, TotalCost: e.TotalCost, CreatedAt: e.CreatedAt()},
		Input:  json.RawMessage(e.Input),
		Output: json.RawMessage(e.Output),
	})
}
