package bm11

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/cybertube/BM11Model/internal/auth"
)

// HistoryStore persists evaluations for the signed-in user.
type HistoryStore interface {
	SaveEvaluation(ctx context.Context, userID int, input, output []byte, totalCost float64) (string, error)
}

type Handler struct {
	History HistoryStore
}

// baseline serves the default input and its output to every request. Its
// input never changes, so the output is computed once.
var baseline = NewModel()

type CalcResponse struct {
	ID     string  `json:"id,omitempty"`
	Input  Input   `json:"input"`
	Output *Output `json:"output"`
}

type WindResponse struct {
	Wind   Wind         `json:"wind"`
	Tables []ForceTable `json:"tables"`
}

// DecodeInput reads a JSON body on top of the default input, so clients may
// send only the fields they change.
func DecodeInput(r *http.Request) (Input, error) {
	in := DefaultInput()
	if r.Body == nil {
		return in, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return in, err
	}
	return in, nil
}

// WriteError maps evaluation errors onto HTTP statuses.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGeometryInvalid):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Calculation error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) Defaults(w http.ResponseWriter, r *http.Request) {
	out, err := baseline.Output()
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, CalcResponse{Input: baseline.Input(), Output: out})
}

func (h *Handler) saveEvaluation(ctx context.Context, userID int, input Input, out *Output) (string, error) {
	inJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode input: %w", err)
	}
	outJSON, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	return h.History.SaveEvaluation(ctx, userID, inJSON, outJSON, out.Total.Cost)
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	input, err := DecodeInput(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := Evaluate(input)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := CalcResponse{Input: input, Output: out}
	if userID, ok := auth.UserID(r.Context()); ok && h.History != nil {
		id, err := h.saveEvaluation(r.Context(), userID, input, out)
		if err != nil {
			log.Printf("SaveEvaluation Error: %v", err)
			http.Error(w, "DB error", http.StatusInternalServerError)
			return
		}
		resp.ID = id
	}
	writeJSON(w, resp)
}

func (h *Handler) Wind(w http.ResponseWriter, r *http.Request) {
	input, err := DecodeInput(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := Evaluate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	writeJSON(w, WindResponse{Wind: out.Wind, Tables: out.Wind.ForceTables()})
}
