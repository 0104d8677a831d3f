package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
)

type Handler struct{}

type SweepRequest struct {
	Base   json.RawMessage `json:"base"` // overlays the default input
	From   float64         `json:"from"`
	To     float64         `json:"to"`
	Step   float64         `json:"step"`
	Format string          `json:"format"` // csv (default), xlsx or json
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	// Each item overlays the default input.
	input := Input{Items: make([]bm11.Input, len(req.Items))}
	for i, raw := range req.Items {
		input.Items[i] = bm11.DefaultInput()
		if err := json.Unmarshal(raw, &input.Items[i]); err != nil {
			http.Error(w, "Invalid item payload", http.StatusBadRequest)
			return
		}
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	req := SweepRequest{From: bm11.SweepFrom, To: bm11.SweepTo, Step: bm11.SweepStep}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	base := bm11.DefaultInput()
	if len(req.Base) > 0 {
		if err := json.Unmarshal(req.Base, &base); err != nil {
			http.Error(w, "Invalid base input", http.StatusBadRequest)
			return
		}
	}

	points, err := bm11.Sweep(base, req.From, req.To, req.Step)
	if err != nil {
		bm11.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	switch req.Format {
	case "", "csv":
		err = WriteSweepCSV(&buf, points)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\"bm11-sweep.csv\"")
	case "xlsx":
		err = WriteSweepXLSX(&buf, points)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\"bm11-sweep.xlsx\"")
	case "json":
		err = json.NewEncoder(&buf).Encode(points)
		w.Header().Set("Content-Type", "application/json")
	default:
		http.Error(w, "Unknown format", http.StatusBadRequest)
		return
	}
	if err != nil {
		w.Header().Del("Content-Disposition")
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Write(buf.Bytes())
}
