package importer

import (
	"encoding/json"
	"net/http"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type Result struct {
	Line   int          `json:"line"`
	Input  bm11.Input   `json:"input"`
	Output *bm11.Output `json:"output,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type ImportResult struct {
	Count   int      `json:"count"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := ParseWorkbook(file)
	if err != nil {
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}

	res := ImportResult{Results: make([]Result, 0, len(rows))}
	for _, row := range rows {
		item := Result{Line: row.Line, Input: row.Input, Error: row.Err}
		if row.Err == "" {
			out, err := bm11.Evaluate(row.Input)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Output = out
			}
		}
		if item.Error != "" {
			res.Failed++
		}
		res.Results = append(res.Results, item)
	}
	res.Count = len(res.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
