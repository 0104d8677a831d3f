package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/cybertube/BM11Model/internal/auth"
	"github.com/cybertube/BM11Model/internal/calc/bm11"
)

type Input struct {
	Meta
	Params json.RawMessage `json:"params"`
}

type Handler struct{}

func decode(r *http.Request) (Input, bm11.Input, error) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		return input, bm11.Input{}, err
	}
	// Params overlay the defaults field by field.
	params := bm11.DefaultInput()
	if len(input.Params) > 0 {
		if err := json.Unmarshal(input.Params, &params); err != nil {
			return input, params, err
		}
	}
	return input, params, nil
}

// requestMeta credits the signed-in user when the request names no author.
func requestMeta(r *http.Request, m Meta) Meta {
	if m.Author == "" {
		m.Author = auth.UserLogin(r.Context())
	}
	return m
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	input, params, err := decode(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := bm11.Evaluate(params)
	if err != nil {
		bm11.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, requestMeta(r, input.Meta), params, out, time.Now()); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"bm11-report.pdf\"")
	w.Write(buf.Bytes())
}

func (h *Handler) Text(w http.ResponseWriter, r *http.Request) {
	_, params, err := decode(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := bm11.Evaluate(params)
	if err != nil {
		bm11.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := PrintReport(&buf, out); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(buf.Bytes())
}
