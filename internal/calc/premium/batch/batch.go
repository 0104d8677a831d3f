package batch

import (
	"errors"
	"fmt"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
)

const MaxItems = 200

type Input struct {
	Items []bm11.Input `json:"items"`
}

// ItemResult carries either an output or the reason the item failed; one
// bad geometry does not sink the batch.
type ItemResult struct {
	Index  int          `json:"index"`
	Output *bm11.Output `json:"output,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type Result struct {
	Results []ItemResult `json:"results"`
	Failed  int          `json:"failed"`
}

var ErrNoItems = errors.New("no items")

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrNoItems
	}
	if len(in.Items) > MaxItems {
		return Result{}, fmt.Errorf("too many items: %d > %d", len(in.Items), MaxItems)
	}
	out := Result{Results: make([]ItemResult, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := bm11.Evaluate(item)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, ItemResult{Index: i, Error: err.Error()})
			continue
		}
		out.Results = append(out.Results, ItemResult{Index: i, Output: res})
	}
	return out, nil
}
