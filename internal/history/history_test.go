package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybertube/BM11Model/internal/auth"
	"github.com/cybertube/BM11Model/internal/repo"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	repo.Repository
	evaluations map[int][]repo.Evaluation
	lastLimit   int
	err         error
}

func (f *fakeRepo) ListEvaluations(ctx context.Context, userID, limit int) ([]repo.EvaluationSummary, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	out := []repo.EvaluationSummary{}
	for _, e := range f.evaluations[userID] {
		out = append(out, e.EvaluationSummary)
	}
	return out, nil
}

func (f *fakeRepo) GetEvaluation(ctx context.Context, userID int, id string) (repo.Evaluation, error) {
	if f.err != nil {
		return repo.Evaluation{}, f.err
	}
	for _, e := range f.evaluations[userID] {
		if e.ID == id {
			return e, nil
		}
	}
	return repo.Evaluation{}, repo.ErrNotFound
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{evaluations: map[int][]repo.Evaluation{
		7: {{
			EvaluationSummary: repo.EvaluationSummary{ID: "a1", TotalCost: 8755.642, CreatedUnix: 1700000000000},
			UserID:            7,
			Input:             `{"square_side_length":16}`,
			Output:            `{"total":{"cost":8755.642}}`,
		}},
	}}
}

func userRequest(method, target string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(auth.WithUser(req.Context(), userID, "alice"))
}

func TestList(t *testing.T) {
	store := newFakeRepo()
	h := &HistoryHandler{Repo: store}

	rec := httptest.NewRecorder()
	h.List(rec, userRequest(http.MethodGet, "/api/user/history?limit=5", 7))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, store.lastLimit)

	var items []Item
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, 8755.642, items[0].TotalCost)
	assert.Equal(t, int64(1700000000), items[0].CreatedAt.Unix())

	rec = httptest.NewRecorder()
	h.List(rec, userRequest(http.MethodGet, "/api/user/history", 8))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListErrors(t *testing.T) {
	h := &HistoryHandler{Repo: newFakeRepo()}

	rec := httptest.NewRecorder()
	h.List(rec, userRequest(http.MethodGet, "/api/user/history?limit=abc", 7))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/user/history", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.Repo = &fakeRepo{err: errors.New("db down")}
	rec = httptest.NewRecorder()
	h.List(rec, userRequest(http.MethodGet, "/api/user/history", 7))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGet(t *testing.T) {
	h := &HistoryHandler{Repo: newFakeRepo()}

	req := mux.SetURLVars(userRequest(http.MethodGet, "/api/user/history/a1", 7), map[string]string{"id": "a1"})
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var d Detail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&d))
	assert.Equal(t, "a1", d.ID)
	assert.JSONEq(t, `{"square_side_length":16}`, string(d.Input))
	assert.JSONEq(t, `{"total":{"cost":8755.642}}`, string(d.Output))

	// Another user's evaluation is not visible.
	req = mux.SetURLVars(userRequest(http.MethodGet, "/api/user/history/a1", 8), map[string]string{"id": "a1"})
	rec = httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
