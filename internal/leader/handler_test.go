// AngelaMos | 2026
// handler_test.go

package leader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ussr-leaders/backend/internal/core"
	"github.com/ussr-leaders/backend/internal/leader/facts"
)

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(repo Repository) *chi.Mux {
	svc := newTestService(repo, nil, &mockGenerator{
		generateFn: func(context.Context, facts.Leader, int) ([]string, error) {
			return nil, nil
		},
	}, nil)
	handler := NewHandler(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r, passthrough, passthrough, passthrough)
	return r
}

func TestGetLeaderInvalidID(t *testing.T) {
	r := newTestRouter(&mockRepository{})

	req := httptest.NewRequest(http.MethodGet, "/leaders/abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLeaderNotFound(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(context.Context, int64) (*Leader, error) {
			return nil, core.ErrNotFound
		},
	}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/leaders/999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestGetLeaderOK(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(_ context.Context, id int64) (*Leader, error) {
			return testLeader(id), nil
		},
	}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/leaders/5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID     int64  `json:"id"`
			NameEn string `json:"name_en"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(5), body.Data.ID)
	assert.Equal(t, "Yuri Andropov", body.Data.NameEn)
}

func TestGetFactsSetsSourceHeader(t *testing.T) {
	stored := []Fact{{ID: 1, LeaderID: 2, FactText: "факт"}}
	repo := &mockRepository{
		getByIDFn: func(_ context.Context, id int64) (*Leader, error) {
			return testLeader(id), nil
		},
		getFactsFn: func(context.Context, int64) ([]Fact, error) {
			return stored, nil
		},
	}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/leaders/2/facts", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stored", rec.Header().Get(FactsSourceHeader))
}

func TestSearchEndpoint(t *testing.T) {
	repo := &mockRepository{
		searchFn: func(_ context.Context, q string) ([]Leader, error) {
			assert.Equal(t, "lenin", q)
			return []Leader{*testLeader(1)}, nil
		},
	}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/leaders/search?q=lenin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Total)
}

func TestCreateLeaderRejectsMissingFields(t *testing.T) {
	r := newTestRouter(&mockRepository{})

	req := httptest.NewRequest(
		http.MethodPost,
		"/leaders/",
		nil,
	)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
