package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/progression"
	"github.com/cwilder/lifequest/internal/quest"
)

func newTestRouter(t *testing.T) (chi.Router, quest.Service) {
	t.Helper()
	InitValidator()

	dailies := []domain.DailyQuest{
		{ID: 1, Title: "Meditate", XPReward: 50, Category: domain.CategoryMental},
		{ID: 2, Title: "Work out", XPReward: 75, Category: domain.CategoryPhysical},
	}
	steps := make([]domain.Step, 20)
	for i := range steps {
		steps[i] = domain.Step{ID: fmt.Sprintf("s%02d", i+1), Text: fmt.Sprintf("Step %d", i+1)}
	}
	mains := []domain.MainQuest{
		{ID: "mq-1", Title: "Big Goal", XPReward: 500, Category: domain.CategoryCareer, Steps: steps},
	}

	state := quest.NewState(domain.Profile{Name: "Tester"}, dailies, mains)
	svc := quest.NewService(state, progression.NewDefaultCalculator(), nil, nil)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", HandleGetProfile(svc))
		r.Put("/profile", HandleUpdateProfile(svc))
		r.Route("/quests", func(r chi.Router) {
			r.Get("/daily", HandleGetDailyQuests(svc))
			r.Post("/daily/{id}/complete", HandleCompleteDailyQuest(svc))
			r.Post("/daily/reset", HandleResetDailyQuests(svc))
			r.Get("/main", HandleGetMainQuests(svc))
			r.Post("/main/{questID}/steps/{stepID}/toggle", HandleToggleStep(svc))
			r.Post("/main/reset", HandleResetMainQuests(svc))
		})
	})
	return r, svc
}

func doRequest(t *testing.T, r chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleGetDailyQuests(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/quests/daily", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp DailyQuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Quests, 2)
}

func TestHandleGetDailyQuests_CategoryFilter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/quests/daily?category=mental", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp DailyQuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Quests, 1)
	assert.Equal(t, 1, resp.Quests[0].ID)

	w = doRequest(t, r, http.MethodGet, "/api/v1/quests/daily?category=gardening", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompleteDailyQuest(t *testing.T) {
	r, svc := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/quests/daily/1/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, int64(50), svc.Profile(context.Background()).TotalXP)

	// Replay: 200 with changed=false, no new award.
	w = doRequest(t, r, http.MethodPost, "/api/v1/quests/daily/1/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
}

func TestHandleCompleteDailyQuest_BadID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/quests/daily/nope/complete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown numeric id is a no-op, not an error.
	w = doRequest(t, r, http.MethodPost, "/api/v1/quests/daily/999/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
}

func TestHandleGetMainQuests_DerivedFields(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/quests/main/mq-1/steps/s01/toggle", nil)

	w := doRequest(t, r, http.MethodGet, "/api/v1/quests/main", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp MainQuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Quests, 1)
	assert.Equal(t, 5, resp.Quests[0].Progress)
	assert.Equal(t, 1, resp.Quests[0].CompletedSteps)
	assert.False(t, resp.Quests[0].Complete)
}

func TestHandleToggleStep(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/quests/main/mq-1/steps/s01/toggle", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)

	// Completed steps never revert.
	w = doRequest(t, r, http.MethodPost, "/api/v1/quests/main/mq-1/steps/s01/toggle", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)

	// Unknown quest and step ids are no-ops.
	w = doRequest(t, r, http.MethodPost, "/api/v1/quests/main/ghost/steps/s01/toggle", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
}

func TestHandleResetMainQuests(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/quests/main/mq-1/steps/s01/toggle", nil)
	doRequest(t, r, http.MethodPost, "/api/v1/quests/main/mq-1/steps/s02/toggle", nil)

	w := doRequest(t, r, http.MethodPost, "/api/v1/quests/main/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/quests/main", nil)
	var resp MainQuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Quests[0].Progress)
}

func TestHandleResetDailyQuests(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/quests/daily/1/complete", nil)

	w := doRequest(t, r, http.MethodPost, "/api/v1/quests/daily/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/v1/quests/daily", nil)
	var resp DailyQuestsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, q := range resp.Quests {
		assert.False(t, q.Completed)
	}
}
