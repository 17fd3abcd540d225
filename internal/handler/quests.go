package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/quest"
)

// DailyQuestsResponse lists the daily quest board.
type DailyQuestsResponse struct {
	Quests []domain.DailyQuest `json:"quests"`
}

// MainQuestsResponse lists the long-running quests with derived progress.
type MainQuestsResponse struct {
	Quests []MainQuestView `json:"quests"`
}

// MainQuestView decorates a main quest with its computed progress fields.
type MainQuestView struct {
	domain.MainQuest
	Progress       int    `json:"progress"`
	CompletedSteps int    `json:"completed_steps"`
	Complete       bool   `json:"complete"`
	CategoryLabel  string `json:"category_label"`
}

func mainQuestView(q domain.MainQuest) MainQuestView {
	return MainQuestView{
		MainQuest:      q,
		Progress:       q.Progress(),
		CompletedSteps: q.CompletedSteps(),
		Complete:       q.IsComplete(),
		CategoryLabel:  domain.CategoryLabel(q.Category),
	}
}

// categoryFilter reads and validates the optional ?category query parameter.
// Returns false after writing the error response when the value is unknown.
func categoryFilter(w http.ResponseWriter, r *http.Request) (string, bool) {
	category := strings.ToLower(r.URL.Query().Get("category"))
	if category == "" || category == domain.CategoryAll {
		return domain.CategoryAll, true
	}
	for _, valid := range domain.ValidCategories {
		if category == valid {
			return category, true
		}
	}
	respondError(w, http.StatusBadRequest, ErrMsgInvalidCategory)
	return "", false
}

// HandleGetDailyQuests returns the daily board, optionally filtered by category.
func HandleGetDailyQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := categoryFilter(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, DailyQuestsResponse{
			Quests: svc.DailyQuests(r.Context(), category),
		})
	}
}

// HandleCompleteDailyQuest marks a daily quest complete and awards its XP.
// Unknown ids and already-completed quests come back as changed=false.
func HandleCompleteDailyQuest(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Warn("Invalid daily quest id", "id", chi.URLParam(r, "id"))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidQuestID)
			return
		}

		updated := svc.CompleteDailyQuest(r.Context(), id)
		if updated == nil {
			respondJSON(w, http.StatusOK, MutationResponse{Changed: false})
			return
		}

		log.Info("Daily quest completed", "quest_id", id, "xp", updated.XPReward)
		respondJSON(w, http.StatusOK, MutationResponse{Changed: true, Data: updated})
	}
}

// HandleResetDailyQuests re-arms every daily quest without touching XP.
func HandleResetDailyQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ResetDailyQuests(r.Context())
		respondJSON(w, http.StatusOK, MutationResponse{
			Changed: true,
			Data:    DailyQuestsResponse{Quests: svc.DailyQuests(r.Context(), domain.CategoryAll)},
		})
	}
}

// HandleGetMainQuests returns the main quests, optionally filtered by category.
func HandleGetMainQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := categoryFilter(w, r)
		if !ok {
			return
		}

		quests := svc.MainQuests(r.Context(), category)
		views := make([]MainQuestView, len(quests))
		for i, q := range quests {
			views[i] = mainQuestView(q)
		}
		respondJSON(w, http.StatusOK, MainQuestsResponse{Quests: views})
	}
}

// HandleToggleStep completes a main quest step. Steps only move forward;
// toggling a completed step, an unknown step or an unknown quest is a no-op.
func HandleToggleStep(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		questID := chi.URLParam(r, "questID")
		stepID := chi.URLParam(r, "stepID")

		updated := svc.ToggleStep(r.Context(), questID, stepID)
		if updated == nil {
			respondJSON(w, http.StatusOK, MutationResponse{Changed: false})
			return
		}

		log.Info("Step completed",
			"quest_id", questID,
			"step_id", stepID,
			"progress", updated.Progress())
		respondJSON(w, http.StatusOK, MutationResponse{Changed: true, Data: mainQuestView(*updated)})
	}
}

// HandleResetMainQuests clears every step of every main quest and the
// completion ledger in one atomic transition. Earned XP stays.
func HandleResetMainQuests(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ResetAllMainQuests(r.Context())
		logger.FromContext(r.Context()).Info("Main quests reset")

		quests := svc.MainQuests(r.Context(), domain.CategoryAll)
		views := make([]MainQuestView, len(quests))
		for i, q := range quests {
			views[i] = mainQuestView(q)
		}
		respondJSON(w, http.StatusOK, MutationResponse{Changed: true, Data: MainQuestsResponse{Quests: views}})
	}
}
