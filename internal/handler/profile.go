package handler

import (
	"net/http"

	"github.com/cwilder/lifequest/internal/domain"
	"github.com/cwilder/lifequest/internal/logger"
	"github.com/cwilder/lifequest/internal/progression"
	"github.com/cwilder/lifequest/internal/quest"
)

// ProfileResponse is the profile plus everything derived from total XP.
// Level, progress and reward are computed server-side on every read; the
// client never stores or submits them.
type ProfileResponse struct {
	Profile     domain.Profile      `json:"profile"`
	Progression progression.Summary `json:"progression"`
}

// UpdateProfileRequest carries the editable profile fields. Empty fields
// leave the current value untouched.
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,min=1,max=40,excludesall=<>"`
	Avatar string `json:"avatar" validate:"omitempty,max=40"`
}

// HandleGetProfile returns the profile with its derived progression summary.
func HandleGetProfile(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ProfileResponse{
			Profile:     svc.Profile(r.Context()),
			Progression: svc.Progression(r.Context()),
		})
	}
}

// HandleUpdateProfile updates the editable profile fields.
func HandleUpdateProfile(svc quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update profile"); err != nil {
			return
		}

		profile := svc.UpdateProfile(r.Context(), req.Name, req.Avatar)
		logger.FromContext(r.Context()).Info("Profile updated", "name", profile.Name)

		respondJSON(w, http.StatusOK, ProfileResponse{
			Profile:     profile,
			Progression: svc.Progression(r.Context()),
		})
	}
}
