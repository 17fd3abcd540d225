package handler

import "net/http"

// VersionResponse reports the deployed build for deployment verification
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HandleVersion returns the running version
func HandleVersion(version, environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{
			Version:     version,
			Environment: environment,
		})
	}
}
