package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
)

type componentStatus struct {
	OK       bool   `json:"ok"`
	Mode     string `json:"mode,omitempty"`
	Profiles *int   `json:"profiles,omitempty"`
	Impact   string `json:"impact,omitempty"`
	Error    string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the backend, the open profiles and the seed
// content source.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		open := d.Profiles.Count()
		components := map[string]componentStatus{
			"backend":  checkBackend(r.Context(), d),
			"profiles": {OK: true, Profiles: &open},
			"seed":     seedStatus(d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{
			Status:     determineStatus(components),
			Components: components,
		})
	}
}

func determineStatus(components map[string]componentStatus) string {
	if backend, ok := components["backend"]; ok && !backend.OK {
		return "degraded" // state changes are not persisted
	}
	return "ok"
}

func checkBackend(parent context.Context, d deps.Deps) componentStatus {
	ctx, cancel := context.WithTimeout(parent, 2*time.Second)
	defer cancel()

	if err := d.Backend.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   d.Mode,
			Impact: "state-not-persisted",
			Error:  err.Error(),
		}
	}

	status := componentStatus{OK: true, Mode: d.Mode}
	if d.Counter != nil {
		n, err := d.Counter.CountProfiles(ctx)
		if err != nil {
			status.Error = err.Error()
		} else {
			status.Profiles = &n
		}
	}
	return status
}

func seedStatus(d deps.Deps) componentStatus {
	if d.SeedFile == "" {
		return componentStatus{OK: true, Mode: "built-in"}
	}
	return componentStatus{OK: true, Mode: "file"}
}
