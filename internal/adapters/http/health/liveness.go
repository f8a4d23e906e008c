package health

import (
	"net/http"
	"time"

	"itemservice/internal/adapters/http/response"
	"itemservice/internal/version"
)

type LivenessHandler struct {
	build version.BuildInfo
}

func NewLivenessHandler(build version.BuildInfo) *LivenessHandler {
	return &LivenessHandler{build: build}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: time.Now().UTC(),
		Version:   h.build.Version,
		ReleaseId: h.build.GitCommit,
	})
}
