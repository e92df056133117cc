package handler

import (
	"net/http"

	"github.com/haneul-dev/raidledger/internal/job"
	"github.com/haneul-dev/raidledger/internal/logger"
)

// HandleListJobs returns the job catalog
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {array} domain.Job
// @Router /jobs [get]
func HandleListJobs(jobService job.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := jobService.ListJobs(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list jobs", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, jobs)
	}
}

// HandleGetJob returns one job by ID
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Success 200 {object} domain.Job
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{jobID} [get]
func HandleGetJob(jobService job.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "jobID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		j, err := jobService.GetJob(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, j)
	}
}
