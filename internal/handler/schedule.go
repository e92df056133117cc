package handler

import (
	"net/http"
	"time"

	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/schedule"
)

// CreateScheduleRequest is the request body for creating a raid schedule
type CreateScheduleRequest struct {
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description" validate:"required,min=1,max=200"`
}

// HandleCreateSchedule creates a raid schedule for a party
// @Summary Create a raid schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Success 201 {object} domain.RaidSchedule
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/schedules [post]
func HandleCreateSchedule(scheduleService schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var req CreateScheduleRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		sched, err := scheduleService.CreateSchedule(r.Context(), partyID, req.StartDate, req.EndDate, req.Description)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to create schedule", "error", err, "party_id", partyID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, sched)
	}
}

// HandleListSchedules returns a party's raid schedules
// @Summary List raid schedules
// @Tags schedules
// @Produce json
// @Success 200 {array} domain.RaidSchedule
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/schedules [get]
func HandleListSchedules(scheduleService schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		schedules, err := scheduleService.ListByParty(r.Context(), partyID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, schedules)
	}
}

// HandleDeactivateSchedule marks a raid schedule inactive
// @Summary Deactivate a raid schedule
// @Tags schedules
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{scheduleID} [delete]
func HandleDeactivateSchedule(scheduleService schedule.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "scheduleID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := scheduleService.Deactivate(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Schedule deactivated"})
	}
}
