package handler

import (
	"net/http"
	"time"

	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/stats"
)

// HandlePartyTotals returns distribution totals grouped by party
// @Summary Distribution totals by party
// @Tags statistics
// @Produce json
// @Success 200 {array} domain.PartyDistributionCount
// @Router /stats/parties [get]
func HandlePartyTotals(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := statsService.TotalsByParty(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to compute party totals", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, totals)
	}
}

// HandlePlayerTotals returns distribution totals grouped by player
// @Summary Distribution totals by player
// @Tags statistics
// @Produce json
// @Param party_id query int false "Restrict to one party"
// @Success 200 {array} domain.PlayerDistributionCount
// @Failure 400 {object} ErrorResponse
// @Router /stats/players [get]
func HandlePlayerTotals(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := queryParamInt(r, "party_id")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		totals, err := statsService.TotalsByPlayer(r.Context(), partyID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to compute player totals", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, totals)
	}
}

// HandleSlotTotals returns distribution totals grouped by item slot
// @Summary Distribution totals by slot
// @Tags statistics
// @Produce json
// @Success 200 {array} domain.SlotDistributionCount
// @Router /stats/slots [get]
func HandleSlotTotals(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := statsService.TotalsBySlot(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to compute slot totals", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, totals)
	}
}

// HandleWeeklyTotals returns per-player counts inside the current weekly window
// @Summary Weekly distribution totals
// @Tags statistics
// @Produce json
// @Param party_id query int false "Restrict to one party"
// @Success 200 {array} domain.WeeklyDistributionCount
// @Failure 400 {object} ErrorResponse
// @Router /stats/weekly [get]
func HandleWeeklyTotals(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := queryParamInt(r, "party_id")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		totals, err := statsService.WeeklyTotalsByPlayer(r.Context(), partyID, time.Now())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to compute weekly totals", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, totals)
	}
}
