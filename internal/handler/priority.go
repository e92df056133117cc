package handler

import (
	"net/http"

	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/priority"
)

// CreatePriorityRequest is the request body for creating a priority entry
type CreatePriorityRequest struct {
	PlayerID int `json:"player_id" validate:"required,gt=0"`
	ItemID   int `json:"item_id" validate:"required,gt=0"`
	Order    int `json:"priority_order" validate:"required,gte=1"`
}

// HandleCreatePriority creates a priority entry for a party
// @Summary Create a priority entry
// @Tags priorities
// @Accept json
// @Produce json
// @Success 201 {object} domain.PriorityEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /parties/{partyID}/priorities [post]
func HandleCreatePriority(priorityService priority.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var req CreatePriorityRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		entry, err := priorityService.CreateEntry(r.Context(), req.PlayerID, req.ItemID, partyID, req.Order)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to create priority entry",
				"error", err, "party_id", partyID, "player_id", req.PlayerID, "item_id", req.ItemID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, entry)
	}
}

// HandleListPriorities returns a party's priority entries
// @Summary List priority entries
// @Tags priorities
// @Produce json
// @Success 200 {array} domain.PriorityEntry
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/priorities [get]
func HandleListPriorities(priorityService priority.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		entries, err := priorityService.ListByParty(r.Context(), partyID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleDeletePriority removes a priority entry
// @Summary Delete a priority entry
// @Tags priorities
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /priorities/{priorityID} [delete]
func HandleDeletePriority(priorityService priority.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "priorityID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := priorityService.DeleteEntry(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Priority entry deleted"})
	}
}
