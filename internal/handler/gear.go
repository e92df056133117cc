package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/gear"
	"github.com/haneul-dev/raidledger/internal/logger"
)

// ReplaceGearSetRequest is the request body for replacing a gear set
type ReplaceGearSetRequest struct {
	ItemIDs []int `json:"item_ids" validate:"required,dive,gt=0"`
}

// BiSNeedsResponse lists the items a player still needs for best in slot
type BiSNeedsResponse struct {
	PlayerID int   `json:"player_id"`
	ItemIDs  []int `json:"item_ids"`
}

// HandleReplaceGearSet replaces a player's starting or BiS gear set
// @Summary Replace a gear set
// @Tags gear
// @Accept json
// @Produce json
// @Success 200 {object} domain.GearSet
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/gear/{setType} [put]
func HandleReplaceGearSet(gearService gear.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := urlParamInt(r, "playerID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		setType := domain.GearSetType(chi.URLParam(r, "setType"))

		var req ReplaceGearSetRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		set, err := gearService.ReplaceGearSet(r.Context(), playerID, setType, req.ItemIDs)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to replace gear set",
				"error", err, "player_id", playerID, "set_type", setType)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, set)
	}
}

// HandleGetGearSet returns a player's gear set of the given type
// @Summary Get a gear set
// @Tags gear
// @Produce json
// @Success 200 {object} domain.GearSet
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/gear/{setType} [get]
func HandleGetGearSet(gearService gear.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := urlParamInt(r, "playerID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		setType := domain.GearSetType(chi.URLParam(r, "setType"))

		set, err := gearService.GetGearSet(r.Context(), playerID, setType)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if set == nil {
			respondError(w, http.StatusNotFound, ErrMsgGearSetNotFound)
			return
		}

		respondJSON(w, http.StatusOK, set)
	}
}

// HandleBiSNeeds returns the items a player still needs for best in slot
// @Summary Get best-in-slot needs
// @Tags gear
// @Produce json
// @Success 200 {object} BiSNeedsResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/gear/needs [get]
func HandleBiSNeeds(gearService gear.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := urlParamInt(r, "playerID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		needs, err := gearService.BiSNeeds(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, BiSNeedsResponse{PlayerID: playerID, ItemIDs: needs})
	}
}
