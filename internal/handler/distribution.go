package handler

import (
	"net/http"
	"time"

	"github.com/haneul-dev/raidledger/internal/distribution"
	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
)

// ResolveRecipientResponse wraps the engine's decision. Recommendation is null
// when nobody on the roster qualifies; that is a valid outcome, not an error.
type ResolveRecipientResponse struct {
	Recommendation *domain.Recommendation `json:"recommendation"`
}

// RecordDistributionRequest is the request body for committing an award
type RecordDistributionRequest struct {
	PlayerID int `json:"player_id" validate:"required,gt=0"`
	ItemID   int `json:"item_id" validate:"required,gt=0"`
}

// RotationEligibilityResponse answers the rotation rule for one player
type RotationEligibilityResponse struct {
	PlayerID int  `json:"player_id"`
	ItemID   int  `json:"item_id"`
	Eligible bool `json:"eligible"`
}

// HandleResolveRecipient runs the decision engine for a dropped item
// @Summary Resolve the loot recipient
// @Tags distribution
// @Produce json
// @Param item_id query int true "Dropped item"
// @Success 200 {object} ResolveRecipientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/distribution/resolve [get]
func HandleResolveRecipient(distService distribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		itemID, err := queryParamInt(r, "item_id")
		if err != nil || itemID == nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		rec, err := distService.ResolveRecipient(r.Context(), partyID, *itemID, time.Now())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to resolve recipient",
				"error", err, "party_id", partyID, "item_id", *itemID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ResolveRecipientResponse{Recommendation: rec})
	}
}

// HandleRecordDistribution commits an award to the loot ledger
// @Summary Record a loot distribution
// @Tags distribution
// @Accept json
// @Produce json
// @Success 201 {object} domain.LootRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /parties/{partyID}/distribution/records [post]
func HandleRecordDistribution(distService distribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var req RecordDistributionRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		record, err := distService.RecordDistribution(r.Context(), partyID, req.ItemID, req.PlayerID, time.Now())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to record distribution",
				"error", err, "party_id", partyID, "item_id", req.ItemID, "player_id", req.PlayerID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, record)
	}
}

// HandleRotationEligibility answers the rotation rule for one player and item
// @Summary Check rotation eligibility
// @Tags distribution
// @Produce json
// @Param item_id query int true "Item to check"
// @Success 200 {object} RotationEligibilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/players/{playerID}/rotation-eligibility [get]
func HandleRotationEligibility(distService distribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		playerID, err := urlParamInt(r, "playerID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		itemID, err := queryParamInt(r, "item_id")
		if err != nil || itemID == nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		eligible, err := distService.RotationEligible(r.Context(), playerID, *itemID, partyID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, RotationEligibilityResponse{
			PlayerID: playerID,
			ItemID:   *itemID,
			Eligible: eligible,
		})
	}
}
