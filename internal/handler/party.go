package handler

import (
	"net/http"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/party"
)

// CreatePartyRequest is the request body for creating a raid party
type CreatePartyRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Policy string `json:"policy" validate:"omitempty,oneof=priority rotation"`
}

// SetPolicyRequest is the request body for switching a party's policy
type SetPolicyRequest struct {
	Policy string `json:"policy" validate:"required,oneof=priority rotation"`
}

// AddPlayerRequest is the request body for joining a player to a party
type AddPlayerRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	JobID    int    `json:"job_id" validate:"required,gt=0"`
	Nickname string `json:"nickname" validate:"required,min=1,max=50"`
}

// HandleCreateParty creates a raid party
// @Summary Create a raid party
// @Tags parties
// @Accept json
// @Produce json
// @Success 201 {object} domain.RaidParty
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /parties [post]
func HandleCreateParty(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePartyRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := partyService.CreateParty(r.Context(), req.Name, domain.DistributionPolicy(req.Policy))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to create party", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetParty returns one party by ID
// @Summary Get a raid party
// @Tags parties
// @Produce json
// @Success 200 {object} domain.RaidParty
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID} [get]
func HandleGetParty(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		p, err := partyService.GetParty(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleListParties returns all raid parties
// @Summary List raid parties
// @Tags parties
// @Produce json
// @Success 200 {array} domain.RaidParty
// @Router /parties [get]
func HandleListParties(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parties, err := partyService.ListParties(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list parties", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, parties)
	}
}

// HandleSetPolicy switches a party's distribution policy
// @Summary Set distribution policy
// @Tags parties
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/policy [put]
func HandleSetPolicy(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var req SetPolicyRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := partyService.SetPolicy(r.Context(), id, domain.DistributionPolicy(req.Policy)); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Policy updated"})
	}
}

// HandleDeleteParty removes a raid party and its roster
// @Summary Delete a raid party
// @Tags parties
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID} [delete]
func HandleDeleteParty(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := partyService.DeleteParty(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Party deleted"})
	}
}

// HandleAddPlayer joins a player to the party roster
// @Summary Add a player to the roster
// @Tags parties
// @Accept json
// @Produce json
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /parties/{partyID}/players [post]
func HandleAddPlayer(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var req AddPlayerRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := partyService.AddPlayer(r.Context(), partyID, req.UserID, req.JobID, req.Nickname)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to add player",
				"error", err, "party_id", partyID, "nickname", req.Nickname)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetRoster returns the party's current roster
// @Summary Get the party roster
// @Tags parties
// @Produce json
// @Success 200 {array} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /parties/{partyID}/players [get]
func HandleGetRoster(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		partyID, err := urlParamInt(r, "partyID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		roster, err := partyService.GetRoster(r.Context(), partyID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, roster)
	}
}

// HandleGetPlayer returns one player by ID
// @Summary Get a player
// @Tags players
// @Produce json
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [get]
func HandleGetPlayer(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := urlParamInt(r, "playerID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		p, err := partyService.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleRemovePlayer drops a player from their roster
// @Summary Remove a player
// @Tags players
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [delete]
func HandleRemovePlayer(partyService party.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := urlParamInt(r, "playerID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := partyService.RemovePlayer(r.Context(), playerID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Player removed"})
	}
}
