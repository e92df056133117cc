package handler

import (
	"net/http"
	"time"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/loot"
)

// HandleListLootRecords returns ledger records matching the query filters
// @Summary List loot records
// @Tags loot
// @Produce json
// @Param player_id query int false "Filter by player"
// @Param item_id query int false "Filter by item"
// @Param party_id query int false "Filter by party"
// @Param since query string false "Filter by distribution time (RFC 3339)"
// @Success 200 {array} domain.LootRecord
// @Failure 400 {object} ErrorResponse
// @Router /loot/records [get]
func HandleListLootRecords(lootService loot.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter domain.LootFilter
		var err error

		if filter.PlayerID, err = queryParamInt(r, "player_id"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if filter.ItemID, err = queryParamInt(r, "item_id"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if filter.PartyID, err = queryParamInt(r, "party_id"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if raw := r.URL.Query().Get("since"); raw != "" {
			since, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			filter.Since = &since
		}

		records, err := lootService.ListRecords(r.Context(), filter)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list loot records", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, records)
	}
}
