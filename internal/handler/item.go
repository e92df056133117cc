package handler

import (
	"net/http"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/item"
	"github.com/haneul-dev/raidledger/internal/logger"
)

// CreateItemRequest is the request body for adding a catalog item
type CreateItemRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Slot   string `json:"slot" validate:"required"`
	Source string `json:"source" validate:"required"`
}

// HandleCreateItem adds an item to the catalog
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /items [post]
func HandleCreateItem(itemService item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := itemService.CreateItem(r.Context(), req.Name,
			domain.ItemSlot(req.Slot), domain.ItemSource(req.Source))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to create item", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetItem returns one item by ID
// @Summary Get an item
// @Tags items
// @Produce json
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [get]
func HandleGetItem(itemService item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "itemID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		it, err := itemService.GetItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, it)
	}
}

// HandleListItems returns the item catalog
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} domain.Item
// @Router /items [get]
func HandleListItems(itemService item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := itemService.ListItems(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list items", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleDeleteItem removes a catalog item without loot history
// @Summary Delete an item
// @Tags items
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /items/{itemID} [delete]
func HandleDeleteItem(itemService item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlParamInt(r, "itemID")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := itemService.DeleteItem(r.Context(), id); err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item deleted"})
	}
}
