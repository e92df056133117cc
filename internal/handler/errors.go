package handler

import (
	"errors"
	"net/http"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request. Please check your inputs."

	ErrMsgUserNotFound     = "User not found"
	ErrMsgUserExists       = "Username is already registered"
	ErrMsgItemNotFound     = "Item not found"
	ErrMsgItemExists       = "Item is already registered"
	ErrMsgItemInUse        = "Item has loot history and cannot be deleted"
	ErrMsgJobNotFound      = "Job not found"
	ErrMsgPartyNotFound    = "Raid party not found"
	ErrMsgPartyExists      = "Raid party name is already taken"
	ErrMsgPartyHasHistory  = "Raid party has loot history and cannot be deleted"
	ErrMsgPlayerNotFound   = "Player not found"
	ErrMsgNicknameTaken    = "That character nickname is already taken in this party"
	ErrMsgNotOnRoster      = "Player is not on this party's roster"
	ErrMsgGearSetNotFound  = "Gear set not found"
	ErrMsgPriorityExists   = "A priority entry already exists for this player, item and party"
	ErrMsgPriorityNotFound = "Priority entry not found"
	ErrMsgScheduleNotFound = "Raid schedule not found"
	ErrMsgPolicyUnknown    = "Unknown distribution policy"
	ErrMsgWeeklyCapHit     = "Player already received an item this week"
)

// mapServiceError maps domain errors to an HTTP status code and a message the
// caller can act on. Unknown errors collapse to a generic 500 so internals
// never leak.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, ErrMsgJobNotFound
	case errors.Is(err, domain.ErrPartyNotFound):
		return http.StatusNotFound, ErrMsgPartyNotFound
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrGearSetNotFound):
		return http.StatusNotFound, ErrMsgGearSetNotFound
	case errors.Is(err, domain.ErrPriorityNotFound):
		return http.StatusNotFound, ErrMsgPriorityNotFound
	case errors.Is(err, domain.ErrScheduleNotFound):
		return http.StatusNotFound, ErrMsgScheduleNotFound

	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, ErrMsgUserExists
	case errors.Is(err, domain.ErrItemExists):
		return http.StatusConflict, ErrMsgItemExists
	case errors.Is(err, domain.ErrPartyExists):
		return http.StatusConflict, ErrMsgPartyExists
	case errors.Is(err, domain.ErrDuplicateNickname):
		return http.StatusConflict, ErrMsgNicknameTaken
	case errors.Is(err, domain.ErrPriorityExists):
		return http.StatusConflict, ErrMsgPriorityExists
	case errors.Is(err, domain.ErrItemInUse):
		return http.StatusConflict, ErrMsgItemInUse
	case errors.Is(err, domain.ErrPartyHasHistory):
		return http.StatusConflict, ErrMsgPartyHasHistory
	case errors.Is(err, domain.ErrWeeklyCapExceeded):
		return http.StatusConflict, ErrMsgWeeklyCapHit

	case errors.Is(err, domain.ErrPlayerNotOnRoster):
		return http.StatusBadRequest, ErrMsgNotOnRoster
	case errors.Is(err, domain.ErrPolicyUnknown):
		return http.StatusBadRequest, ErrMsgPolicyUnknown
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the underlying error and writes the mapped response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceError(err)
	respondError(w, status, message)
}
