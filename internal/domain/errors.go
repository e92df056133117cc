package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"
	ErrMsgUserExists   = "username already registered"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemExists   = "item already registered"
	ErrMsgItemInUse    = "item is referenced by loot records"

	// Job errors
	ErrMsgJobNotFound = "job not found"

	// Player errors
	ErrMsgPlayerNotFound    = "player not found"
	ErrMsgDuplicateNickname = "character nickname already taken in this party"
	ErrMsgPlayerNotOnRoster = "player is not on the party roster"

	// Party errors
	ErrMsgPartyNotFound   = "raid party not found"
	ErrMsgPartyExists     = "raid party name already registered"
	ErrMsgPartyHasHistory = "raid party is referenced by loot records"

	// Gear set errors
	ErrMsgGearSetNotFound = "gear set not found"

	// Priority errors
	ErrMsgPriorityExists   = "priority entry already exists for this player, item and party"
	ErrMsgPriorityNotFound = "priority entry not found"

	// Schedule errors
	ErrMsgScheduleNotFound = "raid schedule not found"

	// Distribution errors
	ErrMsgPolicyUnknown     = "unknown distribution policy"
	ErrMsgWeeklyCapExceeded = "player already received an item this week"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)
	ErrUserExists   = errors.New(ErrMsgUserExists)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrItemExists   = errors.New(ErrMsgItemExists)
	ErrItemInUse    = errors.New(ErrMsgItemInUse)

	// Job errors
	ErrJobNotFound = errors.New(ErrMsgJobNotFound)

	// Player errors
	ErrPlayerNotFound    = errors.New(ErrMsgPlayerNotFound)
	ErrDuplicateNickname = errors.New(ErrMsgDuplicateNickname)
	ErrPlayerNotOnRoster = errors.New(ErrMsgPlayerNotOnRoster)

	// Party errors
	ErrPartyNotFound   = errors.New(ErrMsgPartyNotFound)
	ErrPartyExists     = errors.New(ErrMsgPartyExists)
	ErrPartyHasHistory = errors.New(ErrMsgPartyHasHistory)

	// Gear set errors
	ErrGearSetNotFound = errors.New(ErrMsgGearSetNotFound)

	// Priority errors
	ErrPriorityExists   = errors.New(ErrMsgPriorityExists)
	ErrPriorityNotFound = errors.New(ErrMsgPriorityNotFound)

	// Schedule errors
	ErrScheduleNotFound = errors.New(ErrMsgScheduleNotFound)

	// Distribution errors
	ErrPolicyUnknown     = errors.New(ErrMsgPolicyUnknown)
	ErrWeeklyCapExceeded = errors.New(ErrMsgWeeklyCapExceeded)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
