package services

import "errors"

// Shared sentinels, mapped to HTTP statuses by the handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation
	ErrValidationFailed       = errors.New("validation failed")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrPlayerNameRequired     = errors.New("player name is required")
	ErrInvalidOutcome         = errors.New("match outcome must be 'win' or 'draw'")
	ErrSelfMatch              = errors.New("a player cannot play against themselves")
	ErrDrawNeedsOpponent      = errors.New("a draw requires both players")
	ErrPlayerNotInTournament  = errors.New("player is not registered in this tournament")

	// Conflicts
	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrDuplicateBye           = errors.New("player has already received a bye")

	// Auth
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Entities
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("player not found")

	// Infrastructure
	ErrStoreUnavailable = errors.New("store unavailable")
)
