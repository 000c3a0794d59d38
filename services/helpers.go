package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-pairing/repositories"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ensureTournament turns a missing tournament into ErrTournamentNotFound so
// every per-tournament operation reports 404 the same way.
func ensureTournament(ctx context.Context, repo repositories.TournamentRepository, tournamentID int) error {
	if tournamentID <= 0 {
		return fmt.Errorf("%w: tournament id must be positive", ErrValidationFailed)
	}
	if _, err := repo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("%w: failed to load tournament %d: %w", ErrStoreUnavailable, tournamentID, err)
	}
	return nil
}
