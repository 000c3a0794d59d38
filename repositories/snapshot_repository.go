package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/swiss-pairing/models"
)

// SnapshotRepository reads everything a pairing decision depends on in one
// consistent view of the store.
type SnapshotRepository interface {
	Load(ctx context.Context, tournamentID int) (*models.RoundSnapshot, error)
}

type postgresSnapshotRepository struct {
	db           *sql.DB
	standingRepo StandingRepository
	matchRepo    MatchRepository
}

func NewPostgresSnapshotRepository(db *sql.DB, standingRepo StandingRepository, matchRepo MatchRepository) SnapshotRepository {
	return &postgresSnapshotRepository{
		db:           db,
		standingRepo: standingRepo,
		matchRepo:    matchRepo,
	}
}

// Load opens a read-only REPEATABLE READ transaction so standings and bye
// history come from the same snapshot. The transaction is always released
// before returning.
func (r *postgresSnapshotRepository) Load(ctx context.Context, tournamentID int) (*models.RoundSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	standings, err := r.standingRepo.ListByTournament(ctx, tx, tournamentID)
	if err != nil {
		return nil, err
	}
	recipients, err := r.matchRepo.ListByeRecipients(ctx, tx, tournamentID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return &models.RoundSnapshot{
		TournamentID:  tournamentID,
		Standings:     standings,
		ByeRecipients: recipients,
	}, nil
}
