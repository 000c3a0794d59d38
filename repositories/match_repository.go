package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-pairing/models"
	"github.com/lib/pq"
)

var (
	ErrMatchDuplicateBye      = errors.New("player already has a recorded bye")
	ErrMatchPlayerInvalid     = errors.New("match player conflict or invalid")
	ErrMatchTournamentInvalid = errors.New("match tournament conflict or invalid")
	ErrMatchSelfPlay          = errors.New("match winner and loser must differ")
	ErrMatchByeNotWin         = errors.New("a bye must be recorded as a win")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, m *models.Match) error
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ListByeRecipients(ctx context.Context, exec SQLExecutor, tournamentID int) (map[int]struct{}, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, winner_id, loser_id, outcome)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := executorOr(exec, r.db).QueryRowContext(ctx, query,
		m.TournamentID,
		m.WinnerID,
		m.LoserID,
		m.Outcome,
	).Scan(&m.ID, &m.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	query := `
		SELECT id, tournament_id, winner_id, loser_id, outcome, created_at
		FROM matches
		WHERE tournament_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(&m.ID, &m.TournamentID, &m.WinnerID, &m.LoserID, &m.Outcome, &m.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

// ListByeRecipients returns the ids of players holding a null-loser win.
func (r *postgresMatchRepository) ListByeRecipients(ctx context.Context, exec SQLExecutor, tournamentID int) (map[int]struct{}, error) {
	query := `SELECT DISTINCT winner_id FROM matches WHERE tournament_id = $1 AND loser_id IS NULL`

	rows, err := executorOr(exec, r.db).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bye recipients for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	recipients := make(map[int]struct{})
	for rows.Next() {
		var playerID int
		if err := rows.Scan(&playerID); err != nil {
			return nil, fmt.Errorf("failed to scan bye recipient: %w", err)
		}
		recipients[playerID] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during bye recipient iteration: %w", err)
	}
	return recipients, nil
}

func (r *postgresMatchRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	query := `DELETE FROM matches WHERE tournament_id = $1`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID); err != nil {
		return fmt.Errorf("failed to delete matches for tournament %d: %w", tournamentID, err)
	}
	return nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 23505 unique_violation, 23503 foreign_key_violation, 23514 check_violation
		switch pqErr.Constraint {
		case "matches_one_bye_per_player":
			return ErrMatchDuplicateBye
		case "matches_winner_id_fkey", "matches_loser_id_fkey":
			return ErrMatchPlayerInvalid
		case "matches_tournament_id_fkey":
			return ErrMatchTournamentInvalid
		case "matches_distinct_players":
			return ErrMatchSelfPlay
		case "matches_bye_is_win":
			return ErrMatchByeNotWin
		}
	}
	return fmt.Errorf("failed to create match: %w", err)
}
