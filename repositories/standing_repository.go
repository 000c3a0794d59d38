package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/swiss-pairing/models"
)

type StandingRepository interface {
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.StandingEntry, error)
}

type postgresStandingRepository struct {
	db *sql.DB
}

func NewPostgresStandingRepository(db *sql.DB) StandingRepository {
	return &postgresStandingRepository{db: db}
}

// ListByTournament ranks players by wins desc with player id asc as the tie-break.
// A draw counts as a match played for both sides and a win for neither.
func (r *postgresStandingRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.StandingEntry, error) {
	query := `
		SELECT p.id, p.name,
		       COUNT(m.id) FILTER (WHERE m.winner_id = p.id AND m.outcome = 'win') AS wins,
		       COUNT(m.id) AS matches
		FROM players p
		LEFT JOIN matches m
		       ON m.tournament_id = p.tournament_id
		      AND (m.winner_id = p.id OR m.loser_id = p.id)
		WHERE p.tournament_id = $1
		GROUP BY p.id, p.name
		ORDER BY wins DESC, p.id ASC`

	rows, err := executorOr(exec, r.db).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	standings := make([]models.StandingEntry, 0)
	for rows.Next() {
		s, errScan := scanStanding(rows)
		if errScan != nil {
			return nil, errScan
		}
		standings = append(standings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during standings iteration: %w", err)
	}
	return standings, nil
}

func scanStanding(row rowScanner) (models.StandingEntry, error) {
	var s models.StandingEntry
	if err := row.Scan(&s.PlayerID, &s.Name, &s.Wins, &s.Matches); err != nil {
		return s, fmt.Errorf("failed to scan standing row: %w", err)
	}
	return s, nil
}
