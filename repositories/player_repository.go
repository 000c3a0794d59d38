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
	ErrPlayerNotFound          = errors.New("player not found")
	ErrPlayerTournamentInvalid = errors.New("player tournament conflict or invalid")
)

type PlayerRepository interface {
	Create(ctx context.Context, p *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	Count(ctx context.Context, tournamentID int) (int, error)
	CountWinners(ctx context.Context, tournamentID int) (int, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (tournament_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.TournamentID, p.Name).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" && pqErr.Constraint == "players_tournament_id_fkey" {
			return ErrPlayerTournamentInvalid
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT id, tournament_id, name, created_at FROM players WHERE id = $1`
	p := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.TournamentID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return p, nil
}

func (r *postgresPlayerRepository) Count(ctx context.Context, tournamentID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM players WHERE tournament_id = $1`
	if err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players for tournament %d: %w", tournamentID, err)
	}
	return count, nil
}

// CountWinners counts players with at least one win, byes included.
func (r *postgresPlayerRepository) CountWinners(ctx context.Context, tournamentID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT winner_id)
		FROM matches
		WHERE tournament_id = $1 AND outcome = 'win'`
	if err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count winners for tournament %d: %w", tournamentID, err)
	}
	return count, nil
}

func (r *postgresPlayerRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	query := `DELETE FROM players WHERE tournament_id = $1`
	if _, err := executorOr(exec, r.db).ExecContext(ctx, query, tournamentID); err != nil {
		return fmt.Errorf("failed to delete players for tournament %d: %w", tournamentID, err)
	}
	return nil
}
