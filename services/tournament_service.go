package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/repositories"
	"golang.org/x/sync/errgroup"
)

type TournamentService interface {
	Create(ctx context.Context, name string) (*models.Tournament, error)
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
	GetOverview(ctx context.Context, id int) (*models.TournamentOverview, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	standingRepo   repositories.StandingRepository
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
		logger:         logger,
	}
}

func (s *tournamentService) Create(ctx context.Context, name string) (*models.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTournamentNameRequired
	}

	tournament := &models.Tournament{Name: name}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNameConflict) {
			return nil, ErrTournamentNameConflict
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "Tournament created", slog.Int("tournament_id", tournament.ID), slog.String("name", tournament.Name))
	return tournament, nil
}

func (s *tournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	limit, offset = normalizePage(limit, offset)
	tournaments, err := s.tournamentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

// GetOverview loads standings, matches and counters concurrently. Any failed
// read fails the whole overview.
func (s *tournamentService) GetOverview(ctx context.Context, id int) (*models.TournamentOverview, error) {
	tournament, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	overview := &models.TournamentOverview{Tournament: tournament}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		standings, err := s.standingRepo.ListByTournament(gCtx, nil, id)
		if err != nil {
			return fmt.Errorf("failed to load standings: %w", err)
		}
		overview.Standings = standings
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByTournament(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to load matches: %w", err)
		}
		overview.Matches = matches
		return nil
	})

	g.Go(func() error {
		count, err := s.playerRepo.Count(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count players: %w", err)
		}
		overview.PlayerCount = count
		return nil
	})

	g.Go(func() error {
		winners, err := s.playerRepo.CountWinners(gCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count winners: %w", err)
		}
		overview.WinnerCount = winners
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to load tournament overview", slog.Int("tournament_id", id), slog.Any("error", err))
		return nil, fmt.Errorf("%w: tournament %d: %w", ErrStoreUnavailable, id, err)
	}
	if overview.Standings == nil {
		overview.Standings = []models.StandingEntry{}
	}
	if overview.Matches == nil {
		overview.Matches = []*models.Match{}
	}
	return overview, nil
}
