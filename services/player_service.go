package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/repositories"
)

const maxPlayerNameLength = 100

type PlayerCounts struct {
	Players int `json:"players"`
	Winners int `json:"winners"`
}

type PlayerService interface {
	Register(ctx context.Context, tournamentID int, name string) (*models.Player, error)
	Counts(ctx context.Context, tournamentID int) (*PlayerCounts, error)
	Standings(ctx context.Context, tournamentID int) ([]models.StandingEntry, error)
	ClearPlayers(ctx context.Context, tournamentID int) error
}

type playerService struct {
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	standingRepo   repositories.StandingRepository
	tx             repositories.TxRunner
	logger         *slog.Logger
}

func NewPlayerService(
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
	tx repositories.TxRunner,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		standingRepo:   standingRepo,
		tx:             tx,
		logger:         logger,
	}
}

func (s *playerService) Register(ctx context.Context, tournamentID int, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	if len(name) > maxPlayerNameLength {
		return nil, fmt.Errorf("%w: player name exceeds %d characters", ErrValidationFailed, maxPlayerNameLength)
	}

	player := &models.Player{TournamentID: tournamentID, Name: name}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerTournamentInvalid) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	s.logger.InfoContext(ctx, "Player registered",
		slog.Int("tournament_id", tournamentID),
		slog.Int("player_id", player.ID),
		slog.String("name", player.Name),
	)
	return player, nil
}

func (s *playerService) Counts(ctx context.Context, tournamentID int) (*PlayerCounts, error) {
	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}
	players, err := s.playerRepo.Count(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}
	winners, err := s.playerRepo.CountWinners(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}
	return &PlayerCounts{Players: players, Winners: winners}, nil
}

func (s *playerService) Standings(ctx context.Context, tournamentID int) ([]models.StandingEntry, error) {
	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}
	standings, err := s.standingRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return standings, nil
}

// ClearPlayers removes every player of the tournament. Matches reference
// players, so they are removed first in the same transaction.
func (s *playerService) ClearPlayers(ctx context.Context, tournamentID int) error {
	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return err
	}
	err := s.tx.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.DeleteByTournament(ctx, exec, tournamentID); err != nil {
			return err
		}
		return s.playerRepo.DeleteByTournament(ctx, exec, tournamentID)
	})
	if err != nil {
		return fmt.Errorf("failed to clear players of tournament %d: %w", tournamentID, err)
	}
	s.logger.InfoContext(ctx, "Players cleared", slog.Int("tournament_id", tournamentID))
	return nil
}
