package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/repositories"
)

// ReportMatchInput records one result. A nil LoserID records a bye, which
// is always a win.
type ReportMatchInput struct {
	WinnerID int                 `json:"winner_id"`
	LoserID  *int                `json:"loser_id"`
	Outcome  models.MatchOutcome `json:"outcome"`
}

type MatchService interface {
	Report(ctx context.Context, tournamentID int, input ReportMatchInput) (*models.Match, error)
	List(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ClearMatches(ctx context.Context, tournamentID int) error
}

type matchService struct {
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	matchRepo      repositories.MatchRepository
	logger         *slog.Logger
}

func NewMatchService(
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

func (s *matchService) Report(ctx context.Context, tournamentID int, input ReportMatchInput) (*models.Match, error) {
	if input.Outcome == "" {
		input.Outcome = models.OutcomeWin
	}
	if !input.Outcome.Valid() {
		return nil, ErrInvalidOutcome
	}
	if input.LoserID != nil && *input.LoserID == input.WinnerID {
		return nil, ErrSelfMatch
	}
	if input.LoserID == nil && input.Outcome == models.OutcomeDraw {
		return nil, ErrDrawNeedsOpponent
	}

	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}
	if err := s.checkPlayer(ctx, tournamentID, input.WinnerID); err != nil {
		return nil, err
	}
	if input.LoserID != nil {
		if err := s.checkPlayer(ctx, tournamentID, *input.LoserID); err != nil {
			return nil, err
		}
	} else {
		recipients, err := s.matchRepo.ListByeRecipients(ctx, nil, tournamentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bye history: %w", err)
		}
		if _, ok := recipients[input.WinnerID]; ok {
			return nil, ErrDuplicateBye
		}
	}

	match := &models.Match{
		TournamentID: tournamentID,
		WinnerID:     input.WinnerID,
		LoserID:      input.LoserID,
		Outcome:      input.Outcome,
	}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		return nil, s.mapCreateError(err)
	}

	attrs := []any{
		slog.Int("tournament_id", tournamentID),
		slog.Int("match_id", match.ID),
		slog.Int("winner_id", match.WinnerID),
		slog.String("outcome", string(match.Outcome)),
	}
	if match.IsBye() {
		attrs = append(attrs, slog.Bool("bye", true))
	} else {
		attrs = append(attrs, slog.Int("loser_id", *match.LoserID))
	}
	s.logger.InfoContext(ctx, "Match recorded", attrs...)
	return match, nil
}

func (s *matchService) checkPlayer(ctx context.Context, tournamentID, playerID int) error {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return fmt.Errorf("%w: %d", ErrPlayerNotFound, playerID)
		}
		return fmt.Errorf("failed to load player %d: %w", playerID, err)
	}
	if player.TournamentID != tournamentID {
		return fmt.Errorf("%w: player %d", ErrPlayerNotInTournament, playerID)
	}
	return nil
}

func (s *matchService) mapCreateError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrMatchDuplicateBye):
		return ErrDuplicateBye
	case errors.Is(err, repositories.ErrMatchSelfPlay):
		return ErrSelfMatch
	case errors.Is(err, repositories.ErrMatchByeNotWin):
		return ErrDrawNeedsOpponent
	case errors.Is(err, repositories.ErrMatchPlayerInvalid):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrMatchTournamentInvalid):
		return ErrTournamentNotFound
	default:
		return fmt.Errorf("failed to record match: %w", err)
	}
}

func (s *matchService) List(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) ClearMatches(ctx context.Context, tournamentID int) error {
	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		return err
	}
	if err := s.matchRepo.DeleteByTournament(ctx, nil, tournamentID); err != nil {
		return fmt.Errorf("failed to clear matches of tournament %d: %w", tournamentID, err)
	}
	s.logger.InfoContext(ctx, "Matches cleared", slog.Int("tournament_id", tournamentID))
	return nil
}
