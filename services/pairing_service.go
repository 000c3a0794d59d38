package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-pairing/brackets"
	"github.com/Dosada05/swiss-pairing/metrics"
	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/repositories"
	"github.com/Dosada05/swiss-pairing/storage"
)

// RoundBroadcaster pushes a message to every subscriber of a room.
type RoundBroadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// RoundArchiver persists a generated round outside the database.
type RoundArchiver interface {
	Store(ctx context.Context, round *models.Round) (*storage.UploadResult, error)
}

type PairingService interface {
	GenerateNextRound(ctx context.Context, tournamentID int) (*models.Round, error)
}

type pairingService struct {
	tournamentRepo repositories.TournamentRepository
	snapshotRepo   repositories.SnapshotRepository
	generator      brackets.RoundGenerator
	broadcaster    RoundBroadcaster
	archiver       RoundArchiver
	metrics        *metrics.PairingMetrics
	logger         *slog.Logger
	locks          *tournamentLocks
}

// NewPairingService wires round generation. broadcaster and archiver may be nil.
func NewPairingService(
	tournamentRepo repositories.TournamentRepository,
	snapshotRepo repositories.SnapshotRepository,
	generator brackets.RoundGenerator,
	broadcaster RoundBroadcaster,
	archiver RoundArchiver,
	pairingMetrics *metrics.PairingMetrics,
	logger *slog.Logger,
) PairingService {
	if pairingMetrics == nil {
		pairingMetrics = metrics.NewPairingMetrics(nil)
	}
	return &pairingService{
		tournamentRepo: tournamentRepo,
		snapshotRepo:   snapshotRepo,
		generator:      generator,
		broadcaster:    broadcaster,
		archiver:       archiver,
		metrics:        pairingMetrics,
		logger:         logger,
		locks:          newTournamentLocks(),
	}
}

// GenerateNextRound pairs the next round of a tournament. Calls for the same
// tournament run one at a time; nothing is written to the store.
func (s *pairingService) GenerateNextRound(ctx context.Context, tournamentID int) (*models.Round, error) {
	unlock, err := s.locks.lock(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	start := time.Now()
	logger := s.logger.With(slog.Int("tournament_id", tournamentID), slog.String("generator", s.generator.GetName()))

	if err := ensureTournament(ctx, s.tournamentRepo, tournamentID); err != nil {
		s.fail(ctx, logger, err)
		return nil, err
	}

	snapshot, err := s.snapshotRepo.Load(ctx, tournamentID)
	if err != nil {
		err = fmt.Errorf("%w: failed to load standings for tournament %d: %w", ErrStoreUnavailable, tournamentID, err)
		s.fail(ctx, logger, err)
		return nil, err
	}

	round, err := s.generator.GenerateRound(ctx, brackets.GenerateRoundParams{
		TournamentID: tournamentID,
		Standings:    snapshot.Standings,
		ByeHistory:   snapshot.ByeRecipients,
	})
	if err != nil {
		err = fmt.Errorf("failed to pair tournament %d: %w", tournamentID, err)
		s.fail(ctx, logger, err)
		return nil, err
	}

	hasBye := len(round.Pairings) > 0 && round.Pairings[len(round.Pairings)-1].IsBye()
	s.metrics.RoundGenerated(hasBye, round.ByeSwaps, time.Since(start).Seconds())
	logger.InfoContext(ctx, "Round paired",
		slog.Int("players", len(snapshot.Standings)),
		slog.Int("pairings", len(round.Pairings)),
		slog.Bool("bye", hasBye),
		slog.Int("bye_swaps", round.ByeSwaps),
	)

	s.publish(ctx, logger, round)
	return round, nil
}

func (s *pairingService) publish(ctx context.Context, logger *slog.Logger, round *models.Round) {
	if s.broadcaster != nil {
		room := brackets.TournamentRoom(round.TournamentID)
		s.broadcaster.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    brackets.MessageRoundPaired,
			Payload: round,
			RoomID:  room,
		})
	}
	if s.archiver != nil {
		res, err := s.archiver.Store(ctx, round)
		if err != nil {
			logger.WarnContext(ctx, "Failed to archive round", slog.Any("error", err))
			return
		}
		logger.DebugContext(ctx, "Round archived", slog.String("key", res.Key), slog.String("location", res.Location))
	}
}

func (s *pairingService) fail(ctx context.Context, logger *slog.Logger, err error) {
	reason := failureReason(err)
	s.metrics.RoundFailed(reason)
	logger.WarnContext(ctx, "Round pairing failed", slog.String("reason", reason), slog.Any("error", err))
}

// failureReason buckets an error into a low-cardinality metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, brackets.ErrEmptyStandings):
		return "empty_standings"
	case errors.Is(err, brackets.ErrByeExhausted):
		return "bye_exhausted"
	case errors.Is(err, ErrTournamentNotFound):
		return "tournament_not_found"
	case errors.Is(err, ErrStoreUnavailable):
		return "store_unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
