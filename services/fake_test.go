package services

import (
	"context"
	"sync"

	"github.com/Dosada05/swiss-pairing/brackets"
	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/repositories"
	"github.com/Dosada05/swiss-pairing/storage"
)

// tracer records calls in order; the overview loader calls repos concurrently.
type tracer struct {
	mu    sync.Mutex
	trace []string
}

func (t *tracer) record(step string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.trace = append(t.trace, step)
}

func (t *tracer) Trace() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.trace))
	copy(out, t.trace)
	return out
}

// ------------------------
// Fake Tournament Repo
// ------------------------

type FakeTournamentRepo struct {
	tracer

	CreateFunc  func(ctx context.Context, t *models.Tournament) error
	GetByIDFunc func(ctx context.Context, id int) (*models.Tournament, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
}

// NewFakeTournamentRepo returns a repo where every positive id exists.
func NewFakeTournamentRepo() *FakeTournamentRepo {
	return &FakeTournamentRepo{}
}

func (f *FakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, t)
	}
	t.ID = 1
	return nil
}

func (f *FakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Tournament{ID: id, Name: "Open"}, nil
}

func (f *FakeTournamentRepo) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, limit, offset)
	}
	return []*models.Tournament{}, nil
}

var _ repositories.TournamentRepository = (*FakeTournamentRepo)(nil)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	tracer

	CreateFunc             func(ctx context.Context, p *models.Player) error
	GetByIDFunc            func(ctx context.Context, id int) (*models.Player, error)
	CountFunc              func(ctx context.Context, tournamentID int) (int, error)
	CountWinnersFunc       func(ctx context.Context, tournamentID int) (int, error)
	DeleteByTournamentFunc func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func NewFakePlayerRepo() *FakePlayerRepo {
	return &FakePlayerRepo{}
}

func (f *FakePlayerRepo) Create(ctx context.Context, p *models.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, p)
	}
	p.ID = 1
	return nil
}

func (f *FakePlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrPlayerNotFound
}

func (f *FakePlayerRepo) Count(ctx context.Context, tournamentID int) (int, error) {
	f.record("Count")
	if f.CountFunc != nil {
		return f.CountFunc(ctx, tournamentID)
	}
	return 0, nil
}

func (f *FakePlayerRepo) CountWinners(ctx context.Context, tournamentID int) (int, error) {
	f.record("CountWinners")
	if f.CountWinnersFunc != nil {
		return f.CountWinnersFunc(ctx, tournamentID)
	}
	return 0, nil
}

func (f *FakePlayerRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	f.record("DeleteByTournament")
	if f.DeleteByTournamentFunc != nil {
		return f.DeleteByTournamentFunc(ctx, exec, tournamentID)
	}
	return nil
}

var _ repositories.PlayerRepository = (*FakePlayerRepo)(nil)

// ------------------------
// Fake Match Repo
// ------------------------

type FakeMatchRepo struct {
	tracer

	CreateFunc             func(ctx context.Context, exec repositories.SQLExecutor, m *models.Match) error
	ListByTournamentFunc   func(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ListByeRecipientsFunc  func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (map[int]struct{}, error)
	DeleteByTournamentFunc func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func NewFakeMatchRepo() *FakeMatchRepo {
	return &FakeMatchRepo{}
}

func (f *FakeMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, m *models.Match) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, exec, m)
	}
	m.ID = 1
	return nil
}

func (f *FakeMatchRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	f.record("ListByTournament")
	if f.ListByTournamentFunc != nil {
		return f.ListByTournamentFunc(ctx, tournamentID)
	}
	return []*models.Match{}, nil
}

func (f *FakeMatchRepo) ListByeRecipients(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (map[int]struct{}, error) {
	f.record("ListByeRecipients")
	if f.ListByeRecipientsFunc != nil {
		return f.ListByeRecipientsFunc(ctx, exec, tournamentID)
	}
	return map[int]struct{}{}, nil
}

func (f *FakeMatchRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	f.record("DeleteByTournament")
	if f.DeleteByTournamentFunc != nil {
		return f.DeleteByTournamentFunc(ctx, exec, tournamentID)
	}
	return nil
}

var _ repositories.MatchRepository = (*FakeMatchRepo)(nil)

// ------------------------
// Fake Standing / Snapshot Repos
// ------------------------

type FakeStandingRepo struct {
	tracer

	ListByTournamentFunc func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) ([]models.StandingEntry, error)
}

func (f *FakeStandingRepo) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) ([]models.StandingEntry, error) {
	f.record("ListByTournament")
	if f.ListByTournamentFunc != nil {
		return f.ListByTournamentFunc(ctx, exec, tournamentID)
	}
	return []models.StandingEntry{}, nil
}

var _ repositories.StandingRepository = (*FakeStandingRepo)(nil)

type FakeSnapshotRepo struct {
	tracer

	LoadFunc func(ctx context.Context, tournamentID int) (*models.RoundSnapshot, error)
}

func (f *FakeSnapshotRepo) Load(ctx context.Context, tournamentID int) (*models.RoundSnapshot, error) {
	f.record("Load")
	if f.LoadFunc != nil {
		return f.LoadFunc(ctx, tournamentID)
	}
	return &models.RoundSnapshot{TournamentID: tournamentID, ByeRecipients: map[int]struct{}{}}, nil
}

var _ repositories.SnapshotRepository = (*FakeSnapshotRepo)(nil)

// ------------------------
// Fake Tx Runner
// ------------------------

type FakeTxRunner struct {
	tracer

	// Committed is false when fn returned an error.
	Committed bool
}

func (f *FakeTxRunner) WithinTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.record("WithinTx")
	if err := fn(nil); err != nil {
		return err
	}
	f.Committed = true
	return nil
}

var _ repositories.TxRunner = (*FakeTxRunner)(nil)

// ------------------------
// Fake broadcast / archive
// ------------------------

type FakeBroadcaster struct {
	mu       sync.Mutex
	Rooms    []string
	Messages []interface{}
}

func (f *FakeBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Rooms = append(f.Rooms, roomID)
	f.Messages = append(f.Messages, message)
}

type FakeArchiver struct {
	tracer

	StoreFunc func(ctx context.Context, round *models.Round) (*storage.UploadResult, error)
}

func (f *FakeArchiver) Store(ctx context.Context, round *models.Round) (*storage.UploadResult, error) {
	f.record("Store")
	if f.StoreFunc != nil {
		return f.StoreFunc(ctx, round)
	}
	return &storage.UploadResult{Key: "k"}, nil
}

// ------------------------
// Fake generator
// ------------------------

type FakeGenerator struct {
	tracer

	GenerateRoundFunc func(ctx context.Context, params brackets.GenerateRoundParams) (*models.Round, error)
}

func (f *FakeGenerator) GenerateRound(ctx context.Context, params brackets.GenerateRoundParams) (*models.Round, error) {
	f.record("GenerateRound")
	if f.GenerateRoundFunc != nil {
		return f.GenerateRoundFunc(ctx, params)
	}
	return &models.Round{TournamentID: params.TournamentID}, nil
}

func (f *FakeGenerator) GetName() string { return "Fake" }

var _ brackets.RoundGenerator = (*FakeGenerator)(nil)
