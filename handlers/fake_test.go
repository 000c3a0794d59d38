package handlers

import (
	"context"

	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/services"
)

type FakeTournamentService struct {
	CreateFunc      func(ctx context.Context, name string) (*models.Tournament, error)
	GetByIDFunc     func(ctx context.Context, id int) (*models.Tournament, error)
	ListFunc        func(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
	GetOverviewFunc func(ctx context.Context, id int) (*models.TournamentOverview, error)
}

func (f *FakeTournamentService) Create(ctx context.Context, name string) (*models.Tournament, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, name)
	}
	return &models.Tournament{ID: 1, Name: name}, nil
}

func (f *FakeTournamentService) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return &models.Tournament{ID: id}, nil
}

func (f *FakeTournamentService) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, limit, offset)
	}
	return []*models.Tournament{}, nil
}

func (f *FakeTournamentService) GetOverview(ctx context.Context, id int) (*models.TournamentOverview, error) {
	if f.GetOverviewFunc != nil {
		return f.GetOverviewFunc(ctx, id)
	}
	return &models.TournamentOverview{Tournament: &models.Tournament{ID: id}}, nil
}

var _ services.TournamentService = (*FakeTournamentService)(nil)

type FakePlayerService struct {
	RegisterFunc     func(ctx context.Context, tournamentID int, name string) (*models.Player, error)
	CountsFunc       func(ctx context.Context, tournamentID int) (*services.PlayerCounts, error)
	StandingsFunc    func(ctx context.Context, tournamentID int) ([]models.StandingEntry, error)
	ClearPlayersFunc func(ctx context.Context, tournamentID int) error
}

func (f *FakePlayerService) Register(ctx context.Context, tournamentID int, name string) (*models.Player, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, tournamentID, name)
	}
	return &models.Player{ID: 1, TournamentID: tournamentID, Name: name}, nil
}

func (f *FakePlayerService) Counts(ctx context.Context, tournamentID int) (*services.PlayerCounts, error) {
	if f.CountsFunc != nil {
		return f.CountsFunc(ctx, tournamentID)
	}
	return &services.PlayerCounts{}, nil
}

func (f *FakePlayerService) Standings(ctx context.Context, tournamentID int) ([]models.StandingEntry, error) {
	if f.StandingsFunc != nil {
		return f.StandingsFunc(ctx, tournamentID)
	}
	return []models.StandingEntry{}, nil
}

func (f *FakePlayerService) ClearPlayers(ctx context.Context, tournamentID int) error {
	if f.ClearPlayersFunc != nil {
		return f.ClearPlayersFunc(ctx, tournamentID)
	}
	return nil
}

var _ services.PlayerService = (*FakePlayerService)(nil)

type FakeMatchService struct {
	ReportFunc       func(ctx context.Context, tournamentID int, input services.ReportMatchInput) (*models.Match, error)
	ListFunc         func(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ClearMatchesFunc func(ctx context.Context, tournamentID int) error
}

func (f *FakeMatchService) Report(ctx context.Context, tournamentID int, input services.ReportMatchInput) (*models.Match, error) {
	if f.ReportFunc != nil {
		return f.ReportFunc(ctx, tournamentID, input)
	}
	return &models.Match{ID: 1, TournamentID: tournamentID, WinnerID: input.WinnerID, LoserID: input.LoserID, Outcome: input.Outcome}, nil
}

func (f *FakeMatchService) List(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, tournamentID)
	}
	return []*models.Match{}, nil
}

func (f *FakeMatchService) ClearMatches(ctx context.Context, tournamentID int) error {
	if f.ClearMatchesFunc != nil {
		return f.ClearMatchesFunc(ctx, tournamentID)
	}
	return nil
}

var _ services.MatchService = (*FakeMatchService)(nil)

type FakePairingService struct {
	GenerateNextRoundFunc func(ctx context.Context, tournamentID int) (*models.Round, error)
}

func (f *FakePairingService) GenerateNextRound(ctx context.Context, tournamentID int) (*models.Round, error) {
	if f.GenerateNextRoundFunc != nil {
		return f.GenerateNextRoundFunc(ctx, tournamentID)
	}
	return &models.Round{TournamentID: tournamentID}, nil
}

var _ services.PairingService = (*FakePairingService)(nil)

type FakeAuthService struct {
	LoginFunc func(ctx context.Context, input services.LoginInput) (string, error)
}

func (f *FakeAuthService) Login(ctx context.Context, input services.LoginInput) (string, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, input)
	}
	return "token", nil
}

var _ services.AuthService = (*FakeAuthService)(nil)
