package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"testing"

	"github.com/Dosada05/swiss-pairing/models"
	"github.com/Dosada05/swiss-pairing/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		repoErr error
		wantErr error
	}{
		{name: "trims and creates", input: "  Autumn Swiss  "},
		{name: "blank name", input: "   ", wantErr: ErrTournamentNameRequired},
		{name: "duplicate name", input: "Autumn Swiss", repoErr: repositories.ErrTournamentNameConflict, wantErr: ErrTournamentNameConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeTournamentRepo()
			var stored *models.Tournament
			repo.CreateFunc = func(_ context.Context, tr *models.Tournament) error {
				if tt.repoErr != nil {
					return tt.repoErr
				}
				tr.ID = 11
				stored = tr
				return nil
			}
			svc := NewTournamentService(repo, NewFakePlayerRepo(), NewFakeMatchRepo(), &FakeStandingRepo{}, slog.Default())

			got, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 11, got.ID)
			assert.Equal(t, "Autumn Swiss", stored.Name)
		})
	}
}

func TestTournamentService_GetByID(t *testing.T) {
	repo := NewFakeTournamentRepo()
	repo.GetByIDFunc = func(context.Context, int) (*models.Tournament, error) {
		return nil, repositories.ErrTournamentNotFound
	}
	svc := NewTournamentService(repo, NewFakePlayerRepo(), NewFakeMatchRepo(), &FakeStandingRepo{}, slog.Default())

	_, err := svc.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestTournamentService_ListNormalizesPage(t *testing.T) {
	repo := NewFakeTournamentRepo()
	var gotLimit, gotOffset int
	repo.ListFunc = func(_ context.Context, limit, offset int) ([]*models.Tournament, error) {
		gotLimit, gotOffset = limit, offset
		return []*models.Tournament{{ID: 1}}, nil
	}
	svc := NewTournamentService(repo, NewFakePlayerRepo(), NewFakeMatchRepo(), &FakeStandingRepo{}, slog.Default())

	list, err := svc.List(context.Background(), 0, -4)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, defaultListLimit, gotLimit)
	assert.Zero(t, gotOffset)

	_, err = svc.List(context.Background(), 10_000, 20)
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, gotLimit)
	assert.Equal(t, 20, gotOffset)
}

func TestTournamentService_GetOverview(t *testing.T) {
	players := NewFakePlayerRepo()
	players.CountFunc = func(context.Context, int) (int, error) { return 4, nil }
	players.CountWinnersFunc = func(context.Context, int) (int, error) { return 2, nil }
	matches := NewFakeMatchRepo()
	loser := 2
	matches.ListByTournamentFunc = func(context.Context, int) ([]*models.Match, error) {
		return []*models.Match{{ID: 1, WinnerID: 1, LoserID: &loser, Outcome: models.OutcomeWin}}, nil
	}
	standings := &FakeStandingRepo{ListByTournamentFunc: func(_ context.Context, exec repositories.SQLExecutor, _ int) ([]models.StandingEntry, error) {
		return standingsOf(1, 2, 3, 4), nil
	}}

	svc := NewTournamentService(NewFakeTournamentRepo(), players, matches, standings, slog.Default())
	overview, err := svc.GetOverview(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, 9, overview.Tournament.ID)
	assert.Len(t, overview.Standings, 4)
	assert.Len(t, overview.Matches, 1)
	assert.Equal(t, 4, overview.PlayerCount)
	assert.Equal(t, 2, overview.WinnerCount)

	trace := players.Trace()
	sort.Strings(trace)
	assert.Equal(t, []string{"Count", "CountWinners"}, trace)
}

func TestTournamentService_GetOverviewFailure(t *testing.T) {
	players := NewFakePlayerRepo()
	players.CountWinnersFunc = func(context.Context, int) (int, error) { return 0, errors.New("timeout") }

	svc := NewTournamentService(NewFakeTournamentRepo(), players, NewFakeMatchRepo(), &FakeStandingRepo{}, slog.Default())
	overview, err := svc.GetOverview(context.Background(), 9)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, overview)
}
