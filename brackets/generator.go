package brackets

import (
	"context"

	"github.com/Dosada05/swiss-pairing/models"
)

type GenerateRoundParams struct {
	TournamentID int
	Standings    []models.StandingEntry
	ByeHistory   map[int]struct{}
}

// RoundGenerator produces the pairings of the next round from a standings snapshot.
type RoundGenerator interface {
	GenerateRound(ctx context.Context, params GenerateRoundParams) (*models.Round, error)

	GetName() string
}
