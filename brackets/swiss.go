package brackets

import (
	"context"

	"github.com/Dosada05/swiss-pairing/models"
)

// SwissGenerator pairs players who sit next to each other in the standings.
// It does not look at previous opponents, so rematches are possible.
type SwissGenerator struct {
	allocator *ByeAllocator
}

func NewSwissGenerator() *SwissGenerator {
	return &SwissGenerator{allocator: NewByeAllocator()}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

// GeneratePairings walks the ranking two entries at a time. The standings must
// already be sorted by wins desc, id asc. With an odd count the last entry is
// returned alone as the bye candidate.
func (g *SwissGenerator) GeneratePairings(standings []models.StandingEntry) ([]models.Pairing, error) {
	if len(standings) == 0 {
		return nil, ErrEmptyStandings
	}

	pairings := make([]models.Pairing, 0, (len(standings)+1)/2)
	for i := 0; i < len(standings); i += 2 {
		p := models.Pairing{
			Player1ID:   standings[i].PlayerID,
			Player1Name: standings[i].Name,
		}
		if i+1 < len(standings) {
			p2ID := standings[i+1].PlayerID
			p2Name := standings[i+1].Name
			p.Player2ID = &p2ID
			p.Player2Name = &p2Name
		}
		pairings = append(pairings, p)
	}
	return pairings, nil
}

// GenerateRound pairs the standings and, when a bye is needed, hands the
// candidate to the ByeAllocator.
func (g *SwissGenerator) GenerateRound(ctx context.Context, params GenerateRoundParams) (*models.Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pairings, err := g.GeneratePairings(params.Standings)
	if err != nil {
		return nil, err
	}

	round := &models.Round{
		TournamentID: params.TournamentID,
		Pairings:     pairings,
	}
	if !pairings[len(pairings)-1].IsBye() {
		return round, nil
	}

	resolution, err := g.allocator.ResolveBye(pairings, params.ByeHistory)
	if err != nil {
		return nil, err
	}
	round.Pairings = resolution.Pairings
	round.ByeSwaps = resolution.Swaps
	return round, nil
}
