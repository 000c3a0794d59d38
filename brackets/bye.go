package brackets

import "github.com/Dosada05/swiss-pairing/models"

type byeState int

const (
	byeChecking byeState = iota
	byeSwapping
	byeResolved
)

type ByeResolution struct {
	Pairings    []models.Pairing
	ByePlayerID int
	Swaps       int
}

// ByeAllocator makes sure the bye never goes to a player who already had one.
type ByeAllocator struct{}

func NewByeAllocator() *ByeAllocator {
	return &ByeAllocator{}
}

type seatedPlayer struct {
	id   int
	name string
}

// ResolveBye checks the bye candidate in the last pairing against byeHistory.
// On a conflict it walks up the ranking one seat at a time: the candidate takes
// the seat directly above and the seat's occupant becomes the new candidate.
// Seats are numbered over the pairings above the bye, pairing k holding seats
// 2k and 2k+1, so the seated players stay in rank order after every swap.
// The input slice is left untouched.
func (a *ByeAllocator) ResolveBye(pairings []models.Pairing, byeHistory map[int]struct{}) (*ByeResolution, error) {
	if len(pairings) == 0 {
		return nil, ErrEmptyStandings
	}
	last := len(pairings) - 1
	if !pairings[last].IsBye() {
		return nil, ErrNoByeCandidate
	}

	out := make([]models.Pairing, len(pairings))
	copy(out, pairings)

	seat := 2*last - 1
	swaps := 0
	state := byeChecking
	for state != byeResolved {
		switch state {
		case byeChecking:
			if _, had := byeHistory[out[last].Player1ID]; !had {
				state = byeResolved
				continue
			}
			if seat < 0 {
				return nil, &ByeExhaustionError{Examined: swaps + 1}
			}
			state = byeSwapping

		case byeSwapping:
			target := seat / 2
			candidate := seatedPlayer{id: out[last].Player1ID, name: out[last].Player1Name}
			var displaced seatedPlayer
			out[target], displaced = reseat(out[target], seat%2, candidate)
			out[last] = models.Pairing{Player1ID: displaced.id, Player1Name: displaced.name}
			seat--
			swaps++
			state = byeChecking
		}
	}

	return &ByeResolution{
		Pairings:    out,
		ByePlayerID: out[last].Player1ID,
		Swaps:       swaps,
	}, nil
}

// reseat puts p into the given slot of pairing and returns the player it replaced.
// New pointers are allocated so the caller's pairings are never written through.
func reseat(pairing models.Pairing, slot int, p seatedPlayer) (models.Pairing, seatedPlayer) {
	if slot == 0 {
		displaced := seatedPlayer{id: pairing.Player1ID, name: pairing.Player1Name}
		pairing.Player1ID = p.id
		pairing.Player1Name = p.name
		return pairing, displaced
	}

	displaced := seatedPlayer{id: *pairing.Player2ID, name: *pairing.Player2Name}
	id, name := p.id, p.name
	pairing.Player2ID = &id
	pairing.Player2Name = &name
	return pairing, displaced
}
