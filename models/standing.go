package models

// StandingEntry is one row of the ranking, ordered by wins desc then player id asc.
type StandingEntry struct {
	PlayerID int    `json:"player_id" db:"id"`
	Name     string `json:"name" db:"name"`
	Wins     int    `json:"wins" db:"wins"`
	Matches  int    `json:"matches" db:"matches"`
}

// RoundSnapshot is everything pairing generation reads from the store,
// taken inside one read-only transaction.
type RoundSnapshot struct {
	TournamentID  int
	Standings     []StandingEntry
	ByeRecipients map[int]struct{}
}

func (s *RoundSnapshot) HasHadBye(playerID int) bool {
	_, ok := s.ByeRecipients[playerID]
	return ok
}
