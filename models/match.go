package models

import "time"

type MatchOutcome string

const (
	OutcomeWin  MatchOutcome = "win"
	OutcomeDraw MatchOutcome = "draw"
)

func (o MatchOutcome) Valid() bool {
	return o == OutcomeWin || o == OutcomeDraw
}

// Match is an append-only result row. A nil LoserID marks a bye.
type Match struct {
	ID           int          `json:"id" db:"id"`
	TournamentID int          `json:"tournament_id" db:"tournament_id"`
	WinnerID     int          `json:"winner_id" db:"winner_id"`
	LoserID      *int         `json:"loser_id,omitempty" db:"loser_id"`
	Outcome      MatchOutcome `json:"outcome" db:"outcome"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

func (m *Match) IsBye() bool {
	return m.LoserID == nil
}
