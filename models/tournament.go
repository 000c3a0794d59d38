package models

import "time"

// Tournament groups the players and matches of one Swiss event.
type Tournament struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TournamentOverview is the read model served for a single tournament page.
type TournamentOverview struct {
	Tournament  *Tournament     `json:"tournament"`
	Standings   []StandingEntry `json:"standings"`
	Matches     []*Match        `json:"matches"`
	PlayerCount int             `json:"player_count"`
	WinnerCount int             `json:"winner_count"`
}
