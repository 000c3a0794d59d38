package models

// Pairing is one board of a round. A nil Player2ID means Player1 receives the bye.
type Pairing struct {
	Player1ID   int     `json:"player1_id"`
	Player1Name string  `json:"player1_name"`
	Player2ID   *int    `json:"player2_id"`
	Player2Name *string `json:"player2_name"`
}

func (p Pairing) IsBye() bool {
	return p.Player2ID == nil
}

// Round is the result of one pairing request.
type Round struct {
	TournamentID int       `json:"tournament_id"`
	Pairings     []Pairing `json:"pairings"`
	ByeSwaps     int       `json:"bye_swaps"`
}
