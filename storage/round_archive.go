package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dosada05/swiss-pairing/models"
)

// RoundArchive writes each generated round as a JSON object so organizers
// can publish pairings outside the API.
type RoundArchive struct {
	uploader FileUploader
	now      func() time.Time
}

func NewRoundArchive(uploader FileUploader) *RoundArchive {
	return &RoundArchive{uploader: uploader, now: time.Now}
}

type archivedRound struct {
	*models.Round
	GeneratedAt time.Time `json:"generated_at"`
}

// RoundKey is tournaments/{id}/rounds/{unix-nanos}.json.
func RoundKey(tournamentID int, at time.Time) string {
	return fmt.Sprintf("tournaments/%d/rounds/%d.json", tournamentID, at.UnixNano())
}

func (a *RoundArchive) Store(ctx context.Context, round *models.Round) (*UploadResult, error) {
	if round == nil {
		return nil, fmt.Errorf("cannot archive nil round")
	}
	at := a.now().UTC()
	body, err := json.Marshal(archivedRound{Round: round, GeneratedAt: at})
	if err != nil {
		return nil, fmt.Errorf("failed to encode round for tournament %d: %w", round.TournamentID, err)
	}
	return a.uploader.Upload(ctx, RoundKey(round.TournamentID, at), "application/json", bytes.NewReader(body))
}
