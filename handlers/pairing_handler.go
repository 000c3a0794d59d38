package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-pairing/services"
)

type PairingHandler struct {
	pairingService services.PairingService
}

func NewPairingHandler(pairingService services.PairingService) *PairingHandler {
	return &PairingHandler{pairingService: pairingService}
}

// GenerateRound returns the next round. Nothing is recorded; results are
// reported separately through the match endpoints.
func (h *PairingHandler) GenerateRound(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, err := h.pairingService.GenerateNextRound(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"round": round}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
