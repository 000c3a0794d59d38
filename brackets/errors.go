package brackets

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyStandings = errors.New("cannot generate pairings with zero players")
	ErrByeExhausted   = errors.New("every player has already received a bye")
	ErrNoByeCandidate = errors.New("last pairing does not carry a bye")
)

// ByeExhaustionError reports a bye walk that reached the top of the ranking
// without finding an eligible player.
type ByeExhaustionError struct {
	Examined int
}

func (e *ByeExhaustionError) Error() string {
	return fmt.Sprintf("%v (examined %d players)", ErrByeExhausted, e.Examined)
}

func (e *ByeExhaustionError) Unwrap() error {
	return ErrByeExhausted
}
