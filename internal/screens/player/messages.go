package player

import (
	ctrl "github.com/manara-app/manara/internal/player"
	"github.com/manara-app/manara/internal/rewards"
)

// opOutcomeMsg carries a finished AI operation back into the update loop.
// The ticket routes it through the session's staleness gate.
type opOutcomeMsg struct {
	Ticket  ctrl.Ticket
	Outcome ctrl.Outcome
}

// quizRecordedMsg is sent after a submitted quiz has been persisted and
// its reward settled.
type quizRecordedMsg struct {
	Award *rewards.Award
	Err   error
}
