package recorder

import "github.com/mauv0809/playdata/internal/model"

// Store key owned by the recorder. The play collection is flat and spans
// all matches.
const playsKey = "plays"

// Entry is the transient data-entry form for one play. It is cleared after
// every successful recording so the next entry starts blank.
type Entry struct {
	Chico    string
	Jugador  string
	GameType model.GameType
	Outcome  model.Outcome
	Zone     model.Zone
	Minutes  int
}

// defaultEntry mirrors the entry form's reset state: category selects fall
// back to their first option, everything else is blank.
func defaultEntry() Entry {
	return Entry{
		GameType: model.GameOpen,
		Outcome:  model.OutcomeGoal,
	}
}
