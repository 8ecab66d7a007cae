package recorder

import "github.com/mauv0809/playdata/internal/model"

// Recorder validates and appends plays for the active match session. It is
// the only writer of the play collection, and it only ever appends.
type Recorder interface {
	// SelectZone sets the pending entry's zone. The returned flag is the
	// non-blocking defensive/offensive advisory; it never prevents
	// recording.
	SelectZone(z model.Zone) (advisory bool, err error)
	// ClearZone drops the in-progress zone selection.
	ClearZone()
	// SetFields fills the non-zone form fields of the pending entry.
	SetFields(chico, jugador string, gameType model.GameType, outcome model.Outcome, minutes int)
	// Pending returns the current form state.
	Pending() Entry
	// Advisory reports whether the pending zone is defensive or offensive.
	Advisory() bool
	// Reset clears the whole form back to its defaults.
	Reset()

	// Record validates the pending entry against the session and appends
	// the play. On a validation failure nothing is appended and the form
	// is left untouched for correction.
	Record() (*model.Play, error)

	// Plays lists all persisted plays in insertion order.
	Plays() ([]model.Play, error)
}

// Session is the slice of the match session controller the recorder needs.
// Keeping it consumer-side decouples the recorder from the session package.
type Session interface {
	ActiveTeam() (model.Team, bool)
	CurrentMatchID() (int64, bool)
}
