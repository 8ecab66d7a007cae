package session

import "github.com/mauv0809/playdata/internal/model"

// Controller drives a match session through
// Idle → TournamentSelected → TeamsSelected → MatchActive and owns the
// "active team" turn state used while entering plays.
type Controller interface {
	State() State

	// SelectTournament exposes that tournament's teams as candidates and
	// resets any team picks. Valid from any state.
	SelectTournament(id int64) error
	// SelectHomeTeam and SelectAwayTeam pick the two sides. Picking the
	// team already chosen for the other side is rejected.
	SelectHomeTeam(teamID int64) error
	SelectAwayTeam(teamID int64) error
	// CandidateTeams lists the selectable teams for one side: the selected
	// tournament's teams minus the other side's pick.
	CandidateTeams(side Side) []model.Team

	// StartMatch mints a match identity and makes the home team active.
	// It silently has no effect unless both sides are selected.
	StartMatch() (*model.Match, error)
	// SwitchActiveTeam toggles the active team. Valid only in MatchActive;
	// it also fires the on-switch hook (the recorder clears its pending
	// zone there, zone selection being per-entry rather than per-team).
	SwitchActiveTeam()
	// SetOnTeamSwitch registers the hook fired by SwitchActiveTeam.
	SetOnTeamSwitch(fn func())

	HomeTeam() (model.Team, bool)
	AwayTeam() (model.Team, bool)
	ActiveTeam() (model.Team, bool)
	CurrentMatchID() (int64, bool)

	// Matches lists all persisted matches in insertion order.
	Matches() ([]model.Match, error)

	// registry.Selection: the registry tells the session to drop pointers
	// at removed entities.
	ClearTournament(id int64)
	ClearTeam(id int64)
}
