package registry

import "github.com/mauv0809/playdata/internal/model"

// Registry defines the interface for managing tournaments, teams and
// players. All mutations are atomic against the in-memory collections and
// written through to the persistent store as a whole; a write-through
// failure is returned as a *model.StoreError while the in-memory change
// stands for the rest of the session.
type Registry interface {
	CreateTournament(name, description string) (*model.Tournament, error)
	RemoveTournament(id int64) error
	AddTeam(tournamentID int64, name, color string) (*model.Team, error)
	RemoveTeam(tournamentID, teamID int64) error
	EditTeam(teamID int64, newName, newColor string) error
	AddPlayer(teamID int64, name, number, position string) (*model.Player, error)
	RemovePlayer(teamID, playerID int64) error

	GetTournament(id int64) (model.Tournament, bool)
	GetTeam(id int64) (model.Team, bool)
	AllTournaments() []model.Tournament
	AllTeams() []model.Team

	AttachSelection(sel Selection)
}

// Selection is told to drop pointers at entities the registry removes. The
// match session controller implements it. This keeps the registry decoupled
// from the session package.
type Selection interface {
	ClearTournament(id int64)
	ClearTeam(id int64)
}
