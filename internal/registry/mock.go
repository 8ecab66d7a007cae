package registry

import (
	"sync"

	"github.com/mauv0809/playdata/internal/model"
)

// Mock is a mock implementation of the Registry interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	CreateTournamentFunc func(name, description string) (*model.Tournament, error)
	RemoveTournamentFunc func(id int64) error
	AddTeamFunc          func(tournamentID int64, name, color string) (*model.Team, error)
	RemoveTeamFunc       func(tournamentID, teamID int64) error
	EditTeamFunc         func(teamID int64, newName, newColor string) error
	AddPlayerFunc        func(teamID int64, name, number, position string) (*model.Player, error)
	RemovePlayerFunc     func(teamID, playerID int64) error
	GetTournamentFunc    func(id int64) (model.Tournament, bool)
	GetTeamFunc          func(id int64) (model.Team, bool)
	AllTournamentsFunc   func() []model.Tournament
	AllTeamsFunc         func() []model.Team

	// Call records
	RemoveTournamentCalls []int64
	RemoveTeamCalls       []struct{ TournamentID, TeamID int64 }
	Selection             Selection
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) CreateTournament(name, description string) (*model.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateTournamentFunc != nil {
		return m.CreateTournamentFunc(name, description)
	}
	return &model.Tournament{Name: name, Description: description}, nil
}

func (m *Mock) RemoveTournament(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveTournamentCalls = append(m.RemoveTournamentCalls, id)
	if m.RemoveTournamentFunc != nil {
		return m.RemoveTournamentFunc(id)
	}
	return nil
}

func (m *Mock) AddTeam(tournamentID int64, name, color string) (*model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddTeamFunc != nil {
		return m.AddTeamFunc(tournamentID, name, color)
	}
	return &model.Team{Name: name, Color: color, TournamentID: tournamentID}, nil
}

func (m *Mock) RemoveTeam(tournamentID, teamID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveTeamCalls = append(m.RemoveTeamCalls, struct{ TournamentID, TeamID int64 }{tournamentID, teamID})
	if m.RemoveTeamFunc != nil {
		return m.RemoveTeamFunc(tournamentID, teamID)
	}
	return nil
}

func (m *Mock) EditTeam(teamID int64, newName, newColor string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.EditTeamFunc != nil {
		return m.EditTeamFunc(teamID, newName, newColor)
	}
	return nil
}

func (m *Mock) AddPlayer(teamID int64, name, number, position string) (*model.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(teamID, name, number, position)
	}
	return &model.Player{Name: name, Number: number, Position: position, TeamID: teamID}, nil
}

func (m *Mock) RemovePlayer(teamID, playerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemovePlayerFunc != nil {
		return m.RemovePlayerFunc(teamID, playerID)
	}
	return nil
}

func (m *Mock) GetTournament(id int64) (model.Tournament, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(id)
	}
	return model.Tournament{}, false
}

func (m *Mock) GetTeam(id int64) (model.Team, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(id)
	}
	return model.Team{}, false
}

func (m *Mock) AllTournaments() []model.Tournament {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AllTournamentsFunc != nil {
		return m.AllTournamentsFunc()
	}
	return nil
}

func (m *Mock) AllTeams() []model.Team {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AllTeamsFunc != nil {
		return m.AllTeamsFunc()
	}
	return nil
}

func (m *Mock) AttachSelection(sel Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Selection = sel
}
