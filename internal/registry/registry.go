package registry

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/metrics"
	"github.com/mauv0809/playdata/internal/model"
)

const tournamentsKey = "tournaments"

// registry keeps the tournament collection in memory and writes the whole
// collection through to the store on every mutation.
type registry struct {
	store     kvstore.KVStore
	ids       *ident.Generator
	metrics   metrics.Metrics
	mu        sync.RWMutex
	selection Selection

	tournaments []model.Tournament
}

// New creates a Registry, loading any previously persisted tournaments.
func New(store kvstore.KVStore, ids *ident.Generator, m metrics.Metrics) (Registry, error) {
	r := &registry{
		store:       store,
		ids:         ids,
		metrics:     m,
		tournaments: []model.Tournament{},
	}
	if _, err := store.Get(tournamentsKey, &r.tournaments); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *registry) AttachSelection(sel Selection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selection = sel
}

func (r *registry) CreateTournament(name, description string) (*model.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		r.metrics.IncValidationFailures()
		return nil, &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := model.Tournament{
		ID:          r.ids.Next(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Teams:       []model.Team{},
	}
	r.tournaments = append(r.tournaments, t)
	log.Info("Tournament created", "id", t.ID, "name", t.Name)
	return &t, r.persist()
}

func (r *registry) RemoveTournament(id int64) error {
	r.mu.Lock()

	idx := r.tournamentIndex(id)
	if idx < 0 {
		r.mu.Unlock()
		return nil
	}
	r.tournaments = append(r.tournaments[:idx], r.tournaments[idx+1:]...)
	log.Info("Tournament removed", "id", id)
	err := r.persist()
	sel := r.selection
	r.mu.Unlock()

	// Notify outside the lock; the session controller calls back into
	// the registry.
	if sel != nil {
		sel.ClearTournament(id)
	}
	return err
}

func (r *registry) AddTeam(tournamentID int64, name, color string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		r.metrics.IncValidationFailures()
		return nil, &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.tournamentIndex(tournamentID)
	if idx < 0 {
		return nil, &model.NotFoundError{Kind: "tournament", ID: tournamentID}
	}

	team := model.Team{
		ID:           r.ids.Next(),
		Name:         name,
		Color:        color,
		Players:      []model.Player{},
		TournamentID: tournamentID,
	}
	r.tournaments[idx].Teams = append(r.tournaments[idx].Teams, team)
	log.Info("Team added", "id", team.ID, "name", team.Name, "tournamentID", tournamentID)
	return &team, r.persist()
}

func (r *registry) RemoveTeam(tournamentID, teamID int64) error {
	r.mu.Lock()

	idx := r.tournamentIndex(tournamentID)
	if idx < 0 {
		r.mu.Unlock()
		return nil
	}
	teams := r.tournaments[idx].Teams
	for i, team := range teams {
		if team.ID == teamID {
			r.tournaments[idx].Teams = append(teams[:i], teams[i+1:]...)
			log.Info("Team removed", "id", teamID, "tournamentID", tournamentID)
			err := r.persist()
			sel := r.selection
			r.mu.Unlock()

			if sel != nil {
				sel.ClearTeam(teamID)
			}
			return err
		}
	}
	r.mu.Unlock()
	return nil
}

func (r *registry) EditTeam(teamID int64, newName, newColor string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		r.metrics.IncValidationFailures()
		return &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for ti := range r.tournaments {
		for i := range r.tournaments[ti].Teams {
			if r.tournaments[ti].Teams[i].ID == teamID {
				r.tournaments[ti].Teams[i].Name = newName
				r.tournaments[ti].Teams[i].Color = newColor
				log.Info("Team edited", "id", teamID, "name", newName)
				return r.persist()
			}
		}
	}
	return &model.NotFoundError{Kind: "team", ID: teamID}
}

func (r *registry) AddPlayer(teamID int64, name, number, position string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	number = strings.TrimSpace(number)
	if name == "" {
		r.metrics.IncValidationFailures()
		return nil, &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if number == "" {
		r.metrics.IncValidationFailures()
		return nil, &model.ValidationError{Field: "number", Reason: "must not be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for ti := range r.tournaments {
		for i := range r.tournaments[ti].Teams {
			if r.tournaments[ti].Teams[i].ID != teamID {
				continue
			}
			player := model.Player{
				ID:       r.ids.Next(),
				Name:     name,
				Number:   number,
				Position: strings.TrimSpace(position),
				TeamID:   teamID,
			}
			r.tournaments[ti].Teams[i].Players = append(r.tournaments[ti].Teams[i].Players, player)
			log.Info("Player added", "id", player.ID, "name", player.Name, "teamID", teamID)
			return &player, r.persist()
		}
	}
	return nil, &model.NotFoundError{Kind: "team", ID: teamID}
}

func (r *registry) RemovePlayer(teamID, playerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ti := range r.tournaments {
		for i := range r.tournaments[ti].Teams {
			if r.tournaments[ti].Teams[i].ID != teamID {
				continue
			}
			players := r.tournaments[ti].Teams[i].Players
			for pi, p := range players {
				if p.ID == playerID {
					r.tournaments[ti].Teams[i].Players = append(players[:pi], players[pi+1:]...)
					log.Info("Player removed", "id", playerID, "teamID", teamID)
					return r.persist()
				}
			}
			return nil
		}
	}
	return nil
}

func (r *registry) GetTournament(id int64) (model.Tournament, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := r.tournamentIndex(id); idx >= 0 {
		return r.tournaments[idx], true
	}
	return model.Tournament{}, false
}

func (r *registry) GetTeam(id int64) (model.Team, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tournaments {
		for _, team := range t.Teams {
			if team.ID == id {
				return team, true
			}
		}
	}
	return model.Team{}, false
}

func (r *registry) AllTournaments() []model.Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Tournament, len(r.tournaments))
	copy(out, r.tournaments)
	return out
}

// AllTeams flattens every tournament's team list, in tournament order.
func (r *registry) AllTeams() []model.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Team
	for _, t := range r.tournaments {
		out = append(out, t.Teams...)
	}
	return out
}

// tournamentIndex must be called with the lock held.
func (r *registry) tournamentIndex(id int64) int {
	for i, t := range r.tournaments {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection through to the store. On failure the
// in-memory state stays authoritative for the session; the caller gets the
// StoreError. Must be called with the lock held.
func (r *registry) persist() error {
	if err := r.store.Set(tournamentsKey, r.tournaments); err != nil {
		r.metrics.IncStoreWriteFailures()
		log.Error("Failed to persist tournaments, in-memory state remains authoritative", "error", err)
		return err
	}
	return nil
}
