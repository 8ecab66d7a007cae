package session

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/metrics"
	"github.com/mauv0809/playdata/internal/model"
	"github.com/mauv0809/playdata/internal/registry"
)

type controller struct {
	store   kvstore.KVStore
	reg     registry.Registry
	ids     *ident.Generator
	clock   clockwork.Clock
	metrics metrics.Metrics

	mu           sync.RWMutex
	state        State
	tournamentID int64
	homeTeamID   int64
	awayTeamID   int64
	activeSide   Side
	matchID      int64
	onTeamSwitch func()
}

// New creates a Controller in the Idle state.
func New(store kvstore.KVStore, reg registry.Registry, ids *ident.Generator, clock clockwork.Clock, m metrics.Metrics) Controller {
	return &controller{
		store:   store,
		reg:     reg,
		ids:     ids,
		clock:   clock,
		metrics: m,
		state:   StateIdle,
	}
}

func (c *controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *controller) SelectTournament(id int64) error {
	if _, ok := c.reg.GetTournament(id); !ok {
		return &model.NotFoundError{Kind: "tournament", ID: id}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tournamentID = id
	c.homeTeamID = 0
	c.awayTeamID = 0
	c.state = StateTournamentSelected
	log.Info("Tournament selected", "id", id)
	return nil
}

func (c *controller) SelectHomeTeam(teamID int64) error {
	return c.selectTeam(SideHome, teamID)
}

func (c *controller) SelectAwayTeam(teamID int64) error {
	return c.selectTeam(SideAway, teamID)
}

func (c *controller) selectTeam(side Side, teamID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tournamentID == 0 {
		return &model.ValidationError{Field: string(side), Reason: "no tournament selected"}
	}
	if !c.teamInTournament(teamID) {
		return &model.NotFoundError{Kind: "team", ID: teamID}
	}

	// Home and away must differ. The UI filters the candidate list; the
	// controller enforces it regardless.
	other := c.awayTeamID
	if side == SideAway {
		other = c.homeTeamID
	}
	if teamID == other {
		return &model.ValidationError{Field: string(side), Reason: "team already selected for the other side"}
	}

	if side == SideHome {
		c.homeTeamID = teamID
	} else {
		c.awayTeamID = teamID
	}
	if c.homeTeamID != 0 && c.awayTeamID != 0 {
		c.state = StateTeamsSelected
	}
	return nil
}

func (c *controller) CandidateTeams(side Side) []model.Team {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tourn, ok := c.reg.GetTournament(c.tournamentID)
	if !ok {
		return nil
	}
	exclude := c.awayTeamID
	if side == SideAway {
		exclude = c.homeTeamID
	}
	var out []model.Team
	for _, team := range tourn.Teams {
		if team.ID != exclude {
			out = append(out, team)
		}
	}
	return out
}

func (c *controller) StartMatch() (*model.Match, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Silent no-op unless both sides are picked.
	if c.homeTeamID == 0 || c.awayTeamID == 0 {
		return nil, nil
	}

	match := model.Match{
		ID:         c.ids.Next(),
		Date:       c.clock.Now().UTC().Format(time.RFC3339),
		HomeTeamID: c.homeTeamID,
		AwayTeamID: c.awayTeamID,
	}

	matches := []model.Match{}
	if _, err := c.store.Get(matchesKey, &matches); err != nil {
		return nil, err
	}
	matches = append(matches, match)

	c.matchID = match.ID
	c.activeSide = SideHome
	c.state = StateMatchActive
	c.metrics.IncMatchesStarted()
	log.Info("Match started", "matchID", match.ID, "homeTeamID", match.HomeTeamID, "awayTeamID", match.AwayTeamID)

	if err := c.store.Set(matchesKey, matches); err != nil {
		c.metrics.IncStoreWriteFailures()
		log.Error("Failed to persist matches, in-memory state remains authoritative", "error", err)
		return &match, err
	}
	if err := c.store.Set(currentMatchIDKey, match.ID); err != nil {
		c.metrics.IncStoreWriteFailures()
		log.Error("Failed to persist current match id", "error", err)
		return &match, err
	}
	return &match, nil
}

func (c *controller) SwitchActiveTeam() {
	c.mu.Lock()
	if c.state != StateMatchActive {
		c.mu.Unlock()
		return
	}
	if c.activeSide == SideHome {
		c.activeSide = SideAway
	} else {
		c.activeSide = SideHome
	}
	hook := c.onTeamSwitch
	c.mu.Unlock()

	if hook != nil {
		hook()
	}
}

func (c *controller) SetOnTeamSwitch(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTeamSwitch = fn
}

func (c *controller) HomeTeam() (model.Team, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.team(c.homeTeamID)
}

func (c *controller) AwayTeam() (model.Team, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.team(c.awayTeamID)
}

func (c *controller) ActiveTeam() (model.Team, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != StateMatchActive {
		return model.Team{}, false
	}
	if c.activeSide == SideAway {
		return c.team(c.awayTeamID)
	}
	return c.team(c.homeTeamID)
}

func (c *controller) CurrentMatchID() (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.matchID, c.state == StateMatchActive
}

func (c *controller) Matches() ([]model.Match, error) {
	matches := []model.Match{}
	if _, err := c.store.Get(matchesKey, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *controller) ClearTournament(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tournamentID != id {
		return
	}
	c.tournamentID = 0
	c.homeTeamID = 0
	c.awayTeamID = 0
	if c.state != StateMatchActive {
		c.state = StateIdle
	}
	log.Info("Selected tournament removed, selection cleared", "id", id)
}

func (c *controller) ClearTeam(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.homeTeamID == id {
		c.homeTeamID = 0
	}
	if c.awayTeamID == id {
		c.awayTeamID = 0
	}
	if c.state == StateTeamsSelected && (c.homeTeamID == 0 || c.awayTeamID == 0) {
		c.state = StateTournamentSelected
	}
}

// team must be called with at least a read lock held.
func (c *controller) team(id int64) (model.Team, bool) {
	if id == 0 {
		return model.Team{}, false
	}
	return c.reg.GetTeam(id)
}

// teamInTournament must be called with the lock held.
func (c *controller) teamInTournament(teamID int64) bool {
	tourn, ok := c.reg.GetTournament(c.tournamentID)
	if !ok {
		return false
	}
	for _, team := range tourn.Teams {
		if team.ID == teamID {
			return true
		}
	}
	return false
}
