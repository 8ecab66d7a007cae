package session_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/metrics"
	"github.com/mauv0809/playdata/internal/model"
	"github.com/mauv0809/playdata/internal/registry"
	"github.com/mauv0809/playdata/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctrl     session.Controller
	reg      registry.Registry
	store    *kvstore.Memory
	metrics  *metrics.Mock
	tourn    *model.Tournament
	halcones *model.Team
	tigres   *model.Team
}

func setupSession(t *testing.T) *fixture {
	t.Helper()

	store := kvstore.NewMemory()
	m := metrics.NewMock()
	gen := ident.New(clockwork.NewFakeClockAt(time.UnixMilli(1700000000000)))
	reg, err := registry.New(store, gen, m)
	require.NoError(t, err)

	tourn, err := reg.CreateTournament("Liga A", "")
	require.NoError(t, err)
	halcones, err := reg.AddTeam(tourn.ID, "Halcones", "#ff0000")
	require.NoError(t, err)
	tigres, err := reg.AddTeam(tourn.ID, "Tigres", "#0000ff")
	require.NoError(t, err)

	ctrl := session.New(store, reg, gen, clockwork.NewFakeClockAt(time.UnixMilli(1700000000000)), m)
	reg.AttachSelection(ctrl)

	return &fixture{ctrl: ctrl, reg: reg, store: store, metrics: m, tourn: tourn, halcones: halcones, tigres: tigres}
}

func (f *fixture) selectTeams(t *testing.T) {
	t.Helper()
	require.NoError(t, f.ctrl.SelectTournament(f.tourn.ID))
	require.NoError(t, f.ctrl.SelectHomeTeam(f.halcones.ID))
	require.NoError(t, f.ctrl.SelectAwayTeam(f.tigres.ID))
}

func TestStateProgression(t *testing.T) {
	f := setupSession(t)

	assert.Equal(t, session.StateIdle, f.ctrl.State())

	require.NoError(t, f.ctrl.SelectTournament(f.tourn.ID))
	assert.Equal(t, session.StateTournamentSelected, f.ctrl.State())

	require.NoError(t, f.ctrl.SelectHomeTeam(f.halcones.ID))
	assert.Equal(t, session.StateTournamentSelected, f.ctrl.State(), "one team is not enough")

	require.NoError(t, f.ctrl.SelectAwayTeam(f.tigres.ID))
	assert.Equal(t, session.StateTeamsSelected, f.ctrl.State())

	match, err := f.ctrl.StartMatch()
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, session.StateMatchActive, f.ctrl.State())
}

func TestSelectTournament_UnknownID(t *testing.T) {
	f := setupSession(t)

	err := f.ctrl.SelectTournament(999)
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
	assert.Equal(t, session.StateIdle, f.ctrl.State())
}

func TestHomeAndAwayMustDiffer(t *testing.T) {
	f := setupSession(t)

	require.NoError(t, f.ctrl.SelectTournament(f.tourn.ID))
	require.NoError(t, f.ctrl.SelectHomeTeam(f.halcones.ID))

	err := f.ctrl.SelectAwayTeam(f.halcones.ID)
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	t.Run("candidates exclude the other side's pick", func(t *testing.T) {
		candidates := f.ctrl.CandidateTeams(session.SideAway)
		require.Len(t, candidates, 1)
		assert.Equal(t, f.tigres.ID, candidates[0].ID)
	})
}

func TestStartMatch(t *testing.T) {
	f := setupSession(t)

	t.Run("is a silent no-op without both teams", func(t *testing.T) {
		match, err := f.ctrl.StartMatch()
		require.NoError(t, err)
		assert.Nil(t, match)
		assert.Equal(t, session.StateIdle, f.ctrl.State())
	})

	f.selectTeams(t)
	match, err := f.ctrl.StartMatch()
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.NotZero(t, match.ID)
	assert.Equal(t, f.halcones.ID, match.HomeTeamID)
	assert.Equal(t, f.tigres.ID, match.AwayTeamID)
	assert.Equal(t, 1, f.metrics.MatchesStarted())

	active, ok := f.ctrl.ActiveTeam()
	require.True(t, ok)
	assert.Equal(t, f.halcones.ID, active.ID, "home team starts active")

	t.Run("persists the match and the current match id", func(t *testing.T) {
		var matches []model.Match
		found, err := f.store.Get("matches", &matches)
		require.NoError(t, err)
		require.True(t, found)
		require.Len(t, matches, 1)
		assert.Equal(t, match.ID, matches[0].ID)

		var current int64
		found, err = f.store.Get("currentMatchId", &current)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, match.ID, current)
	})
}

func TestSwitchActiveTeam(t *testing.T) {
	f := setupSession(t)

	switched := 0
	f.ctrl.SetOnTeamSwitch(func() { switched++ })

	t.Run("no-op outside MatchActive", func(t *testing.T) {
		f.ctrl.SwitchActiveTeam()
		assert.Zero(t, switched)
	})

	f.selectTeams(t)
	_, err := f.ctrl.StartMatch()
	require.NoError(t, err)

	f.ctrl.SwitchActiveTeam()
	active, ok := f.ctrl.ActiveTeam()
	require.True(t, ok)
	assert.Equal(t, f.tigres.ID, active.ID)
	assert.Equal(t, 1, switched, "switch fires the zone-clearing hook")

	f.ctrl.SwitchActiveTeam()
	active, _ = f.ctrl.ActiveTeam()
	assert.Equal(t, f.halcones.ID, active.ID)
}

func TestRegistryRemovalClearsSelection(t *testing.T) {
	f := setupSession(t)

	require.NoError(t, f.ctrl.SelectTournament(f.tourn.ID))
	require.NoError(t, f.ctrl.SelectHomeTeam(f.halcones.ID))

	t.Run("removed team is unset", func(t *testing.T) {
		require.NoError(t, f.reg.RemoveTeam(f.tourn.ID, f.halcones.ID))
		_, ok := f.ctrl.HomeTeam()
		assert.False(t, ok)
	})

	t.Run("removed tournament resets to Idle", func(t *testing.T) {
		require.NoError(t, f.reg.RemoveTournament(f.tourn.ID))
		assert.Equal(t, session.StateIdle, f.ctrl.State())
	})
}

func TestMatchIDsAreDistinctAcrossSessions(t *testing.T) {
	f := setupSession(t)

	f.selectTeams(t)
	first, err := f.ctrl.StartMatch()
	require.NoError(t, err)

	f.selectTeams(t)
	second, err := f.ctrl.StartMatch()
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	matches, err := f.ctrl.Matches()
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
