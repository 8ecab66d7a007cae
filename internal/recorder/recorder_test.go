package recorder_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/metrics"
	"github.com/mauv0809/playdata/internal/model"
	"github.com/mauv0809/playdata/internal/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionStub satisfies recorder.Session without a full controller.
type sessionStub struct {
	team    model.Team
	matchID int64
	active  bool
}

func (s *sessionStub) ActiveTeam() (model.Team, bool) { return s.team, s.active }
func (s *sessionStub) CurrentMatchID() (int64, bool)  { return s.matchID, s.active }

func setupRecorder(t *testing.T, sess recorder.Session) (recorder.Recorder, *kvstore.Memory, *metrics.Mock) {
	t.Helper()

	store := kvstore.NewMemory()
	m := metrics.NewMock()
	gen := ident.New(clockwork.NewFakeClockAt(time.UnixMilli(1700000000000)))
	rec := recorder.New(store, sess, gen, clockwork.NewFakeClockAt(time.UnixMilli(1700000000000)), m)
	return rec, store, m
}

func activeSession() *sessionStub {
	return &sessionStub{
		team:    model.Team{ID: 42, Name: "Halcones", Color: "#ff0000"},
		matchID: 9000,
		active:  true,
	}
}

func TestRecord(t *testing.T) {
	rec, store, m := setupRecorder(t, activeSession())

	_, err := rec.SelectZone("7")
	require.NoError(t, err)
	rec.SetFields("1", "Juan", model.GameOpen, model.OutcomeGoal, 23)

	play, err := rec.Record()
	require.NoError(t, err)
	assert.Equal(t, int64(42), play.TeamID)
	assert.Equal(t, int64(9000), play.MatchID)
	assert.Equal(t, model.Zone("7"), play.Zone)
	assert.Equal(t, 23, play.Minutes)
	assert.Equal(t, 1, m.PlaysRecorded())

	t.Run("appends to the persisted collection", func(t *testing.T) {
		var plays []model.Play
		found, err := store.Get("plays", &plays)
		require.NoError(t, err)
		require.True(t, found)
		require.Len(t, plays, 1)
		assert.Equal(t, play.ID, plays[0].ID)
	})

	t.Run("clears the form for the next entry", func(t *testing.T) {
		pending := rec.Pending()
		assert.Empty(t, pending.Chico)
		assert.Empty(t, pending.Jugador)
		assert.Empty(t, pending.Zone)
		assert.Zero(t, pending.Minutes)
		assert.Equal(t, model.GameOpen, pending.GameType, "game type resets to its default")
		assert.Equal(t, model.OutcomeGoal, pending.Outcome, "outcome resets to its default")
	})
}

func TestRecord_RequiresZoneAndActiveTeam(t *testing.T) {
	t.Run("no zone selected", func(t *testing.T) {
		rec, store, m := setupRecorder(t, activeSession())
		rec.SetFields("1", "Juan", model.GameOpen, model.OutcomeGoal, 10)

		_, err := rec.Record()
		require.Error(t, err)
		assert.True(t, model.IsValidation(err))
		assert.Equal(t, 1, m.ValidationFailures())

		var plays []model.Play
		found, _ := store.Get("plays", &plays)
		assert.False(t, found, "no play is appended on rejection")

		pending := rec.Pending()
		assert.Equal(t, "Juan", pending.Jugador, "form is left for correction")
	})

	t.Run("no active team", func(t *testing.T) {
		rec, store, _ := setupRecorder(t, &sessionStub{})
		_, err := rec.SelectZone("7")
		require.NoError(t, err)
		rec.SetFields("1", "Juan", model.GameOpen, model.OutcomeGoal, 10)

		_, err = rec.Record()
		require.Error(t, err)
		assert.True(t, model.IsValidation(err))

		var plays []model.Play
		found, _ := store.Get("plays", &plays)
		assert.False(t, found)
	})
}

func TestRecord_FieldValidation(t *testing.T) {
	cases := []struct {
		name    string
		chico   string
		jugador string
		game    model.GameType
		outcome model.Outcome
		minutes int
	}{
		{"empty jugador", "1", "", model.GameOpen, model.OutcomeGoal, 10},
		{"empty chico", "", "Juan", model.GameOpen, model.OutcomeGoal, 10},
		{"unknown game type", "1", "Juan", model.GameType("volea"), model.OutcomeGoal, 10},
		{"unknown outcome", "1", "Juan", model.GameOpen, model.Outcome("autogol"), 10},
		{"minutes below range", "1", "Juan", model.GameOpen, model.OutcomeGoal, -1},
		{"minutes above range", "1", "Juan", model.GameOpen, model.OutcomeGoal, 91},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, store, _ := setupRecorder(t, activeSession())
			_, err := rec.SelectZone("5")
			require.NoError(t, err)
			rec.SetFields(tc.chico, tc.jugador, tc.game, tc.outcome, tc.minutes)

			_, err = rec.Record()
			require.Error(t, err)
			assert.True(t, model.IsValidation(err))

			var plays []model.Play
			found, _ := store.Get("plays", &plays)
			assert.False(t, found)
		})
	}
}

func TestSelectZone_Advisory(t *testing.T) {
	rec, _, _ := setupRecorder(t, activeSession())

	cases := []struct {
		zone     model.Zone
		advisory bool
	}{
		{"1", true}, {"3", true}, // defensive row
		{"4", false}, {"7", false}, {"9", false},
		{"10", true}, {"12", true}, // offensive row
	}
	for _, tc := range cases {
		advisory, err := rec.SelectZone(tc.zone)
		require.NoError(t, err)
		assert.Equal(t, tc.advisory, advisory, "zone %s", tc.zone)
		assert.Equal(t, tc.advisory, rec.Advisory())
	}

	t.Run("invalid zone is rejected", func(t *testing.T) {
		_, err := rec.SelectZone("13")
		require.Error(t, err)
		assert.True(t, model.IsValidation(err))
	})

	t.Run("advisory never blocks recording", func(t *testing.T) {
		_, err := rec.SelectZone("12")
		require.NoError(t, err)
		rec.SetFields("2", "Juan", model.GameCorner, model.OutcomeWide, 88)
		_, err = rec.Record()
		require.NoError(t, err)
	})
}

func TestRecord_AppendOnly(t *testing.T) {
	rec, _, _ := setupRecorder(t, activeSession())

	for i, zone := range []model.Zone{"4", "5", "6"} {
		_, err := rec.SelectZone(zone)
		require.NoError(t, err)
		rec.SetFields("1", "Juan", model.GameOpen, model.OutcomeSaved, 10+i)
		_, err = rec.Record()
		require.NoError(t, err)
	}

	plays, err := rec.Plays()
	require.NoError(t, err)
	require.Len(t, plays, 3)
	assert.Equal(t, model.Zone("4"), plays[0].Zone, "insertion order is preserved")
	assert.Equal(t, model.Zone("6"), plays[2].Zone)
}

func TestClearZone(t *testing.T) {
	rec, _, _ := setupRecorder(t, activeSession())

	_, err := rec.SelectZone("8")
	require.NoError(t, err)
	rec.ClearZone()

	pending := rec.Pending()
	assert.Empty(t, pending.Zone)
}
