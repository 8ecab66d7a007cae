package snapshot_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/model"
	"github.com/mauv0809/playdata/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := kvstore.NewMemory()
	require.NoError(t, src.Set("tournaments", []model.Tournament{
		{ID: 1, Name: "Liga A", Teams: []model.Team{{ID: 2, Name: "Halcones", Color: "#ff0000", Players: []model.Player{}, TournamentID: 1}}},
	}))
	require.NoError(t, src.Set("matches", []model.Match{{ID: 10, Date: "2024-05-04T18:00:00Z", HomeTeamID: 2, AwayTeamID: 3}}))
	require.NoError(t, src.Set("plays", []model.Play{{ID: 100, MatchID: 10, TeamID: 2, Chico: "1", Jugador: "Juan", GameType: model.GameOpen, Outcome: model.OutcomeGoal, Zone: "7", Minutes: 23}}))
	require.NoError(t, src.Set("currentMatchId", int64(10)))

	clock := clockwork.NewFakeClockAt(time.UnixMilli(1700000000000))
	data, err := snapshot.Export(src, clock)
	require.NoError(t, err)

	dst := kvstore.NewMemory()
	arc, err := snapshot.Import(dst, data, ident.New(clock))
	require.NoError(t, err)
	assert.NotEmpty(t, arc.SnapshotID)
	assert.Equal(t, int64(1700000000000), arc.CreatedAt)

	var tournaments []model.Tournament
	found, err := dst.Get("tournaments", &tournaments)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, tournaments, 1)
	require.Len(t, tournaments[0].Teams, 1)
	assert.Equal(t, "Halcones", tournaments[0].Teams[0].Name)

	var plays []model.Play
	_, err = dst.Get("plays", &plays)
	require.NoError(t, err)
	require.Len(t, plays, 1)
	assert.Equal(t, model.OutcomeGoal, plays[0].Outcome)

	var current int64
	_, err = dst.Get("currentMatchId", &current)
	require.NoError(t, err)
	assert.Equal(t, int64(10), current)
}

func TestExport_EmptyStore(t *testing.T) {
	data, err := snapshot.Export(kvstore.NewMemory(), clockwork.NewRealClock())
	require.NoError(t, err)

	dst := kvstore.NewMemory()
	arc, err := snapshot.Import(dst, data, ident.New(clockwork.NewRealClock()))
	require.NoError(t, err)
	assert.Empty(t, arc.Tournaments)
	assert.Empty(t, arc.Plays)
}

func TestImport_AdoptsLegacyStandaloneTeams(t *testing.T) {
	arc := snapshot.Archive{
		SnapshotID: "legacy",
		LegacyTeams: []model.Team{
			{ID: 5, Name: "Pumas", Color: "#00ff00"},
			{ID: 6, Name: "Leones", Color: "#111111"},
		},
	}
	data, err := msgpack.Marshal(arc)
	require.NoError(t, err)

	dst := kvstore.NewMemory()
	_, err = snapshot.Import(dst, data, ident.New(clockwork.NewFakeClockAt(time.UnixMilli(1700000000000))))
	require.NoError(t, err)

	var tournaments []model.Tournament
	_, err = dst.Get("tournaments", &tournaments)
	require.NoError(t, err)
	require.Len(t, tournaments, 1)
	assert.Equal(t, "Importado", tournaments[0].Name)
	require.Len(t, tournaments[0].Teams, 2)
	assert.Equal(t, tournaments[0].ID, tournaments[0].Teams[0].TournamentID, "adopted teams point back at the synthetic tournament")
}

func TestImport_RejectsGarbage(t *testing.T) {
	dst := kvstore.NewMemory()
	_, err := snapshot.Import(dst, []byte("not msgpack"), ident.New(clockwork.NewRealClock()))
	require.Error(t, err)

	keys, kerr := dst.Keys()
	require.NoError(t, kerr)
	assert.Empty(t, keys, "nothing is written on a failed import")
}
