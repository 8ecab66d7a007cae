// Package snapshot packs every store collection into a single msgpack
// archive for backup and transfer between browsers/machines.
package snapshot

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// Archive is the on-disk snapshot format. LegacyTeams carries the
// standalone "teams" collection that earlier-stage exports used before
// teams were nested under tournaments.
type Archive struct {
	SnapshotID     string             `msgpack:"snapshot_id"`
	CreatedAt      int64              `msgpack:"created_at"`
	Tournaments    []model.Tournament `msgpack:"tournaments"`
	Matches        []model.Match      `msgpack:"matches"`
	Plays          []model.Play       `msgpack:"plays"`
	CurrentMatchID int64              `msgpack:"current_match_id"`
	LegacyTeams    []model.Team       `msgpack:"teams,omitempty"`
}

// legacyTournamentName labels the synthetic tournament that adopts
// standalone teams on import.
const legacyTournamentName = "Importado"

// Export reads every collection from the store and packs it.
func Export(store kvstore.KVStore, clock clockwork.Clock) ([]byte, error) {
	arc := Archive{
		SnapshotID:  uuid.NewString(),
		CreatedAt:   clock.Now().UnixMilli(),
		Tournaments: []model.Tournament{},
		Matches:     []model.Match{},
		Plays:       []model.Play{},
	}

	if _, err := store.Get("tournaments", &arc.Tournaments); err != nil {
		return nil, fmt.Errorf("failed to read tournaments: %w", err)
	}
	if _, err := store.Get("matches", &arc.Matches); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}
	if _, err := store.Get("plays", &arc.Plays); err != nil {
		return nil, fmt.Errorf("failed to read plays: %w", err)
	}
	if _, err := store.Get("currentMatchId", &arc.CurrentMatchID); err != nil {
		return nil, fmt.Errorf("failed to read current match id: %w", err)
	}

	data, err := msgpack.Marshal(arc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	log.Info("Snapshot exported", "snapshotID", arc.SnapshotID, "tournaments", len(arc.Tournaments), "plays", len(arc.Plays))
	return data, nil
}

// Import replaces the store's collections with the archive's. Standalone
// legacy teams are folded into a synthetic tournament so old exports keep
// working.
func Import(store kvstore.KVStore, data []byte, ids *ident.Generator) (*Archive, error) {
	var arc Archive
	if err := msgpack.Unmarshal(data, &arc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	tournaments := arc.Tournaments
	if tournaments == nil {
		tournaments = []model.Tournament{}
	}
	if len(arc.LegacyTeams) > 0 {
		adopted := model.Tournament{
			ID:    ids.Next(),
			Name:  legacyTournamentName,
			Teams: make([]model.Team, 0, len(arc.LegacyTeams)),
		}
		for _, team := range arc.LegacyTeams {
			team.TournamentID = adopted.ID
			if team.Players == nil {
				team.Players = []model.Player{}
			}
			adopted.Teams = append(adopted.Teams, team)
		}
		tournaments = append(tournaments, adopted)
		log.Info("Adopted legacy standalone teams", "count", len(arc.LegacyTeams), "tournamentID", adopted.ID)
	}

	if err := store.Set("tournaments", tournaments); err != nil {
		return nil, err
	}
	if err := store.Set("matches", orEmptyMatches(arc.Matches)); err != nil {
		return nil, err
	}
	if err := store.Set("plays", orEmptyPlays(arc.Plays)); err != nil {
		return nil, err
	}
	if err := store.Set("currentMatchId", arc.CurrentMatchID); err != nil {
		return nil, err
	}

	log.Info("Snapshot imported", "snapshotID", arc.SnapshotID, "tournaments", len(tournaments), "plays", len(arc.Plays))
	return &arc, nil
}

func orEmptyMatches(ms []model.Match) []model.Match {
	if ms == nil {
		return []model.Match{}
	}
	return ms
}

func orEmptyPlays(ps []model.Play) []model.Play {
	if ps == nil {
		return []model.Play{}
	}
	return ps
}
