// Package stats derives filtered subsets and per-team counts from the play
// collection. Everything here is a pure function: no mutation, no
// persistence, results in the plays' original insertion order.
package stats

import (
	"fmt"

	"github.com/mauv0809/playdata/internal/model"
)

// FilterAll is the pass-through value for string filters, matching the
// "all" option of the filter dropdowns.
const FilterAll = "all"

// Filter narrows a play collection. Zero-value fields (and FilterAll for
// the string ones) pass through rather than restrict.
type Filter struct {
	MatchID  int64
	TeamID   int64
	Chico    string
	GameType model.GameType
	Outcome  model.Outcome
}

// TeamStats counts a team's plays. Every play is a shot attempt; goals are
// the subset that scored, so goals can never exceed shots.
type TeamStats struct {
	TeamID int64 `json:"teamId"`
	Shots  int   `json:"tiros"`
	Goals  int   `json:"goles"`
}

// TeamRef resolves a team id to display data, falling back to a synthetic
// placeholder name for ids no longer in the registry.
type TeamRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// MatchSummary is one match history row: the match, its resolved teams
// (nil when unresolvable) and its plays.
type MatchSummary struct {
	Match    model.Match
	HomeTeam *model.Team
	AwayTeam *model.Team
	Plays    []model.Play
}

// FilterPlays returns the subset of plays where every provided filter
// equals the corresponding field.
func FilterPlays(plays []model.Play, f Filter) []model.Play {
	out := []model.Play{}
	for _, p := range plays {
		if f.MatchID != 0 && p.MatchID != f.MatchID {
			continue
		}
		if f.TeamID != 0 && p.TeamID != f.TeamID {
			continue
		}
		if f.Chico != "" && f.Chico != FilterAll && p.Chico != f.Chico {
			continue
		}
		if f.GameType != "" && f.GameType != FilterAll && p.GameType != f.GameType {
			continue
		}
		if f.Outcome != "" && f.Outcome != FilterAll && p.Outcome != f.Outcome {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MatchPlays returns the plays of one match, in insertion order.
func MatchPlays(plays []model.Play, matchID int64) []model.Play {
	return FilterPlays(plays, Filter{MatchID: matchID})
}

// ComputeTeamStats counts shots and goals per team id appearing in plays.
// Teams with zero plays are absent from the result, not zero-filled.
func ComputeTeamStats(plays []model.Play) map[int64]TeamStats {
	out := make(map[int64]TeamStats)
	for _, p := range plays {
		ts := out[p.TeamID]
		ts.TeamID = p.TeamID
		ts.Shots++
		if p.Outcome == model.OutcomeGoal {
			ts.Goals++
		}
		out[p.TeamID] = ts
	}
	return out
}

// TeamsInPlays derives the distinct team identities referenced by a play
// collection, in first-appearance order. Display name and color come from
// the home/away records when the id matches.
func TeamsInPlays(plays []model.Play, home, away *model.Team) []TeamRef {
	seen := make(map[int64]bool)
	var out []TeamRef
	for _, p := range plays {
		if seen[p.TeamID] {
			continue
		}
		seen[p.TeamID] = true
		out = append(out, resolveTeam(p.TeamID, home, away))
	}
	return out
}

func resolveTeam(id int64, home, away *model.Team) TeamRef {
	if home != nil && home.ID == id {
		return TeamRef{ID: id, Name: home.Name, Color: home.Color}
	}
	if away != nil && away.ID == id {
		return TeamRef{ID: id, Name: away.Name, Color: away.Color}
	}
	return TeamRef{ID: id, Name: fmt.Sprintf("Equipo %d", id)}
}

// MatchHistory builds one summary per match. Teams are resolved from the
// match's recorded home/away ids; matches persisted before those ids
// existed fall back to the first two distinct team ids among their plays,
// which can leave a summary partially populated.
func MatchHistory(matches []model.Match, plays []model.Play, allTeams []model.Team) []MatchSummary {
	out := make([]MatchSummary, 0, len(matches))
	for _, match := range matches {
		matchPlays := MatchPlays(plays, match.ID)

		homeID, awayID := match.HomeTeamID, match.AwayTeamID
		if homeID == 0 && awayID == 0 {
			homeID, awayID = inferTeamPair(matchPlays)
		}

		out = append(out, MatchSummary{
			Match:    match,
			HomeTeam: findTeam(allTeams, homeID),
			AwayTeam: findTeam(allTeams, awayID),
			Plays:    matchPlays,
		})
	}
	return out
}

// inferTeamPair is the legacy resolution path: the first two distinct team
// ids in insertion order. Matches with fewer than two distinct teams yield
// zeroes.
func inferTeamPair(plays []model.Play) (int64, int64) {
	var first, second int64
	for _, p := range plays {
		switch {
		case first == 0:
			first = p.TeamID
		case p.TeamID != first && second == 0:
			second = p.TeamID
		}
		if second != 0 {
			break
		}
	}
	return first, second
}

func findTeam(teams []model.Team, id int64) *model.Team {
	if id == 0 {
		return nil
	}
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i]
		}
	}
	return nil
}
