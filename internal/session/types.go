package session

// State is the match session lifecycle.
type State string

const (
	StateIdle               State = "IDLE"
	StateTournamentSelected State = "TOURNAMENT_SELECTED"
	StateTeamsSelected      State = "TEAMS_SELECTED"
	StateMatchActive        State = "MATCH_ACTIVE"
)

// Side distinguishes the two teams of a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Store keys owned by the session controller.
const (
	matchesKey        = "matches"
	currentMatchIDKey = "currentMatchId"
)
