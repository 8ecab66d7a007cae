package model

import "fmt"

// GameType is the closed set of play categories (tipo de juego).
type GameType string

const (
	GameOpen     GameType = "abierto"
	GameSetPiece GameType = "parado"
	GameFreeKick GameType = "tiro_libre"
	GamePenalty  GameType = "penal"
	GameCorner   GameType = "corner"
)

// Outcome is the closed set of play results (resultado).
type Outcome string

const (
	OutcomeGoal    Outcome = "gol"
	OutcomeSaved   Outcome = "atajado"
	OutcomeWide    Outcome = "desviado"
	OutcomeBlocked Outcome = "bloqueado"
	OutcomePost    Outcome = "palo"
)

// Valid reports whether the game type is one of the known categories.
func (g GameType) Valid() bool {
	switch g {
	case GameOpen, GameSetPiece, GameFreeKick, GamePenalty, GameCorner:
		return true
	}
	return false
}

// Valid reports whether the outcome is one of the known categories.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeGoal, OutcomeSaved, OutcomeWide, OutcomeBlocked, OutcomePost:
		return true
	}
	return false
}

// ParseGameType converts free-form input into a GameType.
func ParseGameType(s string) (GameType, error) {
	g := GameType(s)
	if !g.Valid() {
		return "", &ValidationError{Field: "tipoDeJuego", Reason: fmt.Sprintf("unknown game type %q", s)}
	}
	return g, nil
}

// ParseOutcome converts free-form input into an Outcome.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.Valid() {
		return "", &ValidationError{Field: "resultado", Reason: fmt.Sprintf("unknown outcome %q", s)}
	}
	return o, nil
}

// Tournament owns an ordered list of teams. Removing a tournament discards
// the list with it; there is no cross-tournament cascade.
type Tournament struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Teams       []Team `json:"teams"`
}

// Team is the sole source of truth for its roster: no Player exists outside
// a Team's Players list.
type Team struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Color        string   `json:"color"`
	Players      []Player `json:"players"`
	TournamentID int64    `json:"tournamentId"`
}

// Player belongs to exactly one team. Number is free text and is neither
// required to be numeric nor unique.
type Player struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Position string `json:"position,omitempty"`
	TeamID   int64  `json:"teamId"`
}

// Match is minted at start-match time. Home and away team ids are recorded
// explicitly; older exports may carry zeroes there, in which case history
// falls back to inferring the pairing from the match's plays.
type Match struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"`
	HomeTeamID int64  `json:"homeTeamId,omitempty"`
	AwayTeamID int64  `json:"awayTeamId,omitempty"`
}

// Play is one recorded in-match event. Jugador is captured as display text,
// not a player id: the roster can change later without invalidating plays.
type Play struct {
	ID        int64    `json:"id"`
	MatchID   int64    `json:"matchId"`
	TeamID    int64    `json:"teamId"`
	Chico     string   `json:"chico"`
	Jugador   string   `json:"jugador"`
	GameType  GameType `json:"tipoDeJuego"`
	Outcome   Outcome  `json:"resultado"`
	Zone      Zone     `json:"zona"`
	Minutes   int      `json:"minutes"`
	Timestamp int64    `json:"timestamp"`
}
