package recorder

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/metrics"
	"github.com/mauv0809/playdata/internal/model"
)

type recorder struct {
	store   kvstore.KVStore
	session Session
	ids     *ident.Generator
	clock   clockwork.Clock
	metrics metrics.Metrics

	mu      sync.Mutex
	pending Entry
}

// New creates a Recorder with a blank entry form.
func New(store kvstore.KVStore, session Session, ids *ident.Generator, clock clockwork.Clock, m metrics.Metrics) Recorder {
	return &recorder{
		store:   store,
		session: session,
		ids:     ids,
		clock:   clock,
		metrics: m,
		pending: defaultEntry(),
	}
}

func (r *recorder) SelectZone(z model.Zone) (bool, error) {
	if !z.Valid() {
		r.metrics.IncValidationFailures()
		return false, &model.ValidationError{Field: "zona", Reason: fmt.Sprintf("unknown zone %q", z)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Zone = z
	return z.Defensive() || z.Offensive(), nil
}

func (r *recorder) ClearZone() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Zone = ""
}

func (r *recorder) SetFields(chico, jugador string, gameType model.GameType, outcome model.Outcome, minutes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Chico = chico
	r.pending.Jugador = jugador
	r.pending.GameType = gameType
	r.pending.Outcome = outcome
	r.pending.Minutes = minutes
}

func (r *recorder) Pending() Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

func (r *recorder) Advisory() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending.Zone.Defensive() || r.pending.Zone.Offensive()
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = defaultEntry()
}

func (r *recorder) Record() (*model.Play, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validate(); err != nil {
		r.metrics.IncValidationFailures()
		return nil, err
	}

	active, _ := r.session.ActiveTeam()
	matchID, _ := r.session.CurrentMatchID()

	play := model.Play{
		ID:        r.ids.Next(),
		MatchID:   matchID,
		TeamID:    active.ID,
		Chico:     r.pending.Chico,
		Jugador:   r.pending.Jugador,
		GameType:  r.pending.GameType,
		Outcome:   r.pending.Outcome,
		Zone:      r.pending.Zone,
		Minutes:   r.pending.Minutes,
		Timestamp: r.clock.Now().UnixMilli(),
	}

	plays := []model.Play{}
	if _, err := r.store.Get(playsKey, &plays); err != nil {
		return nil, err
	}
	plays = append(plays, play)

	// The entry is committed from the session's point of view once it
	// validates; the form clears even if the write-through then fails.
	r.pending = defaultEntry()
	r.metrics.IncPlaysRecorded()
	log.Info("Play recorded", "playID", play.ID, "matchID", play.MatchID, "teamID", play.TeamID, "zona", play.Zone, "resultado", play.Outcome)

	if err := r.store.Set(playsKey, plays); err != nil {
		r.metrics.IncStoreWriteFailures()
		log.Error("Failed to persist plays, the recording may not survive a reload", "error", err)
		return &play, err
	}
	return &play, nil
}

// validate must be called with the lock held.
func (r *recorder) validate() error {
	if r.pending.Zone == "" {
		return &model.ValidationError{Field: "zona", Reason: "no zone selected"}
	}
	if !r.pending.Zone.Valid() {
		return &model.ValidationError{Field: "zona", Reason: fmt.Sprintf("unknown zone %q", r.pending.Zone)}
	}
	if _, ok := r.session.ActiveTeam(); !ok {
		return &model.ValidationError{Field: "activeTeam", Reason: "no active team, session is not in an active match"}
	}
	if _, ok := r.session.CurrentMatchID(); !ok {
		return &model.ValidationError{Field: "matchId", Reason: "no active match"}
	}
	if r.pending.Jugador == "" {
		return &model.ValidationError{Field: "jugador", Reason: "must not be empty"}
	}
	if r.pending.Chico == "" {
		return &model.ValidationError{Field: "chico", Reason: "must not be empty"}
	}
	if !r.pending.GameType.Valid() {
		return &model.ValidationError{Field: "tipoDeJuego", Reason: fmt.Sprintf("unknown game type %q", r.pending.GameType)}
	}
	if !r.pending.Outcome.Valid() {
		return &model.ValidationError{Field: "resultado", Reason: fmt.Sprintf("unknown outcome %q", r.pending.Outcome)}
	}
	if r.pending.Minutes < 0 || r.pending.Minutes > 90 {
		return &model.ValidationError{Field: "minutes", Reason: "must be between 0 and 90"}
	}
	return nil
}

func (r *recorder) Plays() ([]model.Play, error) {
	plays := []model.Play{}
	if _, err := r.store.Get(playsKey, &plays); err != nil {
		return nil, err
	}
	return plays, nil
}
