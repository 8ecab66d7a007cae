package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/config"
	"github.com/mauv0809/playdata/internal/database"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/mauv0809/playdata/internal/kvstore"
	"github.com/mauv0809/playdata/internal/metrics"
	"github.com/mauv0809/playdata/internal/model"
	"github.com/mauv0809/playdata/internal/recorder"
	"github.com/mauv0809/playdata/internal/registry"
	"github.com/mauv0809/playdata/internal/session"
)

// app wires the tracker components for one command invocation.
type app struct {
	store    kvstore.KVStore
	registry registry.Registry
	session  session.Controller
	recorder recorder.Recorder
	metrics  metrics.Metrics
	ids      *ident.Generator
	clock    clockwork.Clock
	teardown func()
}

func newApp() (*app, error) {
	start := time.Now()
	cfg := config.Load()
	if cfg.LogFormat == "json" {
		log.SetFormatter(log.JSONFormatter)
	}
	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		return nil, err
	}

	clock := clockwork.NewRealClock()
	ids := ident.New(clock)
	store := kvstore.New(db)
	metricsSvc := metrics.NewService()

	reg, err := registry.New(store, ids, metricsSvc)
	if err != nil {
		teardown()
		return nil, err
	}
	sess := session.New(store, reg, ids, clock, metricsSvc)
	reg.AttachSelection(sess)
	rec := recorder.New(store, sess, ids, clock, metricsSvc)
	sess.SetOnTeamSwitch(rec.ClearZone)
	metricsSvc.SetStartupTime(time.Since(start).Seconds())

	return &app{
		store:    store,
		registry: reg,
		session:  sess,
		recorder: rec,
		metrics:  metricsSvc,
		ids:      ids,
		clock:    clock,
		teardown: teardown,
	}, nil
}

// recorderFor builds a recorder bound to a resumed match session instead
// of the in-process controller, which starts every invocation idle.
func (a *app) recorderFor(msess recorder.Session) recorder.Recorder {
	return recorder.New(a.store, msess, a.ids, a.clock, a.metrics)
}

// matchSession restores the persisted current match as a recorder session.
// The chosen team must be one of the match's two sides.
type matchSession struct {
	team    model.Team
	matchID int64
}

func (s *matchSession) ActiveTeam() (model.Team, bool) { return s.team, true }
func (s *matchSession) CurrentMatchID() (int64, bool)  { return s.matchID, true }

func (a *app) resumeMatch(teamID int64) (*matchSession, error) {
	var current int64
	found, err := a.store.Get("currentMatchId", &current)
	if err != nil {
		return nil, err
	}
	if !found || current == 0 {
		return nil, &model.NotFoundError{Kind: "match", ID: current}
	}

	matches, err := a.session.Matches()
	if err != nil {
		return nil, err
	}
	var match *model.Match
	for i := range matches {
		if matches[i].ID == current {
			match = &matches[i]
			break
		}
	}
	if match == nil {
		return nil, &model.NotFoundError{Kind: "match", ID: current}
	}
	if teamID != match.HomeTeamID && teamID != match.AwayTeamID {
		return nil, &model.ValidationError{Field: "team", Reason: "team is not part of the current match"}
	}

	team, ok := a.registry.GetTeam(teamID)
	if !ok {
		return nil, &model.NotFoundError{Kind: "team", ID: teamID}
	}
	return &matchSession{team: team, matchID: current}, nil
}
