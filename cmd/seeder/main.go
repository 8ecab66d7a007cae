package main

import (
	"math/rand"
	"strconv"

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

var gameTypes = []model.GameType{model.GameOpen, model.GameSetPiece, model.GameFreeKick, model.GamePenalty, model.GameCorner}
var outcomes = []model.Outcome{model.OutcomeGoal, model.OutcomeSaved, model.OutcomeWide, model.OutcomeBlocked, model.OutcomePost}

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	clock := clockwork.NewRealClock()
	ids := ident.New(clock)
	store := kvstore.New(db)
	m := metrics.NewService()

	reg, err := registry.New(store, ids, m)
	if err != nil {
		log.Fatalf("Failed to load registry: %s", err)
	}
	sess := session.New(store, reg, ids, clock, m)
	reg.AttachSelection(sess)
	rec := recorder.New(store, sess, ids, clock, m)
	sess.SetOnTeamSwitch(rec.ClearZone)

	tourn, err := reg.CreateTournament("Liga de Demostración", "Seeded demo data")
	if err != nil {
		log.Fatalf("Failed to create tournament: %s", err)
	}
	home := mustTeam(reg, tourn.ID, "Halcones", "#d62828")
	away := mustTeam(reg, tourn.ID, "Pumas", "#003049")

	roster := map[int64][]string{
		home.ID: {"Juan", "Pedro", "Martín", "Lucas", "Diego"},
		away.ID: {"Andrés", "Felipe", "Nico", "Santi", "Bruno"},
	}
	for teamID, names := range roster {
		for i, name := range names {
			if _, err := reg.AddPlayer(teamID, name, strconv.Itoa(i+1), "jugador"); err != nil {
				log.Fatalf("Failed to add player %s: %s", name, err)
			}
		}
	}

	if err := sess.SelectTournament(tourn.ID); err != nil {
		log.Fatalf("Failed to select tournament: %s", err)
	}
	if err := sess.SelectHomeTeam(home.ID); err != nil {
		log.Fatalf("Failed to select home team: %s", err)
	}
	if err := sess.SelectAwayTeam(away.ID); err != nil {
		log.Fatalf("Failed to select away team: %s", err)
	}
	match, err := sess.StartMatch()
	if err != nil {
		log.Fatalf("Failed to start match: %s", err)
	}
	log.Info("Seed match started", "matchID", match.ID, "home", home.Name, "away", away.Name)

	rng := rand.New(rand.NewSource(42))
	zones := model.Zones()
	const numPlays = 40
	for i := 0; i < numPlays; i++ {
		if rng.Intn(2) == 0 {
			sess.SwitchActiveTeam()
		}
		active, _ := sess.ActiveTeam()
		names := roster[active.ID]

		if _, err := rec.SelectZone(zones[rng.Intn(len(zones))]); err != nil {
			log.Fatalf("Failed to select zone: %s", err)
		}
		rec.SetFields(
			strconv.Itoa(1+i*4/numPlays),
			names[rng.Intn(len(names))],
			gameTypes[rng.Intn(len(gameTypes))],
			outcomes[rng.Intn(len(outcomes))],
			i*90/numPlays,
		)
		if _, err := rec.Record(); err != nil {
			log.Fatalf("Failed to record play %d: %s", i, err)
		}
	}

	log.Info("Seeding complete", "tournamentID", tourn.ID, "matchID", match.ID, "plays", numPlays)
}

func mustTeam(reg registry.Registry, tournamentID int64, name, color string) *model.Team {
	team, err := reg.AddTeam(tournamentID, name, color)
	if err != nil {
		log.Fatalf("Failed to add team %s: %s", name, err)
	}
	return team
}
