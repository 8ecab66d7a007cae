package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mauv0809/playdata/internal/model"
	"github.com/mauv0809/playdata/internal/snapshot"
	"github.com/mauv0809/playdata/internal/stats"
	"github.com/spf13/cobra"
)

func init() {
	tournamentCmd.AddCommand(tournamentAddCmd, tournamentListCmd, tournamentRemoveCmd)
	teamCmd.AddCommand(teamAddCmd, teamEditCmd, teamRemoveCmd)
	playerCmd.AddCommand(playerAddCmd, playerRemoveCmd)
	matchCmd.AddCommand(matchStartCmd)
	playCmd.AddCommand(playRecordCmd)
	snapshotCmd.AddCommand(snapshotExportCmd, snapshotImportCmd)

	rootCmd.AddCommand(tournamentCmd, teamCmd, playerCmd, matchCmd, playCmd, statsCmd, historyCmd, zonesCmd, snapshotCmd)

	tournamentAddCmd.Flags().StringVar(&flagName, "name", "", "Tournament name")
	tournamentAddCmd.Flags().StringVar(&flagDescription, "description", "", "Tournament description")
	tournamentRemoveCmd.Flags().Int64Var(&flagID, "id", 0, "Tournament id")

	teamAddCmd.Flags().Int64Var(&flagTournamentID, "tournament", 0, "Owning tournament id")
	teamAddCmd.Flags().StringVar(&flagName, "name", "", "Team name")
	teamAddCmd.Flags().StringVar(&flagColor, "color", "", "Display color")
	teamEditCmd.Flags().Int64Var(&flagID, "id", 0, "Team id")
	teamEditCmd.Flags().StringVar(&flagName, "name", "", "New team name")
	teamEditCmd.Flags().StringVar(&flagColor, "color", "", "New display color")
	teamRemoveCmd.Flags().Int64Var(&flagTournamentID, "tournament", 0, "Owning tournament id")
	teamRemoveCmd.Flags().Int64Var(&flagID, "id", 0, "Team id")

	playerAddCmd.Flags().Int64Var(&flagTeamID, "team", 0, "Owning team id")
	playerAddCmd.Flags().StringVar(&flagName, "name", "", "Player name")
	playerAddCmd.Flags().StringVar(&flagNumber, "number", "", "Jersey number")
	playerAddCmd.Flags().StringVar(&flagPosition, "position", "", "Position (optional)")
	playerRemoveCmd.Flags().Int64Var(&flagTeamID, "team", 0, "Owning team id")
	playerRemoveCmd.Flags().Int64Var(&flagID, "id", 0, "Player id")

	matchStartCmd.Flags().Int64Var(&flagTournamentID, "tournament", 0, "Tournament id")
	matchStartCmd.Flags().Int64Var(&flagHomeID, "home", 0, "Home team id")
	matchStartCmd.Flags().Int64Var(&flagAwayID, "away", 0, "Away team id")

	playRecordCmd.Flags().Int64Var(&flagTeamID, "team", 0, "Team the play belongs to (home or away of the current match)")
	playRecordCmd.Flags().StringVar(&flagZona, "zona", "", `Pitch zone "1".."12"`)
	playRecordCmd.Flags().Float64Var(&flagX, "x", -1, "Normalized pitch x for zone lookup (alternative to --zona)")
	playRecordCmd.Flags().Float64Var(&flagY, "y", -1, "Normalized pitch y for zone lookup (alternative to --zona)")
	playRecordCmd.Flags().StringVar(&flagChico, "chico", "", "Segment label, e.g. 1..4")
	playRecordCmd.Flags().StringVar(&flagJugador, "jugador", "", "Player display name")
	playRecordCmd.Flags().StringVar(&flagTipo, "tipo", string(model.GameOpen), "Game type: abierto|parado|tiro_libre|penal|corner")
	playRecordCmd.Flags().StringVar(&flagResultado, "resultado", string(model.OutcomeGoal), "Outcome: gol|atajado|desviado|bloqueado|palo")
	playRecordCmd.Flags().IntVar(&flagMinutes, "minutos", 0, "Minute of the game (0-90)")

	statsCmd.Flags().Int64Var(&flagMatchID, "match", 0, "Filter by match id")
	statsCmd.Flags().Int64Var(&filterTeamID, "team", 0, "Filter by team id")
	statsCmd.Flags().StringVar(&filterChico, "chico", "", "Filter by segment")
	statsCmd.Flags().StringVar(&filterTipo, "tipo", "", "Filter by game type")
	statsCmd.Flags().StringVar(&filterResultado, "resultado", "", "Filter by outcome")

	snapshotExportCmd.Flags().StringVar(&flagFile, "out", "playdata.snapshot", "Output file")
	snapshotImportCmd.Flags().StringVar(&flagFile, "in", "playdata.snapshot", "Input file")
}

var (
	flagID           int64
	flagTournamentID int64
	flagTeamID       int64
	flagHomeID       int64
	flagAwayID       int64
	flagMatchID      int64
	flagName         string
	flagDescription  string
	flagColor        string
	flagNumber       string
	flagPosition     string
	flagZona         string
	flagChico        string
	flagJugador      string
	flagTipo         string
	flagResultado    string
	flagFile         string
	flagMinutes      int
	flagX            float64
	flagY            float64

	// Separate vars for the stats filters so their empty pass-through
	// defaults do not clobber the record command's defaults.
	filterTeamID    int64
	filterChico     string
	filterTipo      string
	filterResultado string
)

var tournamentCmd = &cobra.Command{Use: "tournament", Short: "Manage tournaments"}
var teamCmd = &cobra.Command{Use: "team", Short: "Manage teams"}
var playerCmd = &cobra.Command{Use: "player", Short: "Manage rosters"}
var matchCmd = &cobra.Command{Use: "match", Short: "Run match sessions"}
var playCmd = &cobra.Command{Use: "play", Short: "Record plays"}
var snapshotCmd = &cobra.Command{Use: "snapshot", Short: "Export and import the whole store"}

var tournamentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		tourn, err := a.registry.CreateTournament(flagName, flagDescription)
		if err != nil {
			return err
		}
		fmt.Printf("Created tournament %d: %s\n", tourn.ID, tourn.Name)
		return nil
	},
}

var tournamentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tournaments, teams and rosters",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer w.Flush()
		for _, tourn := range a.registry.AllTournaments() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", tourn.ID, tourn.Name, tourn.Description)
			for _, team := range tourn.Teams {
				fmt.Fprintf(w, "\t%d\t%s (%s)\t%d players\n", team.ID, team.Name, team.Color, len(team.Players))
				for _, p := range team.Players {
					fmt.Fprintf(w, "\t\t%d\t#%s %s\t%s\n", p.ID, p.Number, p.Name, p.Position)
				}
			}
		}
		return nil
	},
}

var tournamentRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a tournament and its team list",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()
		return a.registry.RemoveTournament(flagID)
	},
}

var teamAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a team to a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		team, err := a.registry.AddTeam(flagTournamentID, flagName, flagColor)
		if err != nil {
			return err
		}
		fmt.Printf("Added team %d: %s\n", team.ID, team.Name)
		return nil
	},
}

var teamEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Rename or recolor a team",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()
		return a.registry.EditTeam(flagID, flagName, flagColor)
	},
}

var teamRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a team from its tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()
		return a.registry.RemoveTeam(flagTournamentID, flagID)
	},
}

var playerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a player to a team's roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		player, err := a.registry.AddPlayer(flagTeamID, flagName, flagNumber, flagPosition)
		if err != nil {
			return err
		}
		fmt.Printf("Added player %d: #%s %s\n", player.ID, player.Number, player.Name)
		return nil
	},
}

var playerRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a player from a roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()
		return a.registry.RemovePlayer(flagTeamID, flagID)
	},
}

var matchStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a match between two teams of a tournament",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		if err := a.session.SelectTournament(flagTournamentID); err != nil {
			return err
		}
		if err := a.session.SelectHomeTeam(flagHomeID); err != nil {
			return err
		}
		if err := a.session.SelectAwayTeam(flagAwayID); err != nil {
			return err
		}
		match, err := a.session.StartMatch()
		if err != nil {
			return err
		}
		if match == nil {
			return fmt.Errorf("match not started: home and away must both be set")
		}
		fmt.Printf("Match %d started: team %d (home) vs team %d (away)\n", match.ID, match.HomeTeamID, match.AwayTeamID)
		return nil
	},
}

var playRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a play for the current match",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		msess, err := a.resumeMatch(flagTeamID)
		if err != nil {
			return err
		}
		rec := a.recorderFor(msess)

		zona := model.Zone(flagZona)
		if flagZona == "" && flagX >= 0 && flagY >= 0 {
			z, ok := model.ZoneAt(flagX, flagY)
			if !ok {
				return fmt.Errorf("point (%v, %v) is off the pitch", flagX, flagY)
			}
			zona = z
		}
		advisory, err := rec.SelectZone(zona)
		if err != nil {
			return err
		}
		if advisory {
			fmt.Printf("Note: zone %s is in the %s row, confirm it is correct\n", zona, rowLabel(zona))
		}

		gameType, err := model.ParseGameType(flagTipo)
		if err != nil {
			return err
		}
		outcome, err := model.ParseOutcome(flagResultado)
		if err != nil {
			return err
		}
		rec.SetFields(flagChico, flagJugador, gameType, outcome, flagMinutes)

		play, err := rec.Record()
		if err != nil {
			return err
		}
		fmt.Printf("Play %d recorded: %s, %s in zone %s at minute %d\n", play.ID, play.Jugador, play.Outcome, play.Zone, play.Minutes)
		return nil
	},
}

func rowLabel(z model.Zone) string {
	if z.Defensive() {
		return "defensive"
	}
	return "offensive"
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show filtered plays and per-team totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		plays, err := a.recorder.Plays()
		if err != nil {
			return err
		}
		filtered := stats.FilterPlays(plays, stats.Filter{
			MatchID:  flagMatchID,
			TeamID:   filterTeamID,
			Chico:    filterChico,
			GameType: model.GameType(filterTipo),
			Outcome:  model.Outcome(filterResultado),
		})

		allTeams := a.registry.AllTeams()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TEAM\tCHICO\tJUGADOR\tTIPO\tRESULTADO\tZONA\tMIN")
		for _, p := range filtered {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n", teamName(allTeams, p.TeamID), p.Chico, p.Jugador, p.GameType, p.Outcome, p.Zone, p.Minutes)
		}
		w.Flush()

		fmt.Println()
		for _, ts := range stats.ComputeTeamStats(filtered) {
			fmt.Printf("%s: %d tiros, %d goles\n", teamName(allTeams, ts.TeamID), ts.Shots, ts.Goals)
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the match history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		matches, err := a.session.Matches()
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Println("No matches have been played yet.")
			return nil
		}
		plays, err := a.recorder.Plays()
		if err != nil {
			return err
		}

		for _, summary := range stats.MatchHistory(matches, plays, a.registry.AllTeams()) {
			fmt.Printf("Match %d - %s\n", summary.Match.ID, summary.Match.Date)
			if summary.HomeTeam != nil && summary.AwayTeam != nil {
				fmt.Printf("  %s vs %s\n", summary.HomeTeam.Name, summary.AwayTeam.Name)
			}
			for id, ts := range stats.ComputeTeamStats(summary.Plays) {
				fmt.Printf("  team %d: %d tiros, %d goles\n", id, ts.Shots, ts.Goals)
			}
		}
		return nil
	},
}

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Print the twelve-zone pitch grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		zones := model.Zones()
		// Print attacking row first, the way the pitch map is drawn.
		for row := 3; row >= 0; row-- {
			for col := 0; col < 3; col++ {
				fmt.Printf("%3s", zones[row*3+col])
			}
			fmt.Println()
		}
		return nil
	},
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole store to a snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		data, err := snapshot.Export(a.store, a.clock)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		fmt.Printf("Snapshot written to %s (%d bytes)\n", flagFile, len(data))
		return nil
	},
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the store with a snapshot file's contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.teardown()

		data, err := os.ReadFile(flagFile)
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		arc, err := snapshot.Import(a.store, data, a.ids)
		if err != nil {
			return err
		}
		fmt.Printf("Imported snapshot %s: %d tournaments, %d matches, %d plays\n", arc.SnapshotID, len(arc.Tournaments), len(arc.Matches), len(arc.Plays))
		return nil
	},
}

func teamName(teams []model.Team, id int64) string {
	for _, t := range teams {
		if t.ID == id {
			return t.Name
		}
	}
	return fmt.Sprintf("Equipo %d", id)
}
