package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/loader"
	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/simulation"
	"github.com/napolitain/idle-empire/internal/store"
	"github.com/napolitain/idle-empire/internal/territory"
)

// runFlags are shared by simulate and watch
type runFlags struct {
	hoursPerTick    float64
	raidChance      float64
	eventChance     float64
	discoveryChance float64
	dryRun          bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.hoursPerTick, "hours", cfg.HoursPerTick, "Simulated hours per tick")
	cmd.Flags().Float64Var(&f.raidChance, "raid-chance", cfg.RaidChance, "Raid chance per province per hour")
	cmd.Flags().Float64Var(&f.eventChance, "event-chance", cfg.EventChance, "Event chance per province per hour")
	cmd.Flags().Float64Var(&f.discoveryChance, "discovery-chance", cfg.DiscoveryChance, "Territory discovery chance per province per hour")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Do not save the snapshot")
}

// session is a loaded empire with a tick service ready to advance it
type session struct {
	emp   *models.Empire
	svc   *simulation.Service
	clock *simulation.SteppedClock
	db    *store.DB
	seed  int64
}

func (s *session) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *session) save() error {
	return loader.SaveEmpire(statePath, s.emp)
}

func newSession(f runFlags) (*session, error) {
	if f.hoursPerTick <= 0 {
		return nil, fmt.Errorf("hours per tick must be positive, got %v", f.hoursPerTick)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	emp, err := loadEmpire()
	if err != nil {
		return nil, err
	}
	rng, usedSeed, err := newRandom()
	if err != nil {
		return nil, err
	}
	db, err := openStore()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if latest := latestSettlement(emp); latest > 0 {
		start = time.Unix(latest, 0)
	}
	clock := simulation.NewSteppedClock(start, time.Duration(f.hoursPerTick*float64(time.Hour)))

	opts := simulation.Options{
		RaidChance:        f.raidChance,
		EventChance:       f.eventChance,
		DiscoveryChance:   f.discoveryChance,
		ResearchThreshold: cfg.ResearchThreshold,
		Territories:       territory.Generate(usedSeed, cfg.Territories, catalog.Archetypes),
		Clock:             clock.Advance,
		Random:            rng,
		Logger:            slog.Default(),
	}
	if db != nil {
		opts.Store = db
	}

	svc, err := simulation.NewService(catalog, opts)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	if db != nil {
		pending, err := db.PendingRaids(emp.ID)
		if err != nil {
			db.Close()
			return nil, err
		}
		for _, r := range pending {
			if emp.Raid(r.ID) == nil {
				emp.Raids = append(emp.Raids, r)
			}
		}
		if len(pending) > 0 {
			slog.Info("restored pending raids", "count", len(pending))
		}
	}

	return &session{emp: emp, svc: svc, clock: clock, db: db, seed: usedSeed}, nil
}

func latestSettlement(emp *models.Empire) int64 {
	var latest int64
	for _, p := range emp.Provinces {
		latest = max(latest, p.LastSettled)
	}
	return latest
}

func newSimulateCmd() *cobra.Command {
	var (
		f     runFlags
		ticks int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance the empire by a number of accelerated ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(f)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printTitle("Empire Simulation")
			if !quiet {
				infoColor.Printf("🔄 %d ticks of %.1f h · seed %d\n\n", ticks, f.hoursPerTick, s.seed)
			}

			stats := map[models.CombatResult]int{}
			for i := 0; i < ticks; i++ {
				report, err := s.svc.Tick(ctx, s.emp)
				if err != nil {
					return err
				}
				for _, rr := range report.Resolved {
					stats[rr.Outcome.Result]++
				}
				if quiet {
					continue
				}
				for _, line := range report.Lines() {
					fmt.Printf("[%s] %s\n", report.At.UTC().Format("Jan 02 15:04"), line)
				}
			}

			fmt.Println()
			printEmpireSummary(s.emp)
			if n := stats[models.Victory] + stats[models.Draw] + stats[models.Defeat]; n > 0 {
				fmt.Printf("Raids: %d victories, %d draws, %d defeats · %d still incoming\n",
					stats[models.Victory], stats[models.Draw], stats[models.Defeat], len(s.svc.Pending(s.emp.ID)))
			}

			if f.dryRun {
				return nil
			}
			if err := s.save(); err != nil {
				return err
			}
			successColor.Printf("✓ Saved %s\n", statePath)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().IntVarP(&ticks, "ticks", "t", 24, "Number of ticks")
	return cmd
}

func printEmpireSummary(emp *models.Empire) {
	header := []string{"Province", "Level", "Morale"}
	for _, k := range models.AllResourceKinds() {
		header = append(header, k.String())
	}
	header = append(header, "Governor")

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithHeader(header))
	for _, p := range emp.Provinces {
		row := []string{p.Name, fmt.Sprintf("%d", p.Level()), fmt.Sprintf("%d", p.Morale)}
		for _, k := range models.AllResourceKinds() {
			row = append(row, humanize.Comma(int64(p.Resources.Get(k))))
		}
		gov := "-"
		if g := p.Governor; g != nil {
			gov = fmt.Sprintf("%s (%s) L%d XP%d", g.Name, g.Personality, g.Loyalty, g.Experience)
		}
		row = append(row, gov)
		_ = table.Append(row)
	}
	_ = table.Render()
}
