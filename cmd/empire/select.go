package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
	"github.com/napolitain/idle-empire/internal/selector"
	"github.com/napolitain/idle-empire/internal/simulation"
	"github.com/napolitain/idle-empire/internal/territory"
)

func newSelectCmd() *cobra.Command {
	var (
		province string
		draws    int
	)

	cmd := &cobra.Command{
		Use:       "select {enemy|event|territory}",
		Short:     "Draw from a weighted pool for a province and show the distribution",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"enemy", "event", "territory"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			emp, err := loadEmpire()
			if err != nil {
				return err
			}
			p, err := findProvince(emp, province)
			if err != nil {
				return err
			}
			rng, usedSeed, err := newRandom()
			if err != nil {
				return err
			}

			ctx := selector.NewContext(p, emp.Researched, simulation.Threat(p))
			m := selector.NewMatcher()

			printTitle("Weighted Selection")
			if !quiet {
				fmt.Printf("🎲 seed %d · %s level %d · threat %d · attractiveness %.2f\n\n",
					usedSeed, p.Name, ctx.ProvinceLevel, ctx.Threat, ctx.Attractiveness)
			}

			switch args[0] {
			case "enemy":
				return drawPool(m, catalog.Enemies, ctx, rng, draws, func(e models.EnemyForce) string { return e.Name })
			case "event":
				return drawPool(m, catalog.Events, ctx, rng, draws, func(e models.RandomEvent) string { return e.Name })
			case "territory":
				pool := territory.Generate(usedSeed, cfg.Territories, catalog.Archetypes)
				return drawPool(m, pool, ctx, rng, draws, func(t models.Territory) string { return t.Name })
			}
			return fmt.Errorf("unknown pool %q (want enemy, event or territory)", args[0])
		},
	}

	cmd.Flags().StringVarP(&province, "province", "p", "", "Province id or name (default first)")
	cmd.Flags().IntVarP(&draws, "draws", "n", 10000, "Number of draws")
	return cmd
}

func drawPool[T selector.Gated](m *selector.Matcher, pool []T, ctx selector.Context, rng random.Source, draws int, name func(T) string) error {
	if err := selector.Validate(m, pool); err != nil {
		return err
	}

	counts := make(map[string]int, len(pool))
	none := 0
	for i := 0; i < draws; i++ {
		entry, ok, err := selector.Pick(m, pool, ctx, rng)
		if err != nil {
			return err
		}
		if !ok {
			none++
			continue
		}
		counts[name(entry)]++
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Entry", "Weight", "Eligible", "Draws", "Share"}),
	)
	for _, entry := range pool {
		eligible, err := m.Eligible(entry.Gate(), ctx)
		if err != nil {
			return err
		}
		n := counts[name(entry)]
		_ = table.Append([]string{
			name(entry),
			fmt.Sprintf("%.2f", entry.Weight()),
			fmt.Sprintf("%v", eligible),
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.1f%%", 100*float64(n)/float64(max(draws, 1))),
		})
	}
	_ = table.Render()

	if none > 0 {
		infoColor.Printf("No eligible entry on %d draws\n", none)
	}
	return nil
}
