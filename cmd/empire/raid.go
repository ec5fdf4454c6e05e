package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/bonus"
	"github.com/napolitain/idle-empire/internal/combat"
	"github.com/napolitain/idle-empire/internal/loader"
	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
	"github.com/napolitain/idle-empire/internal/selector"
	"github.com/napolitain/idle-empire/internal/simulation"
)

func newRaidCmd() *cobra.Command {
	var (
		province string
		enemy    string
		trials   int
		apply    bool
	)

	cmd := &cobra.Command{
		Use:   "raid",
		Short: "Resolve a raid against a province",
		Long: `Draws an eligible enemy (or uses --enemy) and resolves the encounter against the
province's aggregated defense. --trials repeats the encounter to show the odds;
--apply settles a single outcome on the snapshot.`,
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

			var force models.EnemyForce
			if enemy != "" {
				found := false
				for _, e := range catalog.Enemies {
					if strings.EqualFold(e.Name, enemy) {
						force, found = e, true
						break
					}
				}
				if !found {
					return &models.ConfigurationError{Kind: "enemy", Key: enemy}
				}
			} else {
				ctx := selector.NewContext(p, emp.Researched, simulation.Threat(p))
				var ok bool
				force, ok, err = selector.NewMatcher().PickEnemy(catalog.Enemies, ctx, rng)
				if err != nil {
					return err
				}
				if !ok {
					infoColor.Printf("No enemy is drawn to %s (level %d, threat %d)\n", p.Name, ctx.ProvinceLevel, ctx.Threat)
					return nil
				}
			}

			b := bonus.NewComposer(catalog).Compose(emp.Researched)
			defense := combat.AggregateDefense(p, b)

			printTitle("Raid Resolution")
			if !quiet {
				fmt.Printf("🎲 seed %d\n", usedSeed)
			}
			printForces(force, defense)

			if trials > 1 {
				printTrials(force, defense, trials, rng)
				return nil
			}

			outcome := combat.Resolve(force, defense, rng)
			printOutcome(outcome)

			if apply {
				combat.ApplyOutcome(p, outcome)
				if err := loader.SaveEmpire(statePath, emp); err != nil {
					return err
				}
				successColor.Printf("✓ Outcome applied to %s\n", p.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&province, "province", "p", "", "Province id or name (default first)")
	cmd.Flags().StringVarP(&enemy, "enemy", "e", "", "Enemy name (default: weighted draw)")
	cmd.Flags().IntVarP(&trials, "trials", "n", 1, "Number of encounters to simulate")
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply the outcome to the snapshot")
	return cmd
}

func printForces(enemy models.EnemyForce, defense models.DefenseForce) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Side", "Strength", "Toughness", "Power", "Notes"}),
	)
	_ = table.Append([]string{
		enemy.Name,
		fmt.Sprintf("%.1f", enemy.Strength),
		fmt.Sprintf("%.1f", enemy.Toughness),
		fmt.Sprintf("%.1f", combat.AttackerPower(enemy)),
		fmt.Sprintf("%s, threat %d, speed %.0f, cunning %.0f", enemy.Type, enemy.ThreatLevel, enemy.Speed, enemy.Cunning),
	})
	_ = table.Append([]string{
		"Defenders",
		fmt.Sprintf("%.1f", defense.Strength),
		fmt.Sprintf("%.1f", defense.Toughness),
		fmt.Sprintf("%.1f", combat.DefenderPower(enemy, defense)),
		fmt.Sprintf("garrison %d, ×%.2f vs %s", defense.Garrison, defense.Against(enemy.Type), enemy.Type),
	})
	_ = table.Render()
	fmt.Println()
}

func printOutcome(o models.CombatOutcome) {
	c := successColor
	switch o.Result {
	case models.Defeat:
		c = dangerColor
	case models.Draw:
		c = infoColor
	}
	c.Printf("%s (certainty %.0f%%)\n", o.Result, o.VictoryCertainty*100)
	fmt.Println(o.Narrative)
	fmt.Printf("Governor: %+d xp, %+d loyalty · Morale %+d\n", o.GovernorXPGain, o.GovernorLoyaltyChange, o.MoraleChange)
}

func printTrials(enemy models.EnemyForce, defense models.DefenseForce, n int, rng random.Source) {
	counts := map[models.CombatResult]int{}
	casualties := 0
	for i := 0; i < n; i++ {
		o := combat.Resolve(enemy, defense, rng)
		counts[o.Result]++
		casualties += o.DefenderCasualties
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Result", "Count", "Share"}),
	)
	for _, r := range []models.CombatResult{models.Victory, models.Draw, models.Defeat} {
		_ = table.Append([]string{r.String(), fmt.Sprintf("%d", counts[r]), fmt.Sprintf("%.1f%%", 100*float64(counts[r])/float64(n))})
	}
	_ = table.Render()
	fmt.Printf("Average defender casualties: %.1f\n", float64(casualties)/float64(n))
}
