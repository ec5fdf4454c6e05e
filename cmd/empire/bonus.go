package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/bonus"
	"github.com/napolitain/idle-empire/internal/models"
)

func newBonusCmd() *cobra.Command {
	var fromState, all bool

	cmd := &cobra.Command{
		Use:   "bonus [tech...]",
		Short: "Compose the bonus bundle for a set of researched technologies",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			researched := args
			if fromState {
				emp, err := loadEmpire()
				if err != nil {
					return err
				}
				researched = emp.Researched
			}

			printTitle("Technology Bonuses")
			b, breakdown := bonus.NewComposer(catalog).Breakdown(researched)

			if len(breakdown.Technologies) > 0 {
				infoColor.Printf("Applied: %s\n", strings.Join(breakdown.Technologies, ", "))
			}
			if len(breakdown.Synergies) > 0 {
				successColor.Printf("Synergies: %s\n", strings.Join(breakdown.Synergies, ", "))
			}
			if len(breakdown.Ignored) > 0 {
				dangerColor.Printf("Unknown keys ignored: %s\n", strings.Join(breakdown.Ignored, ", "))
			}
			fmt.Println()

			printBonus(b, all)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromState, "empire", false, "Use the research of the empire snapshot")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show fields at their identity value too")
	return cmd
}

func printBonus(b models.TechnologyBonus, all bool) {
	identity := models.IdentityBonus()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Field", "Stacking", "Value"}),
	)
	for _, f := range models.AllBonusFields() {
		rule, _ := f.Stacking()
		var value string
		if rule == models.StackUnlock {
			if !b.IsUnlocked(f) && !all {
				continue
			}
			value = fmt.Sprintf("%v", b.IsUnlocked(f))
		} else {
			v := *b.Value(f)
			if v == *identity.Value(f) && !all {
				continue
			}
			value = fmt.Sprintf("%.4g", v)
		}
		_ = table.Append([]string{string(f), stackingName(rule), value})
	}
	_ = table.Render()
}

func stackingName(r models.StackingRule) string {
	switch r {
	case models.StackMultiplicative:
		return "multiplicative"
	case models.StackAdditive:
		return "additive"
	case models.StackReduction:
		return "reduction"
	case models.StackUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}
