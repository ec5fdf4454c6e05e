package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/loader"
	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/production"
)

func newProduceCmd() *cobra.Command {
	var (
		hours  float64
		settle bool
	)

	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Show idle production per province",
		Long: `Shows hourly rates and the resources accrued over --hours for every province.
With --settle the time elapsed since each province was last settled is applied
to the snapshot instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			emp, err := loadEmpire()
			if err != nil {
				return err
			}

			printTitle("Idle Production")
			calc := production.NewCalculator(catalog)
			now := time.Now()

			for _, p := range emp.Provinces {
				in := production.Input{
					Buildings:   p.Buildings,
					Personality: personalityOf(p),
					LastSettled: now.Add(-time.Duration(hours * float64(time.Hour))),
					Researched:  emp.Researched,
					Now:         now,
				}
				if settle {
					in.LastSettled = time.Unix(p.LastSettled, 0)
				}

				res, err := calc.Calculate(in)
				if err != nil {
					return fmt.Errorf("province %s: %w", p.Name, err)
				}

				infoColor.Printf("🏰 %s (%.2f h)\n", p.Name, res.ElapsedHours)
				printProduction(p.Resources, res)
				fmt.Println()

				if settle {
					p.Resources = production.Settle(p.Resources, res)
					p.LastSettled = now.Unix()
				}
			}

			if settle {
				if err := loader.SaveEmpire(statePath, emp); err != nil {
					return err
				}
				successColor.Printf("✓ Settled %d provinces into %s\n", len(emp.Provinces), statePath)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 1, "Elapsed hours to project")
	cmd.Flags().BoolVar(&settle, "settle", false, "Apply real elapsed time to the snapshot and save it")
	return cmd
}

func personalityOf(p *models.Province) models.Personality {
	if p.Governor == nil {
		return models.NoPersonality
	}
	return p.Governor.Personality
}

func printProduction(stock models.ResourceBundle, res production.Result) {
	settled := production.Settle(stock, res)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Resource", "Per Hour", "Accrued", "Stock", "After"}),
	)
	for _, k := range models.AllResourceKinds() {
		_ = table.Append([]string{
			k.String(),
			fmt.Sprintf("%+.2f", res.HourlyRates[k]),
			fmt.Sprintf("%+d", res.Deltas[k]),
			humanize.Comma(int64(stock[k])),
			humanize.Comma(int64(settled[k])),
		})
	}
	_ = table.Render()
}
