package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/combat"
	"github.com/napolitain/idle-empire/internal/governor"
	"github.com/napolitain/idle-empire/internal/models"
)

func newDecideCmd() *cobra.Command {
	var (
		province  string
		threshold int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Show what each governor would do next",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			emp, err := loadEmpire()
			if err != nil {
				return err
			}

			engine := governor.NewEngine(catalog)
			engine.ResearchThreshold = threshold

			provinces := emp.Provinces
			if province != "" {
				p, err := findProvince(emp, province)
				if err != nil {
					return err
				}
				provinces = []*models.Province{p}
			}

			printTitle("Governor Decisions")
			for _, p := range provinces {
				d, candidates, err := engine.Candidates(p, emp)
				if err != nil {
					return fmt.Errorf("province %s: %w", p.Name, err)
				}

				infoColor.Printf("🏰 %s\n", p.Name)
				if verbose && len(candidates) > 0 {
					printCandidates(candidates)
				}
				printDecision(d)
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&province, "province", "p", "", "Province id or name (default all)")
	cmd.Flags().IntVar(&threshold, "research-threshold", cfg.ResearchThreshold, "Empire resource sum above which research is considered")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every evaluated candidate")
	return cmd
}

func printDecision(d models.GovernorDecision) {
	switch d.Kind {
	case models.DecisionWait:
		fmt.Printf("   ⏸  Wait: %s\n", d.Reason)
	case models.DecisionBuild, models.DecisionResearch:
		successColor.Printf("   ▶ %s (score %.2f)\n", d.Reason, d.PriorityScore)
		fmt.Printf("     cost %s, %s\n", combat.FormatBundle(d.Cost), formatDuration(d.DurationSeconds))
	}
}

func printCandidates(candidates []governor.Candidate) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Kind", "Target", "Priority", "Loyalty", "Exp", "Adj", "Afford %", "Score", "Note"}),
	)
	for _, c := range candidates {
		target := string(c.Decision.BuildingType)
		if c.Decision.Kind == models.DecisionResearch {
			target = c.Decision.TechKey
		} else {
			target = fmt.Sprintf("%s → %d", target, c.Decision.TargetLevel)
		}

		row := []string{c.Decision.Kind.String(), target}
		if c.Skipped != "" {
			row = append(row, "", "", "", "", "", "", c.Skipped)
		} else {
			m := c.Metric
			row = append(row,
				fmt.Sprintf("%d", m.Priority),
				fmt.Sprintf("%.2f", m.Loyalty),
				fmt.Sprintf("%.2f", m.Experience),
				fmt.Sprintf("%.2f", m.Adjustment),
				fmt.Sprintf("%.0f", m.Affordability),
				fmt.Sprintf("%.2f", c.Decision.PriorityScore),
				"",
			)
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
