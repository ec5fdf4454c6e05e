package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/loader"
	"github.com/napolitain/idle-empire/internal/models"
)

func newInitCmd() *cobra.Command {
	var (
		name        string
		personality string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter empire snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(statePath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", statePath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			if _, err := catalog.Profile(models.Personality(personality)); err != nil {
				return err
			}

			emp := starterEmpire(name, models.Personality(personality), time.Now())
			if err := loader.SaveEmpire(statePath, emp); err != nil {
				return err
			}
			successColor.Printf("✓ Founded %s (%s) in %s\n", emp.Name, emp.ID, statePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "New Empire", "Empire name")
	cmd.Flags().StringVar(&personality, "governor", string(models.Conservative), "Personality of the capital governor")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing snapshot")
	return cmd
}

// starterEmpire returns one capital with a small stockpile and a fresh governor
func starterEmpire(name string, personality models.Personality, now time.Time) *models.Empire {
	return &models.Empire{
		ID:   uuid.NewString(),
		Name: name,
		Provinces: []*models.Province{{
			ID:   uuid.NewString(),
			Name: "Capital",
			Resources: models.ResourceBundle{
				models.Gold:       500,
				models.Food:       300,
				models.Stone:      300,
				models.Iron:       100,
				models.Population: 100,
			},
			Buildings: []models.BuildingInstance{
				{Type: models.Farm, Level: 1},
				{Type: models.House, Level: 1},
			},
			Governor: &models.Governor{
				Name:        "Steward",
				Personality: personality,
				Loyalty:     60,
			},
			LastSettled: now.Unix(),
			Morale:      loader.DefaultMorale,
		}},
	}
}
