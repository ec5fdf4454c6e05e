package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/config"
	"github.com/napolitain/idle-empire/internal/loader"
	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
	"github.com/napolitain/idle-empire/internal/store"
)

var (
	cfg       config.Config
	dataDir   string
	statePath string
	dbPath    string
	seed      int64
	quiet     bool

	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	infoColor    = color.New(color.FgYellow)
	dangerColor  = color.New(color.FgRed, color.Bold)
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "empire",
		Short: "Idle empire simulation core",
		Long: `Runs the economic and military simulation of an idle strategy empire:
technology bonuses, idle production, governor decisions, raids and events.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", cfg.DataDir, "Path to balance table overrides")
	rootCmd.PersistentFlags().StringVarP(&statePath, "state", "s", cfg.StatePath, "Path to the empire YAML snapshot")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "Path to the sqlite store (empty disables it)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", cfg.Seed, "Random seed (0 draws one)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(
		newInitCmd(),
		newBonusCmd(),
		newProduceCmd(),
		newDecideCmd(),
		newRaidCmd(),
		newSelectCmd(),
		newSimulateCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger() error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func printTitle(lines ...string) {
	if quiet {
		return
	}
	titleColor.Println("\n╭───────────────────────────╮")
	for _, l := range lines {
		titleColor.Printf("│  %-25s│\n", l)
	}
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}

func loadCatalog() (*models.Catalog, error) {
	catalog, err := loader.LoadCatalog(dataDir)
	if err != nil {
		return nil, err
	}
	if !quiet && dataDir != "" {
		infoColor.Printf("📦 Loaded balance tables from %s\n", dataDir)
	}
	return catalog, nil
}

func loadEmpire() (*models.Empire, error) {
	emp, err := loader.LoadEmpire(statePath)
	if err != nil {
		return nil, fmt.Errorf("%w (run `empire init` to create one)", err)
	}
	return emp, nil
}

func openStore() (*store.DB, error) {
	if dbPath == "" {
		return nil, nil
	}
	return store.Open(dbPath, slog.Default())
}

func newRandom() (random.Source, int64, error) {
	s := seed
	if s == 0 {
		var err error
		if s, err = random.NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return random.New(s), s, nil
}

func findProvince(emp *models.Empire, name string) (*models.Province, error) {
	if name == "" {
		if len(emp.Provinces) == 0 {
			return nil, fmt.Errorf("empire %s has no provinces", emp.Name)
		}
		return emp.Provinces[0], nil
	}
	for _, p := range emp.Provinces {
		if p.ID == name || p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("province %q not found", name)
}
