package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/idle-empire/internal/models"
)

// File names of the balance tables inside a data directory
const (
	BaselineFile      = "baseline.yaml"
	BuildingsFile     = "buildings.yaml"
	TechnologiesFile  = "technologies.yaml"
	SynergiesFile     = "synergies.yaml"
	PersonalitiesFile = "personalities.yaml"
	EnemiesFile       = "enemies.yaml"
	EventsFile        = "events.yaml"
	ArchetypesFile    = "archetypes.yaml"
)

// BuildingYAML represents the YAML structure for a building
type BuildingYAML struct {
	Type            string                       `yaml:"type"`
	MaxLevel        int                          `yaml:"max_level"`
	Cost            map[string]int               `yaml:"cost"`
	CostGrowth      float64                      `yaml:"cost_growth"`
	BaseTimeSeconds int                          `yaml:"base_time_seconds"`
	TimeGrowth      float64                      `yaml:"time_growth"`
	Production      map[string]float64           `yaml:"production"`
	Requires        []models.BuildingRequirement `yaml:"requires"`
}

// TechnologyYAML represents the YAML structure for a technology
type TechnologyYAML struct {
	Key                 string          `yaml:"key"`
	Name                string          `yaml:"name"`
	Tier                int             `yaml:"tier"`
	Cost                map[string]int  `yaml:"cost"`
	ResearchTimeSeconds int             `yaml:"research_time_seconds"`
	Prerequisites       []string        `yaml:"prerequisites"`
	Effects             []models.Effect `yaml:"effects"`
}

// PersonalityYAML represents the YAML structure for a personality profile
type PersonalityYAML struct {
	Buildings  []models.PriorityEntry `yaml:"buildings"`
	Research   []models.PriorityEntry `yaml:"research"`
	Production map[string]float64     `yaml:"production"` // missing resources default to 1
}

// EnemyYAML represents the YAML structure for an enemy force
type EnemyYAML struct {
	models.EnemyForce `yaml:",inline"`
	Rewards           map[string]int `yaml:"victory_rewards"`
	Penalties         map[string]int `yaml:"defeat_penalties"`
}

// EventYAML represents the YAML structure for a random event
type EventYAML struct {
	models.RandomEvent `yaml:",inline"`
	EffectMap          map[string]int `yaml:"effects"`
}

// ArchetypeYAML represents the YAML structure for a territory archetype
type ArchetypeYAML struct {
	Name        string             `yaml:"name"`
	Richness    map[string]float64 `yaml:"richness"`
	SpawnWeight float64            `yaml:"spawn_weight"`
	Eligibility models.Eligibility `yaml:"eligibility"`
}

// LoadCatalog returns the default catalog with every table found in dataDir
// applied over it. Buildings are merged by type; every other table present
// replaces the default one. A missing file keeps the default. The result is
// validated before it is returned.
func LoadCatalog(dataDir string) (*models.Catalog, error) {
	catalog := models.DefaultCatalog()
	if dataDir == "" {
		return catalog, nil
	}

	steps := []struct {
		file  string
		apply func([]byte) error
	}{
		{BaselineFile, func(data []byte) error { return loadBaseline(data, catalog) }},
		{BuildingsFile, func(data []byte) error { return loadBuildings(data, catalog) }},
		{TechnologiesFile, func(data []byte) error { return loadTechnologies(data, catalog) }},
		{SynergiesFile, func(data []byte) error { return loadSynergies(data, catalog) }},
		{PersonalitiesFile, func(data []byte) error { return loadPersonalities(data, catalog) }},
		{EnemiesFile, func(data []byte) error { return loadEnemies(data, catalog) }},
		{EventsFile, func(data []byte) error { return loadEvents(data, catalog) }},
		{ArchetypesFile, func(data []byte) error { return loadArchetypes(data, catalog) }},
	}

	for _, step := range steps {
		data, err := os.ReadFile(filepath.Join(dataDir, step.file))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", step.file, err)
		}
		if err := step.apply(data); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", step.file, err)
		}
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

func loadBaseline(data []byte, c *models.Catalog) error {
	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	rates, err := ratesFromMap(raw, 0)
	if err != nil {
		return err
	}
	c.Baseline = rates
	return nil
}

func loadBuildings(data []byte, c *models.Catalog) error {
	var raw []BuildingYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, b := range raw {
		cost, err := bundleFromMap(b.Cost)
		if err != nil {
			return fmt.Errorf("building %s: %w", b.Type, err)
		}
		production, err := ratesFromMap(b.Production, 0)
		if err != nil {
			return fmt.Errorf("building %s: %w", b.Type, err)
		}

		bType := models.BuildingType(b.Type)
		c.Buildings[bType] = &models.Building{
			Type:             bType,
			MaxLevel:         b.MaxLevel,
			BaseCost:         cost,
			CostGrowth:       b.CostGrowth,
			BaseTimeSeconds:  b.BaseTimeSeconds,
			TimeGrowth:       b.TimeGrowth,
			ProductionPerLvl: production,
			Requires:         b.Requires,
		}
	}
	return nil
}

func loadTechnologies(data []byte, c *models.Catalog) error {
	var raw []TechnologyYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	techs := make([]*models.Technology, 0, len(raw))
	for _, t := range raw {
		cost, err := bundleFromMap(t.Cost)
		if err != nil {
			return fmt.Errorf("technology %s: %w", t.Key, err)
		}
		techs = append(techs, &models.Technology{
			Key:                 t.Key,
			Name:                t.Name,
			Tier:                t.Tier,
			Cost:                cost,
			ResearchTimeSeconds: t.ResearchTimeSeconds,
			Prerequisites:       t.Prerequisites,
			Effects:             t.Effects,
		})
	}
	c.Technologies = techs
	return nil
}

func loadSynergies(data []byte, c *models.Catalog) error {
	var raw []models.Synergy
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Synergies = raw
	return nil
}

func loadPersonalities(data []byte, c *models.Catalog) error {
	var raw map[string]PersonalityYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	profiles := make(map[models.Personality]*models.PersonalityProfile, len(raw))
	for name, p := range raw {
		modifier, err := ratesFromMap(p.Production, 1)
		if err != nil {
			return fmt.Errorf("personality %s: %w", name, err)
		}
		personality := models.Personality(name)
		profiles[personality] = &models.PersonalityProfile{
			Personality:        personality,
			BuildingPriorities: p.Buildings,
			ResearchPriorities: p.Research,
			ProductionModifier: modifier,
		}
	}
	c.Personalities = profiles
	return nil
}

func loadEnemies(data []byte, c *models.Catalog) error {
	var raw []EnemyYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	enemies := make([]models.EnemyForce, 0, len(raw))
	for _, e := range raw {
		enemy, err := enemyFromYAML(e)
		if err != nil {
			return err
		}
		enemies = append(enemies, enemy)
	}
	c.Enemies = enemies
	return nil
}

func enemyFromYAML(e EnemyYAML) (models.EnemyForce, error) {
	enemy := e.EnemyForce
	var err error
	if enemy.VictoryRewards, err = bundleFromMap(e.Rewards); err != nil {
		return enemy, fmt.Errorf("enemy %s: %w", enemy.Name, err)
	}
	if enemy.DefeatPenalties, err = bundleFromMap(e.Penalties); err != nil {
		return enemy, fmt.Errorf("enemy %s: %w", enemy.Name, err)
	}
	return enemy, nil
}

func enemyToYAML(e models.EnemyForce) EnemyYAML {
	return EnemyYAML{
		EnemyForce: e,
		Rewards:    bundleToMap(e.VictoryRewards),
		Penalties:  bundleToMap(e.DefeatPenalties),
	}
}

func loadEvents(data []byte, c *models.Catalog) error {
	var raw []EventYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	events := make([]models.RandomEvent, 0, len(raw))
	for _, e := range raw {
		event := e.RandomEvent
		var err error
		if event.Effects, err = bundleFromMap(e.EffectMap); err != nil {
			return fmt.Errorf("event %s: %w", event.Name, err)
		}
		events = append(events, event)
	}
	c.Events = events
	return nil
}

func loadArchetypes(data []byte, c *models.Catalog) error {
	var raw []ArchetypeYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	archetypes := make([]models.TerritoryArchetype, 0, len(raw))
	for _, a := range raw {
		richness, err := ratesFromMap(a.Richness, 0)
		if err != nil {
			return fmt.Errorf("archetype %s: %w", a.Name, err)
		}
		archetypes = append(archetypes, models.TerritoryArchetype{
			Name:        a.Name,
			Richness:    richness,
			SpawnWeight: a.SpawnWeight,
			Eligibility: a.Eligibility,
		})
	}
	c.Archetypes = archetypes
	return nil
}

func bundleFromMap(m map[string]int) (models.ResourceBundle, error) {
	var b models.ResourceBundle
	for name, amount := range m {
		k, ok := models.ParseResourceKind(name)
		if !ok {
			return b, &models.ConfigurationError{Kind: "resource", Key: name}
		}
		b[k] = amount
	}
	return b, nil
}

func bundleToMap(b models.ResourceBundle) map[string]int {
	m := make(map[string]int, models.ResourceCount)
	for _, k := range models.AllResourceKinds() {
		if v := b.Get(k); v != 0 {
			m[k.String()] = v
		}
	}
	return m
}

func ratesToMap(r models.ResourceRates) map[string]float64 {
	m := make(map[string]float64, models.ResourceCount)
	for _, k := range models.AllResourceKinds() {
		if v := r[k]; v != 0 {
			m[k.String()] = v
		}
	}
	return m
}

// ratesFromMap converts a name-keyed table, filling missing resources with def
func ratesFromMap(m map[string]float64, def float64) (models.ResourceRates, error) {
	var r models.ResourceRates
	for i := range r {
		r[i] = def
	}
	for name, v := range m {
		k, ok := models.ParseResourceKind(name)
		if !ok {
			return r, &models.ConfigurationError{Kind: "resource", Key: name}
		}
		r[k] = v
	}
	return r, nil
}
