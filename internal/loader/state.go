package loader

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/idle-empire/internal/models"
)

// ProvinceYAML represents the YAML structure for a province
type ProvinceYAML struct {
	models.Province `yaml:",inline"`
	ResourceMap     map[string]int     `yaml:"resources"`
	AccruedMap      map[string]float64 `yaml:"accrued,omitempty"`
	Morale          *int               `yaml:"morale"` // nil when the key is absent
}

// RaidYAML represents the YAML structure for a raid still on its way
type RaidYAML struct {
	ID         string    `yaml:"id"`
	ProvinceID string    `yaml:"province_id"`
	Enemy      EnemyYAML `yaml:"enemy"`
	SpawnedAt  int64     `yaml:"spawned_at"`
	ArrivesAt  int64     `yaml:"arrives_at"`
}

// EmpireYAML represents the YAML structure for an empire snapshot
type EmpireYAML struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Researched     []string          `yaml:"researched"`
	ActiveResearch []models.Research `yaml:"active_research"`
	Provinces      []ProvinceYAML    `yaml:"provinces"`
	Raids          []RaidYAML        `yaml:"raids,omitempty"`
	Discovered     []string          `yaml:"discovered,omitempty"`
}

// DefaultMorale is assigned to provinces whose state does not set one
const DefaultMorale = 50

// ParseEmpire decodes an empire snapshot. Missing ids are generated and a
// missing morale key defaults to DefaultMorale.
func ParseEmpire(data []byte) (*models.Empire, error) {
	var raw EmpireYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse empire: %w", err)
	}

	emp := &models.Empire{
		ID:             raw.ID,
		Name:           raw.Name,
		Researched:     raw.Researched,
		ActiveResearch: raw.ActiveResearch,
		Discovered:     raw.Discovered,
	}
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	for _, rp := range raw.Provinces {
		p := rp.Province
		resources, err := bundleFromMap(rp.ResourceMap)
		if err != nil {
			return nil, fmt.Errorf("province %q: %w", p.Name, err)
		}
		p.Resources = resources
		if p.Accrued, err = ratesFromMap(rp.AccruedMap, 0); err != nil {
			return nil, fmt.Errorf("province %q: %w", p.Name, err)
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.Morale = DefaultMorale
		if rp.Morale != nil {
			p.Morale = *rp.Morale
		}
		for _, b := range p.Buildings {
			if b.Level < 0 {
				return nil, fmt.Errorf("province %q: building %s has negative level %d", p.Name, b.Type, b.Level)
			}
		}
		if g := p.Governor; g != nil {
			g.AdjustLoyalty(0)
			g.AddExperience(0)
		}
		emp.Provinces = append(emp.Provinces, &p)
	}

	for _, rr := range raw.Raids {
		enemy, err := enemyFromYAML(rr.Enemy)
		if err != nil {
			return nil, fmt.Errorf("raid %s: %w", rr.ID, err)
		}
		emp.Raids = append(emp.Raids, &models.Raid{
			ID:         rr.ID,
			ProvinceID: rr.ProvinceID,
			Enemy:      enemy,
			SpawnedAt:  rr.SpawnedAt,
			ArrivesAt:  rr.ArrivesAt,
		})
	}

	return emp, nil
}

// LoadEmpire reads an empire snapshot from a YAML file
func LoadEmpire(path string) (*models.Empire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read empire state: %w", err)
	}
	return ParseEmpire(data)
}

// MarshalEmpire encodes an empire snapshot as YAML
func MarshalEmpire(e *models.Empire) ([]byte, error) {
	raw := EmpireYAML{
		ID:             e.ID,
		Name:           e.Name,
		Researched:     e.Researched,
		ActiveResearch: e.ActiveResearch,
		Discovered:     e.Discovered,
	}
	for _, p := range e.Provinces {
		raw.Provinces = append(raw.Provinces, ProvinceYAML{
			Province:    *p,
			ResourceMap: bundleToMap(p.Resources),
			AccruedMap:  ratesToMap(p.Accrued),
			Morale:      &p.Morale,
		})
	}
	for _, r := range e.Raids {
		if r.Resolved {
			continue
		}
		raw.Raids = append(raw.Raids, RaidYAML{
			ID:         r.ID,
			ProvinceID: r.ProvinceID,
			Enemy:      enemyToYAML(r.Enemy),
			SpawnedAt:  r.SpawnedAt,
			ArrivesAt:  r.ArrivesAt,
		})
	}
	return yaml.Marshal(raw)
}

// SaveEmpire writes an empire snapshot to a YAML file
func SaveEmpire(path string, e *models.Empire) error {
	data, err := MarshalEmpire(e)
	if err != nil {
		return fmt.Errorf("failed to encode empire: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write empire state: %w", err)
	}
	return nil
}
