package models

import (
	"math"
	"slices"
)

// ResourceKind represents the different resource kinds in the game
type ResourceKind int

const (
	Gold ResourceKind = iota
	Food
	Stone
	Iron
	Population
	Influence
	Mana
	Energy

	// ResourceCount is the number of resource kinds
	ResourceCount = 8
)

// AllResourceKinds returns all resource kinds in deterministic order
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{Gold, Food, Stone, Iron, Population, Influence, Mana, Energy}
}

var resourceNames = [ResourceCount]string{
	"gold", "food", "stone", "iron", "population", "influence", "mana", "energy",
}

// String returns the lowercase resource name
func (k ResourceKind) String() string {
	if k < 0 || int(k) >= ResourceCount {
		return "unknown"
	}
	return resourceNames[k]
}

// ParseResourceKind converts a resource name to its kind
func ParseResourceKind(name string) (ResourceKind, bool) {
	for i, n := range resourceNames {
		if n == name {
			return ResourceKind(i), true
		}
	}
	return 0, false
}

// ResourceBundle holds an integer amount per resource kind (no maps)
type ResourceBundle [ResourceCount]int

// Get returns the amount of a resource kind
func (b ResourceBundle) Get(k ResourceKind) int {
	return b[k]
}

// Add returns the element-wise sum of two bundles
func (b ResourceBundle) Add(o ResourceBundle) ResourceBundle {
	for i := range b {
		b[i] += o[i]
	}
	return b
}

// Sub returns the element-wise difference of two bundles (may go negative)
func (b ResourceBundle) Sub(o ResourceBundle) ResourceBundle {
	for i := range b {
		b[i] -= o[i]
	}
	return b
}

// Scale multiplies every amount by f and floors the result
func (b ResourceBundle) Scale(f float64) ResourceBundle {
	for i := range b {
		b[i] = int(math.Floor(float64(b[i]) * f))
	}
	return b
}

// Clamp floors every amount at zero
func (b ResourceBundle) Clamp() ResourceBundle {
	for i := range b {
		if b[i] < 0 {
			b[i] = 0
		}
	}
	return b
}

// Covers returns true if every amount in b is at least the amount in cost
func (b ResourceBundle) Covers(cost ResourceBundle) bool {
	for i := range b {
		if b[i] < cost[i] {
			return false
		}
	}
	return true
}

// Total returns the sum of all amounts
func (b ResourceBundle) Total() int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// IsZero returns true if every amount is zero
func (b ResourceBundle) IsZero() bool {
	return b == ResourceBundle{}
}

// ResourceRates holds a per-hour rate per resource kind
type ResourceRates [ResourceCount]float64

// Add returns the element-wise sum of two rate tables
func (r ResourceRates) Add(o ResourceRates) ResourceRates {
	for i := range r {
		r[i] += o[i]
	}
	return r
}

// BuildingType represents the different building types
type BuildingType string

const (
	Farm        BuildingType = "farm"
	Mine        BuildingType = "mine"
	Quarry      BuildingType = "quarry"
	House       BuildingType = "house"
	Marketplace BuildingType = "marketplace"
	Academy     BuildingType = "academy"
	Temple      BuildingType = "temple"
	Windmill    BuildingType = "windmill"
	Barracks    BuildingType = "barracks"
	Walls       BuildingType = "walls"
)

// AllBuildingTypes returns all building types in deterministic order
func AllBuildingTypes() []BuildingType {
	return []BuildingType{
		Farm, Mine, Quarry, House,
		Marketplace, Academy, Temple, Windmill,
		Barracks, Walls,
	}
}

// BuildingInstance is one building owned by a province
type BuildingInstance struct {
	Type  BuildingType `json:"type" yaml:"type"`
	Level int          `json:"level" yaml:"level"`
}

// BuildingRequirement gates a building on another building's level
type BuildingRequirement struct {
	Type     BuildingType `yaml:"type"`
	MinLevel int          `yaml:"min_level"`
}

// Building is the static definition of a building type
type Building struct {
	Type             BuildingType          `yaml:"type"`
	MaxLevel         int                   `yaml:"max_level"`
	BaseCost         ResourceBundle        `yaml:"-"`
	CostGrowth       float64               `yaml:"cost_growth"`
	BaseTimeSeconds  int                   `yaml:"base_time_seconds"`
	TimeGrowth       float64               `yaml:"time_growth"`
	ProductionPerLvl ResourceRates         `yaml:"-"` // negative entries are upkeep
	Requires         []BuildingRequirement `yaml:"requires"`
}

// CostForLevel returns the cost of upgrading to toLevel (level 1 is the first construction)
func (b *Building) CostForLevel(toLevel int) ResourceBundle {
	growth := math.Pow(b.CostGrowth, float64(toLevel-1))
	var cost ResourceBundle
	for i, base := range b.BaseCost {
		cost[i] = int(math.Floor(float64(base) * growth))
	}
	return cost
}

// TimeForLevel returns the build time in seconds for upgrading to toLevel
func (b *Building) TimeForLevel(toLevel int) int {
	return int(math.Round(float64(b.BaseTimeSeconds) * math.Pow(b.TimeGrowth, float64(toLevel-1))))
}

// Province is a player-owned settlement
type Province struct {
	ID                 string             `json:"id" yaml:"id"`
	Name               string             `json:"name" yaml:"name"`
	Resources          ResourceBundle     `json:"resources" yaml:"-"`
	Buildings          []BuildingInstance `json:"buildings" yaml:"buildings"`
	ActiveConstruction []Construction     `json:"active_construction" yaml:"active_construction"`
	Governor           *Governor          `json:"governor,omitempty" yaml:"governor"`
	LastSettled        int64              `json:"last_settled" yaml:"last_settled"` // unix seconds
	Accrued            ResourceRates      `json:"accrued" yaml:"-"`                 // fractional production not yet settled
	Morale             int                `json:"morale" yaml:"-"`
}

// Construction is a building upgrade in progress
type Construction struct {
	Type       BuildingType `json:"type" yaml:"type"`
	ToLevel    int          `json:"to_level" yaml:"to_level"`
	CompleteAt int64        `json:"complete_at" yaml:"complete_at"`
}

// BuildingLevel returns the level of a building type (0 if not built)
func (p *Province) BuildingLevel(bt BuildingType) int {
	for _, b := range p.Buildings {
		if b.Type == bt {
			return b.Level
		}
	}
	return 0
}

// SetBuildingLevel sets the level of a building type, adding it if missing
func (p *Province) SetBuildingLevel(bt BuildingType, level int) {
	for i := range p.Buildings {
		if p.Buildings[i].Type == bt {
			p.Buildings[i].Level = level
			return
		}
	}
	p.Buildings = append(p.Buildings, BuildingInstance{Type: bt, Level: level})
}

// RemoveBuilding drops a building type from the province
func (p *Province) RemoveBuilding(bt BuildingType) {
	p.Buildings = slices.DeleteFunc(p.Buildings, func(b BuildingInstance) bool {
		return b.Type == bt
	})
}

// UnderConstruction returns true if the building type is being upgraded
func (p *Province) UnderConstruction(bt BuildingType) bool {
	for _, c := range p.ActiveConstruction {
		if c.Type == bt {
			return true
		}
	}
	return false
}

// Level returns the derived province level used for spawn gating
func (p *Province) Level() int {
	total := 0
	for _, b := range p.Buildings {
		total += b.Level
	}
	return 1 + total/4
}

// Research is a technology research in progress
type Research struct {
	Key        string `json:"key" yaml:"key"`
	CompleteAt int64  `json:"complete_at" yaml:"complete_at"`
}

// Empire groups the provinces of one player and the empire-wide research state
type Empire struct {
	ID             string      `json:"id" yaml:"id"`
	Name           string      `json:"name" yaml:"name"`
	Provinces      []*Province `json:"provinces" yaml:"provinces"`
	Researched     []string    `json:"researched" yaml:"researched"`
	ActiveResearch []Research  `json:"active_research" yaml:"active_research"`
	Raids          []*Raid     `json:"raids,omitempty" yaml:"-"`               // spawned, not yet resolved
	Discovered     []string    `json:"discovered,omitempty" yaml:"discovered"` // territory names
}

// TotalResources returns the aggregate resources across all provinces
func (e *Empire) TotalResources() ResourceBundle {
	var total ResourceBundle
	for _, p := range e.Provinces {
		total = total.Add(p.Resources)
	}
	return total
}

// IsResearched returns true if the technology key has been researched
func (e *Empire) IsResearched(key string) bool {
	for _, k := range e.Researched {
		if k == key {
			return true
		}
	}
	return false
}

// IsResearching returns true if the technology key is in progress
func (e *Empire) IsResearching(key string) bool {
	for _, r := range e.ActiveResearch {
		if r.Key == key {
			return true
		}
	}
	return false
}

// Raid returns the pending raid with the given id, or nil
func (e *Empire) Raid(id string) *Raid {
	for _, r := range e.Raids {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RemoveRaid drops a raid from the pending list
func (e *Empire) RemoveRaid(id string) {
	e.Raids = slices.DeleteFunc(e.Raids, func(r *Raid) bool { return r.ID == id })
}

// IsDiscovered returns true if the territory has been discovered
func (e *Empire) IsDiscovered(name string) bool {
	return slices.Contains(e.Discovered, name)
}

// Province returns the province with the given id, or nil
func (e *Empire) Province(id string) *Province {
	for _, p := range e.Provinces {
		if p.ID == id {
			return p
		}
	}
	return nil
}
