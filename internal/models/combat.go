package models

// EnemyType categorizes attackers; defenses are more or less effective per type
type EnemyType string

const (
	Infantry  EnemyType = "infantry"
	Cavalry   EnemyType = "cavalry"
	Artillery EnemyType = "artillery"
	Beast     EnemyType = "beast"
	Arcane    EnemyType = "arcane"
)

// AllEnemyTypes returns all enemy types in deterministic order
func AllEnemyTypes() []EnemyType {
	return []EnemyType{Infantry, Cavalry, Artillery, Beast, Arcane}
}

// Eligibility gates a pool entry on the state of the target province
type Eligibility struct {
	MinProvinceLevel  int     `yaml:"min_province_level"`
	MinThreat         int     `yaml:"min_threat"`
	MaxThreat         int     `yaml:"max_threat"` // 0 = unbounded
	MinAttractiveness float64 `yaml:"min_attractiveness"`
	Condition         string  `yaml:"condition"` // optional expr-lang condition
}

// EnemyForce is a hostile force that can raid a province
type EnemyForce struct {
	Name            string         `yaml:"name"`
	Type            EnemyType      `yaml:"type"`
	Strength        float64        `yaml:"strength"`
	Toughness       float64        `yaml:"toughness"`
	Speed           float64        `yaml:"speed"`
	Cunning         float64        `yaml:"cunning"`
	ThreatLevel     int            `yaml:"threat_level"`
	SpawnWeight     float64        `yaml:"spawn_weight"`
	Size            int            `yaml:"size"`
	VictoryRewards  ResourceBundle `yaml:"-"`
	DefeatPenalties ResourceBundle `yaml:"-"`
	Eligibility     Eligibility    `yaml:"eligibility"`
}

// Weight returns the spawn weight
func (e EnemyForce) Weight() float64 { return e.SpawnWeight }

// Gate returns the eligibility rules
func (e EnemyForce) Gate() Eligibility { return e.Eligibility }

// DefenseForce is the aggregated defensive strength of a province
type DefenseForce struct {
	Strength       float64
	Toughness      float64
	Garrison       int
	Effectiveness  map[EnemyType]float64 // multiplier on Strength per attacker type, default 1
	CasualtyFactor float64               // multiplier on defender casualties, 0 means 1
}

// Against returns the effectiveness multiplier against an enemy type
func (d DefenseForce) Against(t EnemyType) float64 {
	if v, ok := d.Effectiveness[t]; ok {
		return v
	}
	return 1
}

// CombatResult tags the outcome of an encounter
type CombatResult int

const (
	Victory CombatResult = iota
	Defeat
	Draw
)

// String returns a string representation of the combat result
func (r CombatResult) String() string {
	switch r {
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// CombatOutcome is the settled result of one raid
type CombatOutcome struct {
	Result                CombatResult
	VictoryCertainty      float64
	DefenderCasualties    int
	EnemyCasualties       int
	InfrastructureDamage  int
	ResourcesGained       ResourceBundle
	ResourcesLost         ResourceBundle
	GovernorXPGain        int
	GovernorLoyaltyChange int
	MoraleChange          int
	Narrative             string
}

// Raid is a scheduled hostile encounter against one province
type Raid struct {
	ID         string         `json:"id"`
	ProvinceID string         `json:"province_id"`
	Enemy      EnemyForce     `json:"enemy"`
	SpawnedAt  int64          `json:"spawned_at"`
	ArrivesAt  int64          `json:"arrives_at"`
	Resolved   bool           `json:"resolved"`
	Outcome    *CombatOutcome `json:"outcome,omitempty"`
}

// RandomEvent is a non-combat occurrence that changes a province's resources
type RandomEvent struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Effects     ResourceBundle `yaml:"-"`      // signed deltas
	Plague      bool           `yaml:"plague"` // losses scaled by plague prevention
	SpawnWeight float64        `yaml:"spawn_weight"`
	Eligibility Eligibility    `yaml:"eligibility"`
}

// Weight returns the spawn weight
func (e RandomEvent) Weight() float64 { return e.SpawnWeight }

// Gate returns the eligibility rules
func (e RandomEvent) Gate() Eligibility { return e.Eligibility }

// Territory is a discoverable region with resource richness
type Territory struct {
	Name        string
	Archetype   string
	X, Y        int
	Richness    ResourceRates // multiplier-scaled yield per resource
	SpawnWeight float64
	Eligibility Eligibility
}

// Weight returns the spawn weight
func (t Territory) Weight() float64 { return t.SpawnWeight }

// Gate returns the eligibility rules
func (t Territory) Gate() Eligibility { return t.Eligibility }
