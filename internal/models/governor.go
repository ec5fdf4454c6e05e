package models

// Personality biases a governor's priorities and production
type Personality string

const (
	NoPersonality Personality = ""
	Conservative  Personality = "conservative"
	Aggressive    Personality = "aggressive"
	Merchant      Personality = "merchant"
	Explorer      Personality = "explorer"
)

// AllPersonalities returns all personalities in deterministic order
func AllPersonalities() []Personality {
	return []Personality{Conservative, Aggressive, Merchant, Explorer}
}

// Governor bounds
const (
	MinLoyalty    = 0
	MaxLoyalty    = 100
	MinExperience = 0
	MaxExperience = 10000
)

// Governor is the autonomous agent bound to one province
type Governor struct {
	Name        string      `json:"name" yaml:"name"`
	Personality Personality `json:"personality" yaml:"personality"`
	Loyalty     int         `json:"loyalty" yaml:"loyalty"`
	Experience  int         `json:"experience" yaml:"experience"`
}

// AdjustLoyalty adds delta to loyalty, clamped to [0, 100]
func (g *Governor) AdjustLoyalty(delta int) {
	g.Loyalty = clampInt(g.Loyalty+delta, MinLoyalty, MaxLoyalty)
}

// AddExperience adds xp (negative values are ignored), capped at MaxExperience
func (g *Governor) AddExperience(xp int) {
	if xp < 0 {
		xp = 0
	}
	g.Experience = clampInt(g.Experience+xp, MinExperience, MaxExperience)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DecisionKind tags a governor decision
type DecisionKind int

const (
	DecisionWait DecisionKind = iota
	DecisionBuild
	DecisionResearch
)

// String returns a string representation of the decision kind
func (k DecisionKind) String() string {
	switch k {
	case DecisionWait:
		return "Wait"
	case DecisionBuild:
		return "Build"
	case DecisionResearch:
		return "Research"
	default:
		return "Unknown"
	}
}

// GovernorDecision is the single action chosen for a province per invocation
type GovernorDecision struct {
	Kind            DecisionKind
	BuildingType    BuildingType // Build only
	TechKey         string       // Research only
	TargetLevel     int          // Build only
	PriorityScore   float64
	Reason          string
	Cost            ResourceBundle
	DurationSeconds int
}

// Wait returns a Wait decision with the given reason
func Wait(reason string) GovernorDecision {
	return GovernorDecision{Kind: DecisionWait, Reason: reason}
}

// PriorityEntry is one row of a personality priority table
type PriorityEntry struct {
	Key      string `yaml:"key"`
	Priority int    `yaml:"priority"`
}

// PersonalityProfile holds the fixed tables for one personality
type PersonalityProfile struct {
	Personality        Personality
	BuildingPriorities []PriorityEntry // evaluated in slice order
	ResearchPriorities []PriorityEntry // evaluated in slice order
	ProductionModifier ResourceRates   // multiplicative, per resource
}
