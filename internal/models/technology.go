package models

// BonusField names one field of the technology bonus bundle
type BonusField string

const (
	// Multiplicative
	FarmProduction      BonusField = "farm_production"
	MineProduction      BonusField = "mine_production"
	QuarryProduction    BonusField = "quarry_production"
	HousingProduction   BonusField = "housing_production"
	MarketProduction    BonusField = "market_production"
	AcademyProduction   BonusField = "academy_production"
	TempleProduction    BonusField = "temple_production"
	WindmillProduction  BonusField = "windmill_production"
	AllProduction       BonusField = "all_production"
	ConstructionSpeed   BonusField = "construction_speed"
	ResearchSpeed       BonusField = "research_speed"
	CombatBonus         BonusField = "combat_bonus"
	DefenseBonus        BonusField = "defense_bonus"
	PopulationGrowth    BonusField = "population_growth"
	InfluenceGeneration BonusField = "influence_generation"
	ManaGeneration      BonusField = "mana_generation"

	// Additive
	TradeBonus   BonusField = "trade_bonus"
	LoyaltyBonus BonusField = "loyalty_bonus"

	// Reduction (lower is better)
	PlaguePrevention BonusField = "plague_prevention"
	CombatCasualties BonusField = "combat_casualties"
	UpkeepCost       BonusField = "upkeep_cost"
	ConstructionCost BonusField = "construction_cost"

	// Unlock flags
	UnlockCaravans    BonusField = "unlock_caravans"
	UnlockSiege       BonusField = "unlock_siege"
	UnlockArcaneWards BonusField = "unlock_arcane_wards"
	UnlockDiplomacy   BonusField = "unlock_diplomacy"
)

// AllBonusFields returns all bonus fields in deterministic order
func AllBonusFields() []BonusField {
	return []BonusField{
		FarmProduction, MineProduction, QuarryProduction, HousingProduction,
		MarketProduction, AcademyProduction, TempleProduction, WindmillProduction,
		AllProduction, ConstructionSpeed, ResearchSpeed, CombatBonus, DefenseBonus,
		PopulationGrowth, InfluenceGeneration, ManaGeneration,
		TradeBonus, LoyaltyBonus,
		PlaguePrevention, CombatCasualties, UpkeepCost, ConstructionCost,
		UnlockCaravans, UnlockSiege, UnlockArcaneWards, UnlockDiplomacy,
	}
}

// StackingRule determines how effects on a field combine
type StackingRule int

const (
	StackMultiplicative StackingRule = iota
	StackAdditive
	StackReduction
	StackUnlock
)

// Stacking returns the stacking rule for a bonus field, and false for unknown fields
func (f BonusField) Stacking() (StackingRule, bool) {
	switch f {
	case FarmProduction, MineProduction, QuarryProduction, HousingProduction,
		MarketProduction, AcademyProduction, TempleProduction, WindmillProduction,
		AllProduction, ConstructionSpeed, ResearchSpeed, CombatBonus, DefenseBonus,
		PopulationGrowth, InfluenceGeneration, ManaGeneration:
		return StackMultiplicative, true
	case TradeBonus, LoyaltyBonus:
		return StackAdditive, true
	case PlaguePrevention, CombatCasualties, UpkeepCost, ConstructionCost:
		return StackReduction, true
	case UnlockCaravans, UnlockSiege, UnlockArcaneWards, UnlockDiplomacy:
		return StackUnlock, true
	}
	return 0, false
}

// Effect is one named modifier carried by a technology or synergy
type Effect struct {
	Field BonusField `yaml:"field"`
	Value float64    `yaml:"value"`
}

// Technology represents a researchable technology
type Technology struct {
	Key                 string         `yaml:"key"`
	Name                string         `yaml:"name"`
	Tier                int            `yaml:"tier"`
	Cost                ResourceBundle `yaml:"-"`
	ResearchTimeSeconds int            `yaml:"research_time_seconds"`
	Prerequisites       []string       `yaml:"prerequisites"`
	Effects             []Effect       `yaml:"effects"`
}

// Synergy is an extra bonus unlocked when every required technology is researched
type Synergy struct {
	Name     string   `yaml:"name"`
	Requires []string `yaml:"requires"`
	Effects  []Effect `yaml:"effects"`
}

// TechnologyBonus is the composed bundle of all researched technology effects
type TechnologyBonus struct {
	FarmProduction      float64
	MineProduction      float64
	QuarryProduction    float64
	HousingProduction   float64
	MarketProduction    float64
	AcademyProduction   float64
	TempleProduction    float64
	WindmillProduction  float64
	AllProduction       float64
	ConstructionSpeed   float64
	ResearchSpeed       float64
	CombatBonus         float64
	DefenseBonus        float64
	PopulationGrowth    float64
	InfluenceGeneration float64
	ManaGeneration      float64

	TradeBonus   float64
	LoyaltyBonus float64

	PlaguePrevention float64
	CombatCasualties float64
	UpkeepCost       float64
	ConstructionCost float64

	Caravans    bool
	Siege       bool
	ArcaneWards bool
	Diplomacy   bool
}

// IdentityBonus returns the bundle for an empty set of technologies
func IdentityBonus() TechnologyBonus {
	return TechnologyBonus{
		FarmProduction:      1,
		MineProduction:      1,
		QuarryProduction:    1,
		HousingProduction:   1,
		MarketProduction:    1,
		AcademyProduction:   1,
		TempleProduction:    1,
		WindmillProduction:  1,
		AllProduction:       1,
		ConstructionSpeed:   1,
		ResearchSpeed:       1,
		CombatBonus:         1,
		DefenseBonus:        1,
		PopulationGrowth:    1,
		InfluenceGeneration: 1,
		ManaGeneration:      1,
		PlaguePrevention:    1,
		CombatCasualties:    1,
		UpkeepCost:          1,
		ConstructionCost:    1,
	}
}

// Value returns a pointer to a numeric field, or nil for unlock/unknown fields
func (b *TechnologyBonus) Value(f BonusField) *float64 {
	switch f {
	case FarmProduction:
		return &b.FarmProduction
	case MineProduction:
		return &b.MineProduction
	case QuarryProduction:
		return &b.QuarryProduction
	case HousingProduction:
		return &b.HousingProduction
	case MarketProduction:
		return &b.MarketProduction
	case AcademyProduction:
		return &b.AcademyProduction
	case TempleProduction:
		return &b.TempleProduction
	case WindmillProduction:
		return &b.WindmillProduction
	case AllProduction:
		return &b.AllProduction
	case ConstructionSpeed:
		return &b.ConstructionSpeed
	case ResearchSpeed:
		return &b.ResearchSpeed
	case CombatBonus:
		return &b.CombatBonus
	case DefenseBonus:
		return &b.DefenseBonus
	case PopulationGrowth:
		return &b.PopulationGrowth
	case InfluenceGeneration:
		return &b.InfluenceGeneration
	case ManaGeneration:
		return &b.ManaGeneration
	case TradeBonus:
		return &b.TradeBonus
	case LoyaltyBonus:
		return &b.LoyaltyBonus
	case PlaguePrevention:
		return &b.PlaguePrevention
	case CombatCasualties:
		return &b.CombatCasualties
	case UpkeepCost:
		return &b.UpkeepCost
	case ConstructionCost:
		return &b.ConstructionCost
	}
	return nil
}

// Unlock sets an unlock flag, returning false for non-unlock fields
func (b *TechnologyBonus) Unlock(f BonusField) bool {
	switch f {
	case UnlockCaravans:
		b.Caravans = true
	case UnlockSiege:
		b.Siege = true
	case UnlockArcaneWards:
		b.ArcaneWards = true
	case UnlockDiplomacy:
		b.Diplomacy = true
	default:
		return false
	}
	return true
}

// IsUnlocked reports whether an unlock flag is set
func (b *TechnologyBonus) IsUnlocked(f BonusField) bool {
	switch f {
	case UnlockCaravans:
		return b.Caravans
	case UnlockSiege:
		return b.Siege
	case UnlockArcaneWards:
		return b.ArcaneWards
	case UnlockDiplomacy:
		return b.Diplomacy
	}
	return false
}

// BuildingMultiplier returns the building-specific production multiplier
func (b *TechnologyBonus) BuildingMultiplier(bt BuildingType) float64 {
	switch bt {
	case Farm:
		return b.FarmProduction
	case Mine:
		return b.MineProduction
	case Quarry:
		return b.QuarryProduction
	case House:
		return b.HousingProduction
	case Marketplace:
		return b.MarketProduction
	case Academy:
		return b.AcademyProduction
	case Temple:
		return b.TempleProduction
	case Windmill:
		return b.WindmillProduction
	}
	return 1
}
