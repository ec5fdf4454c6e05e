package combat

import (
	"math"

	"github.com/napolitain/idle-empire/internal/models"
)

// Militia every province fields without buildings
const (
	BaseStrength  = 10.0
	BaseToughness = 10.0
	BaseGarrison  = 20
)

// contribution is what one level of a building adds to the defense
type contribution struct {
	Strength  float64
	Toughness float64
	Garrison  int
	Counters  []models.EnemyType
	PerLevel  float64 // effectiveness gained per level against Counters
}

var contributions = map[models.BuildingType]contribution{
	models.Barracks: {Strength: 15, Garrison: 10, Counters: []models.EnemyType{models.Cavalry}, PerLevel: 0.03},
	models.Walls:    {Toughness: 20, Counters: []models.EnemyType{models.Infantry, models.Beast}, PerLevel: 0.03},
	models.House:    {Strength: 2, Garrison: 5},
	models.Temple:   {Toughness: 5, Counters: []models.EnemyType{models.Arcane}, PerLevel: 0.04},
	models.Academy:  {Strength: 3, Counters: []models.EnemyType{models.Artillery}, PerLevel: 0.04},
}

// Defense modifiers
const (
	MaxEffectiveness       = 2.0
	ArcaneWardsBonus       = 0.25
	PersonalityDefenseEdge = 1.15 // aggressive strength, conservative toughness
	MaxExperienceEdge      = 0.10 // strength gained at max experience
	DisloyalThreshold      = 30
	DisloyalPenalty        = 0.9
)

// AggregateDefense derives a province's defense from its buildings, governor
// and technology bonus. It is a pure function of its inputs.
func AggregateDefense(p *models.Province, b models.TechnologyBonus) models.DefenseForce {
	d := models.DefenseForce{
		Strength:       BaseStrength,
		Toughness:      BaseToughness,
		Garrison:       BaseGarrison,
		Effectiveness:  make(map[models.EnemyType]float64, len(models.AllEnemyTypes())),
		CasualtyFactor: b.CombatCasualties,
	}
	for _, t := range models.AllEnemyTypes() {
		d.Effectiveness[t] = 1
	}

	for _, bt := range models.AllBuildingTypes() {
		c, ok := contributions[bt]
		if !ok {
			continue
		}
		level := p.BuildingLevel(bt)
		if level <= 0 {
			continue
		}
		lvl := float64(level)
		d.Strength += c.Strength * lvl
		d.Toughness += c.Toughness * lvl
		d.Garrison += c.Garrison * level
		for _, t := range c.Counters {
			d.Effectiveness[t] += c.PerLevel * lvl
		}
	}

	if b.ArcaneWards {
		d.Effectiveness[models.Arcane] += ArcaneWardsBonus
	}
	for t, v := range d.Effectiveness {
		d.Effectiveness[t] = math.Min(MaxEffectiveness, v)
	}

	d.Strength *= b.CombatBonus
	d.Toughness *= b.DefenseBonus

	if gov := p.Governor; gov != nil {
		switch gov.Personality {
		case models.Aggressive:
			d.Strength *= PersonalityDefenseEdge
		case models.Conservative:
			d.Toughness *= PersonalityDefenseEdge
		}
		d.Strength *= 1 + MaxExperienceEdge*float64(gov.Experience)/models.MaxExperience
		if gov.Loyalty < DisloyalThreshold {
			d.Strength *= DisloyalPenalty
		}
	}

	return d
}
