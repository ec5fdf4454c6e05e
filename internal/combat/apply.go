package combat

import (
	"github.com/napolitain/idle-empire/internal/models"
)

// Morale bounds
const (
	MinMorale = 0
	MaxMorale = 100
)

// BreachDamage is the infrastructure damage that knocks one level off the walls
const BreachDamage = 10

// ApplyOutcome settles an outcome on the defending province. Resources are
// clamped at zero, defender casualties are taken from the population,
// governor experience and loyalty stay within their bounds, and every
// BreachDamage points of infrastructure damage lower the walls by one level.
func ApplyOutcome(p *models.Province, o models.CombatOutcome) {
	p.Resources = p.Resources.Add(o.ResourcesGained).Sub(o.ResourcesLost)
	p.Resources[models.Population] -= o.DefenderCasualties
	p.Resources = p.Resources.Clamp()

	if gov := p.Governor; gov != nil {
		gov.AddExperience(o.GovernorXPGain)
		gov.AdjustLoyalty(o.GovernorLoyaltyChange)
	}

	p.Morale = min(MaxMorale, max(MinMorale, p.Morale+o.MoraleChange))

	if breaches := o.InfrastructureDamage / BreachDamage; breaches > 0 {
		switch level := p.BuildingLevel(models.Walls); {
		case level > breaches:
			p.SetBuildingLevel(models.Walls, level-breaches)
		case level > 0:
			p.RemoveBuilding(models.Walls)
		}
	}
}
