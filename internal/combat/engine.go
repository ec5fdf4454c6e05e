package combat

import (
	"math"

	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
)

// Outcome model constants
const (
	MaxDrawChance    = 0.25 // draw probability at an even matchup
	MaxSpeedPenalty  = 0.2  // fast attackers blunt up to this share of defensive power
	SpeedScale       = 500.0
	CunningScale     = 200.0
	ToughnessWeight  = 0.5
	VarianceBase     = 0.85
	VarianceSpread   = 0.3
	DrawPenaltyShare = 0.25
)

// casualty rates per outcome: defender, enemy
var casualtyRates = map[models.CombatResult][2]float64{
	models.Victory: {0.10, 0.60},
	models.Defeat:  {0.50, 0.20},
	models.Draw:    {0.30, 0.30},
}

// DefenderPower returns the defender's effective power against an enemy
func DefenderPower(enemy models.EnemyForce, defense models.DefenseForce) float64 {
	raw := defense.Strength*defense.Against(enemy.Type) + ToughnessWeight*defense.Toughness
	return math.Max(0, raw) * (1 - math.Min(MaxSpeedPenalty, math.Max(0, enemy.Speed)/SpeedScale))
}

// AttackerPower returns the enemy's effective power
func AttackerPower(enemy models.EnemyForce) float64 {
	raw := enemy.Strength + ToughnessWeight*enemy.Toughness
	return math.Max(0, raw) * (1 + math.Max(0, enemy.Cunning)/CunningScale)
}

// Certainty returns the defender's chance of prevailing, D²/(D²+A²)
func Certainty(defender, attacker float64) float64 {
	d2, a2 := defender*defender, attacker*attacker
	if d2+a2 == 0 {
		return 0.5
	}
	return d2 / (d2 + a2)
}

// DrawChance returns the probability of a draw, peaking at even odds
func DrawChance(certainty float64) float64 {
	return MaxDrawChance * (1 - math.Abs(2*certainty-1))
}

// Resolve settles one encounter. It consumes two draws from rng: the
// outcome (skipped when a side has no strength) and the casualty variance.
//
// A defender without strength always loses decisively; an attacker without
// strength always loses decisively.
func Resolve(enemy models.EnemyForce, defense models.DefenseForce, rng random.Source) models.CombatOutcome {
	D := DefenderPower(enemy, defense)
	A := AttackerPower(enemy)

	var (
		result    models.CombatResult
		certainty float64
	)
	switch {
	case defense.Strength <= 0:
		result, certainty = models.Defeat, 0
	case enemy.Strength <= 0:
		result, certainty = models.Victory, 1
	default:
		certainty = Certainty(D, A)
		pd := DrawChance(certainty)
		r := rng.Float64()
		switch {
		case r < certainty*(1-pd):
			result = models.Victory
		case r < certainty*(1-pd)+pd:
			result = models.Draw
		default:
			result = models.Defeat
		}
	}

	decisiveness := 0.0
	switch result {
	case models.Victory:
		decisiveness = certainty
	case models.Defeat:
		decisiveness = 1 - certainty
	}

	variance := VarianceBase + VarianceSpread*rng.Float64()

	out := models.CombatOutcome{
		Result:           result,
		VictoryCertainty: certainty,
	}

	defShare, enemyShare := 0.5, 0.5
	if A+D > 0 {
		defShare, enemyShare = A/(A+D), D/(A+D)
	}
	rates := casualtyRates[result]
	factor := defense.CasualtyFactor
	if factor <= 0 {
		factor = 1
	}
	out.DefenderCasualties = casualties(defense.Garrison, defShare*rates[0]*variance*factor)
	out.EnemyCasualties = casualties(enemy.Size, enemyShare*rates[1]*variance)

	threat := float64(enemy.ThreatLevel)
	switch result {
	case models.Victory:
		out.ResourcesGained = enemy.VictoryRewards.Clamp().Scale(0.5 + 0.5*decisiveness)
		out.GovernorXPGain = int(math.Round(10 * threat * (1 + decisiveness)))
		out.GovernorLoyaltyChange = int(math.Round(2 + 3*decisiveness))
		out.MoraleChange = int(math.Round(5*decisiveness)) + 1
	case models.Defeat:
		out.ResourcesLost = enemy.DefeatPenalties.Clamp().Scale(0.5 + 0.5*decisiveness)
		out.InfrastructureDamage = int(math.Round(threat * (1 + decisiveness) * variance))
		out.GovernorXPGain = int(2 * threat)
		out.GovernorLoyaltyChange = -int(math.Round(3 + 5*decisiveness))
		out.MoraleChange = -int(math.Round(10*decisiveness)) - 1
	case models.Draw:
		out.ResourcesLost = enemy.DefeatPenalties.Clamp().Scale(DrawPenaltyShare)
		out.InfrastructureDamage = int(math.Round(threat * 0.5 * variance))
		out.GovernorXPGain = int(5 * threat)
	}
	out.GovernorXPGain = max(0, out.GovernorXPGain)
	out.InfrastructureDamage = max(0, out.InfrastructureDamage)

	out.Narrative = Narrate(enemy, out)
	return out
}

// casualties rounds size × rate and clamps the result to [0, size]
func casualties(size int, rate float64) int {
	if size <= 0 {
		return 0
	}
	n := int(math.Round(float64(size) * rate))
	return min(size, max(0, n))
}
