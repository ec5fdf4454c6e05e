package governor

import (
	"math"

	"github.com/napolitain/idle-empire/internal/models"
)

// Scoring constants
const (
	MinLoyaltyModifier    = 0.3
	MaxExperienceModifier = 1.5
	FirstBuildPriority    = 8   // priority at or above which a first construction is boosted
	FirstBuildBonus       = 1.5 // multiplier for a first construction
	DiminishingFromLevel  = 5   // levels beyond this are penalized
	DiminishingFactor     = 0.8 // per level beyond DiminishingFromLevel
	ResearchDampener      = 0.7

	// DefaultResearchThreshold is the empire resource sum above which research is considered
	DefaultResearchThreshold = 5000
)

// ScoreMetric represents the components of a candidate score
type ScoreMetric struct {
	Priority      int
	Loyalty       float64 // loyalty modifier
	Experience    float64 // experience modifier
	Adjustment    float64 // first-build bonus, diminishing returns or research dampener (1 = none)
	Affordability float64 // 0..100
}

// Calculate computes the final score; zero when unaffordable
func (m ScoreMetric) Calculate() float64 {
	if m.Affordability <= 0 {
		return 0
	}
	return float64(m.Priority) * m.Loyalty * m.Experience * m.Adjustment * m.Affordability / 100
}

// LoyaltyModifier returns max(0.3, loyalty/100)
func LoyaltyModifier(loyalty int) float64 {
	return math.Max(MinLoyaltyModifier, float64(loyalty)/100)
}

// ExperienceModifier returns min(1.5, 1 + xp/1000)
func ExperienceModifier(xp int) float64 {
	return math.Min(MaxExperienceModifier, 1+float64(xp)/1000)
}

// BuildAdjustment returns the level-dependent multiplier of a building candidate
func BuildAdjustment(level, priority int) float64 {
	adj := 1.0
	if level == 0 && priority >= FirstBuildPriority {
		adj *= FirstBuildBonus
	}
	if level > DiminishingFromLevel {
		adj *= math.Pow(DiminishingFactor, float64(level-DiminishingFromLevel))
	}
	return adj
}

// Affordability scores how comfortably stock pays for cost, from 0 to 100.
// Any short resource scores 0. Otherwise each required resource scores 100
// when stock covers twice the requirement, scaling linearly down to 0 as
// stock approaches the requirement, and the scores are averaged.
// A free cost scores 100.
func Affordability(stock, cost models.ResourceBundle) float64 {
	sum := 0.0
	n := 0
	for i, req := range cost {
		if req <= 0 {
			continue
		}
		have := stock[i]
		if have < req {
			return 0
		}
		n++
		if have >= 2*req {
			sum += 100
		} else {
			sum += 100 * float64(have-req) / float64(req)
		}
	}
	if n == 0 {
		return 100
	}
	return sum / float64(n)
}
