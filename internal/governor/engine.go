package governor

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/napolitain/idle-empire/internal/bonus"
	"github.com/napolitain/idle-empire/internal/models"
)

var (
	// ErrInsufficientResources is returned by Apply when the stock no longer covers the decision
	ErrInsufficientResources = errors.New("insufficient resources")
	// ErrStaleDecision is returned by Apply when the decision no longer matches the province
	ErrStaleDecision = errors.New("stale decision")
)

// Engine scores build and research candidates for a governed province
type Engine struct {
	catalog  *models.Catalog
	composer *bonus.Composer

	// ResearchThreshold is the empire resource sum above which research is considered
	ResearchThreshold int
}

// NewEngine creates a decision engine over a balance catalog
func NewEngine(catalog *models.Catalog) *Engine {
	return &Engine{
		catalog:           catalog,
		composer:          bonus.NewComposer(catalog),
		ResearchThreshold: DefaultResearchThreshold,
	}
}

// Candidate is one scored option, kept for reporting
type Candidate struct {
	Decision models.GovernorDecision
	Metric   ScoreMetric
	Skipped  string // non-empty when the candidate was not scored
}

// Decide returns exactly one decision for the province. It never mutates its inputs.
//
// Buildings are evaluated before research, each in priority-table order, and a
// candidate replaces the current best only with a strictly greater score, so
// ties go to the earliest evaluated candidate. No positive score yields Wait.
func (e *Engine) Decide(p *models.Province, emp *models.Empire) (models.GovernorDecision, error) {
	d, _, err := e.evaluate(p, emp)
	return d, err
}

// Candidates returns the decision along with every evaluated candidate
func (e *Engine) Candidates(p *models.Province, emp *models.Empire) (models.GovernorDecision, []Candidate, error) {
	return e.evaluate(p, emp)
}

func (e *Engine) evaluate(p *models.Province, emp *models.Empire) (models.GovernorDecision, []Candidate, error) {
	gov := p.Governor
	if gov == nil {
		return models.Wait("no governor assigned"), nil, nil
	}
	if emp == nil {
		emp = &models.Empire{Provinces: []*models.Province{p}}
	}

	profile, err := e.catalog.Profile(gov.Personality)
	if err != nil {
		return models.GovernorDecision{}, nil, err
	}

	b := e.composer.Compose(emp.Researched)
	effectiveLoyalty := min(models.MaxLoyalty, gov.Loyalty+int(math.Round(b.LoyaltyBonus)))
	loyaltyMod := LoyaltyModifier(effectiveLoyalty)
	expMod := ExperienceModifier(gov.Experience)

	best := models.Wait("nothing affordable worth doing")
	bestScore := 0.0
	var candidates []Candidate

	for _, entry := range profile.BuildingPriorities {
		bt := models.BuildingType(entry.Key)
		def, err := e.catalog.Building(bt)
		if err != nil {
			return models.GovernorDecision{}, nil, err
		}

		level := p.BuildingLevel(bt)
		target := models.GovernorDecision{Kind: models.DecisionBuild, BuildingType: bt, TargetLevel: level + 1}

		if skip := e.buildBlocker(p, def, level); skip != "" {
			candidates = append(candidates, Candidate{Decision: target, Skipped: skip})
			continue
		}

		target.Cost = def.CostForLevel(level + 1).Scale(b.ConstructionCost)
		target.DurationSeconds = int(math.Round(float64(def.TimeForLevel(level+1)) / b.ConstructionSpeed))

		metric := ScoreMetric{
			Priority:      entry.Priority,
			Loyalty:       loyaltyMod,
			Experience:    expMod,
			Adjustment:    BuildAdjustment(level, entry.Priority),
			Affordability: Affordability(p.Resources, target.Cost),
		}
		target.PriorityScore = metric.Calculate()
		target.Reason = fmt.Sprintf("%s governor upgrades %s to level %d (priority %d, affordability %.0f%%)",
			gov.Personality, bt, level+1, entry.Priority, metric.Affordability)
		candidates = append(candidates, Candidate{Decision: target, Metric: metric})

		if target.PriorityScore > bestScore {
			best, bestScore = target, target.PriorityScore
		}
	}

	empireStock := emp.TotalResources()
	if empireStock.Total() > e.ResearchThreshold {
		for _, entry := range profile.ResearchPriorities {
			tech, err := e.catalog.Technology(entry.Key)
			if err != nil {
				return models.GovernorDecision{}, nil, err
			}

			target := models.GovernorDecision{Kind: models.DecisionResearch, TechKey: tech.Key}
			if skip := researchBlocker(emp, tech); skip != "" {
				candidates = append(candidates, Candidate{Decision: target, Skipped: skip})
				continue
			}

			target.Cost = tech.Cost
			target.DurationSeconds = int(math.Round(float64(tech.ResearchTimeSeconds) / b.ResearchSpeed))

			metric := ScoreMetric{
				Priority:      entry.Priority,
				Loyalty:       loyaltyMod,
				Experience:    expMod,
				Adjustment:    ResearchDampener,
				Affordability: Affordability(empireStock, target.Cost),
			}
			target.PriorityScore = metric.Calculate()
			target.Reason = fmt.Sprintf("%s governor researches %s (priority %d, affordability %.0f%%)",
				gov.Personality, tech.Name, entry.Priority, metric.Affordability)
			candidates = append(candidates, Candidate{Decision: target, Metric: metric})

			if target.PriorityScore > bestScore {
				best, bestScore = target, target.PriorityScore
			}
		}
	}

	return best, candidates, nil
}

func (e *Engine) buildBlocker(p *models.Province, def *models.Building, level int) string {
	if p.UnderConstruction(def.Type) {
		return "under construction"
	}
	if level >= def.MaxLevel {
		return "max level"
	}
	for _, req := range def.Requires {
		if p.BuildingLevel(req.Type) < req.MinLevel {
			return fmt.Sprintf("requires %s level %d", req.Type, req.MinLevel)
		}
	}
	return ""
}

func researchBlocker(emp *models.Empire, tech *models.Technology) string {
	if emp.IsResearched(tech.Key) {
		return "already researched"
	}
	if emp.IsResearching(tech.Key) {
		return "in progress"
	}
	for _, pre := range tech.Prerequisites {
		if !emp.IsResearched(pre) {
			return "requires " + pre
		}
	}
	return ""
}

// Apply carries out a decision: it deducts the cost and records the
// construction or research with its completion time. Research is paid from
// the deciding province first, then from the other provinces in order.
func (e *Engine) Apply(p *models.Province, emp *models.Empire, d models.GovernorDecision, now time.Time) error {
	switch d.Kind {
	case models.DecisionWait:
		return nil

	case models.DecisionBuild:
		if _, err := e.catalog.Building(d.BuildingType); err != nil {
			return err
		}
		if p.UnderConstruction(d.BuildingType) || p.BuildingLevel(d.BuildingType)+1 != d.TargetLevel {
			return fmt.Errorf("build %s level %d: %w", d.BuildingType, d.TargetLevel, ErrStaleDecision)
		}
		if !p.Resources.Covers(d.Cost) {
			return fmt.Errorf("build %s level %d: %w", d.BuildingType, d.TargetLevel, ErrInsufficientResources)
		}
		p.Resources = p.Resources.Sub(d.Cost)
		p.ActiveConstruction = append(p.ActiveConstruction, models.Construction{
			Type:       d.BuildingType,
			ToLevel:    d.TargetLevel,
			CompleteAt: now.Unix() + int64(d.DurationSeconds),
		})
		return nil

	case models.DecisionResearch:
		if _, err := e.catalog.Technology(d.TechKey); err != nil {
			return err
		}
		if emp == nil {
			emp = &models.Empire{Provinces: []*models.Province{p}}
		}
		if emp.IsResearched(d.TechKey) || emp.IsResearching(d.TechKey) {
			return fmt.Errorf("research %s: %w", d.TechKey, ErrStaleDecision)
		}
		if !emp.TotalResources().Covers(d.Cost) {
			return fmt.Errorf("research %s: %w", d.TechKey, ErrInsufficientResources)
		}
		payers := append([]*models.Province{p}, emp.Provinces...)
		remaining := d.Cost
		for _, payer := range payers {
			for i, need := range remaining {
				take := min(need, max(payer.Resources[i], 0))
				payer.Resources[i] -= take
				remaining[i] -= take
			}
		}
		emp.ActiveResearch = append(emp.ActiveResearch, models.Research{
			Key:        d.TechKey,
			CompleteAt: now.Unix() + int64(d.DurationSeconds),
		})
		return nil
	}

	return fmt.Errorf("unknown decision kind %d", d.Kind)
}

// Experience awarded on top of the rounded priority score
const (
	BuildExperienceBonus    = 20
	ResearchExperienceBonus = 30
)

// AwardExperience credits the governor for acting on a decision and returns the XP granted.
// Wait earns nothing. Experience is capped and loyalty rises by one, both clamped.
func AwardExperience(gov *models.Governor, d models.GovernorDecision) int {
	if gov == nil {
		return 0
	}

	var xp int
	switch d.Kind {
	case models.DecisionBuild:
		xp = int(math.Round(d.PriorityScore)) + BuildExperienceBonus
	case models.DecisionResearch:
		xp = int(math.Round(d.PriorityScore)) + ResearchExperienceBonus
	default:
		return 0
	}

	before := gov.Experience
	gov.AddExperience(xp)
	gov.AdjustLoyalty(1)
	return gov.Experience - before
}
