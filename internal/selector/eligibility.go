package selector

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
)

// Context is the province state eligibility rules are evaluated against.
// Conditions see these fields by name, e.g. `Buildings["farm"] >= 2`.
type Context struct {
	ProvinceLevel  int
	Threat         int
	Attractiveness float64
	Resources      map[string]int
	Buildings      map[string]int
	Researched     []string
}

// NewContext builds the evaluation context for a province
func NewContext(p *models.Province, researched []string, threat int) Context {
	resources := make(map[string]int, models.ResourceCount)
	for _, k := range models.AllResourceKinds() {
		resources[k.String()] = p.Resources.Get(k)
	}

	buildings := make(map[string]int, len(models.AllBuildingTypes()))
	for _, bt := range models.AllBuildingTypes() {
		buildings[string(bt)] = p.BuildingLevel(bt)
	}

	return Context{
		ProvinceLevel:  p.Level(),
		Threat:         threat,
		Attractiveness: Attractiveness(p.Resources),
		Resources:      resources,
		Buildings:      buildings,
		Researched:     researched,
	}
}

// Attractiveness measures how tempting a stockpile is to raiders: one point per thousand resources
func Attractiveness(stock models.ResourceBundle) float64 {
	return float64(stock.Clamp().Total()) / 1000
}

// Gated is a weighted entry with eligibility rules
type Gated interface {
	Weighted
	Gate() models.Eligibility
}

// Matcher evaluates eligibility rules. Conditions are compiled once and cached.
type Matcher struct {
	mu       sync.Mutex
	programs map[string]*vm.Program
}

// NewMatcher creates an empty matcher
func NewMatcher() *Matcher {
	return &Matcher{programs: make(map[string]*vm.Program)}
}

// Compile compiles a condition, returning a ConfigurationError when it is invalid
func (m *Matcher) Compile(src string) (*vm.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prog, ok := m.programs[src]; ok {
		return prog, nil
	}

	prog, err := expr.Compile(src, expr.Env(Context{}), expr.AsBool())
	if err != nil {
		return nil, &models.ConfigurationError{Kind: "condition", Key: src, Err: err}
	}
	m.programs[src] = prog
	return prog, nil
}

// Validate compiles the condition of every pool entry
func Validate[T Gated](m *Matcher, pool []T) error {
	for _, entry := range pool {
		if src := entry.Gate().Condition; src != "" {
			if _, err := m.Compile(src); err != nil {
				return err
			}
		}
	}
	return nil
}

// Eligible reports whether rules admit the context
func (m *Matcher) Eligible(rules models.Eligibility, ctx Context) (bool, error) {
	if ctx.ProvinceLevel < rules.MinProvinceLevel {
		return false, nil
	}
	if ctx.Threat < rules.MinThreat {
		return false, nil
	}
	if rules.MaxThreat > 0 && ctx.Threat > rules.MaxThreat {
		return false, nil
	}
	if ctx.Attractiveness < rules.MinAttractiveness {
		return false, nil
	}
	if rules.Condition == "" {
		return true, nil
	}

	prog, err := m.Compile(rules.Condition)
	if err != nil {
		return false, err
	}
	out, err := vm.Run(prog, ctx)
	if err != nil {
		return false, fmt.Errorf("evaluate condition %q: %w", rules.Condition, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Pick filters the pool by eligibility and draws one entry by weight.
// An entry whose condition fails to evaluate is treated as ineligible;
// the first such error is returned alongside the draw.
func Pick[T Gated](m *Matcher, pool []T, ctx Context, rng random.Source) (T, bool, error) {
	var firstErr error
	eligible := func(entry T) bool {
		ok, err := m.Eligible(entry.Gate(), ctx)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return ok
	}

	entry, ok := Select(pool, eligible, rng)
	return entry, ok, firstErr
}

// PickEnemy draws a raiding force for the context
func (m *Matcher) PickEnemy(pool []models.EnemyForce, ctx Context, rng random.Source) (models.EnemyForce, bool, error) {
	return Pick(m, pool, ctx, rng)
}

// PickEvent draws a random event for the context
func (m *Matcher) PickEvent(pool []models.RandomEvent, ctx Context, rng random.Source) (models.RandomEvent, bool, error) {
	return Pick(m, pool, ctx, rng)
}

// PickTerritory draws a territory to discover for the context
func (m *Matcher) PickTerritory(pool []models.Territory, ctx Context, rng random.Source) (models.Territory, bool, error) {
	return Pick(m, pool, ctx, rng)
}
