package bonus

import (
	"github.com/napolitain/idle-empire/internal/models"
)

// Composer folds researched technologies into a TechnologyBonus bundle
type Composer struct {
	technologies []*models.Technology
	synergies    []models.Synergy
}

// NewComposer creates a composer over the catalog's technology and synergy tables
func NewComposer(catalog *models.Catalog) *Composer {
	return &Composer{
		technologies: catalog.Technologies,
		synergies:    catalog.Synergies,
	}
}

var defaultComposer = NewComposer(models.DefaultCatalog())

// Compose composes the researched keys against the default catalog
func Compose(researched []string) models.TechnologyBonus {
	return defaultComposer.Compose(researched)
}

// Breakdown lists what contributed to a composed bundle
type Breakdown struct {
	Technologies []string // keys applied, in application order
	Ignored      []string // unknown keys, in input order
	Synergies    []string
}

// Compose returns the bundle for a set of researched technology keys.
// Technologies are applied in catalog order, so any permutation of the
// input produces the same bundle. Unknown keys are ignored.
func (c *Composer) Compose(researched []string) models.TechnologyBonus {
	b, _ := c.compose(researched)
	return b
}

// Breakdown returns the composed bundle together with what was applied
func (c *Composer) Breakdown(researched []string) (models.TechnologyBonus, Breakdown) {
	return c.compose(researched)
}

func (c *Composer) compose(researched []string) (models.TechnologyBonus, Breakdown) {
	set := make(map[string]bool, len(researched))
	for _, key := range researched {
		set[key] = true
	}

	bundle := models.IdentityBonus()
	var report Breakdown

	known := make(map[string]bool, len(c.technologies))
	for _, tech := range c.technologies {
		known[tech.Key] = true
		if !set[tech.Key] {
			continue
		}
		applyEffects(&bundle, tech.Effects)
		report.Technologies = append(report.Technologies, tech.Key)
	}

	seen := make(map[string]bool, len(researched))
	for _, key := range researched {
		if !known[key] && !seen[key] {
			report.Ignored = append(report.Ignored, key)
		}
		seen[key] = true
	}

	for _, syn := range c.synergies {
		if !hasAll(set, syn.Requires) {
			continue
		}
		applyEffects(&bundle, syn.Effects)
		report.Synergies = append(report.Synergies, syn.Name)
	}

	return bundle, report
}

func hasAll(set map[string]bool, keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !set[k] {
			return false
		}
	}
	return true
}

func applyEffects(b *models.TechnologyBonus, effects []models.Effect) {
	for _, e := range effects {
		rule, ok := e.Field.Stacking()
		if !ok {
			continue
		}
		switch rule {
		case models.StackMultiplicative, models.StackReduction:
			*b.Value(e.Field) *= e.Value
		case models.StackAdditive:
			*b.Value(e.Field) += e.Value
		case models.StackUnlock:
			if e.Value != 0 {
				b.Unlock(e.Field)
			}
		}
	}
}
