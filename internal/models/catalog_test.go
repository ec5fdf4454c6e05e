package models

import (
	"errors"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if len(c.Buildings) != len(AllBuildingTypes()) {
		t.Errorf("buildings = %d, want %d", len(c.Buildings), len(AllBuildingTypes()))
	}
	if len(c.Technologies) != 20 {
		t.Errorf("technologies = %d, want 20", len(c.Technologies))
	}

	// Prerequisites must come earlier in application order.
	seen := map[string]bool{}
	for _, tech := range c.Technologies {
		for _, pre := range tech.Prerequisites {
			if !seen[pre] {
				t.Errorf("%s listed before its prerequisite %s", tech.Key, pre)
			}
		}
		seen[tech.Key] = true
	}

	for _, e := range c.Enemies {
		if e.SpawnWeight <= 0 || e.Size <= 0 {
			t.Errorf("enemy %s has weight %v size %d", e.Name, e.SpawnWeight, e.Size)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	c := DefaultCatalog()

	if b, err := c.Building(Farm); err != nil || b.Type != Farm {
		t.Errorf("Building(farm) = %v, %v", b, err)
	}
	if tech, err := c.Technology("agriculture"); err != nil || tech.Key != "agriculture" {
		t.Errorf("Technology(agriculture) = %v, %v", tech, err)
	}
	if _, err := c.Profile(Explorer); err != nil {
		t.Errorf("Profile(explorer) error = %v", err)
	}

	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"building", func() error { _, err := c.Building("castle"); return err }(), "building"},
		{"technology", func() error { _, err := c.Technology("alchemy"); return err }(), "technology"},
		{"personality", func() error { _, err := c.Profile("reckless"); return err }(), "personality"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrConfiguration) {
				t.Fatalf("error = %v, want ErrConfiguration", tt.err)
			}
			var cfgErr *ConfigurationError
			if !errors.As(tt.err, &cfgErr) || cfgErr.Kind != tt.kind {
				t.Errorf("error = %#v, want kind %s", tt.err, tt.kind)
			}
		})
	}
}

func TestCatalogValidateBrokenReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"missing building", func(c *Catalog) { delete(c.Buildings, Walls) }},
		{"bad requirement", func(c *Catalog) {
			c.Buildings[Temple].Requires = []BuildingRequirement{{Type: "castle", MinLevel: 1}}
		}},
		{"bad prerequisite", func(c *Catalog) { c.Technologies[5].Prerequisites = []string{"alchemy"} }},
		{"bad effect field", func(c *Catalog) { c.Technologies[0].Effects = []Effect{{Field: "luck", Value: 2}} }},
		{"bad synergy", func(c *Catalog) { c.Synergies[0].Requires = []string{"alchemy"} }},
		{"missing personality", func(c *Catalog) { delete(c.Personalities, Merchant) }},
		{"bad priority", func(c *Catalog) {
			c.Personalities[Aggressive].BuildingPriorities = []PriorityEntry{{Key: "castle", Priority: 5}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCatalog()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrConfiguration) {
				t.Errorf("Validate() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestBonusFieldStacking(t *testing.T) {
	counts := map[StackingRule]int{}
	for _, f := range AllBonusFields() {
		rule, ok := f.Stacking()
		if !ok {
			t.Fatalf("%s has no stacking rule", f)
		}
		counts[rule]++

		b := IdentityBonus()
		if rule == StackUnlock {
			if b.Value(f) != nil || b.IsUnlocked(f) || !b.Unlock(f) || !b.IsUnlocked(f) {
				t.Errorf("%s unlock handling wrong", f)
			}
			continue
		}
		v := b.Value(f)
		if v == nil {
			t.Fatalf("%s has no value", f)
		}
		want := 1.0
		if rule == StackAdditive {
			want = 0
		}
		if *v != want {
			t.Errorf("identity %s = %v, want %v", f, *v, want)
		}
	}

	want := map[StackingRule]int{StackMultiplicative: 16, StackAdditive: 2, StackReduction: 4, StackUnlock: 4}
	for rule, n := range want {
		if counts[rule] != n {
			t.Errorf("rule %d has %d fields, want %d", rule, counts[rule], n)
		}
	}
	if _, ok := BonusField("luck").Stacking(); ok {
		t.Error("unknown field has a stacking rule")
	}
}

func TestGovernorBounds(t *testing.T) {
	g := &Governor{Loyalty: 95, Experience: 9990}

	g.AdjustLoyalty(10)
	if g.Loyalty != MaxLoyalty {
		t.Errorf("Loyalty = %d, want %d", g.Loyalty, MaxLoyalty)
	}
	g.AdjustLoyalty(-250)
	if g.Loyalty != MinLoyalty {
		t.Errorf("Loyalty = %d, want %d", g.Loyalty, MinLoyalty)
	}

	g.AddExperience(50)
	if g.Experience != MaxExperience {
		t.Errorf("Experience = %d, want %d", g.Experience, MaxExperience)
	}
	g.Experience = 100
	g.AddExperience(-40)
	if g.Experience != 100 {
		t.Errorf("negative XP changed experience to %d", g.Experience)
	}
}

func TestDecisionKindString(t *testing.T) {
	tests := map[DecisionKind]string{
		DecisionWait:     "Wait",
		DecisionBuild:    "Build",
		DecisionResearch: "Research",
		DecisionKind(9):  "Unknown",
	}
	for k, want := range tests {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
	if d := Wait("idle"); d.Kind != DecisionWait || d.Reason != "idle" {
		t.Errorf("Wait() = %+v", d)
	}
}
