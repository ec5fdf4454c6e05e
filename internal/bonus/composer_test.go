package bonus

import (
	"math"
	"slices"
	"testing"

	"github.com/napolitain/idle-empire/internal/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComposeEmptyIsIdentity(t *testing.T) {
	got := Compose(nil)
	if got != models.IdentityBonus() {
		t.Fatalf("Compose(nil) = %+v, want identity", got)
	}

	got = Compose([]string{})
	if got != models.IdentityBonus() {
		t.Fatalf("Compose([]) = %+v, want identity", got)
	}

	if got.TradeBonus != 0 || got.LoyaltyBonus != 0 {
		t.Errorf("identity additives should be 0, got trade=%v loyalty=%v", got.TradeBonus, got.LoyaltyBonus)
	}
	if got.Caravans || got.Siege || got.ArcaneWards || got.Diplomacy {
		t.Error("identity unlock flags should all be false")
	}
}

func TestComposeOrderIndependent(t *testing.T) {
	keys := []string{"agriculture", "irrigation", "currency", "banking", "caravans", "medicine", "tactics"}
	want := Compose(keys)

	reversed := slices.Clone(keys)
	slices.Reverse(reversed)

	rotated := append(slices.Clone(keys[3:]), keys[:3]...)

	for name, perm := range map[string][]string{"reversed": reversed, "rotated": rotated} {
		if got := Compose(perm); got != want {
			t.Errorf("%s: Compose differs from input order\n got: %+v\nwant: %+v", name, got, want)
		}
	}
}

func TestComposeDeterminism(t *testing.T) {
	keys := []string{"writing", "mining", "currency", "banking", "philosophy", "diplomacy"}
	first := Compose(keys)

	const iterations = 100
	for i := 1; i < iterations; i++ {
		if got := Compose(keys); got != first {
			t.Fatalf("Iteration %d: bundle mismatch", i)
		}
	}
}

func TestComposeStackingRules(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		field func(models.TechnologyBonus) float64
		want  float64
	}{
		{
			name:  "multiplicative farm",
			keys:  []string{"agriculture", "irrigation"},
			field: func(b models.TechnologyBonus) float64 { return b.FarmProduction },
			want:  1.2 * 1.25,
		},
		{
			name:  "multiplicative mine from two techs",
			keys:  []string{"mining", "bronze_working"},
			field: func(b models.TechnologyBonus) float64 { return b.MineProduction },
			want:  1.2 * 1.05,
		},
		{
			name:  "additive trade",
			keys:  []string{"currency", "banking"},
			field: func(b models.TechnologyBonus) float64 { return b.TradeBonus },
			want:  0.1 + 0.15,
		},
		{
			name:  "additive loyalty",
			keys:  []string{"philosophy", "diplomacy"},
			field: func(b models.TechnologyBonus) float64 { return b.LoyaltyBonus },
			want:  10,
		},
		{
			name:  "reduction plague",
			keys:  []string{"irrigation", "medicine"},
			field: func(b models.TechnologyBonus) float64 { return b.PlaguePrevention },
			want:  0.9 * 0.8,
		},
		{
			name:  "reduction construction cost",
			keys:  []string{"construction"},
			field: func(b models.TechnologyBonus) float64 { return b.ConstructionCost },
			want:  0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.field(Compose(tt.keys))
			if !approxEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposeSynergies(t *testing.T) {
	t.Run("tier one foundations", func(t *testing.T) {
		b := Compose([]string{"agriculture", "masonry", "mining", "bronze_working", "writing"})
		if !approxEqual(b.AllProduction, 1.1) {
			t.Errorf("AllProduction = %v, want 1.1", b.AllProduction)
		}

		partial := Compose([]string{"agriculture", "masonry", "mining", "bronze_working"})
		if partial.AllProduction != 1 {
			t.Errorf("four of five tier-1 techs should not trigger synergy, got %v", partial.AllProduction)
		}
	})

	t.Run("irrigation and medicine", func(t *testing.T) {
		b := Compose([]string{"irrigation", "medicine"})
		if !approxEqual(b.PopulationGrowth, 1.15*1.2) {
			t.Errorf("PopulationGrowth = %v, want %v", b.PopulationGrowth, 1.15*1.2)
		}
	})

	t.Run("economic mastery", func(t *testing.T) {
		b := Compose([]string{"currency", "banking", "caravans"})
		if !approxEqual(b.TradeBonus, 0.1+0.15+0.05+0.1) {
			t.Errorf("TradeBonus = %v, want 0.4", b.TradeBonus)
		}
		if !approxEqual(b.AllProduction, 1.05*1.05) {
			t.Errorf("AllProduction = %v, want %v", b.AllProduction, 1.05*1.05)
		}
		if !b.Caravans {
			t.Error("caravans should be unlocked")
		}
	})

	t.Run("art of war", func(t *testing.T) {
		b := Compose([]string{"iron_working", "tactics", "fortification"})
		if !approxEqual(b.CombatBonus, 1.15*1.1*1.1) {
			t.Errorf("CombatBonus = %v, want %v", b.CombatBonus, 1.15*1.1*1.1)
		}
		if !approxEqual(b.CombatCasualties, 0.9*0.85*0.9) {
			t.Errorf("CombatCasualties = %v, want %v", b.CombatCasualties, 0.9*0.85*0.9)
		}
	})
}

func TestComposeIgnoresUnknownAndDuplicates(t *testing.T) {
	want := Compose([]string{"agriculture"})

	got := Compose([]string{"agriculture", "time_travel", "agriculture", ""})
	if got != want {
		t.Errorf("unknown or duplicate keys changed the bundle\n got: %+v\nwant: %+v", got, want)
	}
}

func TestBreakdown(t *testing.T) {
	c := NewComposer(models.DefaultCatalog())

	_, report := c.Breakdown([]string{"medicine", "warp_drive", "irrigation", "warp_drive"})

	wantTechs := []string{"irrigation", "medicine"}
	if !slices.Equal(report.Technologies, wantTechs) {
		t.Errorf("Technologies = %v, want %v", report.Technologies, wantTechs)
	}
	if !slices.Equal(report.Ignored, []string{"warp_drive"}) {
		t.Errorf("Ignored = %v, want [warp_drive]", report.Ignored)
	}
	if !slices.Equal(report.Synergies, []string{"Healthy Harvests"}) {
		t.Errorf("Synergies = %v, want [Healthy Harvests]", report.Synergies)
	}
}

func TestComposerUsesCatalog(t *testing.T) {
	catalog := &models.Catalog{
		Technologies: []*models.Technology{
			{Key: "gunpowder", Effects: []models.Effect{{Field: models.CombatBonus, Value: 2}}},
		},
	}
	b := NewComposer(catalog).Compose([]string{"gunpowder", "agriculture"})

	if b.CombatBonus != 2 {
		t.Errorf("CombatBonus = %v, want 2", b.CombatBonus)
	}
	if b.FarmProduction != 1 {
		t.Errorf("agriculture is not in this catalog, FarmProduction = %v, want 1", b.FarmProduction)
	}
}

// FuzzComposeBounds checks stacking invariants over arbitrary subsets of the catalog
func FuzzComposeBounds(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(1))
	f.Add(uint32(0x1F))
	f.Add(uint32(0xFFFFFFFF))
	f.Add(uint32(0xA5A5A5A5))

	techs := models.DefaultCatalog().Technologies

	f.Fuzz(func(t *testing.T, mask uint32) {
		var keys []string
		for i, tech := range techs {
			if i < 32 && mask&(1<<i) != 0 {
				keys = append(keys, tech.Key)
			}
		}

		b := Compose(keys)

		reversed := slices.Clone(keys)
		slices.Reverse(reversed)
		if Compose(reversed) != b {
			t.Fatalf("order dependence for %v", keys)
		}

		// Every default effect is a buff
		multipliers := []float64{
			b.FarmProduction, b.MineProduction, b.QuarryProduction, b.HousingProduction,
			b.MarketProduction, b.AcademyProduction, b.TempleProduction, b.WindmillProduction,
			b.AllProduction, b.ConstructionSpeed, b.ResearchSpeed, b.CombatBonus,
			b.DefenseBonus, b.PopulationGrowth, b.InfluenceGeneration, b.ManaGeneration,
		}
		for i, m := range multipliers {
			if m < 1 {
				t.Errorf("multiplier %d = %v, should never drop below 1", i, m)
			}
		}

		reductions := []float64{b.PlaguePrevention, b.CombatCasualties, b.UpkeepCost, b.ConstructionCost}
		for i, r := range reductions {
			if r <= 0 || r > 1 {
				t.Errorf("reduction %d = %v, want (0, 1]", i, r)
			}
		}

		if b.TradeBonus < 0 || b.LoyaltyBonus < 0 {
			t.Errorf("additives should be non-negative: trade=%v loyalty=%v", b.TradeBonus, b.LoyaltyBonus)
		}
	})
}

func BenchmarkCompose(b *testing.B) {
	var keys []string
	for _, tech := range models.DefaultCatalog().Technologies {
		keys = append(keys, tech.Key)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compose(keys)
	}
}
