package combat

import (
	"math"
	"testing"

	"github.com/napolitain/idle-empire/internal/models"
)

func TestAggregateDefenseBaseline(t *testing.T) {
	d := AggregateDefense(&models.Province{}, models.IdentityBonus())

	if d.Strength != BaseStrength || d.Toughness != BaseToughness || d.Garrison != BaseGarrison {
		t.Errorf("got %+v, want militia baseline", d)
	}
	for _, et := range models.AllEnemyTypes() {
		if d.Against(et) != 1 {
			t.Errorf("effectiveness vs %s = %v, want 1", et, d.Against(et))
		}
	}
	if d.CasualtyFactor != 1 {
		t.Errorf("CasualtyFactor = %v, want 1", d.CasualtyFactor)
	}
}

func TestAggregateDefenseBuildings(t *testing.T) {
	p := &models.Province{
		Buildings: []models.BuildingInstance{
			{Type: models.Barracks, Level: 4},
			{Type: models.Walls, Level: 5},
			{Type: models.House, Level: 2},
			{Type: models.Temple, Level: 30},
			{Type: models.Farm, Level: 9},
		},
	}
	d := AggregateDefense(p, models.IdentityBonus())

	if want := BaseStrength + 15*4 + 2*2; d.Strength != want {
		t.Errorf("Strength = %v, want %v", d.Strength, want)
	}
	if want := BaseToughness + 20*5 + 5*30; d.Toughness != want {
		t.Errorf("Toughness = %v, want %v", d.Toughness, want)
	}
	if want := BaseGarrison + 10*4 + 5*2; d.Garrison != want {
		t.Errorf("Garrison = %d, want %d", d.Garrison, want)
	}

	checks := map[models.EnemyType]float64{
		models.Cavalry:   1 + 0.03*4,
		models.Infantry:  1 + 0.03*5,
		models.Beast:     1 + 0.03*5,
		models.Arcane:    MaxEffectiveness, // 1 + 0.04*30 capped
		models.Artillery: 1,
	}
	for et, want := range checks {
		if got := d.Against(et); math.Abs(got-want) > 1e-9 {
			t.Errorf("effectiveness vs %s = %v, want %v", et, got, want)
		}
	}
}

func TestAggregateDefenseBonusesAndGovernor(t *testing.T) {
	b := models.IdentityBonus()
	b.CombatBonus = 2
	b.DefenseBonus = 3
	b.ArcaneWards = true
	b.CombatCasualties = 0.8

	tests := []struct {
		name          string
		gov           *models.Governor
		wantStrength  float64
		wantToughness float64
	}{
		{"no governor", nil, 20, 30},
		{"aggressive", &models.Governor{Personality: models.Aggressive, Loyalty: 50}, 20 * 1.15, 30},
		{"conservative", &models.Governor{Personality: models.Conservative, Loyalty: 50}, 20, 30 * 1.15},
		{"veteran merchant", &models.Governor{Personality: models.Merchant, Loyalty: 50, Experience: 10000}, 20 * 1.1, 30},
		{"disloyal explorer", &models.Governor{Personality: models.Explorer, Loyalty: 10}, 20 * 0.9, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := AggregateDefense(&models.Province{Governor: tt.gov}, b)
			if math.Abs(d.Strength-tt.wantStrength) > 1e-9 {
				t.Errorf("Strength = %v, want %v", d.Strength, tt.wantStrength)
			}
			if math.Abs(d.Toughness-tt.wantToughness) > 1e-9 {
				t.Errorf("Toughness = %v, want %v", d.Toughness, tt.wantToughness)
			}
			if got := d.Against(models.Arcane); math.Abs(got-1.25) > 1e-9 {
				t.Errorf("arcane effectiveness = %v, want 1.25", got)
			}
			if d.CasualtyFactor != 0.8 {
				t.Errorf("CasualtyFactor = %v, want 0.8", d.CasualtyFactor)
			}
		})
	}
}

func TestApplyOutcome(t *testing.T) {
	p := &models.Province{
		Resources: models.ResourceBundle{models.Gold: 100, models.Food: 50, models.Population: 30},
		Buildings: []models.BuildingInstance{{Type: models.Walls, Level: 3}},
		Governor:  &models.Governor{Loyalty: 5, Experience: 9995},
		Morale:    4,
	}

	ApplyOutcome(p, models.CombatOutcome{
		Result:                models.Defeat,
		DefenderCasualties:    40,
		InfrastructureDamage:  25,
		ResourcesLost:         models.ResourceBundle{models.Gold: 150, models.Food: 20},
		GovernorXPGain:        8,
		GovernorLoyaltyChange: -8,
		MoraleChange:          -11,
	})

	want := models.ResourceBundle{models.Gold: 0, models.Food: 30, models.Population: 0}
	if p.Resources != want {
		t.Errorf("Resources = %v, want %v", p.Resources, want)
	}
	if p.Governor.Loyalty != 0 || p.Governor.Experience != models.MaxExperience {
		t.Errorf("governor = %+v, want loyalty 0 and capped experience", *p.Governor)
	}
	if p.Morale != 0 {
		t.Errorf("Morale = %d, want 0", p.Morale)
	}
	if p.BuildingLevel(models.Walls) != 1 {
		t.Errorf("walls level = %d, want 1 after two breaches", p.BuildingLevel(models.Walls))
	}

	ApplyOutcome(p, models.CombatOutcome{
		Result:                models.Victory,
		ResourcesGained:       models.ResourceBundle{models.Iron: 60},
		GovernorLoyaltyChange: 5,
		MoraleChange:          150,
	})
	if p.Resources[models.Iron] != 60 || p.Governor.Loyalty != 5 || p.Morale != MaxMorale {
		t.Errorf("after victory: iron %d loyalty %d morale %d", p.Resources[models.Iron], p.Governor.Loyalty, p.Morale)
	}
}

func TestBreachRemovesRazedWalls(t *testing.T) {
	tests := []struct {
		name      string
		walls     int
		damage    int
		wantLevel int
		wantCount int
	}{
		{"partial breach", 3, 15, 2, 2},
		{"exact razing", 2, 20, 0, 1},
		{"overkill", 1, 45, 0, 1},
		{"below one breach", 1, 9, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Province{Buildings: []models.BuildingInstance{
				{Type: models.Walls, Level: tt.walls},
				{Type: models.Farm, Level: 2},
			}}
			ApplyOutcome(p, models.CombatOutcome{Result: models.Defeat, InfrastructureDamage: tt.damage})

			if got := p.BuildingLevel(models.Walls); got != tt.wantLevel {
				t.Errorf("walls level = %d, want %d", got, tt.wantLevel)
			}
			if len(p.Buildings) != tt.wantCount {
				t.Errorf("buildings = %+v, want %d entries", p.Buildings, tt.wantCount)
			}
			for _, b := range p.Buildings {
				if b.Level <= 0 {
					t.Errorf("building %s left at level %d", b.Type, b.Level)
				}
			}
		})
	}
}
