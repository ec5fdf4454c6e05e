package production

import (
	"math"
	"time"

	"github.com/napolitain/idle-empire/internal/bonus"
	"github.com/napolitain/idle-empire/internal/models"
)

// Input is everything the calculator needs to settle one province
type Input struct {
	Buildings   []models.BuildingInstance
	Personality models.Personality // NoPersonality when no governor is assigned
	LastSettled time.Time
	Researched  []string
	Now         time.Time
}

// Result holds the hourly rates and the accrued deltas for the elapsed interval
type Result struct {
	ElapsedHours float64
	HourlyRates  models.ResourceRates
	Deltas       models.ResourceBundle
}

// Calculator computes idle production from the catalog's building tables
type Calculator struct {
	catalog  *models.Catalog
	composer *bonus.Composer
}

// NewCalculator creates a calculator over a balance catalog
func NewCalculator(catalog *models.Catalog) *Calculator {
	return &Calculator{
		catalog:  catalog,
		composer: bonus.NewComposer(catalog),
	}
}

var defaultCalculator = NewCalculator(models.DefaultCatalog())

// Calculate runs the default calculator
func Calculate(in Input) (Result, error) {
	return defaultCalculator.Calculate(in)
}

// ElapsedHours returns the hours between two instants, never negative
func ElapsedHours(last, now time.Time) float64 {
	d := now.Sub(last)
	if d <= 0 {
		return 0
	}
	return d.Seconds() / 3600
}

// Calculate returns the hourly rates and the floored deltas accrued since LastSettled
func (c *Calculator) Calculate(in Input) (Result, error) {
	rates, err := c.HourlyRates(in.Buildings, in.Personality, c.composer.Compose(in.Researched))
	if err != nil {
		return Result{}, err
	}

	hours := ElapsedHours(in.LastSettled, in.Now)

	var deltas models.ResourceBundle
	for i, rate := range rates {
		deltas[i] = int(math.Floor(rate * hours))
	}

	return Result{
		ElapsedHours: hours,
		HourlyRates:  rates,
		Deltas:       deltas,
	}, nil
}

// HourlyRates returns the per-hour production for a building inventory under a composed bonus
func (c *Calculator) HourlyRates(buildings []models.BuildingInstance, personality models.Personality, b models.TechnologyBonus) (models.ResourceRates, error) {
	rates := c.catalog.Baseline

	for _, inst := range buildings {
		def, err := c.catalog.Building(inst.Type)
		if err != nil {
			return models.ResourceRates{}, err
		}
		if inst.Level <= 0 {
			continue
		}

		output := b.BuildingMultiplier(inst.Type) * b.AllProduction
		level := float64(inst.Level)
		for i, perLevel := range def.ProductionPerLvl {
			if perLevel > 0 {
				rates[i] += perLevel * output * level
			} else if perLevel < 0 {
				rates[i] += perLevel * b.UpkeepCost * level
			}
		}
	}

	if personality != models.NoPersonality {
		profile, err := c.catalog.Profile(personality)
		if err != nil {
			return models.ResourceRates{}, err
		}
		for i := range rates {
			rates[i] *= profile.ProductionModifier[i]
		}
	}

	rates[models.Population] *= b.PopulationGrowth
	rates[models.Influence] *= b.InfluenceGeneration
	rates[models.Mana] *= b.ManaGeneration

	return rates, nil
}

// Settle applies a result to a stock, clamping every amount at zero
func Settle(stock models.ResourceBundle, r Result) models.ResourceBundle {
	return stock.Add(r.Deltas).Clamp()
}

// Accrue converts a result's exact production plus an earlier fractional
// carry into whole deltas, returning the fraction left to carry forward
func Accrue(r Result, carry models.ResourceRates) (models.ResourceBundle, models.ResourceRates) {
	var deltas models.ResourceBundle
	var next models.ResourceRates
	for i, rate := range r.HourlyRates {
		exact := rate*r.ElapsedHours + carry[i]
		whole := math.Floor(exact)
		deltas[i] = int(whole)
		next[i] = exact - whole
	}
	return deltas, next
}
