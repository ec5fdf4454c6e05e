// Package territory generates the pool of discoverable territories.
//
// Each territory is drawn from an archetype by spawn weight, then its
// richness is modulated by simplex noise sampled at its grid position so
// neighbouring territories have similar yields.
package territory

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
	"github.com/napolitain/idle-empire/internal/selector"
)

// Noise parameters
const (
	Octaves     = 3
	Frequency   = 0.15
	Persistence = 0.5
	MinRichness = 0.5 // richness factor range is [MinRichness, MinRichness+1]
)

// Generate places n territories on a square grid. The result is fully determined by seed.
func Generate(seed int64, n int, archetypes []models.TerritoryArchetype) []models.Territory {
	if n <= 0 || len(archetypes) == 0 {
		return nil
	}

	rng := random.New(seed)
	noise := opensimplex.NewNormalized(seed)
	side := int(math.Ceil(math.Sqrt(float64(n))))

	territories := make([]models.Territory, 0, n)
	for i := 0; i < n; i++ {
		x, y := i%side, i/side

		arch, ok := selector.Select(archetypes, nil, rng)
		if !ok {
			return territories
		}

		factor := MinRichness + octaveNoise(noise, float64(x), float64(y), Octaves, Frequency, Persistence)

		var richness models.ResourceRates
		for k, v := range arch.Richness {
			richness[k] = v * factor
		}

		territories = append(territories, models.Territory{
			Name:        fmt.Sprintf("%s (%d,%d)", arch.Name, x, y),
			Archetype:   arch.Name,
			X:           x,
			Y:           y,
			Richness:    richness,
			SpawnWeight: arch.SpawnWeight * factor,
			Eligibility: arch.Eligibility,
		})
	}

	return territories
}

// octaveNoise generates fractal noise in [0, 1] by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// DiscoveryYield is the one-off windfall per point of richness when a territory is discovered
const DiscoveryYield = 100

// Windfall returns the resources granted for discovering a territory
func Windfall(t models.Territory) models.ResourceBundle {
	var b models.ResourceBundle
	for k, v := range t.Richness {
		b[k] = int(math.Floor(v * DiscoveryYield))
	}
	return b
}
