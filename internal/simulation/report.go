package simulation

import (
	"fmt"

	"github.com/napolitain/idle-empire/internal/combat"
	"github.com/napolitain/idle-empire/internal/models"
)

// Lines renders the notable happenings of a tick, one per line, in tick order.
// Routine production and Wait decisions are left out.
func (r TickReport) Lines() []string {
	var lines []string

	for _, c := range r.Completed {
		if c.TechKey != "" {
			lines = append(lines, fmt.Sprintf("research complete: %s", c.TechKey))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s reached level %d", c.ProvinceID, c.BuildingType, c.Level))
	}
	for _, raid := range r.Spawned {
		lines = append(lines, fmt.Sprintf("%s: %s sighted, arriving in %s",
			raid.ProvinceID, raid.Enemy.Name, formatSeconds(raid.ArrivesAt-raid.SpawnedAt)))
	}
	for _, e := range r.Events {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", e.ProvinceID, e.Event, combat.FormatBundle(e.Effects)))
	}
	for _, d := range r.Discoveries {
		lines = append(lines, fmt.Sprintf("%s: discovered %s (%s)", d.ProvinceID, d.Territory.Name, combat.FormatBundle(d.Windfall)))
	}
	for _, d := range r.Decisions {
		if d.Decision.Kind == models.DecisionWait || !d.Applied {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s (+%d xp)", d.ProvinceID, d.Decision.Reason, d.XP))
	}
	for _, rr := range r.Resolved {
		lines = append(lines, fmt.Sprintf("%s: %s. %s", rr.Raid.ProvinceID, rr.Outcome.Result, rr.Outcome.Narrative))
	}

	return lines
}

func formatSeconds(s int64) string {
	if s >= 3600 {
		return fmt.Sprintf("%dh%02dm", s/3600, s%3600/60)
	}
	return fmt.Sprintf("%dm", s/60)
}
