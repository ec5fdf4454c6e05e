package combat

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/napolitain/idle-empire/internal/models"
)

// Narrate renders a fixed-format account of an encounter
func Narrate(enemy models.EnemyForce, o models.CombatOutcome) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s (%s, threat %d) descended on the province. ", enemy.Name, enemy.Type, enemy.ThreatLevel)

	switch o.Result {
	case models.Victory:
		sb.WriteString("The defenders held and drove them off")
	case models.Defeat:
		sb.WriteString("The defenses broke and the raiders plundered freely")
	case models.Draw:
		sb.WriteString("Neither side prevailed and the raiders withdrew")
	}
	fmt.Fprintf(&sb, " (%.0f%% odds). ", o.VictoryCertainty*100)

	fmt.Fprintf(&sb, "%s defenders and %s raiders fell.",
		humanize.Comma(int64(o.DefenderCasualties)), humanize.Comma(int64(o.EnemyCasualties)))

	if !o.ResourcesGained.IsZero() {
		fmt.Fprintf(&sb, " Spoils: %s.", FormatBundle(o.ResourcesGained))
	}
	if !o.ResourcesLost.IsZero() {
		fmt.Fprintf(&sb, " Losses: %s.", FormatBundle(o.ResourcesLost))
	}
	if o.InfrastructureDamage > 0 {
		fmt.Fprintf(&sb, " Infrastructure damage: %d.", o.InfrastructureDamage)
	}

	return sb.String()
}

// FormatBundle lists the non-zero amounts of a bundle in resource order, e.g. "1,200 gold, 40 food"
func FormatBundle(b models.ResourceBundle) string {
	var parts []string
	for _, k := range models.AllResourceKinds() {
		if v := b.Get(k); v != 0 {
			parts = append(parts, humanize.Comma(int64(v))+" "+k.String())
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
