package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/napolitain/idle-empire/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "empire.db"), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testEmpire() *models.Empire {
	return &models.Empire{
		ID:   "emp-1",
		Name: "Aurelia",
		Provinces: []*models.Province{{
			ID:        "prov-1",
			Name:      "Capital",
			Resources: models.ResourceBundle{models.Gold: 500, models.Food: 120},
			Buildings: []models.BuildingInstance{{Type: models.Farm, Level: 3}},
			Governor: &models.Governor{
				Name:        "Livia",
				Personality: models.Conservative,
				Loyalty:     70,
				Experience:  250,
			},
			LastSettled: 1700000000,
			Morale:      50,
		}},
		Researched: []string{"agriculture"},
	}
}

func TestSaveLoadEmpire(t *testing.T) {
	db := openTestDB(t)
	emp := testEmpire()

	if err := db.SaveEmpire(emp); err != nil {
		t.Fatalf("SaveEmpire() error = %v", err)
	}
	emp.Provinces[0].Resources[models.Gold] = 10
	if err := db.SaveEmpire(emp); err != nil {
		t.Fatalf("second SaveEmpire() error = %v", err)
	}

	got, err := db.LoadEmpire("emp-1")
	if err != nil {
		t.Fatalf("LoadEmpire() error = %v", err)
	}
	if got.Name != "Aurelia" || len(got.Provinces) != 1 {
		t.Fatalf("got %+v", got)
	}
	p := got.Provinces[0]
	if p.Resources[models.Gold] != 10 || p.Resources[models.Food] != 120 {
		t.Errorf("resources = %v, want latest snapshot", p.Resources)
	}
	if p.BuildingLevel(models.Farm) != 3 {
		t.Errorf("farm level = %d, want 3", p.BuildingLevel(models.Farm))
	}
	if p.Governor == nil || p.Governor.Personality != models.Conservative || p.Governor.Loyalty != 70 {
		t.Errorf("governor = %+v", p.Governor)
	}
	if !got.IsResearched("agriculture") {
		t.Error("research list lost")
	}
}

func TestLoadEmpireNotFound(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadEmpire("missing"); !errors.Is(err, ErrEmpireNotFound) {
		t.Errorf("LoadEmpire() error = %v, want ErrEmpireNotFound", err)
	}
}

func TestRaidResolvedExactlyOnce(t *testing.T) {
	db := openTestDB(t)
	raid := &models.Raid{
		ID:         "raid-1",
		ProvinceID: "prov-1",
		Enemy:      models.EnemyForce{Name: "Bandit Raiders", Type: models.Infantry, Strength: 20},
		SpawnedAt:  100,
		ArrivesAt:  400,
	}
	if err := db.RecordRaid("emp-1", raid); err != nil {
		t.Fatalf("RecordRaid() error = %v", err)
	}
	if err := db.RecordRaid("emp-1", raid); err != nil {
		t.Fatalf("duplicate RecordRaid() error = %v", err)
	}

	pending, err := db.PendingRaids("emp-1")
	if err != nil {
		t.Fatalf("PendingRaids() error = %v", err)
	}
	if len(pending) != 1 || pending[0].Enemy.Name != "Bandit Raiders" || pending[0].Enemy.Strength != 20 {
		t.Fatalf("pending = %+v, want the one raid", pending)
	}

	outcome := models.CombatOutcome{Result: models.Victory, VictoryCertainty: 0.8, Narrative: "held"}
	emp := &models.Empire{ID: "emp-1", Name: "Test"}
	applied := 0
	apply := func() { applied++ }
	if err := db.ResolveRaid(emp, "raid-1", outcome, apply); err != nil {
		t.Fatalf("ResolveRaid() error = %v", err)
	}
	if err := db.ResolveRaid(emp, "raid-1", outcome, apply); !errors.Is(err, ErrRaidAlreadyResolved) {
		t.Errorf("second ResolveRaid() error = %v, want ErrRaidAlreadyResolved", err)
	}
	if err := db.ResolveRaid(emp, "raid-2", outcome, apply); !errors.Is(err, ErrRaidNotFound) {
		t.Errorf("ResolveRaid(unknown) error = %v, want ErrRaidNotFound", err)
	}
	if applied != 1 {
		t.Errorf("apply ran %d times, want 1", applied)
	}

	pending, err = db.PendingRaids("emp-1")
	if err != nil {
		t.Fatalf("PendingRaids() error = %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after resolve = %d, want 0", len(pending))
	}

	recent, err := db.RecentRaids("emp-1", 10)
	if err != nil {
		t.Fatalf("RecentRaids() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("recent = %d, want 1", len(recent))
	}
	r := recent[0]
	if !r.Resolved || r.Result != "Victory" || r.Certainty != 0.8 || r.Narrative != "held" {
		t.Errorf("recent[0] = %+v", r)
	}
}

func TestRecentRaidsOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	for i, id := range []string{"a", "b", "c"} {
		r := &models.Raid{ID: id, ProvinceID: "p", Enemy: models.EnemyForce{Name: "Wolves"}, ArrivesAt: int64(i * 100)}
		if err := db.RecordRaid("emp-1", r); err != nil {
			t.Fatalf("RecordRaid(%s) error = %v", id, err)
		}
	}
	if err := db.RecordRaid("emp-2", &models.Raid{ID: "z", ArrivesAt: 999}); err != nil {
		t.Fatalf("RecordRaid(z) error = %v", err)
	}

	recent, err := db.RecentRaids("emp-1", 2)
	if err != nil {
		t.Fatalf("RecentRaids() error = %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "c" || recent[1].ID != "b" {
		t.Errorf("recent = %+v, want c then b", recent)
	}
}

func TestResolveRaidSavesSnapshotWithOutcome(t *testing.T) {
	db := openTestDB(t)
	emp := testEmpire()
	raid := &models.Raid{ID: "raid-1", ProvinceID: "prov-1", Enemy: models.EnemyForce{Name: "Wolves"}, ArrivesAt: 400}
	if err := db.RecordRaid(emp.ID, raid); err != nil {
		t.Fatalf("RecordRaid() error = %v", err)
	}

	outcome := models.CombatOutcome{Result: models.Defeat, ResourcesLost: models.ResourceBundle{models.Gold: 100}}
	applied := 0
	apply := func() {
		applied++
		emp.Provinces[0].Resources = emp.Provinces[0].Resources.Sub(outcome.ResourcesLost)
	}

	if err := db.ResolveRaid(emp, raid.ID, outcome, apply); err != nil {
		t.Fatalf("ResolveRaid() error = %v", err)
	}
	if err := db.ResolveRaid(emp, raid.ID, outcome, apply); !errors.Is(err, ErrRaidAlreadyResolved) {
		t.Errorf("second ResolveRaid() error = %v, want ErrRaidAlreadyResolved", err)
	}
	if err := db.ResolveRaid(emp, "raid-2", outcome, apply); !errors.Is(err, ErrRaidNotFound) {
		t.Errorf("ResolveRaid(unknown) error = %v, want ErrRaidNotFound", err)
	}
	if applied != 1 {
		t.Fatalf("apply ran %d times, want 1", applied)
	}

	// The snapshot written with the resolution already carries the outcome.
	got, err := db.LoadEmpire(emp.ID)
	if err != nil {
		t.Fatalf("LoadEmpire() error = %v", err)
	}
	if gold := got.Provinces[0].Resources[models.Gold]; gold != 400 {
		t.Errorf("saved gold = %d, want 400", gold)
	}
	pending, err := db.PendingRaids(emp.ID)
	if err != nil || len(pending) != 0 {
		t.Errorf("PendingRaids() = %d, %v, want none", len(pending), err)
	}
}
