package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/napolitain/idle-empire/internal/governor"
	"github.com/napolitain/idle-empire/internal/loader"
	"github.com/napolitain/idle-empire/internal/models"
)

func TestStarterEmpireRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 0)
	emp := starterEmpire("Aurelia", models.Merchant, now)

	if len(emp.Provinces) != 1 || emp.ID == "" || emp.Provinces[0].ID == "" {
		t.Fatalf("starter empire = %+v", emp)
	}
	if err := models.DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	path := filepath.Join(t.TempDir(), "empire.yaml")
	if err := loader.SaveEmpire(path, emp); err != nil {
		t.Fatalf("SaveEmpire() error = %v", err)
	}
	got, err := loader.LoadEmpire(path)
	if err != nil {
		t.Fatalf("LoadEmpire() error = %v", err)
	}
	if got.ID != emp.ID || got.Provinces[0].Resources != emp.Provinces[0].Resources {
		t.Errorf("round trip lost state: %+v", got.Provinces[0])
	}
	if latestSettlement(got) != now.Unix() {
		t.Errorf("latestSettlement() = %d, want %d", latestSettlement(got), now.Unix())
	}

	// The starter stockpile must let the governor act on its first tick.
	d, err := governor.NewEngine(models.DefaultCatalog()).Decide(got.Provinces[0], got)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if d.Kind == models.DecisionWait {
		t.Errorf("starter governor waits: %s", d.Reason)
	}
}

func TestFindProvince(t *testing.T) {
	emp := &models.Empire{Name: "E", Provinces: []*models.Province{
		{ID: "a", Name: "Capital"},
		{ID: "b", Name: "Frontier"},
	}}

	tests := []struct {
		query   string
		wantID  string
		wantErr bool
	}{
		{"", "a", false},
		{"b", "b", false},
		{"Frontier", "b", false},
		{"Nowhere", "", true},
	}
	for _, tt := range tests {
		p, err := findProvince(emp, tt.query)
		if (err != nil) != tt.wantErr {
			t.Errorf("findProvince(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if err == nil && p.ID != tt.wantID {
			t.Errorf("findProvince(%q) = %s, want %s", tt.query, p.ID, tt.wantID)
		}
	}

	if _, err := findProvince(&models.Empire{Name: "Empty"}, ""); err == nil {
		t.Error("findProvince on an empty empire succeeded")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		0:    "0s",
		45:   "45s",
		300:  "5m 00s",
		3725: "1h 02m",
	}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestStackingName(t *testing.T) {
	for _, f := range models.AllBonusFields() {
		rule, ok := f.Stacking()
		if !ok {
			t.Errorf("field %s has no stacking rule", f)
		}
		if stackingName(rule) == "unknown" {
			t.Errorf("field %s has unnamed rule %d", f, rule)
		}
	}
}
