package models

import (
	"testing"
)

func TestResourceKindNames(t *testing.T) {
	if len(AllResourceKinds()) != ResourceCount {
		t.Fatalf("AllResourceKinds() has %d kinds, want %d", len(AllResourceKinds()), ResourceCount)
	}
	for _, k := range AllResourceKinds() {
		got, ok := ParseResourceKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseResourceKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseResourceKind("wood"); ok {
		t.Error("ParseResourceKind accepted an unknown name")
	}
	if ResourceKind(99).String() != "unknown" {
		t.Error("out-of-range kind should be unknown")
	}
}

func TestResourceBundleOps(t *testing.T) {
	a := ResourceBundle{Gold: 100, Food: 50, Stone: 10}
	b := ResourceBundle{Gold: 30, Food: 80}

	if got := a.Add(b); got[Gold] != 130 || got[Food] != 130 || got[Stone] != 10 {
		t.Errorf("Add() = %v", got)
	}
	diff := a.Sub(b)
	if diff[Gold] != 70 || diff[Food] != -30 {
		t.Errorf("Sub() = %v", diff)
	}
	if got := diff.Clamp(); got[Food] != 0 || got[Gold] != 70 {
		t.Errorf("Clamp() = %v", got)
	}
	if got := a.Scale(0.75); got[Gold] != 75 || got[Food] != 37 || got[Stone] != 7 {
		t.Errorf("Scale(0.75) = %v, want floored amounts", got)
	}
	if a[Gold] != 100 {
		t.Error("operations mutated the receiver")
	}

	if !a.Covers(ResourceBundle{Gold: 100, Food: 50}) {
		t.Error("Covers() should accept an exact match")
	}
	if a.Covers(b) {
		t.Error("Covers() accepted a short resource")
	}
	if a.Total() != 160 {
		t.Errorf("Total() = %d, want 160", a.Total())
	}
	if a.IsZero() || !(ResourceBundle{}).IsZero() {
		t.Error("IsZero() wrong")
	}
}

func TestBuildingCostAndTime(t *testing.T) {
	farm := &Building{
		Type:            Farm,
		BaseCost:        ResourceBundle{Gold: 50, Stone: 30},
		CostGrowth:      1.5,
		BaseTimeSeconds: 300,
		TimeGrowth:      1.4,
	}

	tests := []struct {
		level     int
		wantGold  int
		wantStone int
		wantTime  int
	}{
		{1, 50, 30, 300},
		{2, 75, 45, 420},
		{3, 112, 67, 588},
		{4, 168, 101, 823},
	}
	for _, tt := range tests {
		cost := farm.CostForLevel(tt.level)
		if cost[Gold] != tt.wantGold || cost[Stone] != tt.wantStone {
			t.Errorf("CostForLevel(%d) = %v, want gold %d stone %d", tt.level, cost, tt.wantGold, tt.wantStone)
		}
		if got := farm.TimeForLevel(tt.level); got != tt.wantTime {
			t.Errorf("TimeForLevel(%d) = %d, want %d", tt.level, got, tt.wantTime)
		}
	}
}

func TestProvinceBuildings(t *testing.T) {
	p := &Province{}
	if p.Level() != 1 {
		t.Errorf("empty province level = %d, want 1", p.Level())
	}

	p.SetBuildingLevel(Farm, 3)
	p.SetBuildingLevel(House, 2)
	p.SetBuildingLevel(Farm, 5)

	if p.BuildingLevel(Farm) != 5 || p.BuildingLevel(House) != 2 || p.BuildingLevel(Mine) != 0 {
		t.Errorf("levels = %+v", p.Buildings)
	}
	if len(p.Buildings) != 2 {
		t.Errorf("SetBuildingLevel duplicated an entry: %+v", p.Buildings)
	}
	if p.Level() != 1+7/4 {
		t.Errorf("Level() = %d, want %d", p.Level(), 1+7/4)
	}

	p.RemoveBuilding(Farm)
	p.RemoveBuilding(Walls)
	if p.BuildingLevel(Farm) != 0 || len(p.Buildings) != 1 {
		t.Errorf("RemoveBuilding left %+v", p.Buildings)
	}

	p.ActiveConstruction = []Construction{{Type: House, ToLevel: 3}}
	if !p.UnderConstruction(House) || p.UnderConstruction(Farm) {
		t.Error("UnderConstruction() wrong")
	}
}

func TestEmpireHelpers(t *testing.T) {
	emp := &Empire{
		Provinces: []*Province{
			{ID: "a", Resources: ResourceBundle{Gold: 10, Food: 5}},
			{ID: "b", Resources: ResourceBundle{Gold: 7, Iron: 3}},
		},
		Researched:     []string{"agriculture"},
		ActiveResearch: []Research{{Key: "masonry"}},
	}

	total := emp.TotalResources()
	if total[Gold] != 17 || total[Food] != 5 || total[Iron] != 3 {
		t.Errorf("TotalResources() = %v", total)
	}
	if !emp.IsResearched("agriculture") || emp.IsResearched("masonry") {
		t.Error("IsResearched() wrong")
	}
	if !emp.IsResearching("masonry") || emp.IsResearching("agriculture") {
		t.Error("IsResearching() wrong")
	}
	if emp.Province("b") == nil || emp.Province("c") != nil {
		t.Error("Province() lookup wrong")
	}
}

// FuzzBundleClamp checks that Clamp never leaves a negative amount and keeps positives
func FuzzBundleClamp(f *testing.F) {
	f.Add(100, -50, 0, 7)
	f.Add(-1, -1, -1, -1)
	f.Add(1<<30, -(1 << 30), 3, 0)

	f.Fuzz(func(t *testing.T, a, b, c, d int) {
		in := ResourceBundle{Gold: a, Food: b, Stone: c, Iron: d}
		out := in.Clamp()
		for i := range out {
			if out[i] < 0 {
				t.Fatalf("Clamp() left %d at index %d", out[i], i)
			}
			if in[i] >= 0 && out[i] != in[i] {
				t.Fatalf("Clamp() changed non-negative %d to %d", in[i], out[i])
			}
		}
	})
}
