package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/random"
	"github.com/napolitain/idle-empire/internal/simulation"
)

func newModel(t *testing.T) Model {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := simulation.NewSteppedClock(start, time.Hour)
	svc, err := simulation.NewService(models.DefaultCatalog(), simulation.Options{
		Clock:  clock.Advance,
		Random: random.New(1),
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	emp := &models.Empire{
		ID:   "emp",
		Name: "Aurelia",
		Provinces: []*models.Province{{
			ID:          "capital",
			Name:        "Capital",
			Resources:   models.ResourceBundle{models.Gold: 1200},
			Buildings:   []models.BuildingInstance{{Type: models.Farm, Level: 2}},
			Governor:    &models.Governor{Name: "Livia", Personality: models.Merchant, Loyalty: 40},
			LastSettled: start.Unix(),
			Morale:      50,
		}},
	}
	return New(svc, emp, time.Second)
}

func TestDashboardTickAndView(t *testing.T) {
	m := newModel(t)

	next, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	m = next.(Model)
	if m.ticks != 1 || m.Err() != nil {
		t.Fatalf("ticks = %d, err = %v", m.ticks, m.Err())
	}

	view := m.View()
	for _, want := range []string{"Aurelia", "tick 1", "Capital", "Livia", "farm 2", "Chronicle"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestDashboardPause(t *testing.T) {
	m := newModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = next.(Model)
	if !m.paused {
		t.Fatal("p did not pause")
	}

	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if m.ticks != 0 {
		t.Errorf("paused dashboard ticked %d times", m.ticks)
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("View() does not show the pause")
	}
}

func TestDashboardQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestDashboardLogTrimmed(t *testing.T) {
	m := newModel(t)
	for i := 0; i < MaxLogLines+5; i++ {
		m.log = append(m.log, "line")
	}
	m.emp.Provinces[0].ActiveConstruction = []models.Construction{{Type: models.Farm, ToLevel: 3, CompleteAt: 1}}

	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	if len(m.log) > MaxLogLines {
		t.Errorf("log has %d lines, want at most %d", len(m.log), MaxLogLines)
	}
}
