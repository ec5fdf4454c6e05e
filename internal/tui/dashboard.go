// Package tui renders a live dashboard of an empire while it is simulated.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/napolitain/idle-empire/internal/models"
	"github.com/napolitain/idle-empire/internal/simulation"
)

// MaxLogLines is the number of happenings kept on screen
const MaxLogLines = 12

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	raidStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type tickMsg time.Time

// Model is the bubbletea model of the dashboard
type Model struct {
	svc      *simulation.Service
	emp      *models.Empire
	interval time.Duration

	ticks  int
	last   time.Time
	log    []string
	paused bool
	err    error
}

// New creates a dashboard that ticks svc every interval
func New(svc *simulation.Service, emp *models.Empire, interval time.Duration) Model {
	return Model{svc: svc, emp: emp, interval: interval}
}

// Err returns the error that stopped the dashboard, if any
func (m Model) Err() error {
	return m.err
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the tick loop
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles key presses and ticks
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		}
		return m, nil

	case tickMsg:
		if m.paused {
			return m, tick(m.interval)
		}
		report, err := m.svc.Tick(context.Background(), m.emp)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.ticks++
		m.last = report.At
		m.log = append(m.log, report.Lines()...)
		if over := len(m.log) - MaxLogLines; over > 0 {
			m.log = m.log[over:]
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// View renders the dashboard
func (m Model) View() string {
	var b strings.Builder

	status := fmt.Sprintf("tick %d", m.ticks)
	if !m.last.IsZero() {
		status += " · " + m.last.UTC().Format("2006-01-02 15:04")
	}
	if m.paused {
		status += " · paused"
	}
	b.WriteString(titleStyle.Render(m.emp.Name) + "  " + dimStyle.Render(status) + "\n")

	for _, p := range m.emp.Provinces {
		b.WriteString(panelStyle.Render(provinceView(p)) + "\n")
	}

	if pending := m.svc.Pending(m.emp.ID); len(pending) > 0 {
		b.WriteString(headerStyle.Render("Incoming raids") + "\n")
		for _, r := range pending {
			b.WriteString(raidStyle.Render(fmt.Sprintf("  %s → %s at %s", r.Enemy.Name, r.ProvinceID,
				time.Unix(r.ArrivesAt, 0).UTC().Format("15:04"))) + "\n")
		}
	}

	if len(m.emp.Researched) > 0 {
		b.WriteString(headerStyle.Render("Researched ") + strings.Join(m.emp.Researched, ", ") + "\n")
	}

	b.WriteString(headerStyle.Render("Chronicle") + "\n")
	for _, line := range m.log {
		b.WriteString("  " + line + "\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(dimStyle.Render("p pause · q quit") + "\n")
	return b.String()
}

func provinceView(p *models.Province) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  level %d  morale %d\n", headerStyle.Render(p.Name), p.Level(), p.Morale)
	if g := p.Governor; g != nil {
		fmt.Fprintf(&b, "governor %s (%s) loyalty %d xp %s\n", g.Name, g.Personality, g.Loyalty, humanize.Comma(int64(g.Experience)))
	}

	var res []string
	for _, k := range models.AllResourceKinds() {
		res = append(res, fmt.Sprintf("%s %s", k, humanize.Comma(int64(p.Resources.Get(k)))))
	}
	b.WriteString(strings.Join(res, "  ") + "\n")

	var blds []string
	for _, bi := range p.Buildings {
		blds = append(blds, fmt.Sprintf("%s %d", bi.Type, bi.Level))
	}
	for _, c := range p.ActiveConstruction {
		blds = append(blds, dimStyle.Render(fmt.Sprintf("%s→%d", c.Type, c.ToLevel)))
	}
	b.WriteString(strings.Join(blds, "  "))
	return b.String()
}
