package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/convect1d/internal/convect"
	"github.com/san-kum/convect1d/internal/field"
)

type TickMsg time.Time

// Model animates the advecting field in the terminal. Space pauses, r
// resets, b switches the boundary mode, q quits.
type Model struct {
	stepper  *convect.Stepper
	boundary convect.Boundary
	cfg      convect.Config
	initial  field.Field
	cur      field.Field
	next     field.Field
	stepN    int
	running  bool
	fps      int
	showHelp bool
}

func NewModel(u0 field.Field, cfg convect.Config, boundary convect.Boundary, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		stepper:  convect.New(boundary),
		boundary: boundary,
		cfg:      cfg,
		initial:  u0.Clone(),
		cur:      u0.Clone(),
		next:     make(field.Field, len(u0)),
		running:  true,
		fps:      fps,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "b":
			if m.boundary == convect.Wrap {
				m.boundary = convect.Clamp
			} else {
				m.boundary = convect.Wrap
			}
			m.stepper = convect.New(m.boundary)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.stepper.Step(m.next, m.cur, m.cfg.Courant())
	m.cur, m.next = m.next, m.cur
	m.stepN++
}

func (m *Model) reset() {
	m.cur = m.initial.Clone()
	m.next = make(field.Field, len(m.initial))
	m.stepN = 0
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("1-D LINEAR CONVECTION") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	s.WriteString(graphStyle.Render(PlotField(m.cur, fmt.Sprintf("u(x) after %d steps", m.stepN))) + "\n")

	t := float64(m.stepN) * m.cfg.Dt
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3fs", t)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.stepN)) + "\n")
	s.WriteString(labelStyle.Render("Boundary") + valueStyle.Render(m.boundary.String()) + "\n")

	sigma := m.cfg.Courant()
	courant := valueStyle.Render(fmt.Sprintf("%.3f", sigma))
	if sigma > 1 {
		courant = warnStyle.Render(fmt.Sprintf("%.3f (unstable)", sigma))
	}
	s.WriteString(labelStyle.Render("Courant") + courant + "\n")

	mass := m.cfg.Dx * m.cur.Sum()
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.4f", mass)) + "\n")
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("[%.3f, %.3f]", m.cur.Min(), m.cur.Max())) + "\n")

	if !m.cur.IsFinite() {
		s.WriteString(warnStyle.Render("field diverged (NaN/Inf) — press r to reset") + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("space: pause/resume   r: reset   b: toggle boundary   q: quit"))
	} else {
		s.WriteString(helpStyle.Render("?: help   q: quit"))
	}

	return s.String()
}
