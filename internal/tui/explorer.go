// Interactive parameter explorer built on bubbletea
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"bennu-impact-sim/internal/config"
	"bennu-impact-sim/internal/impact"
	"bennu-impact-sim/internal/scenario"
	"bennu-impact-sim/internal/sim"
)

const (
	fieldDiameter = iota
	fieldVelocity
	fieldForce
	fieldAngle
	fieldLead
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Diameter (km)",
	"Velocity (km/s)",
	"Deflection (cm/s)",
	"Approach angle (deg)",
	"Lead time (years)",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("8"))
	focusStyle  = labelStyle.Foreground(lipgloss.Color("15")).Bold(true)
	missStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	impactStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// locationModes are cycled with the l key.
var locationModes = []string{"random", "ocean", "inland"}

// switchLocator lets the explorer pin the impact location without rebuilding
// the calculator.
type switchLocator struct {
	mode   string
	random impact.LocationPicker
}

func (s *switchLocator) PickLocation() impact.Location {
	switch s.mode {
	case "ocean":
		return impact.LocationOcean
	case "inland":
		return impact.LocationInland
	}
	return s.random.PickLocation()
}

// Model is the explorer's bubbletea model.
type Model struct {
	sim     *sim.Simulator
	locator *switchLocator
	inputs  []textinput.Model
	focus   int
	vp      viewport.Model
	width   int
	height  int
	row     *sim.ResultRow
	err     error
}

// New builds an explorer from cfg. Each evaluation is forwarded to writer
// and observer when they are non-nil.
func New(cfg *config.Config, writer sim.ResultWriter, observer sim.Observer) (Model, error) {
	opts, err := cfg.CalculatorOptions()
	if err != nil {
		return Model{}, err
	}
	loc := &switchLocator{mode: locationModes[0], random: opts.Locator}
	opts.Locator = loc
	calc, err := impact.NewCalculator(opts)
	if err != nil {
		return Model{}, err
	}

	values := [fieldCount]float64{
		cfg.Defaults.DiameterKM,
		cfg.Defaults.VelocityKMS,
		cfg.Defaults.DeflectionForce,
		cfg.Defaults.ApproachAngleDeg,
		cfg.Defaults.LeadTimeYears,
	}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 24
		ti.SetValue(strconv.FormatFloat(values[i], 'g', -1, 64))
		inputs[i] = ti
	}
	inputs[0].Focus()

	return Model{
		sim:     sim.NewSimulator(calc, writer, observer),
		locator: loc,
		inputs:  inputs,
		vp:      viewport.New(80, 10),
	}, nil
}

// Run starts the explorer in the alternate screen and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func isNumericInput(runes []rune) bool {
	for _, r := range runes {
		if !strings.ContainsRune("0123456789.-+eE", r) {
			return false
		}
	}
	return len(runes) > 0
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		h := msg.Height - fieldCount - 6
		if h < 1 {
			h = 1
		}
		m.vp.Height = h
		m.refreshViewport()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			m.evaluate()
			return m, nil
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "l":
			m.locator.mode = nextMode(m.locator.mode)
			return m, nil
		case "pgdown", "pgup":
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyRunes && !isNumericInput(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func nextMode(mode string) string {
	for i, lm := range locationModes {
		if lm == mode {
			return locationModes[(i+1)%len(locationModes)]
		}
	}
	return locationModes[0]
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// scenario reads the form into a scenario. An empty angle or lead time field
// leaves the value unset.
func (m Model) scenario() (scenario.Scenario, error) {
	var v [fieldCount]float64
	var set [fieldCount]bool
	for i, in := range m.inputs {
		raw := strings.TrimSpace(in.Value())
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return scenario.Scenario{}, &impact.ParamError{Field: fieldLabels[i], Value: math.NaN(), Reason: fmt.Sprintf("not a number: %q", raw)}
		}
		v[i] = f
		set[i] = true
	}
	sc := scenario.Scenario{
		Name:            "explore",
		DiameterKM:      v[fieldDiameter],
		VelocityKMS:     v[fieldVelocity],
		DeflectionForce: v[fieldForce],
	}
	if set[fieldAngle] {
		sc.ApproachAngleDeg = impact.Angle(v[fieldAngle])
	}
	if set[fieldLead] {
		sc.LeadTimeYears = scenario.Years(v[fieldLead])
	}
	return sc, nil
}

func (m *Model) evaluate() {
	sc, err := m.scenario()
	if err == nil {
		var row sim.ResultRow
		row, err = m.sim.RunScenario(sc)
		if err == nil {
			m.row = &row
		}
	}
	m.err = err
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if m.row == nil {
		m.vp.SetContent(helpStyle.Render("Press enter to simulate."))
		return
	}
	res := m.row.Result
	width := m.vp.Width - 2
	if width < 10 {
		width = 10
	}
	var b strings.Builder
	if res.WillImpact {
		b.WriteString(impactStyle.Render(res.Outcome))
	} else {
		b.WriteString(missStyle.Render(res.Outcome))
	}
	b.WriteString("\n")
	for _, d := range res.Details {
		b.WriteString(wordwrap.String("• "+d, width))
		b.WriteString("\n")
	}
	m.vp.SetContent(b.String())
	m.vp.GotoTop()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Bennu Impact Explorer"))
	b.WriteString("\n\n")
	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusStyle
		}
		b.WriteString(style.Render(fieldLabels[i]) + in.View() + "\n")
	}
	b.WriteString(labelStyle.Render("Location") + m.locator.mode + "\n")
	b.WriteString(strings.Repeat("─", max(m.vp.Width, 1)) + "\n")
	b.WriteString(m.vp.View() + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("enter simulate • tab next field • l location • q quit"))
	return b.String()
}
