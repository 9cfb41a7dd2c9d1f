// Package tui implements the interactive calculator: a single date input
// with a live EDD/WOA result panel.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/naegele/internal/calculation"
	"github.com/rgehrsitz/naegele/internal/domain"
)

// Model represents the calculator state.
type Model struct {
	// Date input
	input textinput.Model

	// Calculation engine
	engine *calculation.Engine

	// Latest outcome; result and err are mutually exclusive
	result *domain.Result
	err    error

	// Terminal dimensions
	width  int
	height int
}

// NewModel creates the calculator model with a focused date input.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "dd/mm/yyyy"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		input:  ti,
		engine: calculation.NewEngine(),
		width:  80,
		height: 24,
	}
}

// Init initializes the model (required by the tea.Model interface).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// computeCmd returns a command that runs the calculation and delivers the
// outcome as a ResultMsg.
func computeCmd(engine *calculation.Engine, lnmp string) tea.Cmd {
	return func() tea.Msg {
		res, err := engine.Compute(lnmp)
		return ResultMsg{Result: res, Err: err}
	}
}
