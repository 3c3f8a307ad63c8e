package pairs

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/pairup/internal/pairing"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	plan   pairing.Plan
	opts   RenderOptions
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = renderPlan(m.plan, m.opts, m.styles)
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render draws a rotation plan through a headless bubbletea program.
func Render(plan pairing.Plan, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{plan: plan, opts: opts, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
