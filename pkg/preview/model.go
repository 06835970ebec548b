package preview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Decision is what the user chose in the preview.
type Decision int

const (
	// Pending means the preview ended without a choice.
	Pending Decision = iota
	// Apply writes the destination file.
	Apply
	// Skip leaves the destination untouched.
	Skip
	// Quit aborts the program.
	Quit
)

func (d Decision) String() string {
	switch d {
	case Apply:
		return "apply"
	case Skip:
		return "skip"
	case Quit:
		return "quit"
	default:
		return "pending"
	}
}

const (
	defaultWidth  = 100
	defaultHeight = 32
	helpText      = "\n  ↑/↓: Navigate • a/enter: Apply • n/esc: Skip • q: Quit\n"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)

// Model is the bubbletea model of the preview.
type Model struct {
	viewport viewport.Model
	decision Decision
}

// NewModel renders the markdown content into a viewport of the given size.
func NewModel(content string, width, height int) (Model, error) {
	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		PaddingRight(2)

	// glamour wraps inside the viewport's border and padding and adds a
	// gutter of its own on the left.
	const glamourGutter = 2
	renderWidth := width - vp.Style.GetHorizontalFrameSize() - glamourGutter

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return Model{}, err
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return Model{}, err
	}
	vp.SetContent(rendered)

	return Model{viewport: vp}, nil
}

// Decision returns the user's choice.
func (m Model) Decision() Decision {
	return m.decision
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		helpHeight := lipgloss.Height(helpText)
		if h := msg.Height - helpHeight - m.viewport.Style.GetVerticalFrameSize(); h > 0 && h < m.viewport.Height {
			m.viewport.Height = h
		}
		return m, nil
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.decision = Quit
			return m, tea.Quit
		case "n", "esc":
			m.decision = Skip
			return m, tea.Quit
		case "a", "enter":
			m.decision = Apply
			return m, tea.Quit
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	return m.viewport.View() + helpStyle.Render(helpText)
}

// Run shows content and blocks until the user decides.
func Run(content string, opts ...tea.ProgramOption) (Decision, error) {
	m, err := NewModel(content, defaultWidth, defaultHeight)
	if err != nil {
		return Pending, err
	}

	opts = append([]tea.ProgramOption{tea.WithMouseCellMotion()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return Pending, err
	}
	if fm, ok := final.(Model); ok {
		return fm.decision, nil
	}
	return Pending, nil
}
