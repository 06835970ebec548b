package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_KeyDecisions(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want Decision
	}{
		{"a applies", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, Apply},
		{"enter applies", tea.KeyMsg{Type: tea.KeyEnter}, Apply},
		{"n skips", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, Skip},
		{"esc skips", tea.KeyMsg{Type: tea.KeyEsc}, Skip},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel("# preview\n", 80, 10)
			require.NoError(t, err)

			next, cmd := m.Update(tt.key)

			assert.Equal(t, tt.want, next.(Model).Decision())
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_OtherKeysScroll(t *testing.T) {
	m, err := NewModel("# preview\n", 80, 10)
	require.NoError(t, err)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, Pending, next.(Model).Decision())
}

func TestModel_WindowShrinksViewport(t *testing.T) {
	m, err := NewModel("# preview\n", 80, 30)
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	assert.Less(t, next.(Model).viewport.Height, 30)
}

func TestModel_View(t *testing.T) {
	m, err := NewModel("# preview\n\nhello\n", 80, 10)
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "a/enter: Apply")
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "apply", Apply.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "pending", Pending.String())
}
