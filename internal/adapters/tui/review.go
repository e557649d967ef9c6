package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/focuspulse/pulse/internal/config"
)

// ReviewResult holds the outcome of the post-session review prompt.
type ReviewResult struct {
	Rating  int
	Note    string
	Aborted bool
}

type reviewModel struct {
	rating    int
	noteInput textinput.Model
	onNote    bool
	done      bool
	aborted   bool
	theme     config.ThemeConfig
}

// RunReview prompts for a 1-5 focus rating and an optional note after a
// completed focus session.
func RunReview(theme config.ThemeConfig) ReviewResult {
	note := textinput.New()
	note.Placeholder = "Optional note (enter to finish)"
	note.CharLimit = 200

	model := reviewModel{rating: 3, noteInput: note, theme: theme}
	program := tea.NewProgram(model)
	final, err := program.Run()
	if err != nil {
		return ReviewResult{Aborted: true}
	}

	result := final.(reviewModel)
	if result.aborted {
		return ReviewResult{Aborted: true}
	}
	return ReviewResult{
		Rating: result.rating,
		Note:   strings.TrimSpace(result.noteInput.Value()),
	}
}

func (m reviewModel) Init() tea.Cmd { return nil }

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" || key.String() == "esc" {
		m.aborted = true
		return m, tea.Quit
	}

	if m.onNote {
		if key.String() == "enter" {
			m.done = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "left", "h":
		if m.rating > 1 {
			m.rating--
		}
	case "right", "l":
		if m.rating < 5 {
			m.rating++
		}
	case "1", "2", "3", "4", "5":
		m.rating = int(key.String()[0] - '0')
	case "enter":
		m.onNote = true
		return m, m.noteInput.Focus()
	}
	return m, nil
}

func (m reviewModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorFocus))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorDim))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  How focused were you?") + "\n\n")

	var scale []string
	for i := 1; i <= 5; i++ {
		mark := "○"
		if i <= m.rating {
			mark = "●"
		}
		if i == m.rating {
			scale = append(scale, activeStyle.Render(mark))
		} else {
			scale = append(scale, dimStyle.Render(mark))
		}
	}
	b.WriteString("  " + strings.Join(scale, " ") + dimStyle.Render("  ("+string(rune('0'+m.rating))+"/5)") + "\n\n")

	if m.onNote {
		b.WriteString("  " + m.noteInput.View() + "\n")
	} else {
		b.WriteString(dimStyle.Render("  ←/→ or 1-5 adjust · enter continue · esc skip") + "\n")
	}
	return b.String()
}
