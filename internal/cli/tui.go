package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// GroupListModel - Interactive resource group selection
// =============================================================================

// GroupListModel is the bubbletea model for picking resource groups.
// Multiple groups can be toggled; confirming with no toggles selects all.
type GroupListModel struct {
	Groups    []string
	Cursor    int
	Checked   map[int]bool
	Confirmed bool
	Cancelled bool
	Height    int
	Offset    int
}

// NewGroupListModel creates a new group list model.
func NewGroupListModel(groups []string) GroupListModel {
	return GroupListModel{
		Groups:  groups,
		Checked: make(map[int]bool),
		Height:  15,
	}
}

func (m GroupListModel) Init() tea.Cmd {
	return nil
}

func (m GroupListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Groups)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			all := len(m.Selected()) != len(m.Groups)
			for i := range m.Groups {
				m.Checked[i] = all
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// Selected returns the checked group names in list order.
func (m GroupListModel) Selected() []string {
	var out []string
	for i, g := range m.Groups {
		if m.Checked[i] {
			out = append(out, g)
		}
	}
	return out
}

func (m GroupListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Resource Groups"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Groups) {
		end = len(m.Groups)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = StyleSuccess.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, m.Groups[i])
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if m.Checked[i] {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	count := len(m.Selected())
	status := "all groups"
	if count > 0 {
		status = fmt.Sprintf("%d of %d selected", count, len(m.Groups))
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Groups), status)))

	return b.String()
}

// runGroupPicker runs the picker and returns the selection. A nil slice with
// nil error means the user cancelled; an empty slice means all groups.
func runGroupPicker(ctx context.Context, groups []string) ([]string, error) {
	program := tea.NewProgram(NewGroupListModel(groups), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(GroupListModel)
	if !ok || m.Cancelled || !m.Confirmed {
		return nil, nil
	}
	selected := m.Selected()
	if selected == nil {
		return []string{}, nil
	}
	return selected, nil
}
