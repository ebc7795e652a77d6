package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PickerItem is one entry shown in the interactive picker.
type PickerItem struct {
	Label    string // primary text (the validator kind)
	SubLabel string // dimmed one-line description
	Value    string // value returned on selection
}

// pickerModel is the Bubble Tea model for the kind picker. choice holds
// the index of the confirmed item, -1 while undecided.
type pickerModel struct {
	title     string
	items     []PickerItem
	cursor    int
	choice    int
	cancelled bool
}

func newPicker(title string, items []PickerItem) pickerModel {
	return pickerModel{title: title, items: items, choice: -1}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.choice = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.cancelled || m.choice >= 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n\n", StyleTitle.Render("  "+m.title))
	for i, item := range m.items {
		if i == m.cursor {
			sb.WriteString(StyleSelected.Render("  ▸ "+item.Label+"  "+item.SubLabel) + "\n")
			continue
		}
		line := "    " + StyleValue.Render(item.Label)
		if item.SubLabel != "" {
			line += "  " + StyleMeta.Render(item.SubLabel)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n" + StyleMeta.Render("  ↑↓/jk move · enter select · q cancel") + "\n")
	return sb.String()
}

// PickItem runs the interactive picker and returns the chosen item's
// Value, or ("", nil) when the user cancels. The picker renders inline
// (no alternate screen) so whatever the caller prints next follows it
// in the scrollback.
func PickItem(title string, items []PickerItem) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no items to pick from")
	}

	final, err := tea.NewProgram(newPicker(title, items)).Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}

	m := final.(pickerModel)
	if m.cancelled || m.choice < 0 {
		return "", nil
	}
	return items[m.choice].Value, nil
}
