// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const visualizerHelp = `# avlkit visualizer

Type a command and press **enter**.

| Command | Effect |
|---|---|
| ` + "`insert 10 20 30`" + ` | insert keys (a bare list of numbers works too) |
| ` + "`contains 15`" + ` | membership test |
| ` + "`depth 15`" + ` | edges from the root, -1 when absent |
| ` + "`reset`" + ` | start over with an empty tree |

Every line of the tree shows the key and its balance factor,
` + "`BF = height(left) - height(right)`" + `. After each insert the tree
is rebalanced with left/right rotations so every BF stays in [-1, 1].
`

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model
	helpView viewport.Model

	session *Session

	// State
	focusOnTree bool
	showHelp    bool
	status      string
	statusErr   bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Root).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Found).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Missing).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(session *Session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30 · contains 15 · help"
	ti.Prompt = "🌳 "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	treeView := viewport.New(0, 0)
	treeView.SetContent(session.Dump())

	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		input:           ti,
		treeView:        treeView,
		helpView:        helpView,
		session:         session,
		status:          session.Summary(),
		styles:          NewStyles(GetColorScheme()),
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.updateHelp()
			m.updateLayout()
			return m, nil
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.input.Blur()
			} else {
				cmd = m.input.Focus()
			}
			return m, cmd
		case "ctrl+y":
			if err := copyToClipboard(m.session.PlainDump()); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("📋 Copied tree to clipboard", false)
			}
			return m, nil
		case "enter":
			if !m.focusOnTree {
				m.execInput()
				return m, nil
			}
		}

		if m.focusOnTree {
			m.treeView, cmd = m.treeView.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *Model) execInput() {
	line := m.input.Value()
	m.input.SetValue("")

	action, err := parseAction(line)
	if err == nil && action != nil && action.Kind == ActionHelp {
		m.showHelp = true
		m.updateHelp()
		m.updateLayout()
	}

	msg, err := m.session.Exec(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if msg == "" {
		msg = m.session.Summary()
	} else {
		msg = msg + " · " + m.session.Summary()
	}
	m.setStatus(msg, false)
	m.treeView.SetContent(m.session.Dump())
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// updateHelp renders the help markdown into the help viewport
func (m *Model) updateHelp() {
	if m.glamourRenderer == nil {
		m.helpView.SetContent(visualizerHelp)
		return
	}
	if rendered, err := m.glamourRenderer.Render(visualizerHelp); err == nil {
		m.helpView.SetContent(rendered)
	} else {
		m.helpView.SetContent(visualizerHelp)
	}
}

func (m Model) columnWidths() (left, right int) {
	if !m.showHelp {
		return m.width - 2, 0
	}
	left = (m.width * 6 / 10) - 1
	right = m.width - left - 3
	return left, right
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	treeHeight := m.height - inputHeight - 8
	leftWidth, rightWidth := m.columnWidths()

	m.input.Width = leftWidth - 6
	m.treeView.Width = leftWidth - 2
	m.treeView.Height = max(treeHeight, 1)
	m.helpView.Width = max(rightWidth-2, 0)
	m.helpView.Height = max(treeHeight+inputHeight+2, 1)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth, rightWidth := m.columnWidths()

	inputStyle, treeStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusOnTree {
		inputStyle, treeStyle = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" ⌨️  Command "),
			m.input.View(),
		))

	treeBox := treeStyle.
		Width(leftWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🌳 AVL Tree "),
			m.treeView.View(),
		))

	body := lipgloss.JoinVertical(lipgloss.Left, inputBox, treeBox)

	if m.showHelp {
		helpBox := m.styles.BorderBlurred.
			Width(rightWidth).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📖 Help "),
				m.helpView.View(),
			))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, helpBox)
	}

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		body,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status)),
		m.renderKeyHelp(),
	)
}

// renderKeyHelp renders the help footer
func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "tab", "ctrl+y", "f1", "esc"}
	descs := []string{"run command", "switch focus", "copy tree", "toggle help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session) error {
	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
