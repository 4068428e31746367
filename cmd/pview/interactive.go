package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/statelang/machine-runtime/types"
	"github.com/statelang/machine-runtime/typespec"
	"github.com/statelang/machine-runtime/value"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInspect
)

type browseModel struct {
	err      error
	resolved map[string]*types.Type
	specPath string
	names    []string
	view     viewport.Model
	selected int
	width    int
	height   int
	state    modelState
	ready    bool
}

type loadedMsg struct {
	err      error
	resolved map[string]*types.Type
	names    []string
}

func newBrowseModel(specPath string) *browseModel {
	return &browseModel{
		specPath: specPath,
		state:    stateSelectType,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadSpec
}

func (m *browseModel) loadSpec() tea.Msg {
	resolved, err := typespec.ParseFile(m.specPath, builtinRegistry())
	if err != nil {
		return loadedMsg{err: err}
	}
	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)
	return loadedMsg{resolved: resolved, names: names}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectType && len(m.names) > 0 {
				m.inspectSelected()
				m.state = stateInspect
			}

		case "esc":
			if m.state == stateInspect {
				m.state = stateSelectType
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - 4
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.resolved = msg.resolved
		m.names = msg.names
	}

	if m.state == stateInspect {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) inspectSelected() {
	name := m.names[m.selected]
	t := m.resolved[name]

	v := value.MkDefault(t)
	defer v.Free()

	var b strings.Builder
	b.WriteString(renderHeader(name, t))
	b.WriteByte('\n')
	b.WriteString(renderTree(v))
	m.view.SetContent(b.String())
	m.view.GotoTop()
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			helpStyle.Render("q: quit")
	}
	if len(m.names) == 0 {
		return helpStyle.Render("loading " + m.specPath + "...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("pview " + m.specPath))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		for i, name := range m.names {
			line := fmt.Sprintf("%s  %s", name, typeStyle.Render(m.resolved[name].String()))
			if i == m.selected {
				line = selectedStyle.Render("> " + name)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(helpStyle.Render("↑/↓: select  enter: inspect default value  q: quit"))

	case stateInspect:
		b.WriteString(m.view.View())
		b.WriteByte('\n')
		b.WriteString(helpStyle.Render("↑/↓: scroll  esc: back  q: quit"))
	}

	return b.String()
}

func runInteractive(specPath string) error {
	p := tea.NewProgram(newBrowseModel(specPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
