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

const (
	focusStart = iota
	focusEnd
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	startInput     textinput.Model
	endInput       textinput.Model
	resultViewport viewport.Model
	focusIndex     int

	game       *Game
	lastReport *Report
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accentColor()).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

func newWordInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 24
	return ti
}

// InitialModel creates the initial model
func InitialModel(game *Game) Model {
	limit := game.config.Dictionary.MaxWordLength - 1

	startInput := newWordInput("start word", limit)
	startInput.Focus()
	endInput := newWordInput("end word", limit)

	resultViewport := viewport.New(0, 0)
	resultViewport.SetContent("Type two words of the same length and press enter...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		startInput:      startInput,
		endInput:        endInput,
		resultViewport:  resultViewport,
		focusIndex:      focusStart,
		game:            game,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "enter":
			m.solve()
			return m, nil
		case "ctrl+r":
			start, end, err := m.game.words.RandomPair(0, m.game.rng)
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			m.startInput.SetValue(start)
			m.endInput.SetValue(end)
			m.solve()
			return m, nil
		case "ctrl+y":
			m.copyLadder()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.resultViewport, cmd = m.resultViewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		if m.focusIndex == focusStart {
			m.startInput, cmd = m.startInput.Update(msg)
		} else {
			m.endInput, cmd = m.endInput.Update(msg)
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	if m.focusIndex == focusStart {
		m.focusIndex = focusEnd
		m.startInput.Blur()
		m.endInput.Focus()
	} else {
		m.focusIndex = focusStart
		m.endInput.Blur()
		m.startInput.Focus()
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// solve runs both searches on the current inputs and renders the report.
func (m *Model) solve() {
	start, end := m.startInput.Value(), m.endInput.Value()
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		m.setStatus("enter both words first", true)
		return
	}

	report := m.game.Play(start, end)
	m.lastReport = report
	if report.Err != nil {
		m.setStatus(failureReason(report.Err), true)
	} else {
		m.setStatus(fmt.Sprintf("solved %s → %s", report.Start, report.End), false)
	}

	content := reportMarkdown(report)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		}
	}
	m.resultViewport.SetContent(content)
	m.resultViewport.GotoTop()
}

// bestLadder is the shortest ladder of the last report, if any.
func (m *Model) bestLadder() []string {
	if m.lastReport == nil {
		return nil
	}
	var best []string
	for _, o := range m.lastReport.Outcomes {
		if o.Err == nil && (best == nil || len(o.Result.Ladder) < len(best)) {
			best = o.Result.Ladder
		}
	}
	return best
}

func (m *Model) copyLadder() {
	best := m.bestLadder()
	if best == nil {
		m.setStatus("nothing to copy yet", true)
		return
	}
	if err := clipboard.WriteAll(strings.Join(best, " ")); err != nil {
		m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
		return
	}
	m.setStatus("📋 ladder copied to clipboard", false)
}

func (m *Model) updateLayout() {
	// title, inputs, status and help take roughly eight rows
	m.resultViewport.Width = max(m.width-4, 20)
	m.resultViewport.Height = max(m.height-12, 5)
}

// View renders the program's UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render("🪜 Laddergame")

	startBox, endBox := m.styles.BorderBlurred, m.styles.BorderBlurred
	if m.focusIndex == focusStart {
		startBox = m.styles.BorderFocused
	} else {
		endBox = m.styles.BorderFocused
	}
	inputs := lipgloss.JoinHorizontal(lipgloss.Top,
		startBox.Render(m.styles.InputPrompt.Render("From ")+m.startInput.View()),
		" ",
		endBox.Render(m.styles.InputPrompt.Render("To ")+m.endInput.View()),
	)

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.ErrorMessage.Render(m.status)
		} else {
			status = m.styles.SuccessMessage.Render(m.status)
		}
	}

	results := m.styles.BorderBlurred.Render(m.resultViewport.View())

	help := strings.Join([]string{
		m.styles.HelpKey.Render("enter") + m.styles.HelpDesc.Render(" solve"),
		m.styles.HelpKey.Render("tab") + m.styles.HelpDesc.Render(" switch"),
		m.styles.HelpKey.Render("ctrl+r") + m.styles.HelpDesc.Render(" random"),
		m.styles.HelpKey.Render("ctrl+y") + m.styles.HelpDesc.Render(" copy"),
		m.styles.HelpKey.Render("pgup/pgdown") + m.styles.HelpDesc.Render(" scroll"),
		m.styles.HelpKey.Render("esc") + m.styles.HelpDesc.Render(" quit"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left, title, inputs, status, results, help)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(game *Game) error {
	program := tea.NewProgram(
		InitialModel(game),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
