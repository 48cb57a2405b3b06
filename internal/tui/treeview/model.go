// ============================================================================
// jackc - Jack Syntax Analyzer
// ============================================================================
//
// Package:     treeview
// Description: Main Bubbletea model for the parse tree viewer
// Author:      Mike Stoffels
// Created:     2025-02-20
// License:     MIT
// ============================================================================

package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/jackc/foundation/jack"
	"github.com/msto63/jackc/foundation/jack/token"
	"github.com/msto63/jackc/foundation/utils/filex"
	"github.com/msto63/jackc/pkg/core/version"
)

// Model is the main Bubbletea model for the tree viewer
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	viewport viewport.Model

	// Tree state
	result  *jack.Result
	allRows []Row
	visible []Row
	filter  LeafFilter
}

// New creates a viewer for an analysis result
func New(result *jack.Result) Model {
	m := Model{
		result:  result,
		allRows: Flatten(result.Tree),
		filter:  ShowAll(),
	}
	m.applyFilter()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // Title panel + filter bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyRunes:
		key := string(msg.Runes)
		if m.filter.Toggle(key) {
			m.applyFilter()
			m.updateViewportContent()
			return m, nil
		}

		switch key {
		// Show all kinds
		case "0":
			m.filter = ShowAll()
			m.applyFilter()
			m.updateViewportContent()
			return m, nil

		// Go to top
		case "g":
			m.viewport.GotoTop()
			return m, nil

		// Go to bottom
		case "G":
			m.viewport.GotoBottom()
			return m, nil

		case "q":
			return m, tea.Quit
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading tree..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderTreeArea())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo, file and statistics
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	file := HeaderStyle.Render(m.result.Name)
	stats := SubHeaderStyle.Render(fmt.Sprintf("%d elements, %d terminals, depth %d, %s",
		m.result.Stats.Elements,
		m.result.Stats.Terminals,
		m.result.Stats.MaxDepth,
		filex.FormatSize(int64(m.result.Bytes)),
	))

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		file,
		strings.Repeat(" ", 3),
		stats,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderFilterBar renders the leaf kind filter bar
func (m Model) renderFilterBar() string {
	filters := []string{
		fmt.Sprintf("1:%s", RenderFilterStatus(token.KindKeyword.Tag(), m.filter.Keyword)),
		fmt.Sprintf("2:%s", RenderFilterStatus(token.KindSymbol.Tag(), m.filter.Symbol)),
		fmt.Sprintf("3:%s", RenderFilterStatus(token.KindIdentifier.Tag(), m.filter.Identifier)),
		fmt.Sprintf("4:%s", RenderFilterStatus(token.KindIntConst.Tag(), m.filter.IntConst)),
		fmt.Sprintf("5:%s", RenderFilterStatus(token.KindStringConst.Tag(), m.filter.StringConst)),
	}

	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d/%d rows]", len(m.Visible()), len(m.allRows)))
	content := strings.Join(filters, "  ") + "  " + countStr

	return FilterBarStyle.Width(m.width - 2).Render(content)
}

// renderTreeArea renders the main tree viewport
func (m Model) renderTreeArea() string {
	style := TreePanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	leftPart := HelpDescStyle.Render(fmt.Sprintf("run %s", m.result.RunID))
	rightPart := HelpDescStyle.Render(fmt.Sprintf("%3.f%%  v%s", m.viewport.ScrollPercent()*100, version.Tool))

	padding := m.width - lipgloss.Width(leftPart) - lipgloss.Width(rightPart) - 4
	if padding < 2 {
		padding = 2
	}

	return StatusBarStyle.Width(m.width - 2).Render(leftPart + strings.Repeat(" ", padding) + rightPart)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("1-5", "Kinds"),
		RenderKeyHint("0", "All"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("↑/↓ PgUp/PgDn", "Scroll"),
		RenderKeyHint("q", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with the visible rows
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(RenderRows(m.visible))
}

// applyFilter recomputes the visible rows
func (m *Model) applyFilter() {
	m.visible = Filter(m.allRows, m.filter)
}

// Filter returns the current leaf filter
func (m Model) Filter() LeafFilter {
	return m.filter
}

// Visible returns the rows currently shown
func (m Model) Visible() []Row {
	return m.visible
}

// Run starts the viewer in the alternate screen and blocks until it quits
func Run(result *jack.Result) error {
	p := tea.NewProgram(New(result), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
