// ============================================================================
// jackc - Jack Syntax Analyzer
// ============================================================================
//
// Package:     treeview
// Description: Styles for the parse tree viewer
// Author:      Mike Stoffels
// Created:     2025-02-20
// License:     MIT
// ============================================================================

package treeview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/jackc/foundation/jack/token"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// Token kind colors
	ColorKeyword     = lipgloss.Color("#C084FC") // Purple 400
	ColorSymbol      = lipgloss.Color("#94A3B8") // Slate 400
	ColorIdentifier  = lipgloss.Color("#38BDF8") // Sky 400
	ColorIntConst    = lipgloss.Color("#FBBF24") // Amber 400
	ColorStringConst = lipgloss.Color("#34D399") // Emerald 400
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Tree row styles
var (
	ElementStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	GuideStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	KindStyles = map[token.Kind]lipgloss.Style{
		token.KindKeyword:     lipgloss.NewStyle().Foreground(ColorKeyword).Bold(true),
		token.KindSymbol:      lipgloss.NewStyle().Foreground(ColorSymbol),
		token.KindIdentifier:  lipgloss.NewStyle().Foreground(ColorIdentifier),
		token.KindIntConst:    lipgloss.NewStyle().Foreground(ColorIntConst),
		token.KindStringConst: lipgloss.NewStyle().Foreground(ColorStringConst),
	}
)

// Panel/Box styles
var (
	TreePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FilterBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Filter badge styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Logo
const Logo = "jackc TreeView"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderFilterStatus renders a filter status indicator
func RenderFilterStatus(name string, active bool) string {
	if active {
		return FilterActiveStyle.Render(name)
	}
	return FilterInactiveStyle.Render(name)
}

// kindStyle returns the style for a token kind
func kindStyle(kind token.Kind) lipgloss.Style {
	if style, ok := KindStyles[kind]; ok {
		return style
	}
	return lipgloss.NewStyle().Foreground(ColorError)
}
