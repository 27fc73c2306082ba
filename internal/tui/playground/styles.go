// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     playground
// Description: Styles for the transform playground TUI
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - Same as other TUI components for consistency
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextDim = lipgloss.Color("#64748B") // Slate 500
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// SentinelStyle renders zero bytes
	SentinelStyle = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	// EscapeStyle renders bytes outside printable ASCII
	EscapeStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	MetaStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
