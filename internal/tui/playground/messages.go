// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     playground
// Description: Message types for the transform playground
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package playground

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays visible
const statusTimeout = 2 * time.Second

// clearStatusMsg removes the status line if it is still the one with id
type clearStatusMsg struct {
	id int
}

func clearStatusAfter(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
