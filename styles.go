package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	err lipgloss.Style
}

func newStyles() styles {
	return styles{
		err: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
