package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title  lipgloss.Style
	Usage  lipgloss.Style
	Table  lipgloss.Style
	Notice lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Footer lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Title = lipgloss.NewStyle().Underline(true).Bold(true).Foreground(lipgloss.Color("81"))
		s.Usage = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		s.Table = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Notice = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		s.Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	} else {
		s.Title = lipgloss.NewStyle().Underline(true).Bold(true).Foreground(lipgloss.Color("27"))
		s.Usage = lipgloss.NewStyle()
		s.Table = lipgloss.NewStyle()
		s.Notice = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("130"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
		s.Footer = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return s
}
