// Package tui provides the interactive terminal prompt for numberourdays.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/numberourdays/numberourdays/internal/config"
)

// Theme contains all style definitions for the prompt.
type Theme struct {
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	MutedColor     lipgloss.Color
	ErrorColor     lipgloss.Color
	SuccessColor   lipgloss.Color

	Title       lipgloss.Style
	Step        lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Box         lipgloss.Style
	Help        lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
}

// NewTheme creates a theme matching the poster theme, so the terminal
// and the printed page share a palette.
func NewTheme(name config.ThemeName) *Theme {
	switch name {
	case config.ThemeSepia:
		return newSepiaTheme()
	default:
		return newClassicTheme()
	}
}

// newClassicTheme mirrors the gray and blue poster.
func newClassicTheme() *Theme {
	primary := lipgloss.Color("#5F87FF")
	secondary := lipgloss.Color("#AAAAAA")
	accent := lipgloss.Color("#FFFFFF")
	muted := lipgloss.Color("#666666")
	errorColor := lipgloss.Color("#FF4444")
	successColor := lipgloss.Color("#5FD75F")

	return buildTheme(primary, secondary, accent, muted, errorColor, successColor)
}

// newSepiaTheme mirrors the warm print palette.
func newSepiaTheme() *Theme {
	primary := lipgloss.Color("#5F9EA0")
	secondary := lipgloss.Color("#B9A58A")
	accent := lipgloss.Color("#FFFDF7")
	muted := lipgloss.Color("#7A6A55")
	errorColor := lipgloss.Color("#D7263D")
	successColor := lipgloss.Color("#8FBC8F")

	return buildTheme(primary, secondary, accent, muted, errorColor, successColor)
}

func buildTheme(primary, secondary, accent, muted, errorColor, successColor lipgloss.Color) *Theme {
	t := &Theme{
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		AccentColor:    accent,
		MutedColor:     muted,
		ErrorColor:     errorColor,
		SuccessColor:   successColor,
	}

	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.Step = lipgloss.NewStyle().
		Foreground(muted)

	t.Label = lipgloss.NewStyle().
		Foreground(secondary)

	t.Value = lipgloss.NewStyle().
		Foreground(primary).
		Bold(true)

	t.Input = lipgloss.NewStyle().
		Foreground(accent)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(muted)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.Help = lipgloss.NewStyle().
		Foreground(muted)

	t.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	t.Success = lipgloss.NewStyle().
		Foreground(successColor)

	return t
}
