package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style

	easy   lipgloss.Style
	medium lipgloss.Style
	hard   lipgloss.Style

	heat [5]lipgloss.Style // submission heatmap intensity buckets, cold to hot
}

func NewPalette(t, s, e, w, h string) *Palette {
	p := &Palette{
		title:  NewBold(t).MarginBottom(1),
		ok:     NewBold(s),
		err:    NewBold(e),
		warn:   NewStyle(w),
		help:   NewEm(h),
		easy:   NewStyle("#04B575"),
		medium: NewStyle("#FFA500"),
		hard:   NewStyle("#FF4D4F"),
	}
	for i, c := range [5]string{"#2D333B", "#0E4429", "#006D32", "#26A641", "#39D353"} {
		p.heat[i] = NewStyle(c)
	}
	return p
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// difficultyStyle maps a difficulty label to its display style.
func (p *Palette) difficultyStyle(d string) lipgloss.Style {
	switch d {
	case "Easy":
		return p.easy
	case "Medium":
		return p.medium
	case "Hard":
		return p.hard
	default:
		return p.help
	}
}
