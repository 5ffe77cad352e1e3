package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Info      *color.Color
	Error     *color.Color
	Label     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Info:      color.New(color.FgBlue),
		Error:     color.New(color.FgRed, color.Bold),
		Label:     color.New(color.FgCyan),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.DisableColor()
	}
	return scheme
}

// forcedColorScheme returns the default scheme with colors on regardless of
// the global color.NoColor setting, which only looks at stdout.
func forcedColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()
	for _, c := range scheme.all() {
		c.EnableColor()
	}
	return scheme
}

func (s *ColorScheme) all() []*color.Color {
	return []*color.Color{s.Info, s.Error, s.Label, s.Highlight}
}
