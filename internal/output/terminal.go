package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// supportsColors checks the environment for color preferences.
func supportsColors() bool {
	// Check for explicit color disable
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for explicit color enable
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	term := os.Getenv("TERM")
	return term != "dumb"
}

// UseColors decides whether output written to w should be colored.
func UseColors(w io.Writer, noColor bool) bool {
	if noColor || !supportsColors() {
		return false
	}
	return os.Getenv("FORCE_COLOR") != "" || IsTerminal(w)
}
