package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	discardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	missStyle    = lipgloss.NewStyle().Faint(true)
)

// styledWriter renders each line written to it with style before passing it on.
type styledWriter struct {
	w     io.Writer
	style lipgloss.Style
}

func (s styledWriter) Write(p []byte) (int, error) {
	text := strings.TrimSuffix(string(p), "\n")
	if _, err := fmt.Fprintln(s.w, s.style.Render(text)); err != nil {
		return 0, err
	}
	return len(p), nil
}
