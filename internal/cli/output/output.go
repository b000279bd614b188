// Package output handles CLI rendering: output-mode resolution and the
// lipgloss styles shared by the commands.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode selects how command results are rendered.
type Mode string

// Output modes. Auto resolves to styled Text on a TTY and plain text
// otherwise; JSON is only ever explicit.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Styles holds the status styles used across commands.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

// plainStyles render without escape codes, for pipes and logs.
func plainStyles() *Styles {
	s := lipgloss.NewStyle()
	return &Styles{Success: s, Error: s, Warning: s, Info: s}
}

// Renderer writes command output in the resolved mode.
type Renderer struct {
	Out    io.Writer
	JSON   bool
	Styles *Styles
}

// NewRenderer resolves mode against the writer and returns a renderer.
func NewRenderer(w io.Writer, mode Mode) *Renderer {
	r := &Renderer{Out: w, Styles: plainStyles()}
	switch mode {
	case ModeJSON:
		r.JSON = true
	case ModeText:
		r.Styles = defaultStyles()
	default:
		if isTTY(w) {
			r.Styles = defaultStyles()
		}
	}
	return r
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
