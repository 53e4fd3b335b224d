package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/officedays/officedays/internal/attendance"
)

const lineFormat = "%-20s %4d"

// Renderer writes attendance reports. Colour is only emitted when the
// underlying writer is a terminal.
type Renderer struct {
	w       io.Writer
	title   lipgloss.Style
	alert   lipgloss.Style
	success lipgloss.Style
}

// New creates a renderer bound to w
func New(w io.Writer) *Renderer {
	return newRenderer(w, lipgloss.NewRenderer(w))
}

func newRenderer(w io.Writer, r *lipgloss.Renderer) *Renderer {
	return &Renderer{
		w:       w,
		title:   r.NewStyle().Bold(true),
		alert:   r.NewStyle().Foreground(lipgloss.Color("1")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Render prints the quarter report
func (r *Renderer) Render(s attendance.Summary) error {
	var b strings.Builder

	b.WriteString(r.title.Render(fmt.Sprintf("%s Days Required in the Office", s.Quarter)))
	b.WriteString("\n\n")

	writeLine(&b, "Days Required", s.Required)
	writeLine(&b, "Leave Adjustment", s.Adjustment)
	writeLine(&b, "Total Office Days", s.Total)
	b.WriteString("\n")

	writeLine(&b, "Days Worked", s.Worked)
	b.WriteString(r.status(s.Behind()).Render(fmt.Sprintf(lineFormat, "Days Remaining", s.Remaining)))
	b.WriteString("\n")
	b.WriteString(r.status(s.ProjectedShort()).Render(fmt.Sprintf(lineFormat, "Days Projected", s.Projected)))
	b.WriteString("\n")

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *Renderer) status(behind bool) lipgloss.Style {
	if behind {
		return r.alert
	}
	return r.success
}

func writeLine(b *strings.Builder, label string, value int) {
	fmt.Fprintf(b, lineFormat+"\n", label, value)
}
