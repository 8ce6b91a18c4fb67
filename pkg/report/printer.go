package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass  = lipgloss.Color("#22C55E")
	colorFail  = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
)

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithoutColor disables ANSI styling even when the output is a terminal.
func WithoutColor() PrinterOption {
	return func(p *Printer) { p.plain = true }
}

// Printer writes one line per result followed by a summary line.
type Printer struct {
	w     io.Writer
	plain bool

	pass    lipgloss.Style
	fail    lipgloss.Style
	summary lipgloss.Style
}

// NewPrinter returns a Printer writing to w. Styles are rendered for w's
// colour profile, so non-terminal writers get plain text.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}

	r := lipgloss.NewRenderer(w)
	p.pass = r.NewStyle().Foreground(colorPass)
	p.fail = r.NewStyle().Foreground(colorFail)
	p.summary = r.NewStyle().Foreground(colorMuted)
	return p
}

// Print writes every result and the summary, returning the first write error.
func (p *Printer) Print(results []Result) error {
	for _, r := range results {
		if err := p.Line(r); err != nil {
			return err
		}
	}

	passed, _ := Summary(results)
	_, err := fmt.Fprintln(p.w, p.render(p.summary, fmt.Sprintf("%d/%d passed", passed, len(results))))
	return err
}

// Line writes a single "Pass - name" or "Fail - name" line.
func (p *Printer) Line(r Result) error {
	var line string
	if r.Passed() {
		line = p.render(p.pass, "Pass - "+r.Name)
	} else {
		line = p.render(p.fail, "Fail - "+r.Name)
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}
