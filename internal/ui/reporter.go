// Package ui renders au-reset's terminal output. The reset engine never
// prints directly; it reports every outcome through a Reporter so tests can
// capture the run over a plain io.Writer.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by the reporter
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Missing lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the reporter styles. With color disabled the zero
// styles render plain text.
func NewStyles(color bool) Styles {
	if !color {
		return Styles{}
	}
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Reporter writes user-facing run output.
type Reporter struct {
	w      io.Writer
	styles Styles
}

func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, styles: NewStyles(color)}
}

func (r *Reporter) Header(title string) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.styles.Header.Render("=== "+title+" ==="))
}

// Section starts a labeled phase of the run, e.g. "Removing files...".
func (r *Reporter) Section(msg string) {
	fmt.Fprintf(r.w, "\n%s\n", msg)
}

// Plan lists one path slated for removal.
func (r *Reporter) Plan(label, path string) {
	fmt.Fprintf(r.w, "  - %s: %s\n", label, path)
}

func (r *Reporter) Removed(label, path string) {
	fmt.Fprintf(r.w, "  %s Removed %s: %s\n", r.styles.Success.Render("✓"), label, path)
}

// WouldRemove reports a target skipped because the run is a dry run.
func (r *Reporter) WouldRemove(label, path string) {
	fmt.Fprintf(r.w, "  %s Would remove %s: %s\n", r.styles.Muted.Render("~"), label, path)
}

func (r *Reporter) NotFound(label, path string) {
	fmt.Fprintf(r.w, "  %s %s not found: %s\n", r.styles.Missing.Render("-"), label, path)
}

func (r *Reporter) Failed(label, path string, err error) {
	fmt.Fprintf(r.w, "  %s Failed to remove %s: %v\n", r.styles.Failure.Render("✗"), label, err)
}

// Kept reports a directory retained because it was not empty.
func (r *Reporter) Kept(label, path string) {
	fmt.Fprintf(r.w, "  %s %s kept (not empty): %s\n", r.styles.Missing.Render("-"), label, path)
}

// Prompt writes the confirmation question without a trailing newline.
func (r *Reporter) Prompt(question string) {
	fmt.Fprintf(r.w, "%s [y/N]: ", question)
}

func (r *Reporter) Aborted() {
	fmt.Fprintf(r.w, "Aborted.\n")
}

// DryRunDone prints the closing line for a dry run.
func (r *Reporter) DryRunDone(would, missing int) {
	fmt.Fprintf(r.w, "\n%s Dry run complete: %d would be removed, %d not found\n\n",
		r.styles.Muted.Render("~"), would, missing)
}

// Done prints the closing summary line.
func (r *Reporter) Done(removed, missing, failed int) {
	mark := r.styles.Success.Render("✓")
	if failed > 0 {
		mark = r.styles.Failure.Render("✗")
	}
	fmt.Fprintf(r.w, "\n%s Reset complete: %d removed, %d not found, %d failed\n\n",
		mark, removed, missing, failed)
}
