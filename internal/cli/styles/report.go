package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ReportWindow is one window of a replay report.
type ReportWindow struct {
	Name   string
	Kind   string
	X, Y   int
	W, H   int
	Tabs   []string
	Active string
	// Fixed counts the leading tabs that cannot be dragged.
	Fixed int
}

// ReportOutcome is one finished gesture of a replay report.
type ReportOutcome struct {
	Kind   string
	Tab    string
	Window string
	Index  int
	Reason string
}

// Report is the printable result of a replay.
type Report struct {
	Script   string
	Outcomes []ReportOutcome
	Windows  []ReportWindow
	Skipped  int
}

// ReportRenderer renders replay reports.
type ReportRenderer struct {
	theme *Theme
}

// NewReportRenderer creates a new report renderer with the given theme.
func NewReportRenderer(theme *Theme) *ReportRenderer {
	return &ReportRenderer{theme: theme}
}

// Render renders the whole report: outcomes, then windows front to back.
func (r *ReportRenderer) Render(rep Report) string {
	var sb strings.Builder

	title := rep.Script
	if title == "" {
		title = "replay"
	}
	sb.WriteString("\n  " + r.theme.Title.Render(title) + "\n")

	sb.WriteString(r.renderOutcomes(rep.Outcomes))
	if rep.Skipped > 0 {
		warn := lipgloss.NewStyle().Foreground(r.theme.Warning)
		sb.WriteString(fmt.Sprintf("  %s %d steps reached no window\n",
			warn.Render(IconWarning), rep.Skipped))
	}

	sb.WriteString("\n")
	for i, w := range rep.Windows {
		box := r.RenderWindow(w, i == 0)
		for _, line := range strings.Split(box, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	return sb.String()
}

func (r *ReportRenderer) renderOutcomes(outcomes []ReportOutcome) string {
	if len(outcomes) == 0 {
		return "  " + r.theme.Subtle.Render("no gesture completed") + "\n"
	}

	var sb strings.Builder
	ok := lipgloss.NewStyle().Foreground(r.theme.Success)
	for _, o := range outcomes {
		icon := ok.Render(IconCheck)
		var detail string
		switch o.Kind {
		case "reordered":
			detail = fmt.Sprintf("to slot %d", o.Index)
		case "moved", "detached":
			detail = fmt.Sprintf("%s %s slot %d", r.theme.Subtle.Render(IconArrow), o.Window, o.Index)
		case "cancelled":
			icon = r.theme.ErrorStyle.Render(IconX)
			detail = r.theme.Subtle.Render(o.Reason)
		default:
			icon = r.theme.Subtle.Render(IconInfo)
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			icon,
			r.theme.Highlight.Render(o.Kind),
			o.Tab,
			detail,
		))
	}
	return sb.String()
}

// RenderWindow renders one window as a box with its tab strip.
func (r *ReportRenderer) RenderWindow(w ReportWindow, front bool) string {
	header := fmt.Sprintf("%s %s %s",
		IconWindow,
		w.Name,
		r.theme.Subtle.Render(fmt.Sprintf("%s %dx%d at (%d, %d)", w.Kind, w.W, w.H, w.X, w.Y)),
	)
	if front {
		header += " " + r.theme.Badge.Render("front")
	}

	tabs := make([]string, 0, len(w.Tabs))
	for i, caption := range w.Tabs {
		style := r.theme.InactiveTab
		switch {
		case caption == w.Active:
			style = r.theme.ActiveTab
		case i < w.Fixed:
			style = r.theme.FixedTab
		}
		tabs = append(tabs, style.Render(caption))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return r.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.theme.BoxHeader.Render(header),
		strip,
	))
}
