package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/models"
)

const (
	defaultListWidth  = 40
	defaultPanelWidth = 48
)

func (m appModel) View() string {
	var body string

	switch m.mode {
	case modeEdit:
		body = m.editor.View()
	case modeBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case modeError:
		body = m.overlay(errorStyle.Render(m.errorMsg) + "\n\n" + helpStyle.Render("enter/esc: dismiss"))
	case modeConfirmDelete:
		body = m.overlay(m.confirmDeleteView())
	default:
		body = m.mainView()
	}

	return appStyle.Render(body + "\n" + m.statusLine())
}

func (m appModel) mainView() string {
	listWidth, panelWidth := defaultListWidth, defaultPanelWidth
	if m.width > 0 {
		listWidth = m.width / 2
		if !m.panelOpen {
			listWidth = m.width - 6
		}
		panelWidth = max(m.width-listWidth-8, 20)
	}

	header := titleStyle.Render("SCRIPTURE LENS")
	if m.analyzing {
		header += "  " + m.spinner.View() + " Analyzing..."
	}

	columns := m.listView(listWidth)
	if m.panelOpen {
		columns = lipgloss.JoinHorizontal(lipgloss.Top, columns, "  ", m.panelView(panelWidth))
	}

	return header + "\n\n" + columns + "\n\n" + helpStyle.Render(m.helpLine())
}

func (m appModel) listView(width int) string {
	if len(m.notes) == 0 {
		return previewStyle.Render(app.EmptyNotesMessage)
	}

	textWidth := max(width-4, 8)
	items := make([]string, 0, len(m.notes))
	for _, n := range m.notes {
		style := noteStyle
		if n.ID == m.activeID {
			style = activeNoteStyle
		}

		item := fitText(noteTitle(n), textWidth) + "\n" +
			previewStyle.Render(fitText(notePreview(n), textWidth)) + "\n" +
			previewStyle.Render(n.UpdatedAt.Local().Format(dateLayout))
		items = append(items, style.Render(item))
	}

	return strings.Join(items, "\n")
}

func (m appModel) panelView(width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(app.InsightsTitle))
	b.WriteString("\n\n")

	textWidth := max(width-4, 8)
	if len(m.insights) == 0 {
		b.WriteString(previewStyle.Render(app.EmptyInsightsHint))
	}
	for i, ins := range m.insights {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.insightView(i, ins, textWidth))
	}

	b.WriteString("\n\n")
	b.WriteString(previewStyle.Render(app.InsightsFooter))

	return panelStyle.Width(width).Render(b.String())
}

func (m appModel) insightView(i int, ins models.Insight, width int) string {
	title := fitText(ins.Title, width)
	if m.mode == modeInsights && i == m.insightIdx {
		title = selectedInsightStyle.Render(title)
	}

	out := insightBadge(ins.Type) + "\n" + title + "\n" +
		lipgloss.NewStyle().Width(width).Render(ins.Description)
	if ins.Reference != nil && *ins.Reference != "" {
		out += "\n" + previewStyle.Render("ref: "+*ins.Reference)
	}
	return out
}

func (m appModel) confirmDeleteView() string {
	title := app.UntitledNote
	if note, ok := m.activeNote(); ok {
		title = noteTitle(note)
	}
	return "Delete \"" + fitText(title, 40) + "\"?\n\n" + helpStyle.Render("y: delete • n/esc: cancel")
}

func (m appModel) overlay(content string) string {
	box := overlayBoxStyle.Render(content)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width-4, m.height-4, lipgloss.Center, lipgloss.Center, box)
}

func (m appModel) helpLine() string {
	if m.mode == modeInsights {
		return "↑/↓: choose • enter: add to note • c: copy • esc: close"
	}

	analyze := "a: analyze"
	if !m.canAnalyze() {
		analyze = "a: analyze (n/a)"
	}
	return "↑/↓: select • n: new • e: edit • ctrl+d: delete • " + analyze + " • i: insights • v: about • q: quit"
}

func (m appModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	return statusStyle.Render(m.status)
}
