package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-scripture-lens/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B8860B"))
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B22222"))
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeNoteStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#DAA520")).
			PaddingLeft(1)
	noteStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1)
	previewStyle = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	selectedInsightStyle = lipgloss.NewStyle().Reverse(true)
)

// insightColors follows the category palette: amber, indigo, emerald, gold.
var insightColors = map[models.InsightType]lipgloss.Color{
	models.InsightTypeHistorical:  lipgloss.Color("#B45309"),
	models.InsightTypeTheological: lipgloss.Color("#4338CA"),
	models.InsightTypeLinguistic:  lipgloss.Color("#047857"),
	models.InsightTypeApplication: lipgloss.Color("#B8860B"),
}

func insightBadge(t models.InsightType) string {
	color, ok := insightColors[t]
	if !ok {
		color = insightColors[models.InsightTypeApplication]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render("[" + t.String() + "]")
}
