package tui

import (
	"strings"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

const dateLayout = "Jan 2, 2006"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func noteTitle(n models.Note) string {
	if strings.TrimSpace(n.Title) == "" {
		return app.UntitledNote
	}
	return n.Title
}

// notePreview is the first non-blank line of the content.
func notePreview(n models.Note) string {
	for _, line := range strings.Split(n.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return app.NoContent
}

func insightText(i models.Insight) string {
	return strings.TrimSpace(i.NoteBlock())
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: Scripture Lens\n")
	b.WriteString("Version: " + info.BuildVersion() + "\n")
	b.WriteString("Date: " + info.BuildDate() + "\n")
	b.WriteString("Commit: " + info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
