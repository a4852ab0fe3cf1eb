package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
	"github.com/MKhiriev/go-scripture-lens/models"
)

const (
	editorDefaultWidth  = 72
	editorDefaultHeight = 14
)

type editorFocus int

const (
	focusTitle editorFocus = iota
	focusContent
)

// editorModel edits one note. Nothing is written to the store until the
// owner calls fields() on save.
type editorModel struct {
	noteID  string
	title   textinput.Model
	content textarea.Model
	focus   editorFocus
}

func newEditor(note models.Note, width, height int) editorModel {
	title := textinput.New()
	title.Placeholder = app.TitlePlaceholder
	title.Prompt = ""
	title.CharLimit = validators.MaxTitleLength
	title.SetValue(note.Title)
	title.CursorEnd()

	content := textarea.New()
	content.Placeholder = app.ContentPlaceholder
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetValue(note.Content)

	e := editorModel{
		noteID:  note.ID,
		title:   title,
		content: content,
	}
	e.resize(width, height)
	e.setFocus(focusContent)

	return e
}

func (e *editorModel) resize(width, height int) {
	w, h := editorDefaultWidth, editorDefaultHeight
	if width > 10 {
		w = width - 8
	}
	if height > 12 {
		h = height - 12
	}
	e.title.Width = w
	e.content.SetWidth(w)
	e.content.SetHeight(h)
}

func (e *editorModel) setFocus(f editorFocus) tea.Cmd {
	e.focus = f
	if f == focusTitle {
		e.content.Blur()
		return e.title.Focus()
	}
	e.title.Blur()
	return e.content.Focus()
}

func (e *editorModel) toggleFocus() tea.Cmd {
	if e.focus == focusTitle {
		return e.setFocus(focusContent)
	}
	return e.setFocus(focusTitle)
}

func (e editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd
	if e.focus == focusTitle {
		e.title, cmd = e.title.Update(msg)
	} else {
		e.content, cmd = e.content.Update(msg)
	}
	return e, cmd
}

func (e editorModel) fields() models.NoteFields {
	title := e.title.Value()
	content := e.content.Value()
	return models.NoteFields{Title: &title, Content: &content}
}

func (e editorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("EDIT NOTE"))
	b.WriteString("\n\n")
	b.WriteString(e.title.View())
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(e.content.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: switch field • ctrl+s: save • esc: cancel"))

	return b.String()
}
