// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
	"github.com/MKhiriev/go-scripture-lens/models"
)

const statusTTL = 3 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeList mode = iota
	modeEdit
	modeConfirmDelete
	modeInsights
	modeBuildInfo
	modeError
)

// appModel is the root bubbletea model. All note state is read back from
// the services after every mutation; the model only keeps view state.
type appModel struct {
	ctx       context.Context
	services  *service.Services
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	notes      []models.Note
	activeID   string
	insights   []models.Insight
	insightIdx int

	mode       mode
	returnMode mode
	panelOpen  bool
	editor     editorModel

	analyzing bool
	spinner   spinner.Model

	status    string
	statusSeq int
	errorMsg  string

	width  int
	height int
}

func newAppModel(ctx context.Context, services *service.Services, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:       ctx,
		services:  services,
		validator: validators.NewNoteValidator(),
		buildInfo: buildInfo,
		logger:    log,
		spinner:   s,
	}
	m.refresh()

	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) refresh() {
	m.notes = m.services.NoteService.List(m.ctx)
	m.activeID = ""
	if note, ok := m.services.NoteService.Active(m.ctx); ok {
		m.activeID = note.ID
	}
	m.insights = m.services.NoteService.Insights(m.ctx)
	if m.insightIdx >= len(m.insights) {
		m.insightIdx = max(len(m.insights)-1, 0)
	}
}

func (m appModel) activeIndex() int {
	for i, n := range m.notes {
		if n.ID == m.activeID {
			return i
		}
	}
	return -1
}

func (m appModel) activeNote() (models.Note, bool) {
	if i := m.activeIndex(); i >= 0 {
		return m.notes[i], true
	}
	return models.Note{}, false
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// the editor exists only while a note is open; openEditor sizes it
		if m.mode == modeEdit || m.returnMode == modeEdit {
			m.editor.resize(msg.Width, msg.Height)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analyzeDoneMsg:
		return m.onAnalyzeDone(msg)

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("clipboard write failed")
			return m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m.setStatus("Copied to clipboard")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEdit:
		return m.updateEditor(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modeInsights:
		return m.updateInsights(msg)
	case modeBuildInfo:
		if key.Matches(msg, keys.esc, keys.enter, keys.buildInfo) {
			m.mode = modeList
		}
		return m, nil
	case modeError:
		if key.Matches(msg, keys.esc, keys.enter) {
			m.mode = m.returnMode
			m.errorMsg = ""
		}
		return m, nil
	}

	return m.updateList(msg)
}

// ── list ──

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if i := m.activeIndex(); i > 0 {
			return m.selectNote(m.notes[i-1].ID)
		} else if i < 0 && len(m.notes) > 0 {
			return m.selectNote(m.notes[0].ID)
		}

	case key.Matches(msg, keys.down):
		if i := m.activeIndex(); i+1 < len(m.notes) {
			return m.selectNote(m.notes[i+1].ID)
		}

	case key.Matches(msg, keys.newNote):
		note := m.services.NoteService.Create(m.ctx)
		m.refresh()
		return m.openEditor(note)

	case key.Matches(msg, keys.edit):
		if note, ok := m.activeNote(); ok {
			return m.openEditor(note)
		}

	case key.Matches(msg, keys.delete):
		if _, ok := m.activeNote(); ok {
			m.mode = modeConfirmDelete
		}

	case key.Matches(msg, keys.analyze):
		return m.startAnalysis()

	case key.Matches(msg, keys.insights):
		m.panelOpen = true
		m.mode = modeInsights

	case key.Matches(msg, keys.buildInfo):
		m.mode = modeBuildInfo
	}

	return m, nil
}

func (m appModel) selectNote(id string) (tea.Model, tea.Cmd) {
	if err := m.services.NoteService.Select(m.ctx, id); err != nil {
		return m.showError(err, modeList)
	}
	m.refresh()
	return m, nil
}

// ── editor ──

func (m appModel) openEditor(note models.Note) (tea.Model, tea.Cmd) {
	m.editor = newEditor(note, m.width, m.height)
	m.mode = modeEdit
	return m, m.editor.setFocus(focusContent)
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil

	case key.Matches(msg, keys.tab):
		return m, m.editor.toggleFocus()

	case key.Matches(msg, keys.save):
		fields := m.editor.fields()
		if err := m.validator.Validate(m.ctx, fields); err != nil {
			return m.showError(err, modeEdit)
		}
		if _, err := m.services.NoteService.Update(m.ctx, m.editor.noteID, fields); err != nil {
			return m.showError(err, modeEdit)
		}
		m.refresh()
		m.mode = modeList
		return m.setStatus("Note saved")
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// ── delete ──

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeList
		if err := m.services.NoteService.Delete(m.ctx, m.activeID); err != nil {
			return m.showError(err, modeList)
		}
		m.refresh()
		return m.setStatus("Note deleted")

	case key.Matches(msg, keys.no):
		m.mode = modeList
	}

	return m, nil
}

// ── analysis ──

func (m appModel) canAnalyze() bool {
	note, ok := m.activeNote()
	return ok && !m.analyzing && !isBlank(note.Content)
}

func (m appModel) startAnalysis() (tea.Model, tea.Cmd) {
	if !m.canAnalyze() {
		return m, nil
	}

	m.analyzing = true
	return m, tea.Batch(m.spinner.Tick, analyzeCmd(m.ctx, m.services.InsightService))
}

func analyzeCmd(ctx context.Context, insights service.InsightService) tea.Cmd {
	return func() tea.Msg {
		res, err := insights.AnalyzeActive(ctx)
		return analyzeDoneMsg{result: res, err: err}
	}
}

func (m appModel) onAnalyzeDone(msg analyzeDoneMsg) (tea.Model, tea.Cmd) {
	m.analyzing = false

	if msg.err != nil {
		back := m.mode
		if back == modeError {
			back = m.returnMode
		}
		return m.showError(msg.err, back)
	}

	m.refresh()
	if !msg.result.Applied {
		return m.setStatus("Analysis discarded: the selected note changed")
	}

	m.insightIdx = 0
	if m.mode == modeList {
		m.panelOpen = true
		m.mode = modeInsights
	}
	return m.setStatus(fmt.Sprintf("%d insights generated", len(msg.result.Insights)))
}

// ── insights panel ──

func (m appModel) updateInsights(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc, keys.insights):
		m.panelOpen = false
		m.mode = modeList

	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.insightIdx > 0 {
			m.insightIdx--
		}

	case key.Matches(msg, keys.down):
		if m.insightIdx+1 < len(m.insights) {
			m.insightIdx++
		}

	case key.Matches(msg, keys.enter):
		insight, ok := m.selectedInsight()
		if !ok {
			return m, nil
		}
		if _, err := m.services.NoteService.AppendInsightByID(m.ctx, insight.ID); err != nil {
			return m.showError(err, modeInsights)
		}
		m.refresh()
		return m.setStatus("Insight added to note")

	case key.Matches(msg, keys.copy):
		insight, ok := m.selectedInsight()
		if !ok {
			return m, nil
		}
		return m, copyCmd(insightText(insight))
	}

	return m, nil
}

func (m appModel) selectedInsight() (models.Insight, bool) {
	if m.insightIdx < 0 || m.insightIdx >= len(m.insights) {
		return models.Insight{}, false
	}
	return m.insights[m.insightIdx], true
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

// ── status & errors ──

func (m appModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m appModel) showError(err error, back mode) (tea.Model, tea.Cmd) {
	m.logger.Err(err).Msg("tui action failed")
	m.errorMsg = humanizeError(err)
	m.returnMode = back
	m.mode = modeError
	return m, nil
}
