package tui

import "github.com/MKhiriev/go-scripture-lens/internal/service"

type analyzeDoneMsg struct {
	result service.AnalysisResult
	err    error
}

type copiedMsg struct {
	err error
}

// clearStatusMsg clears the status line only if no newer status was set.
type clearStatusMsg struct {
	seq int
}
