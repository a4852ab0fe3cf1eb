package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-scripture-lens/internal/adapter"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/mock"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
	"github.com/MKhiriev/go-scripture-lens/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seqIDs hands out predictable ids: id-1, id-2, ...
type seqIDs struct {
	prefix string
	n      int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

const twoInsightsReply = `{
  "insights": [
    {"title": "Soil of the heart", "description": "Ancient farming context.", "reference": "Matthew 13", "type": "historical"},
    {"title": "Sporos", "description": "Greek word for seed.", "type": "Linguistic"}
  ]
}`

func newInsightServiceWithMock(t *testing.T) (InsightService, *mock.MockGenerator, *mock.MockNoteStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGenerator(ctrl)
	noteStore := mock.NewMockNoteStore(ctrl)

	return NewInsightService(noteStore, generator, &seqIDs{prefix: "ins"}, logger.Nop()), generator, noteStore
}

// ─────────────────────────────────────────────
// Analyze
// ─────────────────────────────────────────────

func TestInsightService_Analyze_ParsesReply(t *testing.T) {
	svc, generator, _ := newInsightServiceWithMock(t)
	note := models.Note{ID: "n1", Title: "Parable", Content: "Seeds and soil"}

	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req adapter.GenerationRequest) (string, error) {
			assert.Equal(t, systemInstruction, req.SystemInstruction)
			assert.Contains(t, req.Prompt, "Note Title: Parable\nNote Content: Seeds and soil")
			require.NotNil(t, req.Schema)
			assert.Equal(t, []string{"insights"}, req.Schema.Required)
			return twoInsightsReply, nil
		})

	insights, err := svc.Analyze(context.Background(), note)

	require.NoError(t, err)
	require.Len(t, insights, 2)

	assert.Equal(t, "ins-1", insights[0].ID)
	assert.Equal(t, "Soil of the heart", insights[0].Title)
	require.NotNil(t, insights[0].Reference)
	assert.Equal(t, "Matthew 13", *insights[0].Reference)
	assert.Equal(t, models.InsightTypeHistorical, insights[0].Type)

	assert.Equal(t, "ins-2", insights[1].ID)
	assert.Nil(t, insights[1].Reference)
	assert.Equal(t, models.InsightTypeLinguistic, insights[1].Type)
}

const fourInsightsReply = `{
  "insights": [
    {"title": "Good Shepherd", "description": "Royal imagery of the ancient Near East.", "type": "historical"},
    {"title": "Ro'i", "description": "Hebrew for my shepherd.", "reference": "Psalm 23:1", "type": "linguistic"},
    {"title": "Provision", "description": "God meets daily needs.", "type": "theological"},
    {"title": "Rest", "description": "Make room for still waters this week.", "type": "application"}
  ]
}`

func TestInsightService_Analyze_FourEntries_UniqueIDsAcrossCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGenerator(ctrl)
	svc := NewInsightService(mock.NewMockNoteStore(ctrl), generator, utils.NewUUIDGenerator(), logger.Nop())
	note := models.Note{ID: "n1", Title: "Psalm 23", Content: "The Lord is my shepherd"}

	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(fourInsightsReply, nil).Times(2)

	seen := make(map[string]struct{})
	for call := 0; call < 2; call++ {
		insights, err := svc.Analyze(context.Background(), note)
		require.NoError(t, err)
		require.Len(t, insights, 4)

		for _, ins := range insights {
			require.NotEmpty(t, ins.ID)
			seen[ins.ID] = struct{}{}
		}
		assert.Equal(t, models.InsightTypeHistorical, insights[0].Type)
		assert.Equal(t, models.InsightTypeApplication, insights[3].Type)
	}

	assert.Len(t, seen, 8)
}

func TestInsightService_Analyze_BlankContent_NoRequest(t *testing.T) {
	svc, _, _ := newInsightServiceWithMock(t)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.Analyze(context.Background(), models.Note{ID: "n1", Title: "T", Content: content})
		assert.ErrorIs(t, err, ErrBlankContent)
	}
}

func TestInsightService_Analyze_MissingKey_IsConfigurationError(t *testing.T) {
	svc, generator, _ := newInsightServiceWithMock(t)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", adapter.ErrMissingAPIKey)

	_, err := svc.Analyze(context.Background(), models.Note{ID: "n1", Content: "text"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.NotErrorIs(t, err, ErrAnalysisFailed)
}

func TestInsightService_Analyze_TransportFailure(t *testing.T) {
	svc, generator, _ := newInsightServiceWithMock(t)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", adapter.ErrUpstreamUnavailable)

	_, err := svc.Analyze(context.Background(), models.Note{ID: "n1", Content: "text"})

	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, adapter.ErrUpstreamUnavailable)
}

func TestInsightService_Analyze_ReplyVariants(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		wantLen   int
		wantErr   error
		checkType models.InsightType
	}{
		{name: "empty text", reply: "", wantLen: 0},
		{name: "whitespace text", reply: "  \n ", wantLen: 0},
		{name: "empty array", reply: `{"insights": []}`, wantLen: 0},
		{name: "fenced json", reply: "```json\n" + twoInsightsReply + "\n```", wantLen: 2},
		{name: "bare fence", reply: "```\n{\"insights\": []}\n```", wantLen: 0},
		{name: "unknown type coerced", reply: `{"insights":[{"title":"a","description":"b","type":"poetic"}]}`, wantLen: 1, checkType: models.InsightTypeApplication},
		{name: "missing type coerced", reply: `{"insights":[{"title":"a","description":"b"}]}`, wantLen: 1, checkType: models.InsightTypeApplication},
		{name: "not json", reply: "Here are some insights", wantErr: ErrMalformedReply},
		{name: "missing insights key", reply: `{"items": []}`, wantErr: ErrMalformedReply},
		{name: "null insights", reply: `{"insights": null}`, wantErr: ErrMalformedReply},
		{name: "insights not array", reply: `{"insights": "none"}`, wantErr: ErrMalformedReply},
		{name: "blank title", reply: `{"insights":[{"title":" ","description":"b","type":"historical"}]}`, wantErr: ErrMalformedReply},
		{name: "missing description", reply: `{"insights":[{"title":"a","type":"historical"}]}`, wantErr: ErrMalformedReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, generator, _ := newInsightServiceWithMock(t)
			generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tt.reply, nil)

			insights, err := svc.Analyze(context.Background(), models.Note{ID: "n1", Content: "text"})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrAnalysisFailed)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, insights)
			assert.Len(t, insights, tt.wantLen)
			if tt.checkType != "" {
				assert.Equal(t, tt.checkType, insights[0].Type)
			}
		})
	}
}

func TestInsightService_Analyze_EmptyReference_IsKept(t *testing.T) {
	svc, generator, _ := newInsightServiceWithMock(t)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(`{"insights":[{"title":"a","description":"b","reference":"","type":"theological"}]}`, nil)

	insights, err := svc.Analyze(context.Background(), models.Note{ID: "n1", Content: "text"})

	require.NoError(t, err)
	require.Len(t, insights, 1)
	require.NotNil(t, insights[0].Reference)
	assert.Equal(t, "", *insights[0].Reference)
}

// ─────────────────────────────────────────────
// AnalyzeActive
// ─────────────────────────────────────────────

func TestInsightService_AnalyzeActive_NoActiveNote(t *testing.T) {
	svc, _, noteStore := newInsightServiceWithMock(t)
	noteStore.EXPECT().Active().Return(models.Note{}, false)

	_, err := svc.AnalyzeActive(context.Background())

	assert.ErrorIs(t, err, store.ErrNoActiveNote)
}

func TestInsightService_AnalyzeActive_BlankContent_NoTicket(t *testing.T) {
	svc, _, noteStore := newInsightServiceWithMock(t)
	noteStore.EXPECT().Active().Return(models.Note{ID: "n1", Content: " "}, true)
	noteStore.EXPECT().BeginAnalysis(gomock.Any()).Times(0)

	_, err := svc.AnalyzeActive(context.Background())

	assert.ErrorIs(t, err, ErrBlankContent)
}

func TestInsightService_AnalyzeActive_AppliesResult(t *testing.T) {
	svc, generator, noteStore := newInsightServiceWithMock(t)
	ticket := store.AnalysisTicket{Seq: 3, NoteID: "n1"}

	gomock.InOrder(
		noteStore.EXPECT().Active().Return(models.Note{ID: "n1", Content: "text"}, true),
		noteStore.EXPECT().BeginAnalysis("n1").Return(ticket),
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(twoInsightsReply, nil),
		noteStore.EXPECT().ApplyInsights(ticket, gomock.Len(2)).Return(true),
	)

	res, err := svc.AnalyzeActive(context.Background())

	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "n1", res.NoteID)
	assert.Len(t, res.Insights, 2)
}

func TestInsightService_AnalyzeActive_FailureLeavesState(t *testing.T) {
	svc, generator, noteStore := newInsightServiceWithMock(t)

	noteStore.EXPECT().Active().Return(models.Note{ID: "n1", Content: "text"}, true)
	noteStore.EXPECT().BeginAnalysis("n1").Return(store.AnalysisTicket{Seq: 1, NoteID: "n1"})
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
	noteStore.EXPECT().ApplyInsights(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.AnalyzeActive(context.Background())

	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

// ── stale results against the real in-memory store ──

func newMemoryStore() store.NoteStore {
	return store.NewMemoryNoteStore(&seqIDs{prefix: "note"}, time.Now)
}

func TestInsightService_AnalyzeActive_SelectionChanged_Discarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGenerator(ctrl)
	noteStore := newMemoryStore()
	svc := NewInsightService(noteStore, generator, &seqIDs{prefix: "ins"}, logger.Nop())

	first := noteStore.Create()
	_, err := noteStore.Update(first.ID, models.NoteFields{Content: strPtr("Seeds")})
	require.NoError(t, err)

	// пользователь создает новую заметку, пока запрос в полете
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, adapter.GenerationRequest) (string, error) {
			noteStore.Create()
			return twoInsightsReply, nil
		})

	res, err := svc.AnalyzeActive(context.Background())

	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Empty(t, noteStore.Insights())
}

func TestInsightService_AnalyzeActive_NewerAnalysisWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGenerator(ctrl)
	noteStore := newMemoryStore()
	svc := NewInsightService(noteStore, generator, &seqIDs{prefix: "ins"}, logger.Nop())

	note := noteStore.Create()
	_, err := noteStore.Update(note.ID, models.NoteFields{Content: strPtr("Seeds")})
	require.NoError(t, err)

	newer := `{"insights":[{"title":"newer","description":"d","type":"application"}]}`

	gomock.InOrder(
		// the first request starts a second analysis before it returns
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ adapter.GenerationRequest) (string, error) {
				res, err := svc.AnalyzeActive(ctx)
				require.NoError(t, err)
				assert.True(t, res.Applied)
				return twoInsightsReply, nil
			}),
		generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(newer, nil),
	)

	res, err := svc.AnalyzeActive(context.Background())

	require.NoError(t, err)
	assert.False(t, res.Applied)

	insights := noteStore.Insights()
	require.Len(t, insights, 1)
	assert.Equal(t, "newer", insights[0].Title)
}

func TestInsightService_AnalyzeActive_ThenAppend(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGenerator(ctrl)
	noteStore := newMemoryStore()
	insightSvc := NewInsightService(noteStore, generator, &seqIDs{prefix: "ins"}, logger.Nop())
	noteSvc := NewNoteService(noteStore, logger.Nop())

	note := noteStore.Create()
	_, err := noteStore.Update(note.ID, models.NoteFields{Content: strPtr("Seeds")})
	require.NoError(t, err)

	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(twoInsightsReply, nil)

	res, err := insightSvc.AnalyzeActive(context.Background())
	require.NoError(t, err)
	require.True(t, res.Applied)

	updated, err := noteSvc.AppendInsightByID(context.Background(), res.Insights[1].ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(updated.Content, "Seeds\n\n--- AI Insight: Sporos ---\n"))
	assert.Contains(t, updated.Content, "Reference: N/A\n------------------\n")
}
