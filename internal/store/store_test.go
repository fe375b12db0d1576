package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/raiden/internal/domain"
	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/alexanderramin/raiden/internal/repository"
	"github.com/alexanderramin/raiden/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type failingKV struct {
	repository.KVRepo
	putErr error
	getErr error
}

func (f failingKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	return f.KVRepo.Get(ctx, key)
}

func (f failingKV) Put(ctx context.Context, key, value string) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.KVRepo.Put(ctx, key, value)
}

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	})
}

func TestRecordHistory_BoundedNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, repository.NewMemoryKVRepo(), logger.Nop())

	for i := 1; i <= 25; i++ {
		s.RecordHistory(ctx, domain.PromptHistoryItem{ID: fmt.Sprintf("h%02d", i), FormData: domain.Default()})
	}

	h := s.History()
	require.Len(t, h, MaxHistoryItems)
	for i, item := range h {
		assert.Equal(t, fmt.Sprintf("h%02d", 25-i), item.ID)
	}
}

func TestLoadHistoryItem_SnapshotUnaffectedByLaterMutation(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, repository.NewMemoryKVRepo(), logger.Nop())

	live := testutil.NewTestConfiguration(testutil.WithTargetSubject("Region X"), testutil.WithDomainFocus("OSINT"))
	captured := live.Clone()
	s.RecordHistory(ctx, domain.PromptHistoryItem{ID: "h1", FormData: live, TemplateKey: "basicStrategicAnalysis"})

	live.TargetSubject = "Elsewhere"
	live.DomainFocus[0] = "HUMINT"
	live.ToggleSetMember(domain.FieldDomainFocus, "SIGINT", true)

	item, err := s.LoadHistoryItem("h1")
	require.NoError(t, err)
	if diff := cmp.Diff(captured, item.FormData); diff != "" {
		t.Errorf("history snapshot changed (-want +got):\n%s", diff)
	}

	item.FormData.TargetSubject = "tampered"
	again, _ := s.LoadHistoryItem("h1")
	assert.Equal(t, "Region X", again.FormData.TargetSubject)
}

func TestLoadHistoryItem_NotFound(t *testing.T) {
	s := Open(context.Background(), repository.NewMemoryKVRepo(), nil)
	_, err := s.LoadHistoryItem("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKVRepo()
	s := Open(ctx, kv, nil)
	s.RecordHistory(ctx, testutil.NewTestHistoryItem("crisisResponse"))

	s.ClearHistory(ctx)
	assert.Empty(t, s.History())

	raw, ok, _ := kv.Get(ctx, HistoryKey)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestSaveAsTemplate_BlankNameRejected(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKVRepo()
	s := Open(ctx, kv, nil)
	existing, err := s.SaveAsTemplate(ctx, "Keep", "text", domain.Default())
	require.NoError(t, err)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := s.SaveAsTemplate(ctx, name, "rendered", domain.Default())
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	}

	got := s.Templates()
	require.Len(t, got, 1)
	assert.Equal(t, existing.ID, got[0].ID)
}

func TestSaveAsTemplate_CapturesRenderedTextAndSnapshot(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, repository.NewMemoryKVRepo(), nil, sequentialIDs())
	cfg := testutil.NewTestConfiguration(testutil.WithOpsecLevel(3), testutil.WithHandlingInstructions("NOFORN"))

	ut, err := s.SaveAsTemplate(ctx, "  Night Watch  ", "Target: Harbor", cfg)
	require.NoError(t, err)
	assert.Equal(t, "id-01", ut.ID)
	assert.Equal(t, "Night Watch", ut.Name)
	assert.Equal(t, domain.UserDefinedCategory, ut.Category)
	assert.Equal(t, "Target: Harbor", ut.PromptFormat)

	cfg.HandlingInstructions[0] = "LIMDIS"
	loaded, err := s.LoadTemplate("id-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"NOFORN"}, loaded.HandlingInstructions)
	assert.Equal(t, 3, loaded.OpsecLevel)
}

func TestRemoveTemplate(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, repository.NewMemoryKVRepo(), nil, sequentialIDs())
	_, _ = s.SaveAsTemplate(ctx, "A", "", domain.Default())
	_, _ = s.SaveAsTemplate(ctx, "B", "", domain.Default())

	assert.False(t, s.RemoveTemplate(ctx, "nope"))
	assert.Len(t, s.Templates(), 2)

	assert.True(t, s.RemoveTemplate(ctx, "id-01"))
	_, ok := s.FindTemplate("id-01")
	assert.False(t, ok)
	_, err := s.LoadTemplate("id-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWriteThrough_ReopenRestores(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewSQLKVRepo(testutil.NewTestDB(t))

	s := Open(ctx, kv, nil, sequentialIDs())
	cfg := testutil.NewTestConfiguration(testutil.WithTargetSubject("Strait"), testutil.WithWebSearch(true, false, true))
	_, err := s.SaveAsTemplate(ctx, "Strait Watch", "rendered", cfg)
	require.NoError(t, err)
	s.RecordHistory(ctx, testutil.NewTestHistoryItem("intelligenceOperation", testutil.WithHistoryFormData(cfg)))

	raw, ok, err := kv.Get(ctx, TemplatesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"formData":{`)
	assert.Contains(t, raw, `"TARGET_SUBJECT":"Strait"`)
	assert.Contains(t, raw, `"category":"User Defined"`)

	reopened := Open(ctx, kv, nil)
	require.Len(t, reopened.Templates(), 1)
	require.Len(t, reopened.History(), 1)
	assert.Empty(t, cmp.Diff(s.Templates(), reopened.Templates()))
	assert.Empty(t, cmp.Diff(s.History(), reopened.History()))
}

func TestOpen_DefensiveLoad(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"malformed json", `[{"id":`},
		{"object instead of array", `{"id":"x"}`},
		{"element type mismatch", `[{"id":42,"formData":{}}]`},
		{"string", `"hello"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := repository.NewMemoryKVRepo()
			require.NoError(t, kv.Put(ctx, HistoryKey, tt.blob))
			require.NoError(t, kv.Put(ctx, TemplatesKey, tt.blob))

			var logs bytes.Buffer
			s := Open(ctx, kv, logger.NewWriter(&logs, zapcore.WarnLevel))

			assert.NotNil(t, s.History())
			assert.Empty(t, s.History())
			assert.Empty(t, s.Templates())
			assert.Contains(t, logs.String(), "persisted collection unreadable")
		})
	}
}

func TestOpen_AbsentKeysAreEmpty(t *testing.T) {
	var logs bytes.Buffer
	s := Open(context.Background(), repository.NewMemoryKVRepo(), logger.NewWriter(&logs, zapcore.WarnLevel))
	assert.Empty(t, s.History())
	assert.Empty(t, s.Templates())
	assert.Empty(t, logs.String())
}

func TestOpen_OlderSnapshotsGainDefaults(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKVRepo()
	require.NoError(t, kv.Put(ctx, HistoryKey,
		`[{"id":"old","timestamp":"2025-01-01T00:00:00Z","templateKey":"crisisResponse","name":"Crisis","formData":{"TARGET_SUBJECT":"Grid","PRIORITY_LEVEL":"SOMEDAY"}},{"templateKey":"x"}]`))

	s := Open(ctx, kv, nil)
	h := s.History()
	require.Len(t, h, 1)
	assert.Equal(t, "Grid", h[0].FormData.TargetSubject)
	assert.Equal(t, "ROUTINE", h[0].FormData.PriorityLevel)
	assert.Equal(t, 70, h[0].FormData.ConfidenceThreshold)
}

func TestOpen_EntriesWithoutSnapshotTakeDefaults(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKVRepo()
	require.NoError(t, kv.Put(ctx, HistoryKey,
		`[{"id":"h1","timestamp":"2025-01-01T00:00:00Z","templateKey":"crisisResponse","name":"Crisis"},{"id":"h2","formData":null}]`))
	require.NoError(t, kv.Put(ctx, TemplatesKey,
		`[{"id":"t1","name":"Bare","category":"User Defined","promptFormat":"text"}]`))

	s := Open(ctx, kv, nil)

	for _, id := range []string{"h1", "h2"} {
		item, err := s.LoadHistoryItem(id)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(domain.Default(), item.FormData), id)
	}
	assert.Equal(t, "crisisResponse", s.History()[0].TemplateKey)

	cfg, err := s.LoadTemplate("t1")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(domain.Default(), cfg))
	assert.Equal(t, "UNCLASSIFIED", cfg.ClassificationLevel)
	assert.Equal(t, 1, cfg.OpsecLevel)
}

func TestOpen_BackendReadFailure(t *testing.T) {
	kv := failingKV{KVRepo: repository.NewMemoryKVRepo(), getErr: errors.New("connection refused")}
	s := Open(context.Background(), kv, nil)
	assert.Empty(t, s.History())
}

func TestWriteFailure_KeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	kv := failingKV{KVRepo: repository.NewMemoryKVRepo(), putErr: errors.New("disk full")}
	s := Open(ctx, kv, logger.NewWriter(&logs, zapcore.WarnLevel))

	s.RecordHistory(ctx, testutil.NewTestHistoryItem("basicStrategicAnalysis"))
	_, err := s.SaveAsTemplate(ctx, "Still here", "x", domain.Default())
	require.NoError(t, err)

	assert.Len(t, s.History(), 1)
	assert.Len(t, s.Templates(), 1)
	assert.Equal(t, 2, strings.Count(logs.String(), "write-through failed"))
}

func TestHistoryJSONShape(t *testing.T) {
	ctx := context.Background()
	kv := repository.NewMemoryKVRepo()
	s := Open(ctx, kv, nil)
	s.RecordHistory(ctx, domain.PromptHistoryItem{ID: "a", Timestamp: "2026-01-02T03:04:05Z", TemplateKey: "k", Name: "n", FormData: domain.Default()})

	raw, _, _ := kv.Get(ctx, HistoryKey)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded, 1)
	for _, k := range []string{"id", "timestamp", "formData", "templateKey", "name"} {
		assert.Contains(t, decoded[0], k)
	}
}
