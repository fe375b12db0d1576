package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"just now", "2026-02-07T11:59:30Z", "Just now"},
		{"minutes", "2026-02-07T11:45:00Z", "15m ago"},
		{"hours", "2026-02-07T09:00:00Z", "3h ago"},
		{"yesterday", "2026-02-06T08:30:00Z", "Yesterday 08:30"},
		{"older", "2025-12-24T18:00:00Z", "Dec 24, 2025 18:00"},
		{"future", "2026-02-07T13:00:00Z", "Today 13:00"},
		{"unparseable", "last tuesday", "last tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestamp(tt.input, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestOpsecIndicator(t *testing.T) {
	assert.Contains(t, OpsecIndicator(1, "STANDARD"), "■□□ STANDARD")
	assert.Contains(t, OpsecIndicator(3, "MAXIMUM"), "■■■ MAXIMUM")
	assert.Contains(t, OpsecIndicator(9, "MAXIMUM"), "■■■")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"Key", "Name"}, [][]string{
		{"a", "Alpha"},
		{"longer", "B"},
	})

	assert.Contains(t, out, "Key     Name")
	assert.Contains(t, out, "a       Alpha")
	assert.Contains(t, out, "longer  B")
	assert.Empty(t, RenderTable(nil, nil))
}
