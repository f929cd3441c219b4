package access_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/access"
)

func makeProgress(t *testing.T, completed bool, sectionIDs ...string) *model.ReadingProgress {
	t.Helper()

	entries := make([]model.ReadSectionEntry, 0, len(sectionIDs))
	for _, id := range sectionIDs {
		entries = append(entries, model.ReadSectionEntry{SectionID: id, ReadAt: time.Now()})
	}

	raw, err := json.Marshal(entries)
	require.NoError(t, err)

	return &model.ReadingProgress{
		ReadSections: datatypes.JSON(raw),
		Completed:    completed,
	}
}

func TestBuildProgressSummary(t *testing.T) {
	t.Run("no progress record", func(t *testing.T) {
		summary := access.BuildProgressSummary(nil, 4)

		assert.False(t, summary.HasProgress)
		assert.False(t, summary.Completed)
		assert.Equal(t, 0, summary.ReadPercentage)
		assert.Equal(t, 0, summary.ReadSectionsCount)
		assert.Equal(t, 4, summary.TotalSections)
		assert.Equal(t, "0/4", summary.ProgressText)
	})

	t.Run("partial progress rounds percentage", func(t *testing.T) {
		summary := access.BuildProgressSummary(makeProgress(t, false, "s1"), 3)

		assert.True(t, summary.HasProgress)
		assert.Equal(t, 33, summary.ReadPercentage)
		assert.Equal(t, 1, summary.ReadSectionsCount)
		assert.Equal(t, "1/3", summary.ProgressText)
	})

	t.Run("two of three rounds up", func(t *testing.T) {
		summary := access.BuildProgressSummary(makeProgress(t, false, "s1", "s2"), 3)

		assert.Equal(t, 67, summary.ReadPercentage)
	})

	t.Run("zero sections avoids division by zero", func(t *testing.T) {
		summary := access.BuildProgressSummary(makeProgress(t, false, "s1"), 0)

		assert.Equal(t, 0, summary.ReadPercentage)
		assert.Equal(t, "1/0", summary.ProgressText)
	})

	t.Run("percentage clamps at 100", func(t *testing.T) {
		// Bölüm listesi küçülmüş makale: okunanlar toplamı aşabilir
		summary := access.BuildProgressSummary(makeProgress(t, true, "s1", "s2", "s3"), 2)

		assert.Equal(t, 100, summary.ReadPercentage)
		assert.True(t, summary.Completed)
	})

	t.Run("completed flag comes from the record", func(t *testing.T) {
		summary := access.BuildProgressSummary(makeProgress(t, true, "s1", "s2"), 2)

		assert.True(t, summary.Completed)
		assert.Equal(t, 100, summary.ReadPercentage)
	})
}

func TestDisplayAuthor(t *testing.T) {
	names := map[string]string{
		"ayse.demir@dergipage.com": "Ayşe Demir",
	}

	t.Run("resolves known staff email", func(t *testing.T) {
		assert.Equal(t, "Ayşe Demir", access.DisplayAuthor("ayse.demir@dergipage.com", names))
	})

	t.Run("falls back to raw value on miss", func(t *testing.T) {
		assert.Equal(t, "unknown@dergipage.com", access.DisplayAuthor("unknown@dergipage.com", names))
	})

	t.Run("freeform author passes through", func(t *testing.T) {
		assert.Equal(t, "Guest Author", access.DisplayAuthor("Guest Author", names))
	})
}
