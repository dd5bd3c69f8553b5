package dashboard

import (
	"context"
	"image/png"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tmscli/internal/errors"
	"tmscli/internal/metrics"
)

func TestRenderer_Render(t *testing.T) {
	g := metrics.NewGenerator(slog.Default(), rand.New(rand.NewSource(5)))
	seq, err := g.Generate(context.Background(), metrics.Params{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NumDays:   60,
	})
	require.NoError(t, err)

	att, err := metrics.AttendanceMetrics(seq)
	require.NoError(t, err)
	perf, err := metrics.PerformanceMetrics(seq)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dashboard.png")
	require.NoError(t, NewRenderer(slog.Default()).Render(path, seq, att, perf))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, canvasWidth, img.Bounds().Dx())
	assert.Equal(t, 3*panelHeight, img.Bounds().Dy())
}

func TestRenderer_Render_TooFewRecords(t *testing.T) {
	r := NewRenderer(nil)
	path := filepath.Join(t.TempDir(), "dashboard.png")

	for _, seq := range [][]metrics.DailyRecord{nil, make([]metrics.DailyRecord, 1)} {
		err := r.Render(path, seq, metrics.AttendanceSummary{}, metrics.PerformanceSummary{})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInsufficientData))
		assert.NoFileExists(t, path)
	}
}

func TestDateTicks(t *testing.T) {
	g := metrics.NewGenerator(slog.Default(), rand.New(rand.NewSource(9)))
	seq, err := g.Generate(context.Background(), metrics.Params{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NumDays:   120,
	})
	require.NoError(t, err)

	ticks := dateTicks(seq)
	assert.LessOrEqual(t, len(ticks), maxDateTicks)
	assert.Equal(t, seq[0].Date.Format("2006-01-02"), ticks[0].Label)

	// Short sequences label every record.
	short := dateTicks(seq[:3])
	assert.Len(t, short, 3)
}
