// Package dashboard renders the analytics dashboard image from a record
// sequence and its aggregate summaries.
package dashboard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"tmscli/internal/errors"
	"tmscli/internal/metrics"
)

// Panel geometry: one full-width trend panel on top, two rows of two
// half-width panels below.
const (
	canvasWidth = 1500
	panelHeight = 420
	halfWidth   = canvasWidth / 2

	maxDateTicks = 6
)

var (
	colorOrange = drawing.ColorFromHex("ffa500")
	colorIndigo = drawing.ColorFromHex("4b0082")
	colorGreen  = drawing.ColorFromHex("228b22")
)

// Renderer draws the five-panel training analytics dashboard as a single
// PNG. It consumes the record sequence read-only and performs no
// aggregation of its own beyond plotting the precomputed means.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a dashboard renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// Render writes the dashboard PNG to path. The five panels are the
// attendance-by-gender trend, the mean score distribution, mean engagement
// by gender, the material effectiveness trend, and mean completion rates.
// Trend panels need at least two records; shorter sequences fail with
// INSUFFICIENT_DATA and nothing is written.
func (r *Renderer) Render(path string, seq []metrics.DailyRecord, att metrics.AttendanceSummary, perf metrics.PerformanceSummary) error {
	if len(seq) < 2 {
		return errors.NewInsufficientDataError(
			fmt.Sprintf("dashboard requires at least 2 records, got %d", len(seq)))
	}

	ticks := dateTicks(seq)

	panels := []struct {
		graph renderable
		x, y  int
	}{
		{r.attendanceChart(seq, ticks), 0, 0},
		{r.performanceBars(perf), 0, panelHeight},
		{r.engagementBars(att), halfWidth, panelHeight},
		{r.materialChart(seq, ticks), 0, 2 * panelHeight},
		{r.completionBars(perf), halfWidth, 2 * panelHeight},
	}

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, 3*panelHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, p := range panels {
		img, err := renderPanel(p.graph)
		if err != nil {
			return fmt.Errorf("render dashboard panel: %w", err)
		}
		draw.Draw(canvas, img.Bounds().Add(image.Pt(p.x, p.y)), img, image.Point{}, draw.Over)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("create dashboard image", err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas); err != nil {
		return errors.NewStorageError("encode dashboard image", err)
	}

	r.logger.Info("rendered dashboard",
		slog.String("path", path),
		slog.Int("records", len(seq)))

	return nil
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPanel(graph renderable) (image.Image, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// dateTicks picks at most maxDateTicks evenly spaced date labels across the
// sequence, indexed by record position.
func dateTicks(seq []metrics.DailyRecord) []chart.Tick {
	step := (len(seq) + maxDateTicks - 1) / maxDateTicks
	if step < 1 {
		step = 1
	}

	var ticks []chart.Tick
	for i := 0; i < len(seq); i += step {
		ticks = append(ticks, chart.Tick{
			Value: float64(i),
			Label: seq[i].Date.Format("2006-01-02"),
		})
	}
	return ticks
}

func (r *Renderer) attendanceChart(seq []metrics.DailyRecord, ticks []chart.Tick) renderable {
	xs := make([]float64, len(seq))
	girls := make([]float64, len(seq))
	boys := make([]float64, len(seq))
	for i, rec := range seq {
		xs[i] = float64(i)
		girls[i] = float64(rec.GirlsAttendance)
		boys[i] = float64(rec.BoysAttendance)
	}

	graph := chart.Chart{
		Title:  "Weekly Attendance Trends",
		Width:  canvasWidth,
		Height: panelHeight,
		XAxis: chart.XAxis{
			Name:  "Date",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Number of Students",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Girls",
				XValues: xs,
				YValues: girls,
				Style:   chart.Style{StrokeColor: colorOrange, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Boys",
				XValues: xs,
				YValues: boys,
				Style:   chart.Style{StrokeColor: colorIndigo, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

func (r *Renderer) materialChart(seq []metrics.DailyRecord, ticks []chart.Tick) renderable {
	xs := make([]float64, len(seq))
	ys := make([]float64, len(seq))
	for i, rec := range seq {
		xs[i] = float64(i)
		ys[i] = rec.MaterialEffectiveness
	}

	return chart.Chart{
		Title:  "Material Effectiveness Trend",
		Width:  halfWidth,
		Height: panelHeight,
		XAxis: chart.XAxis{
			Name:  "Date",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Effectiveness Score",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: colorGreen, StrokeWidth: 2},
			},
		},
	}
}

func (r *Renderer) performanceBars(perf metrics.PerformanceSummary) renderable {
	return chart.BarChart{
		Title:    "Performance Distribution",
		Width:    halfWidth,
		Height:   panelHeight,
		BarWidth: 90,
		Bars: []chart.Value{
			{Value: perf.AvgDailyAssessment, Label: fmt.Sprintf("Assessment %.1f%%", perf.AvgDailyAssessment), Style: chart.Style{FillColor: colorOrange, StrokeColor: colorOrange}},
			{Value: perf.AvgPracticalSkills, Label: fmt.Sprintf("Practical %.1f%%", perf.AvgPracticalSkills), Style: chart.Style{FillColor: colorIndigo, StrokeColor: colorIndigo}},
			{Value: perf.AvgTheoreticalKnowledge, Label: fmt.Sprintf("Theory %.1f%%", perf.AvgTheoreticalKnowledge), Style: chart.Style{FillColor: colorGreen, StrokeColor: colorGreen}},
		},
	}
}

func (r *Renderer) engagementBars(att metrics.AttendanceSummary) renderable {
	return chart.BarChart{
		Title:    "Engagement by Gender",
		Width:    halfWidth,
		Height:   panelHeight,
		BarWidth: 90,
		Bars: []chart.Value{
			{Value: att.AvgGirlsEngagement, Label: fmt.Sprintf("Girls %.2f", att.AvgGirlsEngagement), Style: chart.Style{FillColor: colorOrange, StrokeColor: colorOrange}},
			{Value: att.AvgBoysEngagement, Label: fmt.Sprintf("Boys %.2f", att.AvgBoysEngagement), Style: chart.Style{FillColor: colorIndigo, StrokeColor: colorIndigo}},
		},
	}
}

func (r *Renderer) completionBars(perf metrics.PerformanceSummary) renderable {
	return chart.BarChart{
		Title:    "Completion Rates",
		Width:    halfWidth,
		Height:   panelHeight,
		BarWidth: 90,
		Bars: []chart.Value{
			{Value: perf.AvgProjectCompletion, Label: fmt.Sprintf("Projects %.1f%%", perf.AvgProjectCompletion), Style: chart.Style{FillColor: colorIndigo, StrokeColor: colorIndigo}},
			{Value: perf.AvgHomeworkCompletion, Label: fmt.Sprintf("Homework %.1f%%", perf.AvgHomeworkCompletion), Style: chart.Style{FillColor: colorOrange, StrokeColor: colorOrange}},
			{Value: perf.AvgParticipation, Label: fmt.Sprintf("Participation %.1f%%", perf.AvgParticipation), Style: chart.Style{FillColor: colorGreen, StrokeColor: colorGreen}},
		},
	}
}
