// Package report composes the comprehensive text report from the summary
// statistics produced by the metrics pipeline.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tmscli/internal/errors"
	"tmscli/internal/metrics"
)

// Composer formats aggregated metrics into the comprehensive analysis
// report. It holds no state beyond its logger and never partially renders:
// callers must supply fully computed summaries.
type Composer struct {
	logger *slog.Logger
}

// NewComposer creates a report composer.
func NewComposer(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{logger: logger}
}

// Compose renders the four-section report. Section order and labels are
// fixed: attendance, engagement, performance, impact assessment. Every
// numeric value is rounded to two decimals; rates carry a percent sign,
// engagement and effectiveness values their 5-point scale, improvements
// their point unit.
func (c *Composer) Compose(att metrics.AttendanceSummary, trend float64, perf metrics.PerformanceSummary, impact metrics.ImpactSummary) string {
	var b strings.Builder

	b.WriteString("Training Program Comprehensive Analysis Report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString("1. Attendance Metrics\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	fmt.Fprintf(&b, "• Average Total Attendance: %.2f\n", att.AvgTotalAttendance)
	fmt.Fprintf(&b, "• Average Girls Attendance: %.2f\n", att.AvgGirlsAttendance)
	fmt.Fprintf(&b, "• Average Boys Attendance: %.2f\n", att.AvgBoysAttendance)
	fmt.Fprintf(&b, "• Attendance Trend: %.2f%% change\n\n", trend)

	b.WriteString("2. Engagement Metrics\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	fmt.Fprintf(&b, "• Girls Engagement: %.2f/5.0\n", att.AvgGirlsEngagement)
	fmt.Fprintf(&b, "• Boys Engagement: %.2f/5.0\n\n", att.AvgBoysEngagement)

	b.WriteString("3. Performance Metrics\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	fmt.Fprintf(&b, "• Material Effectiveness: %.2f/5.0\n", perf.AvgMaterialEffectiveness)
	fmt.Fprintf(&b, "• Teaching Effectiveness: %.2f/5.0\n", perf.AvgTeachingEffectiveness)
	fmt.Fprintf(&b, "• Average Assessment Score: %.2f%%\n", perf.AvgDailyAssessment)
	fmt.Fprintf(&b, "• Practical Skills Score: %.2f%%\n", perf.AvgPracticalSkills)
	fmt.Fprintf(&b, "• Theoretical Knowledge: %.2f%%\n", perf.AvgTheoreticalKnowledge)
	fmt.Fprintf(&b, "• Project Completion Rate: %.2f%%\n", perf.AvgProjectCompletion)
	fmt.Fprintf(&b, "• Participation Rate: %.2f%%\n", perf.AvgParticipation)
	fmt.Fprintf(&b, "• Homework Completion: %.2f%%\n\n", perf.AvgHomeworkCompletion)

	b.WriteString("4. Impact Assessment\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	fmt.Fprintf(&b, "• Assessment Score Improvement: %.2f points\n", impact.AssessmentImprovement)
	fmt.Fprintf(&b, "• Practical Skills Improvement: %.2f points\n", impact.PracticalSkillsImprovement)
	fmt.Fprintf(&b, "• Theoretical Knowledge Improvement: %.2f points\n", impact.TheoreticalKnowledgeImprovement)
	fmt.Fprintf(&b, "• Overall Improvement: %.2f%%\n", impact.OverallImprovementPercent)

	return b.String()
}

// Save writes a composed report to disk.
func (c *Composer) Save(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.NewStorageError("write comprehensive report", err)
	}

	c.logger.Info("saved comprehensive report", slog.String("path", path))
	return nil
}
