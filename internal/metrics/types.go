package metrics

import (
	"fmt"
	"time"
)

// Bounds for generated metric fields. Engagement and effectiveness use a
// 5-point scale, score and rate fields are percentages.
const (
	MinAttendance = 15
	MaxAttendance = 25

	MinEngagement = 3.5
	MaxEngagement = 5.0

	MinMaterialEffectiveness = 3.0
	MaxMaterialEffectiveness = 5.0

	MinTeachingEffectiveness = 3.5
	MaxTeachingEffectiveness = 5.0

	MinBaselineScore = 50.0
	MaxBaselineScore = 65.0

	// MaxAssessmentScore caps the progressive daily assessment score.
	MaxAssessmentScore = 95.0

	MinSkillScore = 60.0
	MaxSkillScore = 95.0

	MinCompletionRate    = 70.0
	MaxCompletionRate    = 100.0
	MinParticipationRate = 75.0
	MaxParticipationRate = 100.0
)

// DailyRecord is one weekday's full metric snapshot for the training program.
// Records are created once by the Generator and treated as immutable by all
// downstream consumers.
type DailyRecord struct {
	Date                  time.Time `json:"date"`
	GirlsAttendance       int       `json:"girls_attendance"`
	BoysAttendance        int       `json:"boys_attendance"`
	TotalAttendance       int       `json:"total_attendance"`
	GirlsEngagement       float64   `json:"girls_engagement"`
	BoysEngagement        float64   `json:"boys_engagement"`
	MaterialEffectiveness float64   `json:"material_effectiveness"`
	TeachingEffectiveness float64   `json:"teaching_effectiveness"`
	TrainerAttendance     int       `json:"trainer_attendance"` // 0=absent, 1=present
	DailyAssessmentScore  float64   `json:"daily_assessment_score"`
	PracticalSkillsScore  float64   `json:"practical_skills_score"`
	TheoreticalKnowledge  float64   `json:"theoretical_knowledge"`
	ProjectCompletionRate float64   `json:"project_completion_rate"`
	ParticipationRate     float64   `json:"participation_rate"`
	HomeworkCompletion    float64   `json:"homework_completion"`
}

// Validate checks structural invariants of a record. The total attendance
// invariant holds by construction for generated records, but externally
// supplied sequences are not trusted.
func (r DailyRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("record has zero date")
	}
	if r.GirlsAttendance < 0 || r.BoysAttendance < 0 {
		return fmt.Errorf("negative attendance on %s", r.Date.Format("2006-01-02"))
	}
	if r.TotalAttendance != r.GirlsAttendance+r.BoysAttendance {
		return fmt.Errorf("total attendance %d does not equal girls %d + boys %d on %s",
			r.TotalAttendance, r.GirlsAttendance, r.BoysAttendance, r.Date.Format("2006-01-02"))
	}
	if r.TrainerAttendance != 0 && r.TrainerAttendance != 1 {
		return fmt.Errorf("trainer attendance must be 0 or 1, got %d", r.TrainerAttendance)
	}
	return nil
}

// IsWeekend reports whether the record falls on a Saturday or Sunday.
func (r DailyRecord) IsWeekend() bool {
	wd := r.Date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AttendanceSummary holds arithmetic means of the attendance and engagement
// fields across a record sequence. The attendance trend is a separate
// operation because it is undefined for sequences shorter than two records.
type AttendanceSummary struct {
	AvgTotalAttendance float64 `json:"avg_total_attendance"`
	AvgGirlsAttendance float64 `json:"avg_girls_attendance"`
	AvgBoysAttendance  float64 `json:"avg_boys_attendance"`
	AvgGirlsEngagement float64 `json:"avg_girls_engagement"`
	AvgBoysEngagement  float64 `json:"avg_boys_engagement"`
}

// PerformanceSummary holds arithmetic means of the performance fields across
// a record sequence, plus the trainer attendance rate in percent.
type PerformanceSummary struct {
	AvgMaterialEffectiveness float64 `json:"avg_material_effectiveness"`
	AvgTeachingEffectiveness float64 `json:"avg_teaching_effectiveness"`
	AvgDailyAssessment       float64 `json:"avg_daily_assessment"`
	TrainerAttendanceRate    float64 `json:"trainer_attendance_rate"`
	AvgPracticalSkills       float64 `json:"avg_practical_skills"`
	AvgTheoreticalKnowledge  float64 `json:"avg_theoretical_knowledge"`
	AvgProjectCompletion     float64 `json:"avg_project_completion"`
	AvgParticipation         float64 `json:"avg_participation"`
	AvgHomeworkCompletion    float64 `json:"avg_homework_completion"`
}

// ImpactSummary compares the baseline (first) and endline (last) records of
// a sequence. Improvements are absolute point deltas, the overall figure is
// the relative change of the daily assessment score in percent.
type ImpactSummary struct {
	AssessmentImprovement           float64 `json:"assessment_improvement"`
	PracticalSkillsImprovement      float64 `json:"practical_skills_improvement"`
	TheoreticalKnowledgeImprovement float64 `json:"theoretical_knowledge_improvement"`
	OverallImprovementPercent       float64 `json:"overall_improvement_percentage"`
}
