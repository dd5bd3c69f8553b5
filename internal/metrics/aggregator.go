package metrics

import (
	"fmt"

	"tmscli/internal/errors"
)

// AttendanceMetrics computes attendance and engagement means across the
// sequence. It fails with an INSUFFICIENT_DATA error on an empty sequence;
// a single record is enough for every mean. The attendance trend is
// deliberately not part of the summary, see AttendanceTrend.
func AttendanceMetrics(seq []DailyRecord) (AttendanceSummary, error) {
	if len(seq) == 0 {
		return AttendanceSummary{}, errors.NewInsufficientDataError("attendance metrics require at least one record")
	}

	return AttendanceSummary{
		AvgTotalAttendance: mean(seq, func(r DailyRecord) float64 { return float64(r.TotalAttendance) }),
		AvgGirlsAttendance: mean(seq, func(r DailyRecord) float64 { return float64(r.GirlsAttendance) }),
		AvgBoysAttendance:  mean(seq, func(r DailyRecord) float64 { return float64(r.BoysAttendance) }),
		AvgGirlsEngagement: mean(seq, func(r DailyRecord) float64 { return r.GirlsEngagement }),
		AvgBoysEngagement:  mean(seq, func(r DailyRecord) float64 { return r.BoysEngagement }),
	}, nil
}

// AttendanceTrend computes the mean record-to-record percentage change of
// total attendance, in percent. The first record contributes no term. It
// fails with INSUFFICIENT_DATA for sequences shorter than two records and
// with DIVISION_BY_ZERO when any prior total attendance is exactly zero;
// a zero denominator is flagged rather than silently producing NaN.
func AttendanceTrend(seq []DailyRecord) (float64, error) {
	if len(seq) < 2 {
		return 0, errors.NewInsufficientDataError(
			fmt.Sprintf("attendance trend requires at least 2 records, got %d", len(seq)))
	}

	var sum float64
	for i := 1; i < len(seq); i++ {
		prev := float64(seq[i-1].TotalAttendance)
		if prev == 0 {
			return 0, errors.NewDivisionByZeroError(
				fmt.Sprintf("total attendance is zero on %s", seq[i-1].Date.Format("2006-01-02")))
		}
		sum += (float64(seq[i].TotalAttendance) - prev) / prev
	}

	return sum / float64(len(seq)-1) * 100, nil
}

// PerformanceMetrics computes performance and effectiveness means across the
// sequence. The trainer attendance rate is a rate, not a field mean: the sum
// of the 0/1 trainer attendance flags over the record count, in percent.
// Fails with INSUFFICIENT_DATA on an empty sequence.
func PerformanceMetrics(seq []DailyRecord) (PerformanceSummary, error) {
	if len(seq) == 0 {
		return PerformanceSummary{}, errors.NewInsufficientDataError("performance metrics require at least one record")
	}

	var trainerDays int
	for _, r := range seq {
		trainerDays += r.TrainerAttendance
	}

	return PerformanceSummary{
		AvgMaterialEffectiveness: mean(seq, func(r DailyRecord) float64 { return r.MaterialEffectiveness }),
		AvgTeachingEffectiveness: mean(seq, func(r DailyRecord) float64 { return r.TeachingEffectiveness }),
		AvgDailyAssessment:       mean(seq, func(r DailyRecord) float64 { return r.DailyAssessmentScore }),
		TrainerAttendanceRate:    float64(trainerDays) / float64(len(seq)) * 100,
		AvgPracticalSkills:       mean(seq, func(r DailyRecord) float64 { return r.PracticalSkillsScore }),
		AvgTheoreticalKnowledge:  mean(seq, func(r DailyRecord) float64 { return r.TheoreticalKnowledge }),
		AvgProjectCompletion:     mean(seq, func(r DailyRecord) float64 { return r.ProjectCompletionRate }),
		AvgParticipation:         mean(seq, func(r DailyRecord) float64 { return r.ParticipationRate }),
		AvgHomeworkCompletion:    mean(seq, func(r DailyRecord) float64 { return r.HomeworkCompletion }),
	}, nil
}

// mean computes the arithmetic mean of a field across the sequence. Callers
// guarantee a non-empty sequence.
func mean(seq []DailyRecord, extract func(DailyRecord) float64) float64 {
	var sum float64
	for _, r := range seq {
		sum += extract(r)
	}
	return sum / float64(len(seq))
}
