package metrics

import (
	"fmt"

	"tmscli/internal/errors"
)

// AssessImpact compares the baseline (first) and endline (last) records of
// the sequence. It fails with INSUFFICIENT_DATA for sequences shorter than
// two records, where baseline and endline would coincide or be undefined.
//
// The generator never produces a zero baseline assessment score, but an
// externally supplied sequence can, so a zero denominator in the overall
// improvement ratio fails with DIVISION_BY_ZERO instead of being assumed
// away.
func AssessImpact(seq []DailyRecord) (ImpactSummary, error) {
	if len(seq) < 2 {
		return ImpactSummary{}, errors.NewInsufficientDataError(
			fmt.Sprintf("impact assessment requires at least 2 records, got %d", len(seq)))
	}

	baseline := seq[0]
	endline := seq[len(seq)-1]

	if baseline.DailyAssessmentScore == 0 {
		return ImpactSummary{}, errors.NewDivisionByZeroError(
			fmt.Sprintf("baseline assessment score is zero on %s", baseline.Date.Format("2006-01-02")))
	}

	return ImpactSummary{
		AssessmentImprovement:           endline.DailyAssessmentScore - baseline.DailyAssessmentScore,
		PracticalSkillsImprovement:      endline.PracticalSkillsScore - baseline.PracticalSkillsScore,
		TheoreticalKnowledgeImprovement: endline.TheoreticalKnowledge - baseline.TheoreticalKnowledge,
		OverallImprovementPercent:       (endline.DailyAssessmentScore/baseline.DailyAssessmentScore - 1) * 100,
	}, nil
}
