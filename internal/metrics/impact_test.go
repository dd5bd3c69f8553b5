package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tmscli/internal/errors"
)

func TestAssessImpact(t *testing.T) {
	baseline := day(0, 20, 20)
	baseline.DailyAssessmentScore = 60
	baseline.PracticalSkillsScore = 65
	baseline.TheoreticalKnowledge = 62

	endline := day(4, 20, 20)
	endline.DailyAssessmentScore = 90
	endline.PracticalSkillsScore = 88
	endline.TheoreticalKnowledge = 81

	t.Run("two record sequence", func(t *testing.T) {
		got, err := AssessImpact([]DailyRecord{baseline, endline})
		require.NoError(t, err)

		assert.InDelta(t, 30.0, got.AssessmentImprovement, 1e-9)
		assert.InDelta(t, 23.0, got.PracticalSkillsImprovement, 1e-9)
		assert.InDelta(t, 19.0, got.TheoreticalKnowledgeImprovement, 1e-9)
		assert.InDelta(t, 50.0, got.OverallImprovementPercent, 1e-9)
	})

	t.Run("middle records do not contribute", func(t *testing.T) {
		middle := day(2, 20, 20)
		middle.DailyAssessmentScore = 10

		got, err := AssessImpact([]DailyRecord{baseline, middle, endline})
		require.NoError(t, err)
		assert.InDelta(t, 30.0, got.AssessmentImprovement, 1e-9)
		assert.InDelta(t, 50.0, got.OverallImprovementPercent, 1e-9)
	})

	t.Run("decline yields negative impact", func(t *testing.T) {
		got, err := AssessImpact([]DailyRecord{endline, baseline})
		require.NoError(t, err)
		assert.InDelta(t, -30.0, got.AssessmentImprovement, 1e-9)
		assert.InDelta(t, -100.0/3.0, got.OverallImprovementPercent, 1e-9)
	})

	t.Run("fewer than two records", func(t *testing.T) {
		for _, seq := range [][]DailyRecord{nil, {baseline}} {
			_, err := AssessImpact(seq)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeInsufficientData))
		}
	})

	t.Run("zero baseline score", func(t *testing.T) {
		zero := baseline
		zero.DailyAssessmentScore = 0

		_, err := AssessImpact([]DailyRecord{zero, endline})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDivisionByZero))
	})
}

func TestDailyRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DailyRecord)
		wantErr bool
	}{
		{
			name:   "valid record",
			mutate: func(r *DailyRecord) {},
		},
		{
			name:    "broken total invariant",
			mutate:  func(r *DailyRecord) { r.TotalAttendance = r.TotalAttendance + 1 },
			wantErr: true,
		},
		{
			name:    "negative attendance",
			mutate:  func(r *DailyRecord) { r.GirlsAttendance = -1 },
			wantErr: true,
		},
		{
			name:    "trainer attendance out of range",
			mutate:  func(r *DailyRecord) { r.TrainerAttendance = 2 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := day(0, 20, 20)
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
