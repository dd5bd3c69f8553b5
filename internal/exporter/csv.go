package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"tmscli/internal/errors"
	"tmscli/internal/metrics"
)

const dateFormat = "2006-01-02"

// Header is the column layout of the tabular data artifact, one column per
// DailyRecord field in declaration order.
var Header = []string{
	"date",
	"girls_attendance",
	"boys_attendance",
	"total_attendance",
	"girls_engagement",
	"boys_engagement",
	"material_effectiveness",
	"teaching_effectiveness",
	"trainer_attendance",
	"daily_assessment_score",
	"practical_skills_score",
	"theoretical_knowledge",
	"project_completion_rate",
	"participation_rate",
	"homework_completion",
}

// WriteCSV writes the record sequence to a CSV file, one row per record in
// sequence order. Floats are written with full precision so a read-back
// reproduces every value exactly.
func WriteCSV(records []metrics.DailyRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("create training data CSV", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(Header); err != nil {
		return errors.NewStorageError("write CSV header", err)
	}

	for _, r := range records {
		if err := writer.Write(recordRow(r)); err != nil {
			return errors.NewStorageError(
				fmt.Sprintf("write CSV row for %s", r.Date.Format(dateFormat)), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewStorageError("flush training data CSV", err)
	}

	return nil
}

// ReadCSV loads a record sequence previously written by WriteCSV, preserving
// row order. Malformed rows fail the whole load; silently skipping a row
// would corrupt downstream statistics.
func ReadCSV(path string) ([]metrics.DailyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("open training data CSV", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(Header)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewStorageError("read training data CSV", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewStorageError("training data CSV has no header row", nil)
	}

	records := make([]metrics.DailyRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := parseRow(row)
		if err != nil {
			return nil, errors.NewStorageError(fmt.Sprintf("parse CSV row %d", i+2), err)
		}
		records = append(records, record)
	}

	return records, nil
}

func recordRow(r metrics.DailyRecord) []string {
	return []string{
		r.Date.Format(dateFormat),
		strconv.Itoa(r.GirlsAttendance),
		strconv.Itoa(r.BoysAttendance),
		strconv.Itoa(r.TotalAttendance),
		formatFloat(r.GirlsEngagement),
		formatFloat(r.BoysEngagement),
		formatFloat(r.MaterialEffectiveness),
		formatFloat(r.TeachingEffectiveness),
		strconv.Itoa(r.TrainerAttendance),
		formatFloat(r.DailyAssessmentScore),
		formatFloat(r.PracticalSkillsScore),
		formatFloat(r.TheoreticalKnowledge),
		formatFloat(r.ProjectCompletionRate),
		formatFloat(r.ParticipationRate),
		formatFloat(r.HomeworkCompletion),
	}
}

func parseRow(row []string) (metrics.DailyRecord, error) {
	date, err := time.Parse(dateFormat, row[0])
	if err != nil {
		return metrics.DailyRecord{}, fmt.Errorf("parse date %q: %w", row[0], err)
	}

	ints := make([]int, 4)
	for i, idx := range []int{1, 2, 3, 8} {
		v, err := strconv.Atoi(row[idx])
		if err != nil {
			return metrics.DailyRecord{}, fmt.Errorf("parse column %q: %w", Header[idx], err)
		}
		ints[i] = v
	}

	floats := make([]float64, 10)
	for i, idx := range []int{4, 5, 6, 7, 9, 10, 11, 12, 13, 14} {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			return metrics.DailyRecord{}, fmt.Errorf("parse column %q: %w", Header[idx], err)
		}
		floats[i] = v
	}

	return metrics.DailyRecord{
		Date:                  date,
		GirlsAttendance:       ints[0],
		BoysAttendance:        ints[1],
		TotalAttendance:       ints[2],
		TrainerAttendance:     ints[3],
		GirlsEngagement:       floats[0],
		BoysEngagement:        floats[1],
		MaterialEffectiveness: floats[2],
		TeachingEffectiveness: floats[3],
		DailyAssessmentScore:  floats[4],
		PracticalSkillsScore:  floats[5],
		TheoreticalKnowledge:  floats[6],
		ProjectCompletionRate: floats[7],
		ParticipationRate:     floats[8],
		HomeworkCompletion:    floats[9],
	}, nil
}

// formatFloat writes a float with the minimal digits that round-trip exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
