package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tmscli/internal/errors"
	"tmscli/internal/metrics"
)

const sheetName = "Training Data"

// WriteXLSX writes the record sequence to an Excel workbook with the same
// column layout as the CSV artifact. Dates are written as strings so the
// sheet matches the CSV byte for byte when exported.
func WriteXLSX(records []metrics.DailyRecord, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.NewStorageError("rename workbook sheet", err)
	}

	for col, name := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.NewStorageError("compute header cell name", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return errors.NewStorageError(fmt.Sprintf("write header cell %s", cell), err)
		}
	}

	for i, r := range records {
		for col, value := range recordRow(r) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return errors.NewStorageError("compute data cell name", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return errors.NewStorageError(fmt.Sprintf("write data cell %s", cell), err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("save training data workbook", err)
	}

	return nil
}
