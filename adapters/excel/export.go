// Package excel exports scoring runs as spreadsheets.
package excel

import (
	"fmt"
	"io"

	"govmaf/models"

	"github.com/xuri/excelize/v2"
)

// RunExporter writes a run's per-frame scores and summary to an xlsx
// workbook.
type RunExporter struct{}

// NewRunExporter creates an exporter.
func NewRunExporter() *RunExporter {
	return &RunExporter{}
}

// Write streams the workbook to w.
func (e *RunExporter) Write(w io.Writer, run *models.Run) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scores"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []interface{}{"frame", "score"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	for i, s := range run.FrameScores {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i, s}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"run_id", run.ID},
		{"model_ref", run.ModelRef},
		{"aggregate_method", run.AggregateMethod},
		{"num_frames", run.NumFrames},
		{"aggregate_score", run.AggregateScore},
	}
	if run.CILow != nil && run.CIHigh != nil {
		rows = append(rows,
			[]interface{}{"ci_low", *run.CILow},
			[]interface{}{"ci_high", *run.CIHigh})
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summary, cell, &rows[i]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
