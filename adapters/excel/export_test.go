package excel

import (
	"bytes"
	"testing"
	"time"

	"govmaf/models"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRunExporterWritesWorkbook(t *testing.T) {
	low, high := 88.0, 94.0
	run := &models.Run{
		ID:              "run-xlsx",
		ModelRef:        "test-model",
		AggregateMethod: "mean",
		NumFrames:       2,
		AggregateScore:  91.0,
		CILow:           &low,
		CIHigh:          &high,
		FrameScores:     []float64{90.5, 91.5},
		CreatedAt:       time.Now(),
	}

	var buf bytes.Buffer
	require.NoError(t, NewRunExporter().Write(&buf, run))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Scores", "A1")
	require.NoError(t, err)
	require.Equal(t, "frame", header)

	firstScore, err := f.GetCellValue("Scores", "B2")
	require.NoError(t, err)
	require.Equal(t, "90.5", firstScore)

	runID, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	require.Equal(t, "run-xlsx", runID)
}
