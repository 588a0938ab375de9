package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/antonioclim/taskpool/internal/store"
	"github.com/antonioclim/taskpool/internal/util"
)

const reportSheet = "Runs"

var reportHeader = []string{
	"ID", "Workload", "Tasks", "Completed", "Cancelled", "Failed",
	"Success %", "Duration (ms)", "Created At",
}

// Report exports run history as an Excel workbook.
type Report struct {
	store *store.Store
}

func NewReportService(st *store.Store) *Report {
	return &Report{store: st}
}

// Export writes every stored run to path, newest first, and returns the
// number of exported rows.
func (r *Report) Export(ctx context.Context, path string) (int, error) {
	runs, err := r.store.Runs().List(ctx, store.WithDefaultSort())
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return 0, err
	}

	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(reportSheet, cell, title); err != nil {
			return 0, err
		}
	}

	for i, run := range runs {
		values := []any{
			run.ID.String(),
			run.Workload,
			run.Tasks,
			run.Completed,
			run.Cancelled,
			run.Failed,
			util.Percent(run.Completed, run.Tasks),
			run.Duration.Milliseconds(),
			run.CreatedAt,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return 0, err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, fmt.Errorf("failed to write report: %w", err)
	}

	zap.S().Named("report_service").Infow("report written", "path", path, "runs", len(runs))
	return len(runs), nil
}
