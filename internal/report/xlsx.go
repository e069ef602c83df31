package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet is the worksheet that holds the report.
const Sheet = "Sheet1"

// entriesHeader is the column header row above the per-file rows.
var entriesHeader = []interface{}{"Index", "Old name", "New name", "Status", "Error"}

// WriteXLSX writes r to path as a single-sheet workbook: a block of run
// details, a blank row, then one row per entry under [entriesHeader].
func WriteXLSX(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Run", r.ID},
		{"Started", r.StartedAt.Format("2006-01-02 15:04:05")},
		{"Finished", r.FinishedAt.Format("2006-01-02 15:04:05")},
		{"Dry run", strconv.FormatBool(r.DryRun)},
		{"Directory", r.Directory},
		{"Base name", r.BaseName},
		{"Style", r.Style},
		{"Start", r.Start},
		{"Filter", r.Filter},
		{"Renamed", r.Renamed},
		{"Skipped", r.Skipped},
		{"Failed", r.Failed},
		{},
		entriesHeader,
	}
	for _, e := range r.Entries {
		rows = append(rows, []interface{}{e.Index, e.Old, e.New, string(e.Status), e.Error})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return fmt.Errorf("write report row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
