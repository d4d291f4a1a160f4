// Package export renders comparison results as spreadsheets for the
// back-office review flow.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gabriel/crewdocs/internal/reconcile"
)

// ComparisonRow is one requirement line of a comparison sheet
type ComparisonRow struct {
	RequirementName string
	Obligation      string
	Verdict         reconcile.Verdict
}

// Comparison is the input for a single-candidate sheet
type Comparison struct {
	VacancyTitle  string
	CandidateName string
	Rows          []ComparisonRow
	Summary       reconcile.Summary
}

const sheetName = "Comparison"

var headers = []string{
	"Requirement", "Obligation", "Status", "Match Type",
	"Similarity", "Validity", "Valid Until", "Observations",
}

// WriteExcel renders a comparison as an .xlsx workbook to w
func WriteExcel(w io.Writer, cmp Comparison) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheetName, "A1", cmp.VacancyTitle)
	f.SetCellValue(sheetName, "B1", cmp.CandidateName)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, h)
	}

	for i, row := range cmp.Rows {
		rowNo := i + 4
		v := row.Verdict
		validUntil := ""
		if v.ValidityDate != nil {
			validUntil = *v.ValidityDate
		}
		values := []interface{}{
			row.RequirementName,
			row.Obligation,
			string(v.Status),
			string(v.MatchType),
			fmt.Sprintf("%.0f%%", v.SimilarityScore*100),
			string(v.ValidityStatus),
			validUntil,
			v.Observations,
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNo)
			if err != nil {
				return fmt.Errorf("failed to build cell: %w", err)
			}
			f.SetCellValue(sheetName, cell, val)
		}
	}

	summaryRow := len(cmp.Rows) + 5
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow),
		fmt.Sprintf("Adherence: %d%%", cmp.Summary.AdherencePercent))
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow),
		fmt.Sprintf("%d satisfied / %d partial / %d pending of %d",
			cmp.Summary.Satisfied, cmp.Summary.Partial, cmp.Summary.Pending, cmp.Summary.Total))

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
