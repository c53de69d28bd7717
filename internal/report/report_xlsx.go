package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const absenceSheet = "Absences"

var absenceHeaders = []string{"Date", "Employee Number", "Full Name", "On Leave", "Leave Type"}

func buildAbsenceWorkbook(rows []AbsenceResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), absenceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range absenceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(absenceSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", cell, err)
		}
	}

	for r, a := range rows {
		onLeave := "no"
		if a.OnLeave {
			onLeave = "yes"
		}
		values := []interface{}{a.Date, a.EmployeeNumber, a.FullName, onLeave, a.LeaveType}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(absenceSheet, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(absenceSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
