package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lines past this no longer fit on an A4 page at 14pt leading.
const maxPayslipLines = 52

var amountPrinter = message.NewPrinter(language.English)

func payslipLines(calc CalculationResponse, generatedAt time.Time) []string {
	lines := []string{
		"PAYSLIP",
		"",
		fmt.Sprintf("Employee: %s (%s)", calc.EmployeeName, calc.EmployeeNumber),
		fmt.Sprintf("Period: %s to %s", calc.From, calc.To),
		fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04 MST")),
		"",
	}

	if len(calc.Weeks) > 0 {
		lines = append(lines, "Week of        Worked      Working days")
		for _, w := range calc.Weeks {
			lines = append(lines, fmt.Sprintf("%s   %s   %d",
				w.WeekStart,
				formatSeconds(w.TotalDurationSeconds),
				w.WorkingDays,
			))
		}
		lines = append(lines, "")
	}

	rate := amountPrinter.Sprintf("%.2f", calc.HourlyRate)
	if calc.RateOverridden {
		rate += " (override)"
	}
	lines = append(lines,
		fmt.Sprintf("Total worked: %s (%s h)", calc.TotalDuration, amountPrinter.Sprintf("%.2f", calc.TotalHours)),
		fmt.Sprintf("Working days: %d", calc.WorkingDays),
		fmt.Sprintf("Hourly rate: %s", rate),
		fmt.Sprintf("Total pay: %s", amountPrinter.Sprintf("%.2f", calc.TotalPay)),
	)
	return lines
}

func payslipFilename(calc CalculationResponse) string {
	number := calc.EmployeeNumber
	if number == "" {
		number = calc.EmployeeID
	}
	return fmt.Sprintf("payslip-%s-%s-%s.pdf", number, calc.From, calc.To)
}

func formatSeconds(total int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// buildPayslipPDF writes a single-page Helvetica document, one text line per
// entry. Overflowing lines are cut and replaced with a marker.
func buildPayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}
	if len(lines) > maxPayslipLines {
		lines = append(lines[:maxPayslipLines-1:maxPayslipLines-1], "...")
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)
	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

// pdfEscape escapes string-literal delimiters and drops bytes the standard
// Helvetica encoding cannot show.
func pdfEscape(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r > 0x7e:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
