package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPdfEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)\\c`, pdfEscape(`a(b)\c`))
	assert.Equal(t, "Jos? Garc?a", pdfEscape("José García"))
}

func TestBuildPayslipPDF_Truncates(t *testing.T) {
	lines := make([]string, 80)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	pdf, err := buildPayslipPDF(lines)
	assert.NoError(t, err)
	assert.Equal(t, maxPayslipLines, strings.Count(string(pdf), ") Tj"))
	assert.Contains(t, string(pdf), "T* (...) Tj")
	assert.NotContains(t, string(pdf), "(line 79)")
	// the caller's slice is left alone
	assert.Equal(t, "line 51", lines[51])
}

func TestBuildPayslipPDF_XrefOffsets(t *testing.T) {
	pdf, err := buildPayslipPDF([]string{"PAYSLIP"})
	assert.NoError(t, err)

	idx := bytes.Index(pdf, []byte("xref\n"))
	assert.Greater(t, idx, 0)
	assert.Contains(t, string(pdf), fmt.Sprintf("startxref\n%d\n", idx))
	assert.Equal(t, 9, bytes.Index(pdf, []byte("1 0 obj")))
}
