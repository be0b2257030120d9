package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_WithLineNumber(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Report("Undefined variable 'x'", 3)
	assert.Equal(t, "Error (line 3): Undefined variable 'x'\n", buf.String())
	assert.Equal(t, 1, r.Count())
}

func TestReport_WithoutLineNumber(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Report("Could not read file: missing.igbo", -1)
	assert.Equal(t, "Error: Could not read file: missing.igbo\n", buf.String())
}

func TestReportf_FormatsMessage(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Reportf(7, "Operands must be numbers for '%s'", "-")
	assert.Equal(t, "Error (line 7): Operands must be numbers for '-'\n", buf.String())
}

func TestCount_AccumulatesAcrossReports(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Report("a", 1)
	r.Report("b", 2)
	r.Reportf(3, "c")
	assert.Equal(t, 3, r.Count())
}
