package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/admissions-parser/internal/types"
)

func TestPrintUpdatesTaxonomyOrder(t *testing.T) {
	data := types.NewParsedApplicationData()
	data.Updates[types.FieldSAT] = "1450"
	data.Updates[types.FieldGPAUnweighted] = "3.8"

	var buf bytes.Buffer
	NewPrinter(&buf).PrintUpdates(data)
	out := buf.String()

	assert.Contains(t, out, "EXTRACTED FIELDS")
	assert.Contains(t, out, "SAT Score:")
	assert.Contains(t, out, "1450")

	// GPA precedes SAT in the taxonomy regardless of map order.
	assert.Less(t, strings.Index(out, "Unweighted GPA:"), strings.Index(out, "SAT Score:"))
}

func TestPrintUpdatesEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintUpdates(nil)
	p.PrintUpdates(types.NewParsedApplicationData())

	assert.Empty(t, buf.String())
}

func TestPrintMiscCapsList(t *testing.T) {
	data := types.NewParsedApplicationData()
	for i := 0; i < maxItemsToShow+3; i++ {
		data.Misc = append(data.Misc, "Highlight note entry")
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintMisc(data)
	out := buf.String()

	assert.Contains(t, out, "HIGHLIGHTS")
	assert.Contains(t, out, "... and 3 more")
	assert.Equal(t, maxItemsToShow, strings.Count(out, "• Highlight note entry"))
}

func TestPrintDiagnostics(t *testing.T) {
	data := types.NewParsedApplicationData()
	data.AddDiagnostic("filter", "excluded 120 chars")

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDiagnostics(data)
	out := buf.String()

	assert.Contains(t, out, "DIAGNOSTICS")
	assert.Contains(t, out, "filter")
	assert.Contains(t, out, "excluded 120 chars")
}
