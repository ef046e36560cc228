package render_test

import (
	"bytes"
	"fmt"
	"testing"

	"hotel/internal/domains/report/model"
	"hotel/internal/domains/report/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDF(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		perPage   int
		wantPages int
	}{
		{name: "no bookings", rows: 0, perPage: 18, wantPages: 1},
		{name: "one page", rows: 5, perPage: 18, wantPages: 1},
		{name: "paginated by row limit", rows: 40, perPage: 18, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := sampleReport()
			report.Rows = make([]model.Row, tt.rows)

			for i := range report.Rows {
				report.Rows[i] = sampleReport().Rows[i%2]
			}

			var buf bytes.Buffer

			err := render.PDF(&buf, report, render.PDFOptions{RowsPerPage: tt.perPage})
			require.NoError(t, err)

			out := buf.String()

			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
			assert.Contains(t, out, fmt.Sprintf("/Count %d", tt.wantPages))
			assert.Contains(t, out, fmt.Sprintf("Page %d of %d", tt.wantPages, tt.wantPages))
			assert.Contains(t, out, "Garden Residence")
		})
	}
}
