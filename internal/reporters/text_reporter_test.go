package reporters

import (
	"bytes"
	"errors"
	"testing"

	"uwsgi-log-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextReporter_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		summary  *models.Summary
		expected string
	}{
		{
			name: "typical run",
			summary: &models.Summary{
				TotalRequests: 3,
				Rate:          1.5,
				CodeCounts: []models.CodeCount{
					{Code: "200", Count: 2},
					{Code: "404", Count: 1},
				},
				Mean2xxSize: 200,
			},
			expected: "Zapytan: 3\n" +
				"Zapytania/sec: 1.50\n" +
				"Odpowiedzi: [(200, 2), (404, 1)]\n" +
				"Sredni rozmiar zapytan 2xx: 200.00 bytes\n",
		},
		{
			name:    "no requests",
			summary: &models.Summary{CodeCounts: []models.CodeCount{}},
			expected: "Zapytan: 0\n" +
				"Zapytania/sec: 0.00\n" +
				"Odpowiedzi: []\n" +
				"Sredni rozmiar zapytan 2xx: 0.00 bytes\n",
		},
		{
			name: "rounding and leading zeros",
			summary: &models.Summary{
				TotalRequests: 7,
				Rate:          2.0 / 3.0,
				CodeCounts:    []models.CodeCount{{Code: "0200", Count: 7}},
				Mean2xxSize:   1234.5678,
			},
			expected: "Zapytan: 7\n" +
				"Zapytania/sec: 0.67\n" +
				"Odpowiedzi: [(200, 7)]\n" +
				"Sredni rozmiar zapytan 2xx: 1234.57 bytes\n",
		},
		{
			name: "negative rate from out of order lines",
			summary: &models.Summary{
				TotalRequests: 3,
				Rate:          -0.5,
				CodeCounts:    []models.CodeCount{{Code: "200", Count: 3}},
				Mean2xxSize:   10,
			},
			expected: "Zapytan: 3\n" +
				"Zapytania/sec: -0.50\n" +
				"Odpowiedzi: [(200, 3)]\n" +
				"Sredni rozmiar zapytan 2xx: 10.00 bytes\n",
		},
	}

	reporter := NewTextReporter()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, reporter.Report(&buf, tt.summary))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestTextReporter_Report_WriteError(t *testing.T) {
	t.Parallel()

	err := NewTextReporter().Report(brokenWriter{}, &models.Summary{})
	assert.EqualError(t, err, "closed pipe")
}
