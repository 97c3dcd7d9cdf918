package reporters

import (
	"fmt"
	"io"
	"strings"

	"uwsgi-log-stats/internal/aggregators"
	"uwsgi-log-stats/internal/models"
)

// SummaryReporter renders a run summary for a human reader.
type SummaryReporter interface {
	Report(w io.Writer, summary *models.Summary) error
}

type textReporter struct{}

// NewTextReporter returns the fixed four line report:
//
//	Zapytan: 3
//	Zapytania/sec: 1.50
//	Odpowiedzi: [(200, 2), (404, 1)]
//	Sredni rozmiar zapytan 2xx: 200.00 bytes
func NewTextReporter() SummaryReporter {
	return &textReporter{}
}

func (r *textReporter) Report(w io.Writer, summary *models.Summary) error {
	_, err := fmt.Fprintf(w,
		"Zapytan: %d\n"+
			"Zapytania/sec: %.2f\n"+
			"Odpowiedzi: %s\n"+
			"Sredni rozmiar zapytan 2xx: %.2f bytes\n",
		summary.TotalRequests,
		summary.Rate,
		formatCodeCounts(summary.CodeCounts),
		summary.Mean2xxSize)
	return err
}

// formatCodeCounts prints codes as integers in a tuple list, e.g. [(200, 2), (404, 1)].
func formatCodeCounts(codeCounts []models.CodeCount) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, cc := range codeCounts {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%s, %d)", aggregators.NormalizeCode(cc.Code), cc.Count)
	}
	sb.WriteByte(']')
	return sb.String()
}
