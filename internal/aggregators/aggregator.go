package aggregators

import (
	"sort"
	"strings"
	"time"

	"uwsgi-log-stats/internal/models"
)

//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// Update accumulates one in-window record.
	Update(record *models.LogRecord)
	// Summarize computes the run summary from the accumulated state. It does not reset it.
	Summarize() *models.Summary
}

// aggregator keeps the per-run state. firstSeen/lastSeen follow arrival
// order: firstSeen is the first record updated, lastSeen the latest one,
// even when its timestamp is older than firstSeen.
type aggregator struct {
	codeOrder  []string
	codeCounts map[string]int64
	sizeSums   map[string]float64

	seen      bool
	firstSeen time.Time
	lastSeen  time.Time
}

func NewAggregator() Aggregator {
	return &aggregator{
		codeCounts: make(map[string]int64),
		sizeSums:   make(map[string]float64),
	}
}

func (a *aggregator) Update(record *models.LogRecord) {
	if !a.seen {
		a.seen = true
		a.firstSeen = record.Timestamp
	}
	a.lastSeen = record.Timestamp

	code := record.ResponseCode
	if _, exists := a.codeCounts[code]; !exists {
		a.codeOrder = append(a.codeOrder, code)
	}
	a.codeCounts[code]++
	a.sizeSums[code] += float64(record.BytesIn)

	metricRecordsAggregatedTotal.WithLabelValues(code).Inc()
}

func (a *aggregator) Summarize() *models.Summary {
	var total int64
	for _, count := range a.codeCounts {
		total += count
	}

	duration := a.durationSeconds()
	var rate float64
	if duration != 0 {
		rate = float64(total) / float64(duration)
	}

	summary := &models.Summary{
		TotalRequests:   total,
		DurationSeconds: duration,
		Rate:            rate,
		CodeCounts:      a.sortedCodeCounts(),
		SizeSums:        make(map[string]float64, len(a.sizeSums)),
		Mean2xxSize:     CalcMeanSize(a.codeOrder, a.codeCounts, a.sizeSums, Pattern2xx),
	}
	for code, size := range a.sizeSums {
		summary.SizeSums[code] = size
	}
	if a.seen {
		firstSeen, lastSeen := a.firstSeen, a.lastSeen
		summary.FirstSeen = &firstSeen
		summary.LastSeen = &lastSeen
	}

	return summary
}

// durationSeconds is lastSeen - firstSeen truncated toward zero; negative
// when the last record is older than the first one.
func (a *aggregator) durationSeconds() int64 {
	if !a.seen {
		return 0
	}
	seconds := a.lastSeen.Unix() - a.firstSeen.Unix()
	nanos := a.lastSeen.Nanosecond() - a.firstSeen.Nanosecond()
	switch {
	case seconds > 0 && nanos < 0:
		seconds--
	case seconds < 0 && nanos > 0:
		seconds++
	}
	return seconds
}

// sortedCodeCounts orders codes by numeric value; ties keep first-seen order.
func (a *aggregator) sortedCodeCounts() []models.CodeCount {
	result := make([]models.CodeCount, 0, len(a.codeOrder))
	for _, code := range a.codeOrder {
		result = append(result, models.CodeCount{Code: code, Count: a.codeCounts[code]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return CompareCodes(result[i].Code, result[j].Code) < 0
	})
	return result
}

// CompareCodes compares two digit strings by numeric value without
// converting them, so arbitrarily long codes order correctly.
func CompareCodes(a, b string) int {
	a, b = NormalizeCode(a), NormalizeCode(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// NormalizeCode drops leading zeros: "0200" -> "200", "000" -> "0".
func NormalizeCode(code string) string {
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" && code != "" {
		return "0"
	}
	return trimmed
}
