package models

import "time"

// CodeCount is the number of in-window requests answered with Code.
type CodeCount struct {
	Code  string `json:"code"`
	Count int64  `json:"count"`
}

// Summary is the final result of one run.
//
// Example JSON:
//
//	{
//	  "runId": "01J9Z3NDEKTSV4RRFFQ69G5FAV",
//	  "file": "/var/log/uwsgi/app.log",
//	  "window": {"start": "0001-01-01T00:00:00Z", "end": "9999-12-31T23:59:59.999999Z"},
//	  "totalRequests": 3,
//	  "durationSeconds": 2,
//	  "rate": 1.5,
//	  "codeCounts": [{"code": "200", "count": 2}, {"code": "404", "count": 1}],
//	  "sizeSums": {"200": 400, "404": 50},
//	  "mean2xxSize": 200,
//	  "firstSeen": "2026-10-15T12:00:01Z",
//	  "lastSeen": "2026-10-15T12:00:03Z"
//	}
type Summary struct {
	RunID           string             `json:"runId,omitempty"`
	File            string             `json:"file,omitempty"`
	Window          TimeWindow         `json:"window"`
	TotalRequests   int64              `json:"totalRequests"`
	DurationSeconds int64              `json:"durationSeconds"`
	Rate            float64            `json:"rate"`
	CodeCounts      []CodeCount        `json:"codeCounts"`
	SizeSums        map[string]float64 `json:"sizeSums"`
	Mean2xxSize     float64            `json:"mean2xxSize"`
	FirstSeen       *time.Time         `json:"firstSeen,omitempty"`
	LastSeen        *time.Time         `json:"lastSeen,omitempty"`
}
