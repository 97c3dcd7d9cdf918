package models

import "time"

// LogRecord is the set of fields extracted from one matching uWSGI request line.
//
// Example line:
//
//	[pid: 1907|app: 0|req: 1/1] 10.0.0.5 () {44 vars in 890 bytes} [Wed Oct 15 12:00:03 2026] GET /api/items => generated 1024 bytes in 12 msecs (HTTP/1.1 200) 4 headers in 131 bytes (1 switches on core 0)
//
// yields Timestamp=2026-10-15 12:00:03, BytesIn=890, Method="GET",
// BytesGenerated=1024, ResponseCode="200", HeaderBytes=131.
type LogRecord struct {
	Timestamp time.Time
	Method    string
	// ResponseCode keeps the textual form so code groups can be prefix matched.
	ResponseCode   string
	BytesIn        uint64
	BytesGenerated uint64
	HeaderBytes    uint64
}
