package extractors

import (
	"testing"
	"time"

	"uwsgi-log-stats/internal/models"
	"uwsgi-log-stats/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "[pid: 1907|app: 0|req: 1/1] 10.0.0.5 () {44 vars in 890 bytes} " +
	"[Wed Oct 15 12:00:03 2026] GET /api/items => generated 1024 bytes in 12 msecs " +
	"(HTTP/1.1 200) 4 headers in 131 bytes (1 switches on core 0)"

func TestLineExtractor_Extract_RequestLine(t *testing.T) {
	t.Parallel()

	extractor := NewLineExtractor()

	record, err := extractor.Extract(sampleLine)
	require.NoError(t, err)

	expected := &models.LogRecord{
		Timestamp:      time.Date(2026, 10, 15, 12, 0, 3, 0, time.UTC),
		Method:         "GET",
		ResponseCode:   "200",
		BytesIn:        890,
		BytesGenerated: 1024,
		HeaderBytes:    131,
	}
	assert.Equal(t, expected, record)
}

func TestLineExtractor_Extract_ToleratesSurroundingText(t *testing.T) {
	t.Parallel()

	extractor := NewLineExtractor()

	line := "Oct 15 12:00:03 host uwsgi[1907]: " + sampleLine + " trailing garbage\n"
	record, err := extractor.Extract(line)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "200", record.ResponseCode)
	assert.Equal(t, uint64(890), record.BytesIn)
}

func TestLineExtractor_Extract_Variants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		method    string
		code      string
		bytesIn   uint64
		timestamp time.Time
	}{
		{
			name: "space padded day",
			line: "[pid: 12|app: 0|req: 7/9] 127.0.0.1 () {32 vars in 512 bytes} [Sun Mar  1 08:09:10 2026] " +
				"POST /login => generated 88 bytes in 3 msecs (HTTP/1.0 302) 3 headers in 110 bytes (1 switches on core 1)",
			method:    "POST",
			code:      "302",
			bytesIn:   512,
			timestamp: time.Date(2026, 3, 1, 8, 9, 10, 0, time.UTC),
		},
		{
			name: "not found with query string",
			line: "[pid: 12|app: 0|req: 8/10] 127.0.0.1 () {30 vars in 401 bytes} [Mon Mar 02 23:59:59 2026] " +
				"GET /missing?id=4 => generated 9 bytes in 1 msecs (HTTP/2.0 404) 2 headers in 64 bytes (0 switches on core 0)",
			method:    "GET",
			code:      "404",
			bytesIn:   401,
			timestamp: time.Date(2026, 3, 2, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "weekday not checked against date",
			line: "[pid: 1|app: 0|req: 1/1] ::1 () {10 vars in 100 bytes} [Fri Oct 15 00:00:01 2026] " +
				"DELETE /items/3 => generated 0 bytes in 2 msecs (HTTP/1.1 204) 1 headers in 20 bytes (1 switches on core 0)",
			method:    "DELETE",
			code:      "204",
			bytesIn:   100,
			timestamp: time.Date(2026, 10, 15, 0, 0, 1, 0, time.UTC),
		},
	}

	extractor := NewLineExtractor()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := extractor.Extract(tt.line)
			require.NoError(t, err)
			require.NotNil(t, record)
			assert.Equal(t, tt.method, record.Method)
			assert.Equal(t, tt.code, record.ResponseCode)
			assert.Equal(t, tt.bytesIn, record.BytesIn)
			assert.Equal(t, tt.timestamp, record.Timestamp)
		})
	}
}

func TestLineExtractor_Extract_NoMatch(t *testing.T) {
	t.Parallel()

	lines := []string{
		"",
		"*** Starting uWSGI 2.0.26 (64bit) on [Wed Oct 15 11:59:00 2026] ***",
		"spawned uWSGI worker 1 (pid: 1907, cores: 1)",
		"[pid: 1907|app: 0|req: 1/1] 10.0.0.5 () {44 vars in 890 bytes} [Wed Oct 15 12:00:03 2026] GET /api/items",
		"{44 vars in 890 bytes} [Wed Oct 15 12:00:03 2026] GET /api/items => generated 1024 bytes in 12 msecs (HTTP/1.1 200) 4 headers in 131 bytes",
	}

	extractor := NewLineExtractor()
	for _, line := range lines {
		record, err := extractor.Extract(line)
		assert.NoError(t, err, "line %q", line)
		assert.Nil(t, record, "line %q", line)
	}
}

func TestLineExtractor_Extract_MalformedTimestamp(t *testing.T) {
	t.Parallel()

	extractor := NewLineExtractor()

	line := "[pid: 1907|app: 0|req: 1/1] 10.0.0.5 () {44 vars in 890 bytes} [2026-10-15 12:00:03] " +
		"GET /api/items => generated 1024 bytes in 12 msecs (HTTP/1.1 200) 4 headers in 131 bytes (1 switches on core 0)"

	record, err := extractor.Extract(line)
	assert.Nil(t, record)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "EXT_9000", svcErr.Code)
	assert.Contains(t, svcErr.Message, "2026-10-15 12:00:03")
}
