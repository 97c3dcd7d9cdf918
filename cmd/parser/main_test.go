package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "uwsgi.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_Success(t *testing.T) {
	logPath := writeLogFile(t,
		"[pid: 1|app: 0|req: 1/1] 10.0.0.5 () {44 vars in 120 bytes} [Wed Oct 15 12:00:00 2026] GET / => generated 1 bytes in 1 msecs (HTTP/1.1 200) 1 headers in 10 bytes (1 switches on core 0)\n"+
			"[pid: 1|app: 0|req: 2/2] 10.0.0.5 () {44 vars in 80 bytes} [Wed Oct 15 12:00:04 2026] GET / => generated 1 bytes in 1 msecs (HTTP/1.1 500) 1 headers in 10 bytes (1 switches on core 0)\n")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{logPath}, stdout, stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Zapytan: 2\n"+
		"Zapytania/sec: 0.50\n"+
		"Odpowiedzi: [(200, 1), (500, 1)]\n"+
		"Sredni rozmiar zapytan 2xx: 120.00 bytes\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_Help(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run([]string{"-h"}, stdout, stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage: uwsgi-log-stats")
	assert.Empty(t, stderr.String())
}

func TestRun_Failures(t *testing.T) {
	logPath := writeLogFile(t, "")

	tests := []struct {
		name         string
		argv         []string
		expectedCode string
	}{
		{name: "no arguments", argv: nil, expectedCode: "ARG_1001"},
		{name: "bad datetime", argv: []string{"-f", "yesterday", logPath}, expectedCode: "ARG_1000"},
		{name: "missing file", argv: []string{filepath.Join(t.TempDir(), "missing.log")}, expectedCode: "SRC_1000"},
		{name: "missing config", argv: []string{"-c", filepath.Join(t.TempDir(), "configs.yml"), logPath}, expectedCode: "CFG_1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			code := run(tt.argv, stdout, stderr)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "Error: "+tt.expectedCode)
		})
	}
}
