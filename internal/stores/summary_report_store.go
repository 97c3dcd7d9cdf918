package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"uwsgi-log-stats/internal/models"
	"uwsgi-log-stats/internal/shared/filestorages"
)

var (
	ErrSummaryReportAlreadyExist = errors.New("summary report already exists")
	ErrSummaryReportMissingRunID = errors.New("summary report has no run ID")
)

// SummaryReportStore keeps a JSON copy of every run summary under
// reports/<runId>.json. Reports are write-once: a second Put with the same
// run ID fails with ErrSummaryReportAlreadyExist instead of replacing the first.
//
//go:generate mockgen -source=summary_report_store.go -destination=./mocks/summary_report_store_mock.go -package=mocks
type SummaryReportStore interface {
	Put(ctx context.Context, summary *models.Summary) (string, error)
}

type summaryReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSummaryReportStore(fileStorage filestorages.FileStorage) SummaryReportStore {
	return &summaryReportStore{fileStorage: fileStorage, dir: "reports"}
}

// Put stores summary and returns its key.
func (s *summaryReportStore) Put(ctx context.Context, summary *models.Summary) (string, error) {
	if summary.RunID == "" {
		return "", ErrSummaryReportMissingRunID
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary report: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", s.dir, summary.RunID)

	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrSummaryReportAlreadyExist
		}
		return "", fmt.Errorf("failed to put summary report: %w", err)
	}
	return result.FileKey, nil
}
