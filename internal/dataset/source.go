package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/emiliopalmerini/cloudbill/internal/domain"
)

//go:embed data/billing.csv
var mockCSV []byte

// MockSource serves the bundled mock billing table.
type MockSource struct{}

func NewMockSource() *MockSource { return &MockSource{} }

func (MockSource) LoadRecords(ctx context.Context) ([]domain.Record, error) {
	return ParseCSV(bytes.NewReader(mockCSV))
}

func (MockSource) Describe() string { return "mock table (embedded)" }

// FileSource reads a CSV file from disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource { return &FileSource{Path: path} }

func (s *FileSource) LoadRecords(ctx context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return records, nil
}

func (s *FileSource) Describe() string { return "csv " + s.Path }
