// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// FileSource reads a catalog from a JSON or CSV file.
//
// JSON files hold an array of objects with Name and Genre keys (matched
// case-insensitively, unknown keys ignored). CSV files need a header row
// containing Name and Genre columns; other columns are ignored.
type FileSource struct {
	path   string
	format string
}

// NewFileSource returns a source for path. An empty format is inferred from
// the file extension.
func NewFileSource(path, format string) *FileSource {
	return &FileSource{path: path, format: strings.ToLower(strings.TrimSpace(format))}
}

// Path returns the file path, used by the reload watcher.
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) String() string {
	return "file:" + s.path
}

// Format returns the effective format after extension detection.
func (s *FileSource) Format() string {
	if s.format != "" {
		return s.format
	}
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := s.Format()
	if format != "json" && format != "csv" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s.path)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	if format == "json" {
		return decodeJSON(f)
	}
	return decodeCSV(f)
}

func decodeJSON(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	return items, nil
}

func decodeCSV(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, fmt.Errorf("read catalog csv header: %w", err)
	}

	nameCol, genreCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "name":
			nameCol = i
		case "genre":
			genreCol = i
		}
	}
	if nameCol < 0 || genreCol < 0 {
		return nil, fmt.Errorf("%w: header %v", ErrMissingColumn, header)
	}

	var items []Item
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog csv: %w", err)
		}
		if len(rec) <= nameCol || len(rec) <= genreCol {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrInvalidItem, line, len(rec))
		}
		items = append(items, Item{Name: rec[nameCol], Genre: rec[genreCol]})
	}
	return items, nil
}
