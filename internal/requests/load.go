package requests

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported process file format")

// LoadFile reads a process set from a .json, .yaml/.yml or .csv file.
func LoadFile(path string) (ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return ScheduleRequests{}, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	req, err := Decode(f, strings.TrimPrefix(ext, "."))
	if err != nil {
		return ScheduleRequests{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// Decode parses a process set in the given format (json, yaml, yml or csv).
func Decode(r io.Reader, format string) (ScheduleRequests, error) {
	var req ScheduleRequests
	switch format {
	case "json":
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return req, fmt.Errorf("parse json: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, fmt.Errorf("parse yaml: %w", err)
		}
	case "csv":
		jobs, err := decodeCSV(r)
		if err != nil {
			return req, err
		}
		req.Jobs = jobs
	default:
		return req, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return req, nil
}

// decodeCSV reads rows of process_id,arrival_time,burst_time[,priority]. A
// first row whose first cell is not a number is treated as a header.
func decodeCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 {
			if _, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
				continue
			}
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("csv line %d: want 3 or 4 fields, got %d", i+1, len(row))
		}
		values := make([]int, 4)
		for j, cell := range row {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("csv line %d field %d: %w", i+1, j+1, err)
			}
			values[j] = v
		}
		jobs = append(jobs, Job{
			ProcessId:   values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
			Priority:    values[3],
		})
	}
	return jobs, nil
}
