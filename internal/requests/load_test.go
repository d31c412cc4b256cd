package requests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var wantProcesses = []core.Process{
	{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 1},
	{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 5},
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "set.json", `{
		"jobs": [
			{"process_id": 1, "arrival_time": 0, "burst_time": 5, "priority": 1},
			{"process_id": 2, "arrival_time": 1, "burst_time": 3, "priority": 5}
		],
		"time_quantum": 4
	}`)

	req, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, wantProcesses, req.Processes())
	assert.Equal(t, 4, req.QuantumOr(2))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "set.yaml", `
jobs:
  - process_id: 1
    arrival_time: 0
    burst_time: 5
    priority: 1
  - process_id: 2
    arrival_time: 1
    burst_time: 3
    priority: 5
`)

	req, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, wantProcesses, req.Processes())
	assert.Equal(t, 2, req.QuantumOr(2))
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "set.csv", "process_id,arrival_time,burst_time,priority\n1,0,5,1\n2, 1, 3, 5\n")

	req, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, wantProcesses, req.Processes())
}

func TestDecodeCSVWithoutHeaderOrPriority(t *testing.T) {
	req, err := Decode(strings.NewReader("1,0,5\n2,1,3\n"), "csv")
	require.NoError(t, err)

	require.Len(t, req.Jobs, 2)
	assert.Equal(t, Job{ProcessId: 2, ArrivalTime: 1, BurstTime: 3}, req.Jobs[1])
}

func TestDecodeCSVErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("1,0\n"), "csv")
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("1,0,x\n"), "csv")
	assert.Error(t, err)
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestProcessesAssignsMissingIDs(t *testing.T) {
	req := ScheduleRequests{Jobs: []Job{{BurstTime: 2}, {BurstTime: 3}}}

	processes := req.Processes()

	assert.Equal(t, 1, processes[0].ID)
	assert.Equal(t, 2, processes[1].ID)
}
