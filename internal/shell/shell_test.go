package shell

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cpu-scheduler/internal/schedulers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := New(strings.NewReader(input), &out, schedulers.SeedFirstIndex, logger).Run()
	require.NoError(t, err)
	return out.String()
}

func TestShellRejectsRunWithoutProcesses(t *testing.T) {
	out := runShell(t, "2\n6\n")

	assert.Contains(t, out, "No process details entered!")
	assert.Contains(t, out, "Exiting...")
}

func TestShellFirstComeFirstServe(t *testing.T) {
	input := strings.Join([]string{
		"1", "3",
		"0", "5", "1",
		"1", "3", "2",
		"2", "8", "3",
		"2",
		"6",
	}, "\n") + "\n"

	out := runShell(t, input)

	assert.Contains(t, out, "First Come First Serve (FCFS)")
	assert.Contains(t, out, "Average Waiting Time: 3.33")
	assert.Contains(t, out, "| P1 | P2 | P3 |")
}

func TestShellRoundRobinPromptsForQuantum(t *testing.T) {
	input := "1\n2\n0\n4\n0\n0\n3\n0\n4\n0\n-1\n2\n6\n"

	out := runShell(t, input)

	assert.Contains(t, out, "Enter Time Quantum: ")
	assert.Contains(t, out, "time quantum must be greater than 0")
	assert.Contains(t, out, "Round Robin (RR), quantum=2")
	assert.Contains(t, out, "| P1 | P2 | P1 | P2 |")
}

func TestShellValidatesInput(t *testing.T) {
	input := strings.Join([]string{
		"abc", // invalid choice
		"9",   // unknown option
		"1",
		"0", "1",       // N must be > 0
		"x", "-2", "0", // arrival
		"0", "4",       // burst
		"", "7",        // priority
		"5",
		"6",
	}, "\n") + "\n"

	out := runShell(t, input)

	assert.Contains(t, out, "Please enter a whole number.")
	assert.Contains(t, out, "Invalid choice! Try again.")
	assert.Contains(t, out, "number of processes must be between 1 and 65536")
	assert.Contains(t, out, "arrival time must not be negative")
	assert.Contains(t, out, "burst time must be greater than 0")
	assert.Contains(t, out, "Priority Scheduling (Non-Preemptive)")
}

func TestShellRejectsHugeProcessCount(t *testing.T) {
	input := "1\n9223372036854775807\n1\n0\n3\n0\n2\n6\n"

	out := runShell(t, input)

	assert.Contains(t, out, "number of processes must be between 1 and 65536")
	assert.Contains(t, out, "First Come First Serve (FCFS)")
	assert.Contains(t, out, "Exiting...")
}

func TestShellSkipsOverlongLine(t *testing.T) {
	input := strings.Repeat("7", 100<<10) + "\n2\n6\n"

	out := runShell(t, input)

	assert.Contains(t, out, "Input line too long.")
	assert.Contains(t, out, "No process details entered!")
	assert.Contains(t, out, "Exiting...")
}

func TestShellExitsOnEOF(t *testing.T) {
	out := runShell(t, "1\n2\n0\n")

	assert.NotContains(t, out, "Exiting...")
}
