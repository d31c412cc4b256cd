package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "rr"
	Priority            Algorithm = "priority"
)

// Algorithms lists every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}
}

func (a Algorithm) Name() string {
	switch a {
	case FirstComeFirstServe:
		return "First Come First Serve (FCFS)"
	case ShortestJobFirst:
		return "Shortest Job First (SJF)"
	case RoundRobin:
		return "Round Robin (RR)"
	case Priority:
		return "Priority Scheduling (Non-Preemptive)"
	}
	return string(a)
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve":
		return FirstComeFirstServe, nil
	case "sjf", "shortest-job-first":
		return ShortestJobFirst, nil
	case "rr", "round-robin":
		return RoundRobin, nil
	case "priority":
		return Priority, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Run dispatches to the scheduler for algorithm. timeQuantum and opts are only
// used by round robin.
func Run(algorithm Algorithm, processes []core.Process, timeQuantum int, opts ...RoundRobinOption) (Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, timeQuantum, opts...)
	case Priority:
		return SchedulePriority(processes)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// RunAll runs every algorithm over the same process set.
func RunAll(processes []core.Process, timeQuantum int, opts ...RoundRobinOption) ([]Result, error) {
	results := make([]Result, 0, len(Algorithms()))
	for _, algorithm := range Algorithms() {
		result, err := Run(algorithm, processes, timeQuantum, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		results = append(results, result)
	}
	return results, nil
}
