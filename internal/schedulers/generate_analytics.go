package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// TimelineEntry is one gantt chart cell: the process that ran and the
// cumulative busy time at the end of that slice.
type TimelineEntry struct {
	ProcessID  int
	FinishTime int
}

type Result struct {
	Algorithm   Algorithm
	TimeQuantum int // round robin only

	// Processes are in input order with all metrics filled in.
	Processes []core.Process
	Slices    []core.Slice
	Timeline  []TimelineEntry

	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnAroundTime float64

	Cpu core.CpuMetric
}

// Timeline turns dispatch slices into gantt entries. The finish time of entry k
// is the sum of the durations of slices 0..k, so idle gaps are not counted and
// a preempted process contributes only the time it actually ran in that slice.
func Timeline(slices []core.Slice) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(slices))
	elapsed := 0
	for _, s := range slices {
		elapsed += s.Duration()
		entries = append(entries, TimelineEntry{ProcessID: s.ProcessID, FinishTime: elapsed})
	}
	return entries
}

func generateResult(algorithm Algorithm, processes []core.Process, cpu *core.Cpu) Result {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processes)
	slices := cpu.Slices()

	return Result{
		Algorithm:             algorithm,
		Processes:             processes,
		Slices:                slices,
		Timeline:              Timeline(slices),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Cpu:                   cpu.Metric(),
	}
}
