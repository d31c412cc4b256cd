package requests

import (
	"cpu-scheduler/internal/core"
)

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Processes converts the jobs into scheduler input. Jobs without an id are
// numbered by their 1-based position.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		id := job.ProcessId
		if id == 0 {
			id = i + 1
		}
		processes[i] = core.Process{
			ID:          id,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return processes
}

// QuantumOr returns the requested time quantum, or fallback when none was given.
func (r ScheduleRequests) QuantumOr(fallback int) int {
	if r.TimeQuantum != 0 {
		return r.TimeQuantum
	}
	return fallback
}
