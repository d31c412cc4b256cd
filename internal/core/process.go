package core

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyProcessSet    = errors.New("no processes to schedule")
	ErrInvalidProcessID   = errors.New("process id must be positive")
	ErrDuplicateProcessID = errors.New("duplicate process id")
	ErrInvalidArrivalTime = errors.New("arrival time must not be negative")
	ErrInvalidBurstTime   = errors.New("burst time must be positive")
	ErrInvalidTimeQuantum = errors.New("time quantum must be positive")
	ErrStalled            = errors.New("scheduler made no progress")
	ErrTimeOverflow       = errors.New("process set does not fit the simulated clock")
)

// Process is a single schedulable job. ID, ArrivalTime, BurstTime and Priority
// are input; the remaining fields are filled in by a scheduler. A higher
// Priority value means a more important process.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int

	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// Complete records the completion time and derives turnaround and waiting time.
func (p *Process) Complete(completionTime int) {
	p.CompletionTime = completionTime
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

// Dispatched records the first time the process got the cpu.
func (p *Process) Dispatched(startTime int) {
	p.StartTime = startTime
	p.ResponseTime = startTime - p.ArrivalTime
}

func (p Process) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidProcessID, p.ID)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: process %d arrival %d", ErrInvalidArrivalTime, p.ID, p.ArrivalTime)
	}
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: process %d burst %d", ErrInvalidBurstTime, p.ID, p.BurstTime)
	}
	return nil
}

// ValidateProcesses checks a whole process set before it is scheduled.
func ValidateProcesses(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyProcessSet
	}
	seen := make(map[int]bool, len(processes))
	latestArrival, totalBurst := 0, 0
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateProcessID, p.ID)
		}
		seen[p.ID] = true

		if p.BurstTime > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: total burst time exceeds %d", ErrTimeOverflow, math.MaxInt)
		}
		totalBurst += p.BurstTime
		latestArrival = max(latestArrival, p.ArrivalTime)
	}
	// no schedule finishes later than the latest arrival plus all the work
	if latestArrival > math.MaxInt-totalBurst {
		return fmt.Errorf("%w: latest arrival %d plus total burst %d exceeds %d",
			ErrTimeOverflow, latestArrival, totalBurst, math.MaxInt)
	}
	return nil
}

func ValidateTimeQuantum(timeQuantum int) error {
	if timeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, timeQuantum)
	}
	return nil
}

// CopyProcesses returns a private copy of the input with all derived fields reset.
func CopyProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		out[i] = Process{
			ID:          p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		}
	}
	return out
}
