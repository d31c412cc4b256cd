package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
)

// SeedPolicy decides what the round robin ready queue holds before the first dispatch.
type SeedPolicy string

const (
	// SeedFirstIndex puts only the first process of the input in the queue and
	// lets every other process in through the regular admission step, which
	// runs after each slice. A process at index > 0 that arrives at time 0
	// therefore waits for the first slice of process 0.
	SeedFirstIndex SeedPolicy = "first"
	// SeedArrived starts with an empty queue and admits, in input order, every
	// process that has arrived by the earliest arrival time.
	SeedArrived SeedPolicy = "arrived"
)

func ParseSeedPolicy(s string) (SeedPolicy, error) {
	switch SeedPolicy(s) {
	case SeedFirstIndex, "":
		return SeedFirstIndex, nil
	case SeedArrived:
		return SeedArrived, nil
	}
	return "", fmt.Errorf("unknown round robin seed policy %q (want %q or %q)", s, SeedFirstIndex, SeedArrived)
}

type roundRobinConfig struct {
	seed SeedPolicy
}

type RoundRobinOption func(*roundRobinConfig)

func WithSeedPolicy(seed SeedPolicy) RoundRobinOption {
	return func(c *roundRobinConfig) {
		c.seed = seed
	}
}

func ScheduleRoundRobin(processes []core.Process, timeQuantum int, opts ...RoundRobinOption) (Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	if err := core.ValidateTimeQuantum(timeQuantum); err != nil {
		return Result{}, err
	}
	cfg := roundRobinConfig{seed: SeedFirstIndex}
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("running roundRobin algorithm", "timeQuantum", timeQuantum, "seed", cfg.seed, "processes", len(processes))

	procs := core.CopyProcesses(processes)
	remaining := make([]int, len(procs))
	for i := range procs {
		remaining[i] = procs[i].BurstTime
	}
	queued := make([]bool, len(procs))
	started := make([]bool, len(procs))
	queue := make([]int, 0, len(procs))

	cpu := core.NewCpu()

	admit := func() {
		for j := range procs {
			if !queued[j] && remaining[j] > 0 && procs[j].ArrivalTime <= cpu.Clock() {
				queue = append(queue, j)
				queued[j] = true
			}
		}
	}

	if cfg.seed == SeedFirstIndex {
		queue = append(queue, 0)
		queued[0] = true
	}

	for completed := 0; completed < len(procs); {
		if len(queue) == 0 {
			next, ok := nextArrival(procs, queued)
			if !ok {
				return Result{}, fmt.Errorf("%w: ready queue empty at clock %d with %d of %d processes completed",
					core.ErrStalled, cpu.Clock(), completed, len(procs))
			}
			slog.Debug("cpu idle", "from", cpu.Clock(), "until", next)
			cpu.IdleUntil(next)
			admit()
			continue
		}

		i := queue[0]
		queue = queue[1:]
		p := &procs[i]

		// Under SeedFirstIndex the head of the queue can be process 0 before it
		// has arrived; the cpu waits for it even if later processes are ready.
		cpu.IdleUntil(p.ArrivalTime)
		if !started[i] {
			p.Dispatched(cpu.Clock())
			started[i] = true
		}

		run := min(timeQuantum, remaining[i])
		cpu.Execute(p.ID, run)
		remaining[i] -= run

		if remaining[i] == 0 {
			p.Complete(cpu.Clock())
			completed++
			slog.Debug("process completed", "pid", p.ID, "completion", p.CompletionTime)
		}

		// arrivals during this slice go ahead of the preempted process
		admit()
		if remaining[i] > 0 {
			slog.Debug("context switch", "pid", p.ID, "remaining", remaining[i])
			queue = append(queue, i)
		}
	}

	result := generateResult(RoundRobin, procs, cpu)
	result.TimeQuantum = timeQuantum
	return result, nil
}
