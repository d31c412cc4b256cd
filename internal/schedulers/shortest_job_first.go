package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
)

func ScheduleShortestJobFirst(processes []core.Process) (Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running sjf algorithm", "processes", len(processes))

	procs := core.CopyProcesses(processes)
	cpu := core.NewCpu()
	err := runNonPreemptive(procs, cpu, func(candidate, best core.Process) bool {
		return candidate.BurstTime < best.BurstTime
	})
	if err != nil {
		return Result{}, err
	}
	return generateResult(ShortestJobFirst, procs, cpu), nil
}

// runNonPreemptive repeatedly picks, among arrived and unfinished processes,
// the one for which better reports true against every other candidate and runs
// it to completion. better must be strict so that ties go to the lowest index.
func runNonPreemptive(procs []core.Process, cpu *core.Cpu, better func(candidate, best core.Process) bool) error {
	done := make([]bool, len(procs))

	for completed := 0; completed < len(procs); {
		idx := -1
		for i := range procs {
			if done[i] || procs[i].ArrivalTime > cpu.Clock() {
				continue
			}
			if idx == -1 || better(procs[i], procs[idx]) {
				idx = i
			}
		}

		if idx == -1 {
			next, ok := nextArrival(procs, done)
			if !ok || next <= cpu.Clock() {
				return fmt.Errorf("%w: clock %d, %d of %d processes completed", core.ErrStalled, cpu.Clock(), completed, len(procs))
			}
			slog.Debug("cpu idle", "from", cpu.Clock(), "until", next)
			cpu.IdleUntil(next)
			continue
		}

		p := &procs[idx]
		p.Dispatched(cpu.Clock())
		cpu.Execute(p.ID, p.BurstTime)
		p.Complete(cpu.Clock())
		done[idx] = true
		completed++
		slog.Debug("process completed", "pid", p.ID, "completion", p.CompletionTime)
	}
	return nil
}

// nextArrival returns the earliest arrival time among processes not marked in skip.
func nextArrival(procs []core.Process, skip []bool) (int, bool) {
	next, found := 0, false
	for i, p := range procs {
		if skip[i] {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}
