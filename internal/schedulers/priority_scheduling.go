package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// SchedulePriority is non-preemptive: the highest priority value among the
// arrived processes wins and runs to completion.
func SchedulePriority(processes []core.Process) (Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running priority algorithm", "processes", len(processes))

	procs := core.CopyProcesses(processes)
	cpu := core.NewCpu()
	err := runNonPreemptive(procs, cpu, func(candidate, best core.Process) bool {
		return candidate.Priority > best.Priority
	})
	if err != nil {
		return Result{}, err
	}
	return generateResult(Priority, procs, cpu), nil
}
