package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

func ScheduleFirstComeFirstServe(processes []core.Process) (Result, error) {
	if err := core.ValidateProcesses(processes); err != nil {
		return Result{}, err
	}
	slog.Debug("running fcfs algorithm", "processes", len(processes))

	procs := core.CopyProcesses(processes)

	// dispatch order by arrival time, ties keep input order
	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return procs[order[i]].ArrivalTime < procs[order[j]].ArrivalTime
	})

	cpu := core.NewCpu()
	for _, idx := range order {
		p := &procs[idx]
		cpu.IdleUntil(p.ArrivalTime)
		p.Dispatched(cpu.Clock())
		cpu.Execute(p.ID, p.BurstTime)
		p.Complete(cpu.Clock())
		slog.Debug("process completed", "pid", p.ID, "completion", p.CompletionTime)
	}

	return generateResult(FirstComeFirstServe, procs, cpu), nil
}
