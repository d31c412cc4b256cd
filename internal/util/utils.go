package util

import "cpu-scheduler/internal/core"

// CalculateAverage returns the mean waiting, response and turnaround time of
// the given processes. An empty set yields zeros.
func CalculateAverage(processes []core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return
	}

	// per-process times can be close to math.MaxInt, so sums stay in float64
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processes {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processes))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
