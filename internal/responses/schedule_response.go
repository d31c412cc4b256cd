package responses

import (
	"cpu-scheduler/internal/schedulers"

	"github.com/google/uuid"
)

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type TimelineResponse struct {
	ProcessId  int `json:"process_id"`
	Start      int `json:"start"`
	End        int `json:"end"`
	FinishTime int `json:"finish_time"`
}

type ScheduleResponse struct {
	RunId                 string             `json:"run_id"`
	Algorithm             string             `json:"algorithm"`
	TimeQuantum           int                `json:"time_quantum,omitempty"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Timeline              []TimelineResponse `json:"timeline"`
}

func NewScheduleResponse(result schedulers.Result) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		})
	}

	timeline := make([]TimelineResponse, 0, len(result.Slices))
	for i, s := range result.Slices {
		timeline = append(timeline, TimelineResponse{
			ProcessId:  s.ProcessID,
			Start:      s.Start,
			End:        s.End,
			FinishTime: result.Timeline[i].FinishTime,
		})
	}

	return ScheduleResponse{
		RunId:                 uuid.NewString(),
		Algorithm:             string(result.Algorithm),
		TimeQuantum:           result.TimeQuantum,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnAroundTime,
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         result.Cpu.Throughput(len(result.Processes)),
		Details:               details,
		Timeline:              timeline,
	}
}
