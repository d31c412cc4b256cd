// Package report renders scheduling results for a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/schedulers"

	"github.com/olekukonko/tablewriter"
)

// Title is the heading printed above a result.
func Title(result schedulers.Result) string {
	if result.Algorithm == schedulers.RoundRobin {
		return fmt.Sprintf("%s, quantum=%d", result.Algorithm.Name(), result.TimeQuantum)
	}
	return result.Algorithm.Name()
}

// WriteResult writes the process table, averages and gantt chart of one run.
func WriteResult(w io.Writer, result schedulers.Result) {
	fmt.Fprintf(w, "\n=== %s ===\n", Title(result))
	WriteTable(w, result)
	WriteGantt(w, result.Timeline)
}

func WriteTable(w io.Writer, result schedulers.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "PR", "ST", "CT", "RT", "WT", "TAT"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, p := range result.Processes {
		table.Append([]string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.ResponseTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
		})
	}
	table.Render()

	fmt.Fprintf(w, "Average Waiting Time: %.2f\n", result.AverageWaitingTime)
	fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", result.AverageTurnAroundTime)
	fmt.Fprintf(w, "Average Response Time: %.2f\n", result.AverageResponseTime)
	fmt.Fprintf(w, "CPU Utilization: %.2f%% (idle %d of %d)\n",
		result.Cpu.Utilization()*100, result.Cpu.IdleTime, result.Cpu.TotalTime)
}

// WriteGantt draws one cell per timeline entry with the cumulative finish
// time under each cell boundary:
//
//	| P1 | P2 | P1 |
//	0    2    4    6
func WriteGantt(w io.Writer, timeline []schedulers.TimelineEntry) {
	fmt.Fprintln(w, "Gantt Chart:")
	if len(timeline) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	var bars, scale strings.Builder
	bars.WriteString("|")
	scale.WriteString("0")
	for _, entry := range timeline {
		label := fmt.Sprintf(" P%d ", entry.ProcessID)
		finish := strconv.Itoa(entry.FinishTime)
		width := max(len(label), len(finish))

		bars.WriteString(centre(label, width))
		bars.WriteString("|")
		scale.WriteString(strings.Repeat(" ", width+1-len(finish)))
		scale.WriteString(finish)
	}
	fmt.Fprintln(w, bars.String())
	fmt.Fprintln(w, scale.String())
}

// WriteComparison summarises several runs over the same process set.
func WriteComparison(w io.Writer, results []schedulers.Result) {
	fmt.Fprintln(w, "\nPerformance Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg TAT", "Avg Response", "Total Time", "Utilization"})
	table.SetAutoWrapText(false)
	for _, result := range results {
		table.Append([]string{
			Title(result),
			fmt.Sprintf("%.2f", result.AverageWaitingTime),
			fmt.Sprintf("%.2f", result.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", result.AverageResponseTime),
			strconv.Itoa(result.Cpu.TotalTime),
			fmt.Sprintf("%.2f%%", result.Cpu.Utilization()*100),
		})
	}
	table.Render()
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func centre(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
