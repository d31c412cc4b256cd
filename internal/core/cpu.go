package core

// Slice is one contiguous dispatch of a process on the simulated cpu.
type Slice struct {
	ProcessID int
	Start     int
	End       int
}

func (s Slice) Duration() int {
	return s.End - s.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy fraction of the total simulated time.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is the number of completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// Cpu is a single simulated core driven by an integer clock. It never sleeps:
// executing a process only advances the clock and records a slice.
type Cpu struct {
	clock  int
	slices []Slice
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{slices: make([]Slice, 0)}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// IdleUntil moves the clock forward to t, accounting the gap as idle time.
// It is a no-op when t is not in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs the process for duration time units starting at the current clock.
func (c *Cpu) Execute(processID, duration int) Slice {
	slice := Slice{ProcessID: processID, Start: c.clock, End: c.clock + duration}
	c.slices = append(c.slices, slice)
	c.clock = slice.End
	c.metric.UtilizationTime += duration
	return slice
}

func (c *Cpu) Slices() []Slice {
	out := make([]Slice, len(c.slices))
	copy(out, c.slices)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
