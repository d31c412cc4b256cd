// Package shell implements the interactive menu of the simulator.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

const menu = `
==== CPU Scheduling Simulator ====
1. Input Process Details
2. Run FCFS
3. Run SJF
4. Run Round Robin
5. Run Priority Scheduling
6. Exit
`

// maxProcesses bounds the process count typed at the prompt.
const maxProcesses = 1 << 16

// Shell owns the current process set as UI state; every algorithm run gets
// its own copy through the schedulers package.
type Shell struct {
	in        *bufio.Reader
	out       io.Writer
	seed      schedulers.SeedPolicy
	logger    *slog.Logger
	processes []core.Process
}

func New(in io.Reader, out io.Writer, seed schedulers.SeedPolicy, logger *slog.Logger) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		seed:   seed,
		logger: logger.With("component", "shell"),
	}
}

// Run shows the menu until the user exits or input ends.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.readInt("Enter choice: ", nil)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = s.inputProcesses()
		case 2:
			err = s.run(schedulers.FirstComeFirstServe)
		case 3:
			err = s.run(schedulers.ShortestJobFirst)
		case 4:
			err = s.run(schedulers.RoundRobin)
		case 5:
			err = s.run(schedulers.Priority)
		case 6:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice! Try again.")
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) inputProcesses() error {
	n, err := s.readInt("Enter number of processes: ", between("number of processes", 1, maxProcesses))
	if err != nil {
		return err
	}

	processes := make([]core.Process, 0, n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(s.out, "Enter details for Process %d:\n", i+1)
		arrival, err := s.readInt("Arrival Time: ", nonNegative("arrival time"))
		if err != nil {
			return err
		}
		burst, err := s.readInt("Burst Time: ", positive("burst time"))
		if err != nil {
			return err
		}
		priority, err := s.readInt("Priority: ", nil)
		if err != nil {
			return err
		}
		processes = append(processes, core.Process{ID: i + 1, ArrivalTime: arrival, BurstTime: burst, Priority: priority})
	}

	s.processes = processes
	s.logger.Debug("process set replaced", "processes", n)
	return nil
}

func (s *Shell) run(algorithm schedulers.Algorithm) error {
	if len(s.processes) == 0 {
		fmt.Fprintln(s.out, "No process details entered!")
		return nil
	}

	quantum := 0
	if algorithm == schedulers.RoundRobin {
		var err error
		quantum, err = s.readInt("Enter Time Quantum: ", positive("time quantum"))
		if err != nil {
			return err
		}
	}

	result, err := schedulers.Run(algorithm, s.processes, quantum, schedulers.WithSeedPolicy(s.seed))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	report.WriteResult(s.out, result)
	return nil
}

// readInt prompts until a line parses as an integer accepted by check.
func (s *Shell) readInt(prompt string, check func(int) error) (int, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok, err := s.readLine()
		if err != nil {
			return 0, err
		}
		if !ok {
			fmt.Fprintln(s.out, "Input line too long.")
			continue
		}

		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a whole number.")
			continue
		}
		if check != nil {
			if err := check(v); err != nil {
				fmt.Fprintln(s.out, err)
				continue
			}
		}
		return v, nil
	}
}

// readLine returns the next input line. A line longer than the reader's
// buffer is consumed and reported with ok false. io.EOF means input ended.
func (s *Shell) readLine() (line string, ok bool, err error) {
	data, isPrefix, err := s.in.ReadLine()
	if err != nil {
		return "", false, err
	}
	if !isPrefix {
		return string(data), true, nil
	}
	for isPrefix {
		if _, isPrefix, err = s.in.ReadLine(); err != nil {
			return "", false, err
		}
	}
	return "", false, nil
}

func positive(name string) func(int) error {
	return func(v int) error {
		if v <= 0 {
			return fmt.Errorf("%s must be greater than 0", name)
		}
		return nil
	}
}

func between(name string, lo, hi int) func(int) error {
	return func(v int) error {
		if v < lo || v > hi {
			return fmt.Errorf("%s must be between %d and %d", name, lo, hi)
		}
		return nil
	}
}

func nonNegative(name string) func(int) error {
	return func(v int) error {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
		return nil
	}
}
