package api

import (
	"errors"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	seed    schedulers.SeedPolicy
	metrics *metrics.Collector
	logger  *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, collector *metrics.Collector, logger *slog.Logger) (*SchedulerHandlerImpl, error) {
	seed, err := schedulers.ParseSeedPolicy(config.RoundRobinSeed)
	if err != nil {
		return nil, err
	}
	return &SchedulerHandlerImpl{
		config:  config,
		seed:    seed,
		metrics: collector,
		logger:  logger.With("component", "api"),
	}, nil
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	processes := request.Processes()
	quantum := request.QuantumOr(s.config.RoundRobinTimeQuantum)
	out := make([]responses.ScheduleResponse, 0, len(schedulers.Algorithms()))
	for _, algorithm := range schedulers.Algorithms() {
		result, err := schedulers.Run(algorithm, processes, quantum, schedulers.WithSeedPolicy(s.seed))
		if err != nil {
			return s.fail(ctx, algorithm, err)
		}
		s.record(result)
		out = append(out, responses.NewScheduleResponse(result))
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}

	quantum := request.QuantumOr(s.config.RoundRobinTimeQuantum)
	result, err := schedulers.Run(algorithm, request.Processes(), quantum, schedulers.WithSeedPolicy(s.seed))
	if err != nil {
		return s.fail(ctx, algorithm, err)
	}
	s.record(result)
	return ctx.JSON(responses.NewScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, bool) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("bad request body", "error", err)
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return request, false
	}
	return request, true
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, algorithm schedulers.Algorithm, err error) error {
	if isInvalidInput(err) {
		s.recordFailure(algorithm, metrics.ReasonInvalidInput)
		s.logger.Info("rejected schedule request", "algorithm", algorithm, "error", err)
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.recordFailure(algorithm, metrics.ReasonInternal)
	s.logger.Error("schedule failed", "algorithm", algorithm, "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

func (s *SchedulerHandlerImpl) recordFailure(algorithm schedulers.Algorithm, reason string) {
	if s.metrics != nil {
		s.metrics.RecordFailure(algorithm, reason)
	}
}

func (s *SchedulerHandlerImpl) record(result schedulers.Result) {
	s.logger.Info("scheduled",
		"algorithm", result.Algorithm,
		"processes", len(result.Processes),
		"avg_waiting", result.AverageWaitingTime,
		"avg_turnaround", result.AverageTurnAroundTime)
	if s.metrics != nil {
		s.metrics.RecordRun(result)
	}
}

func isInvalidInput(err error) bool {
	for _, target := range []error{
		core.ErrEmptyProcessSet,
		core.ErrInvalidProcessID,
		core.ErrDuplicateProcessID,
		core.ErrInvalidArrivalTime,
		core.ErrInvalidBurstTime,
		core.ErrInvalidTimeQuantum,
		core.ErrTimeOverflow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
