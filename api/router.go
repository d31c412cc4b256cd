package api

import (
	"cpu-scheduler/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// NewApp wires the scheduler routes. collector may be nil to disable /metrics.
func NewApp(handler SchedulerHandler, collector *metrics.Collector) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	if collector != nil {
		app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))
	}

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}
