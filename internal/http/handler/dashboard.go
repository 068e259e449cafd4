package handler

import (
	"github.com/gofiber/fiber/v2"

	"clienthub/internal/service"
)

// GetDashboard returns the aggregated dashboard summary: entity totals,
// status groupings, the 14-day upcoming-deadline window, and the
// recently-completed task list.
//
// @Summary Dashboard summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.Summary
// @Router /api/dashboard [get]
func GetDashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(summary)
	}
}
