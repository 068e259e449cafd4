package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clienthub/internal/model"
	"clienthub/internal/service"
)

// ListTasks returns tasks sorted by due date, missing due dates last.
// An optional project_id query parameter restricts the result to one project.
//
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param project_id query string false "filter by owning project"
// @Success 200 {array} model.Task
// @Router /api/tasks [get]
func ListTasks(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID := c.Query("project_id")
		if projectID != "" {
			if _, err := uuid.Parse(projectID); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid project_id format")
			}
		}
		tasks, err := svc.List(c.UserContext(), projectID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(tasks)
	}
}

// CreateTask stores a new task. Any id in the body is ignored; the
// project_id must reference an existing project.
//
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Success 201 {object} model.Task
// @Failure 400 {object} errorPayload
// @Router /api/tasks [post]
func CreateTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Task
		if err := c.BodyParser(&body); err != nil {
			return bodyError(c, err)
		}
		created, err := svc.Create(c.UserContext(), &body)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateTask applies a partial merge by id.
//
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "task id"
// @Success 200 {object} model.Task
// @Failure 404 {object} errorPayload
// @Router /api/tasks/{id} [put]
func UpdateTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var patch service.TaskPatch
		if err := c.BodyParser(&patch); err != nil {
			return bodyError(c, err)
		}
		updated, err := svc.Update(c.UserContext(), id, patch)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteTask removes a task.
//
// @Summary Delete task
// @Tags tasks
// @Param id path string true "task id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/tasks/{id} [delete]
func DeleteTask(svc service.TaskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
