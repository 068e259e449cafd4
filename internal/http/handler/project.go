package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clienthub/internal/model"
	"clienthub/internal/service"
)

// ListProjects returns projects sorted by deadline, missing deadlines last.
// An optional client_id query parameter restricts the result to one client.
//
// @Summary List projects
// @Tags projects
// @Produce json
// @Param client_id query string false "filter by owning client"
// @Success 200 {array} model.Project
// @Router /api/projects [get]
func ListProjects(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientID := c.Query("client_id")
		if clientID != "" {
			if _, err := uuid.Parse(clientID); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid client_id format")
			}
		}
		projects, err := svc.List(c.UserContext(), clientID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(projects)
	}
}

// CreateProject stores a new project. Any id in the body is ignored; the
// client_id must reference an existing client.
//
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Success 201 {object} model.Project
// @Failure 400 {object} errorPayload
// @Router /api/projects [post]
func CreateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Project
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

// UpdateProject applies a partial merge by id.
//
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "project id"
// @Success 200 {object} model.Project
// @Failure 404 {object} errorPayload
// @Router /api/projects/{id} [put]
func UpdateProject(svc service.ProjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var patch service.ProjectPatch
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

// DeleteProject removes a project and cascades to its tasks.
//
// @Summary Delete project
// @Tags projects
// @Param id path string true "project id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/projects/{id} [delete]
func DeleteProject(svc service.ProjectService) fiber.Handler {
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
