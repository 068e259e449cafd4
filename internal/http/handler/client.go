package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clienthub/internal/model"
	"clienthub/internal/service"
)

// ListClients returns all clients sorted by name.
//
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} model.Client
// @Router /api/clients [get]
func ListClients(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clients, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(clients)
	}
}

// CreateClient stores a new client. Any id in the body is ignored.
//
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Success 201 {object} model.Client
// @Router /api/clients [post]
func CreateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Client
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

// UpdateClient applies a partial merge by id.
//
// @Summary Update client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "client id"
// @Success 200 {object} model.Client
// @Failure 404 {object} errorPayload
// @Router /api/clients/{id} [put]
func UpdateClient(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var patch service.ClientPatch
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

// DeleteClient removes a client and cascades to its projects and their tasks.
//
// @Summary Delete client
// @Tags clients
// @Param id path string true "client id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/clients/{id} [delete]
func DeleteClient(svc service.ClientService) fiber.Handler {
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

// UploadClientLogo stores the logo file (multipart field: file) for a client.
//
// @Summary Upload client logo
// @Tags clients
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "client id"
// @Success 200 {object} model.Client
// @Router /api/clients/{id}/logo [put]
func UploadClientLogo(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		updated, err := svc.UploadLogo(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(updated)
	}
}

// GetClientLogo returns a presigned download URL for the client's logo.
//
// @Summary Get client logo URL
// @Tags clients
// @Produce json
// @Param id path string true "client id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /api/clients/{id}/logo [get]
func GetClientLogo(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.LogoURL(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteClientLogo removes the client's logo object and clears the stored path.
//
// @Summary Delete client logo
// @Tags clients
// @Param id path string true "client id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/clients/{id}/logo [delete]
func DeleteClientLogo(svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteLogo(c.UserContext(), id); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
