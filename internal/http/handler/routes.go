package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"clienthub/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay minimal: decode, delegate to a service, encode.
func RegisterRoutes(app *fiber.App, db *sql.DB,
	clients service.ClientService,
	projects service.ProjectService,
	tasks service.TaskService,
	dashboard service.DashboardService,
) {
	// Readiness checks DB connectivity; liveness checks nothing.
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/clients", ListClients(clients))
	api.Post("/clients", CreateClient(clients))
	api.Put("/clients/:id", UpdateClient(clients))
	api.Delete("/clients/:id", DeleteClient(clients))
	api.Put("/clients/:id/logo", UploadClientLogo(clients))
	api.Get("/clients/:id/logo", GetClientLogo(clients))
	api.Delete("/clients/:id/logo", DeleteClientLogo(clients))

	api.Get("/projects", ListProjects(projects))
	api.Post("/projects", CreateProject(projects))
	api.Put("/projects/:id", UpdateProject(projects))
	api.Delete("/projects/:id", DeleteProject(projects))

	api.Get("/tasks", ListTasks(tasks))
	api.Post("/tasks", CreateTask(tasks))
	api.Put("/tasks/:id", UpdateTask(tasks))
	api.Delete("/tasks/:id", DeleteTask(tasks))

	api.Get("/dashboard", GetDashboard(dashboard))
}
