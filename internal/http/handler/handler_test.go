package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clienthub/internal/model"
	"clienthub/internal/service"
	serviceMocks "clienthub/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListClients(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Get("/clients", ListClients(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.Client{
			{ID: uuid.New().String(), Name: "Alpha"},
			{ID: uuid.New().String(), Name: "Beta"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Client
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 2)
		assert.Equal(t, "Alpha", result[0].Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Post("/clients", CreateClient(mockSvc))

	t.Run("created", func(t *testing.T) {
		expected := &model.Client{ID: uuid.New().String(), Name: "Acme"}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/clients", `{"name":"Acme","email":"ops@acme.test"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Client
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/clients", `{not json`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "BAD_REQUEST", res.Error.Code)
	})
}

func TestUpdateClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Put("/clients/:id", UpdateClient(mockSvc))

	t.Run("updated", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(p service.ClientPatch) bool {
			return p.Name != nil && *p.Name == "Renamed" && p.Email == nil
		})).Return(&model.Client{ID: id, Name: "Renamed"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/clients/"+id, `{"name":"Renamed"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/clients/not-a-uuid", `{}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrClientNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/clients/"+id, `{}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteClient(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Delete("/clients/:id", DeleteClient(mockSvc))

	t.Run("deleted", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrClientNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/clients/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadClientLogo(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Put("/clients/:id/logo", UploadClientLogo(mockSvc))

	t.Run("uploaded", func(t *testing.T) {
		id := uuid.New().String()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "logo.png")
		part.Write([]byte("png-bytes"))
		writer.Close()

		mockSvc.On("UploadLogo", mock.Anything, id, mock.Anything, "logo.png", mock.Anything, mock.Anything).
			Return(&model.Client{ID: id, LogoPath: "logos/" + id + ".png"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/clients/"+id+"/logo", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Client
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "logos/"+id+".png", result.LogoPath)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodPut, "/clients/"+id+"/logo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILE_REQUIRED", res.Error.Code)
	})
}

func TestGetClientLogo(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Get("/clients/:id/logo", GetClientLogo(mockSvc))

	t.Run("presigned url", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("LogoURL", mock.Anything, id).
			Return("https://storage.test/logos/"+id+".png?sig=abc", nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients/"+id+"/logo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Contains(t, body["url"], id)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no logo", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("LogoURL", mock.Anything, id).Return("", service.ErrLogoNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/clients/"+id+"/logo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteClientLogo(t *testing.T) {
	mockSvc := new(serviceMocks.MockClientService)
	app := fiber.New()
	app.Delete("/clients/:id/logo", DeleteClientLogo(mockSvc))

	id := uuid.New().String()
	mockSvc.On("DeleteLogo", mock.Anything, id).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+id+"/logo", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestListProjects(t *testing.T) {
	mockSvc := new(serviceMocks.MockProjectService)
	app := fiber.New()
	app.Get("/projects", ListProjects(mockSvc))

	t.Run("all projects", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, "").
			Return([]model.Project{{ID: uuid.New().String()}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("filtered by client", func(t *testing.T) {
		clientID := uuid.New().String()
		mockSvc.On("List", mock.Anything, clientID).
			Return([]model.Project{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/projects?client_id="+clientID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed client_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects?client_id=not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})
}

func TestCreateProject(t *testing.T) {
	mockSvc := new(serviceMocks.MockProjectService)
	app := fiber.New()
	app.Post("/projects", CreateProject(mockSvc))

	t.Run("created", func(t *testing.T) {
		expected := &model.Project{ID: uuid.New().String(), Name: "Relaunch"}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.Name == "Relaunch" && p.Deadline != nil && p.Deadline.String() == "2026-10-01"
		})).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/projects",
			`{"name":"Relaunch","client_id":"`+uuid.New().String()+`","deadline":"2026-10-01"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed date", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/projects",
			`{"name":"Relaunch","deadline":"01/10/2026"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_DATE", res.Error.Code)
	})

	t.Run("dangling client", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidRef).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/projects",
			`{"name":"Relaunch","client_id":"`+uuid.New().String()+`"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_REFERENCE", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidStatus).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/projects",
			`{"name":"Relaunch","status":"Paused"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_STATUS", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateProject(t *testing.T) {
	mockSvc := new(serviceMocks.MockProjectService)
	app := fiber.New()
	app.Put("/projects/:id", UpdateProject(mockSvc))

	t.Run("updated", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(p service.ProjectPatch) bool {
			return p.Progress != nil && *p.Progress == 75 && p.Name == nil
		})).Return(&model.Project{ID: id, Progress: 75}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/projects/"+id, `{"progress":75}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrProjectNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/projects/"+id, `{}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid progress", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrInvalidProgress).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/projects/"+id, `{"progress":150}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_PROGRESS", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteProject(t *testing.T) {
	mockSvc := new(serviceMocks.MockProjectService)
	app := fiber.New()
	app.Delete("/projects/:id", DeleteProject(mockSvc))

	t.Run("deleted", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/projects/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrProjectNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/projects/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListTasks(t *testing.T) {
	mockSvc := new(serviceMocks.MockTaskService)
	app := fiber.New()
	app.Get("/tasks", ListTasks(mockSvc))

	t.Run("filtered by project", func(t *testing.T) {
		projectID := uuid.New().String()
		mockSvc.On("List", mock.Anything, projectID).
			Return([]model.Task{{ID: uuid.New().String(), Name: "Wireframes"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/tasks?project_id="+projectID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Task
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed project_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks?project_id=not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateTask(t *testing.T) {
	mockSvc := new(serviceMocks.MockTaskService)
	app := fiber.New()
	app.Post("/tasks", CreateTask(mockSvc))

	t.Run("created", func(t *testing.T) {
		expected := &model.Task{ID: uuid.New().String(), Name: "Wireframes"}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(expected, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/tasks",
			`{"name":"Wireframes","project_id":"`+uuid.New().String()+`"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("dangling project", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidRef).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/tasks",
			`{"name":"Wireframes","project_id":"`+uuid.New().String()+`"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateTask(t *testing.T) {
	mockSvc := new(serviceMocks.MockTaskService)
	app := fiber.New()
	app.Put("/tasks/:id", UpdateTask(mockSvc))

	t.Run("updated", func(t *testing.T) {
		id := uuid.New().String()
		status := model.StatusDone
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(p service.TaskPatch) bool {
			return p.Status != nil && *p.Status == status
		})).Return(&model.Task{ID: id, Status: status}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/tasks/"+id, `{"status":"Done"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, id, mock.Anything).
			Return(nil, service.ErrTaskNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/tasks/"+id, `{}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteTask(t *testing.T) {
	mockSvc := new(serviceMocks.MockTaskService)
	app := fiber.New()
	app.Delete("/tasks/:id", DeleteTask(mockSvc))

	t.Run("deleted", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/tasks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrTaskNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/tasks/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDashboard(t *testing.T) {
	mockSvc := new(serviceMocks.MockDashboardService)
	app := fiber.New()
	app.Get("/dashboard", GetDashboard(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Summary", mock.Anything).Return(&service.Summary{
			Totals: service.Totals{Clients: 2, Projects: 3, Tasks: 7},
			ProjectsByStatus: map[model.Status]int{
				model.StatusTodo: 1, model.StatusInProgress: 1, model.StatusDone: 1,
			},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.Summary
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 7, result.Totals.Tasks)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Summary", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil,
		new(serviceMocks.MockClientService),
		new(serviceMocks.MockProjectService),
		new(serviceMocks.MockTaskService),
		new(serviceMocks.MockDashboardService),
	)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
