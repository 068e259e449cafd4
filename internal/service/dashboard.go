package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"clienthub/internal/cache"
	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const (
	// upcomingWindowDays is the lookahead for the deadline view, inclusive
	// at both ends: today and today+14 both count.
	upcomingWindowDays = 14

	// recentlyCompletedLimit caps the recently-completed task list.
	recentlyCompletedLimit = 5
)

// Totals holds raw entity counts.
type Totals struct {
	Clients  int `json:"clients"`
	Projects int `json:"projects"`
	Tasks    int `json:"tasks"`
}

// Summary is the dashboard payload: pure derived views over the three
// collections, no side effects.
type Summary struct {
	Totals            Totals               `json:"totals"`
	ProjectsByStatus  map[model.Status]int `json:"projects_by_status"`
	TasksByStatus     map[model.Status]int `json:"tasks_by_status"`
	UpcomingProjects  []model.Project      `json:"upcoming_projects"`
	UpcomingTasks     []model.Task         `json:"upcoming_tasks"`
	RecentlyCompleted []model.Task         `json:"recently_completed"`
	GeneratedAt       time.Time            `json:"generated_at"`
}

// DashboardService computes the dashboard summary.
type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type dashboardService struct {
	clients  repository.ClientRepository
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	cache    *cache.DashboardCache
	log      *zap.Logger
	now      func() time.Time
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(clients repository.ClientRepository, projects repository.ProjectRepository, tasks repository.TaskRepository, dc *cache.DashboardCache, log *zap.Logger) DashboardService {
	return &dashboardService{
		clients:  clients,
		projects: projects,
		tasks:    tasks,
		cache:    dc,
		log:      log,
		now:      time.Now,
	}
}

// Summary serves the cached snapshot when present, otherwise recomputes it
// from the three collections and stores the result.
func (s *dashboardService) Summary(ctx context.Context) (*Summary, error) {
	if b, ok := s.cache.Get(ctx); ok {
		var cached Summary
		if err := json.Unmarshal(b, &cached); err == nil {
			return &cached, nil
		}
		// A corrupt snapshot falls through to a recompute.
		s.log.Warn("discarding unreadable dashboard snapshot")
	}

	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx, "")
	if err != nil {
		return nil, err
	}

	today := model.NewDate(s.now())
	summary := &Summary{
		Totals: Totals{
			Clients:  len(clients),
			Projects: len(projects),
			Tasks:    len(tasks),
		},
		ProjectsByStatus:  projectStatusCounts(projects),
		TasksByStatus:     taskStatusCounts(tasks),
		UpcomingProjects:  upcomingProjects(projects, today),
		UpcomingTasks:     upcomingTasks(tasks, today),
		RecentlyCompleted: recentlyCompleted(tasks, recentlyCompletedLimit),
		GeneratedAt:       s.now().UTC(),
	}

	if b, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, b)
	}
	return summary, nil
}

// projectStatusCounts groups projects by status. Every known status appears
// in the result, zero-valued when empty.
func projectStatusCounts(projects []model.Project) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses))
	for _, st := range model.Statuses {
		counts[st] = 0
	}
	for _, p := range projects {
		counts[p.Status]++
	}
	return counts
}

func taskStatusCounts(tasks []model.Task) map[model.Status]int {
	counts := make(map[model.Status]int, len(model.Statuses))
	for _, st := range model.Statuses {
		counts[st] = 0
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// inWindow reports whether d falls within [today, today+upcomingWindowDays].
func inWindow(d *model.Date, today model.Date) bool {
	if d == nil {
		return false
	}
	end := today.AddDays(upcomingWindowDays)
	return !d.Before(today) && !d.After(end)
}

func upcomingProjects(projects []model.Project, today model.Date) []model.Project {
	out := make([]model.Project, 0)
	for _, p := range projects {
		if inWindow(p.Deadline, today) {
			out = append(out, p)
		}
	}
	return out
}

func upcomingTasks(tasks []model.Task, today model.Date) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if inWindow(t.DueDate, today) {
			out = append(out, t)
		}
	}
	return out
}

// recentlyCompleted returns the first limit Done tasks in collection order.
func recentlyCompleted(tasks []model.Task, limit int) []model.Task {
	out := make([]model.Task, 0, limit)
	for _, t := range tasks {
		if t.Status != model.StatusDone {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}
