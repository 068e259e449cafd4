package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clienthub/internal/model"
	repomocks "clienthub/internal/repository/mocks"
)

func datePtr(s string) *model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestDashboardService_Summary(t *testing.T) {
	clients := new(repomocks.MockClientRepository)
	projects := new(repomocks.MockProjectRepository)
	tasks := new(repomocks.MockTaskRepository)

	clients.On("List", mock.Anything).Return([]model.Client{
		{ID: "c1"}, {ID: "c2"},
	}, nil)
	projects.On("List", mock.Anything, "").Return([]model.Project{
		{ID: "p1", Status: model.StatusInProgress, Deadline: datePtr("2026-06-05")},
		{ID: "p2", Status: model.StatusInProgress, Deadline: datePtr("2026-06-15")},
		{ID: "p3", Status: model.StatusDone},
	}, nil)
	tasks.On("List", mock.Anything, "").Return([]model.Task{
		{ID: "t1", Status: model.StatusTodo, DueDate: datePtr("2026-06-01")},
		{ID: "t2", Status: model.StatusDone, DueDate: datePtr("2026-06-02")},
		{ID: "t3", Status: model.StatusDone},
	}, nil)

	svc := NewDashboardService(clients, projects, tasks, nil, zap.NewNop()).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC) }

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Totals{Clients: 2, Projects: 3, Tasks: 3}, summary.Totals)

	// every status appears, zero-valued when empty
	assert.Equal(t, map[model.Status]int{
		model.StatusTodo:       0,
		model.StatusInProgress: 2,
		model.StatusDone:       1,
	}, summary.ProjectsByStatus)
	assert.Equal(t, map[model.Status]int{
		model.StatusTodo:       1,
		model.StatusInProgress: 0,
		model.StatusDone:       2,
	}, summary.TasksByStatus)

	// window is [2026-06-01, 2026-06-15]: both deadlines qualify, the
	// project without one does not
	require.Len(t, summary.UpcomingProjects, 2)
	assert.Equal(t, "p1", summary.UpcomingProjects[0].ID)
	assert.Equal(t, "p2", summary.UpcomingProjects[1].ID)

	require.Len(t, summary.UpcomingTasks, 2)

	require.Len(t, summary.RecentlyCompleted, 2)
	assert.Equal(t, "t2", summary.RecentlyCompleted[0].ID)
	assert.Equal(t, "t3", summary.RecentlyCompleted[1].ID)
}

func TestInWindow(t *testing.T) {
	today, _ := model.ParseDate("2026-06-01")

	cases := []struct {
		name string
		date *model.Date
		want bool
	}{
		{"nil date", nil, false},
		{"yesterday", datePtr("2026-05-31"), false},
		{"today", datePtr("2026-06-01"), true},
		{"last day of window", datePtr("2026-06-15"), true},
		{"one past the window", datePtr("2026-06-16"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inWindow(tc.date, today))
		})
	}
}

func TestRecentlyCompleted(t *testing.T) {
	tasks := make([]model.Task, 0, 8)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tasks = append(tasks, model.Task{ID: id, Status: model.StatusDone})
	}
	tasks = append(tasks, model.Task{ID: "open", Status: model.StatusInProgress})

	got := recentlyCompleted(tasks, recentlyCompletedLimit)

	require.Len(t, got, 5)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "e", got[4].ID)

	assert.Empty(t, recentlyCompleted(nil, recentlyCompletedLimit))
}

func TestStatusCounts_Empty(t *testing.T) {
	counts := projectStatusCounts(nil)

	assert.Len(t, counts, len(model.Statuses))
	for _, st := range model.Statuses {
		assert.Equal(t, 0, counts[st])
	}
}
