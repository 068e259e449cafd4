package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import "errors"

// ErrInvalidReference is returned when a row cannot be written because a
// foreign key points at a row that does not exist (e.g., a project created
// for a missing client).
var ErrInvalidReference = errors.New("referenced row does not exist")

// CascadeResult reports how many dependent rows a cascading delete removed.
type CascadeResult struct {
	ProjectsDeleted int
	TasksDeleted    int
}
