package store

import "errors"

var (
	// ErrNotFound is returned when a list, word or session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTitleTaken is returned when a list title is already in use.
	ErrTitleTaken = errors.New("list title already exists")
)
