package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRoleNotFound     = errors.New("employee does not hold the requested role")
	ErrDuplicateRole    = errors.New("secondary role with the same name already exists")
)
