package domain

import "errors"

var (
	ErrArchitectureNotFound = errors.New("architecture not found")
	ErrSystemNameRequired   = errors.New("system name is required")
	ErrPurposeRequired      = errors.New("system purpose is required")
	ErrArchiveDisabled      = errors.New("archive disabled")
)
