package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidPIN          = errors.New("invalid access PIN")
	ErrUnitNotFound        = errors.New("unit not found")
	ErrInvalidUnit         = errors.New("unit fields are invalid")
	ErrUnitVacant          = errors.New("unit has no current tenant")
	ErrNoTenantContact     = errors.New("unit has no tenant contact channel")
	ErrUnsupportedFileType = errors.New("unsupported evidence file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
