package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrNIPExists        = errors.New("NIP already registered")
	ErrInvalidCSV       = errors.New("invalid employee CSV")
)
