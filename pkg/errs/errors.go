package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrNotFound       = errors.New("Resource not found")
	ErrNoFile         = errors.New("Missing file")
	ErrNotAnImage     = errors.New("Uploaded file is not an image")
	ErrUpstream       = errors.New("Image hosting service failure")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusUnauthorized,
	ErrNotFound:       ErrStatusNotFound,
	ErrNoFile:         ErrStatusClient,
	ErrNotAnImage:     ErrStatusClient,
	ErrUpstream:       ErrStatusInternalServer,
}

// Sanitize maps unknown errors to the generic internal-server sentinel so
// internal error text never reaches a client.
func Sanitize(err error) error {
	if _, ok := errorMap[err]; ok {
		return err
	}
	return ErrInternalServer
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
